package credentialsRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"clearslot/models"

	"github.com/go-redis/redis/v8"
)

const credentialsPrefix = "credentials:"

// RedisCredentialsRepo implements CredentialsRepository on Redis. Each pair is
// one JSON value under credentials:<personID>, written with a single SET, so
// rotation is atomic from the store's point of view.
type RedisCredentialsRepo struct {
	client *redis.Client
}

// NewRedisCredentialsRepo creates a CredentialsRepository backed by the given client.
func NewRedisCredentialsRepo(client *redis.Client) CredentialsRepository {
	return &RedisCredentialsRepo{client: client}
}

// Get retrieves the credential pair for a person.
func (r *RedisCredentialsRepo) Get(ctx context.Context, personID string) (*models.CredentialPair, error) {
	data, err := r.client.Get(ctx, credentialsPrefix+personID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read credentials for %s: %w", personID, err)
	}
	var pair models.CredentialPair
	if err := json.Unmarshal([]byte(data), &pair); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials for %s: %w", personID, err)
	}
	return &pair, nil
}

// Put stores the whole credential pair for a person. Pairs carry no TTL; the
// access token inside may expire but the refresh token outlives it.
func (r *RedisCredentialsRepo) Put(ctx context.Context, personID string, pair models.CredentialPair) error {
	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials for %s: %w", personID, err)
	}
	if err := r.client.Set(ctx, credentialsPrefix+personID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save credentials for %s: %w", personID, err)
	}
	return nil
}

// Delete removes a person's credential pair.
func (r *RedisCredentialsRepo) Delete(ctx context.Context, personID string) error {
	return r.client.Del(ctx, credentialsPrefix+personID).Err()
}
