// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"clearslot/config"

	"github.com/go-redis/redis/v8"
)

// CredentialsCacheClient is the dedicated client for OAuth credential storage.
// Availability results are computed fresh per request and never cached, so
// this is the only Redis concern the service carries.
var CredentialsCacheClient *redis.Client

// InitCredentialsCache initializes the Redis client for credential storage (using DB from AppConfig).
func InitCredentialsCache() {
	CredentialsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCredentialsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CredentialsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Credentials): %v", err)
	}
}

// GetCredentialsCacheClient returns the Redis client for credential storage.
func GetCredentialsCacheClient() *redis.Client {
	if CredentialsCacheClient == nil {
		InitCredentialsCache()
	}
	return CredentialsCacheClient
}
