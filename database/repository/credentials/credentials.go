package credentialsRepo

import (
	"context"
	"errors"

	"clearslot/models"
)

// ErrNotFound is returned when no credential pair is stored for a person.
var ErrNotFound = errors.New("credentials not found")

// CredentialsRepository is the secret store for upstream calendar credential
// pairs, keyed by person ID. Put replaces the whole pair in one operation so a
// reader never observes a half-rotated pair.
type CredentialsRepository interface {
	Get(ctx context.Context, personID string) (*models.CredentialPair, error)
	Put(ctx context.Context, personID string, pair models.CredentialPair) error
	Delete(ctx context.Context, personID string) error
}
