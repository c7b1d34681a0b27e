package personRepo

import (
	"context"

	"clearslot/models"
)

// PersonRepository defines methods for person profile data access.
type PersonRepository interface {
	// GetByID retrieves a person by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Person, error)
	// GetByEmail retrieves a person by its email address.
	GetByEmail(ctx context.Context, email string) (*models.Person, error)
	// Upsert inserts or replaces a person record.
	Upsert(ctx context.Context, person *models.Person) error
	// UpdatePreferences replaces a person's working-hours preferences.
	UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error
	// Delete removes a person record by its ID.
	Delete(ctx context.Context, id string) error
}
