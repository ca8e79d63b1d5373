package primary

import "context"

// SettingsService defines the primary port for the settings singleton and
// the API-key vault operations layered on it.
type SettingsService interface {
	// GetSettings retrieves the singleton, creating it on first read.
	GetSettings(ctx context.Context) (*Settings, error)

	// UpdateSettings applies a partial update to the profile fields.
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*Settings, error)

	// SetAPIKey encrypts and stores an API key.
	SetAPIKey(ctx context.Context, plaintext string) error

	// GetDecryptedAPIKey returns the stored key decrypted, or empty when
	// none is stored.
	GetDecryptedAPIKey(ctx context.Context) (string, error)

	// DeleteAPIKey removes the stored key, leaving other fields untouched.
	DeleteAPIKey(ctx context.Context) error
}

// UpdateSettingsRequest contains the partial-update fields for settings.
// Nil pointers leave the stored value unchanged.
type UpdateSettingsRequest struct {
	DisplayName *string
	Role        *string
	Theme       *string
}

// Settings represents the settings singleton at the port boundary. The API
// key never crosses this boundary in plaintext; HasAPIKey reports presence.
type Settings struct {
	DisplayName string
	Role        string
	Theme       string
	HasAPIKey   bool
	CreatedAt   string
	UpdatedAt   string
}
