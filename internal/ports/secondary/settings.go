package secondary

import "context"

// SettingsRepository defines the secondary port for the settings singleton.
type SettingsRepository interface {
	// EnsureDefault creates the singleton row if it does not exist yet.
	EnsureDefault(ctx context.Context) error

	// Get retrieves the settings row.
	Get(ctx context.Context) (*SettingsRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	Update(ctx context.Context, upd SettingsUpdate) error

	// ClearAPIKey removes the encrypted API key, leaving every other
	// field untouched.
	ClearAPIKey(ctx context.Context) error
}

// SettingsRecord represents the settings singleton as stored in persistence.
type SettingsRecord struct {
	ID              string
	DisplayName     string
	Role            string
	Theme           string
	APIKeyEncrypted string // Empty string means no key stored
	CreatedAt       string
	UpdatedAt       string
}

// SettingsUpdate contains the partial-update fields for settings.
// Nil pointers leave the stored value unchanged.
type SettingsUpdate struct {
	DisplayName     *string
	Role            *string
	Theme           *string
	APIKeyEncrypted *string
}
