package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// settingsRowID keys the singleton row. Every read and write targets it.
const settingsRowID = "default"

// SettingsRepository implements secondary.SettingsRepository with SQLite.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// EnsureDefault creates the singleton row if it does not exist yet.
func (r *SettingsRepository) EnsureDefault(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO settings (id) VALUES (?)", settingsRowID,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure settings row: %w", err)
	}
	return nil
}

// Get retrieves the settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*secondary.SettingsRecord, error) {
	var (
		displayName, role, theme, apiKey sql.NullString
		createdAt, updatedAt             time.Time
	)

	record := &secondary.SettingsRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, display_name, role, theme, api_key_encrypted, created_at, updated_at FROM settings WHERE id = ?",
		settingsRowID,
	).Scan(&record.ID, &displayName, &role, &theme, &apiKey, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("settings row not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	record.DisplayName = displayName.String
	record.Role = role.String
	record.Theme = theme.String
	record.APIKeyEncrypted = apiKey.String
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Update applies a partial update; nil fields keep previous values.
func (r *SettingsRepository) Update(ctx context.Context, upd secondary.SettingsUpdate) error {
	q := builder.Update("settings").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": settingsRowID})

	if upd.DisplayName != nil {
		q = q.Set("display_name", nullStr(*upd.DisplayName))
	}
	if upd.Role != nil {
		q = q.Set("role", nullStr(*upd.Role))
	}
	if upd.Theme != nil {
		q = q.Set("theme", *upd.Theme)
	}
	if upd.APIKeyEncrypted != nil {
		q = q.Set("api_key_encrypted", nullStr(*upd.APIKeyEncrypted))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build settings update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("settings row not found")
	}
	return nil
}

// ClearAPIKey removes the encrypted API key, leaving other fields untouched.
func (r *SettingsRepository) ClearAPIKey(ctx context.Context) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE settings SET api_key_encrypted = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		settingsRowID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear api key: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("settings row not found")
	}
	return nil
}

// Ensure SettingsRepository implements the interface.
var _ secondary.SettingsRepository = (*SettingsRepository)(nil)
