package app

import (
	"context"
	"fmt"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
	"github.com/riverphoenix/ai-pm-ide/internal/vault"
)

// SettingsServiceImpl implements the SettingsService interface. The API key
// is encrypted before it touches the repository and decrypted only on
// explicit request; the Settings boundary type never carries it.
type SettingsServiceImpl struct {
	settingsRepo secondary.SettingsRepository
}

// NewSettingsService creates a new SettingsService with injected
// dependencies.
func NewSettingsService(settingsRepo secondary.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the singleton, creating it on first read.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (*primary.Settings, error) {
	if err := s.settingsRepo.EnsureDefault(ctx); err != nil {
		return nil, err
	}

	record, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return recordToSettings(record), nil
}

// UpdateSettings applies a partial update to the profile fields.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req primary.UpdateSettingsRequest) (*primary.Settings, error) {
	if err := s.settingsRepo.EnsureDefault(ctx); err != nil {
		return nil, err
	}

	err := s.settingsRepo.Update(ctx, secondary.SettingsUpdate{
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Theme:       req.Theme,
	})
	if err != nil {
		return nil, err
	}

	record, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated settings: %w", err)
	}
	return recordToSettings(record), nil
}

// SetAPIKey encrypts and stores an API key.
func (s *SettingsServiceImpl) SetAPIKey(ctx context.Context, plaintext string) error {
	if plaintext == "" {
		return fmt.Errorf("api key must not be empty")
	}

	if err := s.settingsRepo.EnsureDefault(ctx); err != nil {
		return err
	}

	encrypted, err := vault.Encrypt(plaintext, vault.DeriveKey())
	if err != nil {
		return fmt.Errorf("failed to encrypt api key: %w", err)
	}

	return s.settingsRepo.Update(ctx, secondary.SettingsUpdate{
		APIKeyEncrypted: &encrypted,
	})
}

// GetDecryptedAPIKey returns the stored key decrypted, or empty when none is
// stored.
func (s *SettingsServiceImpl) GetDecryptedAPIKey(ctx context.Context) (string, error) {
	if err := s.settingsRepo.EnsureDefault(ctx); err != nil {
		return "", err
	}

	record, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	if record.APIKeyEncrypted == "" {
		return "", nil
	}

	plaintext, err := vault.Decrypt(record.APIKeyEncrypted, vault.DeriveKey())
	if err != nil {
		return "", fmt.Errorf("failed to decrypt api key: %w", err)
	}
	return plaintext, nil
}

// DeleteAPIKey removes the stored key, leaving other fields untouched.
func (s *SettingsServiceImpl) DeleteAPIKey(ctx context.Context) error {
	if err := s.settingsRepo.EnsureDefault(ctx); err != nil {
		return err
	}
	return s.settingsRepo.ClearAPIKey(ctx)
}

func recordToSettings(r *secondary.SettingsRecord) *primary.Settings {
	return &primary.Settings{
		DisplayName: r.DisplayName,
		Role:        r.Role,
		Theme:       r.Theme,
		HasAPIKey:   r.APIKeyEncrypted != "",
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure SettingsServiceImpl implements the interface.
var _ primary.SettingsService = (*SettingsServiceImpl)(nil)
