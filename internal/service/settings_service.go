package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/repository"
	"github.com/taxfolio/backend/internal/secrets"
)

// SettingsService manages application settings. The EVDS API key is
// encrypted before it reaches the settings table and decrypted on read.
type SettingsService struct {
	settingRepo *repository.SettingRepository
	encryptor   *secrets.Encryptor
	log         zerolog.Logger
}

// NewSettingsService creates a new SettingsService with the provided dependencies.
func NewSettingsService(settingRepo *repository.SettingRepository, encryptor *secrets.Encryptor, log zerolog.Logger) *SettingsService {
	return &SettingsService{
		settingRepo: settingRepo,
		encryptor:   encryptor,
		log:         log.With().Str("component", "settings-service").Logger(),
	}
}

// SetEvdsAPIKey encrypts and stores the EVDS API key.
func (s *SettingsService) SetEvdsAPIKey(ctx context.Context, apiKey string) error {
	token, err := s.encryptor.Encrypt(apiKey)
	if err != nil {
		return err
	}

	if err := s.settingRepo.UpsertSetting(ctx, model.SettingEvdsAPIKey, token); err != nil {
		return err
	}

	s.log.Info().Msg("evds api key updated")
	return nil
}

// GetEvdsAPIKey returns the decrypted EVDS API key. Returns
// apperrors.ErrEvdsKeyNotConfigured when no key has been stored.
func (s *SettingsService) GetEvdsAPIKey(ctx context.Context) (string, error) {
	token, found, err := s.settingRepo.GetSetting(ctx, model.SettingEvdsAPIKey)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperrors.ErrEvdsKeyNotConfigured
	}
	return s.encryptor.Decrypt(token)
}

// HasEvdsAPIKey reports whether an EVDS API key has been stored, without
// decrypting it.
func (s *SettingsService) HasEvdsAPIKey(ctx context.Context) (bool, error) {
	_, found, err := s.settingRepo.GetSetting(ctx, model.SettingEvdsAPIKey)
	return found, err
}
