package services

import (
	"errors"
	"fmt"

	"github.com/jestatech/jts-site/internal/dto"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"gorm.io/gorm"
)

// SettingsService manages per-user back-office settings. Reads create the
// row with defaults when it does not exist yet; there is no delete path.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's settings, creating a defaulted row first if
// none exists.
func (s *SettingsService) GetSettings(userID uint64) (*models.Settings, error) {
	settings, err := s.settingsRepo.FindByUserID(userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}

	defaults := defaultSettings(userID)
	if err := s.settingsRepo.Save(&defaults); err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return &defaults, nil
}

// UpdateSettings applies a patch to the user's settings.
func (s *SettingsService) UpdateSettings(userID uint64, patch dto.SettingsPatch) (*models.Settings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	patch.Apply(settings)

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

func defaultSettings(userID uint64) models.Settings {
	return models.Settings{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		WeeklyReport:       true,
		SessionTimeout:     30,
		Language:           "en",
		Timezone:           "Asia/Kolkata",
		DateFormat:         "DD/MM/YYYY",
	}
}
