package repository

import (
	"github.com/jestatech/jts-site/internal/models"
	"gorm.io/gorm"
)

// GormSettingsRepository is a GORM implementation of SettingsRepository
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) FindByUserID(userID uint64) (*models.Settings, error) {
	var settings models.Settings
	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *GormSettingsRepository) Save(settings *models.Settings) error {
	return r.db.Save(settings).Error
}
