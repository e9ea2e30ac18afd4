package repository

import (
	"time"

	"github.com/jestatech/jts-site/internal/models"
	"gorm.io/gorm"
)

// GormContactFormRepository is a GORM implementation of ContactFormRepository
type GormContactFormRepository struct {
	db *gorm.DB
}

// NewContactFormRepository creates a new ContactFormRepository
func NewContactFormRepository(db *gorm.DB) ContactFormRepository {
	return &GormContactFormRepository{db: db}
}

func (r *GormContactFormRepository) FindAll() ([]models.ContactForm, error) {
	var forms []models.ContactForm
	if err := r.db.Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *GormContactFormRepository) FindByID(id uint64) (*models.ContactForm, error) {
	var form models.ContactForm
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *GormContactFormRepository) FindByRead(isRead bool) ([]models.ContactForm, error) {
	var forms []models.ContactForm
	err := r.db.Where("is_read = ?", isRead).Order("created_at DESC").Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *GormContactFormRepository) FindByService(service string) ([]models.ContactForm, error) {
	var forms []models.ContactForm
	err := r.db.Where("service = ?", service).Order("created_at DESC").Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *GormContactFormRepository) FindByCreatedBetween(start, end time.Time) ([]models.ContactForm, error) {
	var forms []models.ContactForm
	err := r.db.Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *GormContactFormRepository) Save(form *models.ContactForm) error {
	return r.db.Save(form).Error
}

func (r *GormContactFormRepository) DeleteByID(id uint64) error {
	return r.db.Delete(&models.ContactForm{}, id).Error
}

func (r *GormContactFormRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactForm{}).Count(&count).Error
	return count, err
}

func (r *GormContactFormRepository) CountByRead(isRead bool) (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactForm{}).Where("is_read = ?", isRead).Count(&count).Error
	return count, err
}

func (r *GormContactFormRepository) CountCreatedBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactForm{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
