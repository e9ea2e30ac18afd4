package repository

import (
	"github.com/jestatech/jts-site/internal/models"
	"gorm.io/gorm"
)

// GormBillingRepository is a GORM implementation of BillingRepository
type GormBillingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new BillingRepository
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &GormBillingRepository{db: db}
}

func (r *GormBillingRepository) FindAll() ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *GormBillingRepository) FindByID(id uint64) (*models.Billing, error) {
	var billing models.Billing
	if err := r.db.First(&billing, id).Error; err != nil {
		return nil, err
	}
	return &billing, nil
}

func (r *GormBillingRepository) FindByStatus(status string) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.Where("status = ?", status).Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *GormBillingRepository) FindByProjectID(projectID uint64) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.Where("project_id = ?", projectID).Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *GormBillingRepository) Save(billing *models.Billing) error {
	return r.db.Save(billing).Error
}

func (r *GormBillingRepository) DeleteByID(id uint64) error {
	return r.db.Delete(&models.Billing{}, id).Error
}
