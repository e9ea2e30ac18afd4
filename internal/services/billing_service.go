package services

import (
	"errors"
	"fmt"

	"github.com/jestatech/jts-site/internal/dto"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"gorm.io/gorm"
)

var ErrBillingNotFound = errors.New("billing record not found")

// BillingService wraps billing persistence.
type BillingService struct {
	billingRepo repository.BillingRepository
}

// NewBillingService creates a new BillingService.
func NewBillingService(billingRepo repository.BillingRepository) *BillingService {
	return &BillingService{billingRepo: billingRepo}
}

// GetAllBillings returns every billing record.
func (s *BillingService) GetAllBillings() ([]models.Billing, error) {
	return s.billingRepo.FindAll()
}

// GetBillingByID returns one billing record.
func (s *BillingService) GetBillingByID(id uint64) (*models.Billing, error) {
	billing, err := s.billingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillingNotFound
		}
		return nil, fmt.Errorf("failed to find billing record: %w", err)
	}
	return billing, nil
}

// GetBillingsByStatus returns billing records with one status.
func (s *BillingService) GetBillingsByStatus(status string) ([]models.Billing, error) {
	return s.billingRepo.FindByStatus(status)
}

// GetBillingsByProject returns billing records attached to one project.
func (s *BillingService) GetBillingsByProject(projectID uint64) ([]models.Billing, error) {
	return s.billingRepo.FindByProjectID(projectID)
}

// CreateBilling persists a new billing record.
func (s *BillingService) CreateBilling(billing models.Billing) (*models.Billing, error) {
	if err := s.billingRepo.Save(&billing); err != nil {
		return nil, fmt.Errorf("failed to create billing record: %w", err)
	}
	return &billing, nil
}

// UpdateBilling applies a patch to a stored billing record.
func (s *BillingService) UpdateBilling(id uint64, patch dto.BillingPatch) (*models.Billing, error) {
	billing, err := s.GetBillingByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(billing)

	if err := s.billingRepo.Save(billing); err != nil {
		return nil, fmt.Errorf("failed to update billing record: %w", err)
	}
	return billing, nil
}

// DeleteBilling removes a billing record by ID.
func (s *BillingService) DeleteBilling(id uint64) error {
	if _, err := s.GetBillingByID(id); err != nil {
		return err
	}
	return s.billingRepo.DeleteByID(id)
}
