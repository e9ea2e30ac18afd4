package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jestatech/jts-site/internal/dto"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")

	ErrContactNameRequired    = errors.New("Name is required.")
	ErrContactPhoneRequired   = errors.New("Phone number is required.")
	ErrContactServiceRequired = errors.New("Please select a service.")
)

// ContactFormService handles public submissions and the admin inbox.
type ContactFormService struct {
	contactRepo repository.ContactFormRepository
}

// NewContactFormService creates a new ContactFormService.
func NewContactFormService(contactRepo repository.ContactFormRepository) *ContactFormService {
	return &ContactFormService{contactRepo: contactRepo}
}

// Submit validates a public submission and stores it. Required fields reject
// with field-specific errors; blank optional fields are stored as absent.
func (s *ContactFormService) Submit(req dto.ContactFormRequest) (*models.ContactForm, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrContactNameRequired
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, ErrContactPhoneRequired
	}
	if strings.TrimSpace(req.Service) == "" {
		return nil, ErrContactServiceRequired
	}

	form := models.ContactForm{
		Name:    req.Name,
		Phone:   req.Phone,
		Service: req.Service,
		Email:   normalizeOptional(req.Email),
		Subject: normalizeOptional(req.Subject),
		Message: normalizeOptional(req.Message),
	}

	if err := s.contactRepo.Save(&form); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	return &form, nil
}

// GetAllSubmissions returns every submission, newest first.
func (s *ContactFormService) GetAllSubmissions() ([]models.ContactForm, error) {
	return s.contactRepo.FindAll()
}

// GetSubmissionByID returns one submission.
func (s *ContactFormService) GetSubmissionByID(id uint64) (*models.ContactForm, error) {
	form, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}
	return form, nil
}

// GetSubmissionsByReadStatus filters by the read flag.
func (s *ContactFormService) GetSubmissionsByReadStatus(isRead bool) ([]models.ContactForm, error) {
	return s.contactRepo.FindByRead(isRead)
}

// GetSubmissionsByService filters by requested service.
func (s *ContactFormService) GetSubmissionsByService(service string) ([]models.ContactForm, error) {
	return s.contactRepo.FindByService(service)
}

// GetSubmissionsByDateRange filters by creation time.
func (s *ContactFormService) GetSubmissionsByDateRange(start, end time.Time) ([]models.ContactForm, error) {
	return s.contactRepo.FindByCreatedBetween(start, end)
}

// MarkAsRead flags a submission read.
func (s *ContactFormService) MarkAsRead(id uint64) (*models.ContactForm, error) {
	return s.setRead(id, true)
}

// MarkAsUnread flags a submission unread.
func (s *ContactFormService) MarkAsUnread(id uint64) (*models.ContactForm, error) {
	return s.setRead(id, false)
}

func (s *ContactFormService) setRead(id uint64, isRead bool) (*models.ContactForm, error) {
	form, err := s.GetSubmissionByID(id)
	if err != nil {
		return nil, err
	}

	form.IsRead = isRead

	if err := s.contactRepo.Save(form); err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}
	return form, nil
}

// DeleteSubmission removes a submission by ID.
func (s *ContactFormService) DeleteSubmission(id uint64) error {
	if _, err := s.GetSubmissionByID(id); err != nil {
		return err
	}
	return s.contactRepo.DeleteByID(id)
}

// GetStats aggregates inbox counts: total, read, unread and today's intake.
func (s *ContactFormService) GetStats() (map[string]int64, error) {
	total, err := s.contactRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	unread, err := s.contactRepo.CountByRead(false)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread submissions: %w", err)
	}

	read, err := s.contactRepo.CountByRead(true)
	if err != nil {
		return nil, fmt.Errorf("failed to count read submissions: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.contactRepo.CountCreatedBetween(startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to count today's submissions: %w", err)
	}

	return map[string]int64{
		"total":  total,
		"unread": unread,
		"read":   read,
		"today":  today,
	}, nil
}

func normalizeOptional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &value
}
