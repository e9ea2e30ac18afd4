package repository

import (
	"time"

	"github.com/jestatech/jts-site/internal/models"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// FindAll returns every project
	FindAll() ([]models.Project, error)

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindLatest returns projects ordered newest first
	FindLatest() ([]models.Project, error)

	// FindByStatus returns projects with the given status
	FindByStatus(status models.ProjectStatus) ([]models.Project, error)

	// Save inserts when the ID is zero and updates otherwise
	Save(project *models.Project) error

	// DeleteByID removes a project row
	DeleteByID(id uint64) error

	// ExistsByID reports whether a project row exists
	ExistsByID(id uint64) (bool, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// FindAll returns every task, newest first
	FindAll() ([]models.Task, error)

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindByStatus returns tasks with the given status, highest priority first
	FindByStatus(status string) ([]models.Task, error)

	// FindByPriority returns tasks with the given priority
	FindByPriority(priority string) ([]models.Task, error)

	// FindByAssignedTo returns tasks assigned to the given person
	FindByAssignedTo(assignedTo string) ([]models.Task, error)

	// FindByProjectID returns tasks attached to a project
	FindByProjectID(projectID uint64) ([]models.Task, error)

	// Save inserts when the ID is zero and updates otherwise
	Save(task *models.Task) error

	// DeleteByID removes a task row
	DeleteByID(id uint64) error

	// ExistsByID reports whether a task row exists
	ExistsByID(id uint64) (bool, error)

	// CountByStatus counts tasks with the given status
	CountByStatus(status string) (int64, error)

	// Count counts all tasks
	Count() (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindAll returns every user
	FindAll() ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Save inserts when the ID is zero and updates otherwise
	Save(user *models.User) error

	// DeleteByID removes a user row
	DeleteByID(id uint64) error
}

// BillingRepository defines the interface for billing data access
type BillingRepository interface {
	// FindAll returns every billing record
	FindAll() ([]models.Billing, error)

	// FindByID finds a billing record by ID
	FindByID(id uint64) (*models.Billing, error)

	// FindByStatus returns billing records with the given status
	FindByStatus(status string) ([]models.Billing, error)

	// FindByProjectID returns billing records attached to a project
	FindByProjectID(projectID uint64) ([]models.Billing, error)

	// Save inserts when the ID is zero and updates otherwise
	Save(billing *models.Billing) error

	// DeleteByID removes a billing row
	DeleteByID(id uint64) error
}

// ContactFormRepository defines the interface for contact submission data access
type ContactFormRepository interface {
	// FindAll returns every submission, newest first
	FindAll() ([]models.ContactForm, error)

	// FindByID finds a submission by ID
	FindByID(id uint64) (*models.ContactForm, error)

	// FindByRead returns submissions filtered by read flag, newest first
	FindByRead(isRead bool) ([]models.ContactForm, error)

	// FindByService returns submissions for one service, newest first
	FindByService(service string) ([]models.ContactForm, error)

	// FindByCreatedBetween returns submissions in [start, end], newest first
	FindByCreatedBetween(start, end time.Time) ([]models.ContactForm, error)

	// Save inserts when the ID is zero and updates otherwise
	Save(form *models.ContactForm) error

	// DeleteByID removes a submission row
	DeleteByID(id uint64) error

	// Count counts all submissions
	Count() (int64, error)

	// CountByRead counts submissions by read flag
	CountByRead(isRead bool) (int64, error)

	// CountCreatedBetween counts submissions created in [start, end)
	CountCreatedBetween(start, end time.Time) (int64, error)
}

// SettingsRepository defines the interface for settings data access
type SettingsRepository interface {
	// FindByUserID finds the settings row for a user
	FindByUserID(userID uint64) (*models.Settings, error)

	// Save inserts when the ID is zero and updates otherwise
	Save(settings *models.Settings) error
}
