package dto

import (
	"time"

	"github.com/jestatech/jts-site/internal/models"
)

// CreateProjectRequest is the admin project creation payload.
type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status" binding:"required"`
	StartDate   *time.Time           `json:"startDate"`
	EndDate     *time.Time           `json:"endDate"`
	ImageURL    *string              `json:"imageUrl"`
	ClientName  string               `json:"clientName"`
	Category    string               `json:"category"`
	Budget      *float64             `json:"budget"`
	Progress    *int                 `json:"progress"`
	FilePaths   *string              `json:"filePaths"`
}

// ToModel builds a new Project from the request.
func (r CreateProjectRequest) ToModel() models.Project {
	return models.Project{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ImageURL:    r.ImageURL,
		ClientName:  r.ClientName,
		Category:    r.Category,
		Budget:      r.Budget,
		Progress:    r.Progress,
		FilePaths:   r.FilePaths,
	}
}

// CreateTaskRequest is the admin task creation payload. Status and priority
// fall back to TODO/MEDIUM when blank.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assignedTo"`
	ProjectID   *uint64    `json:"projectId"`
	ProjectName string     `json:"projectName"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        string     `json:"tags"`
}

// ToModel builds a new Task from the request.
func (r CreateTaskRequest) ToModel() models.Task {
	return models.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
		ProjectID:   r.ProjectID,
		ProjectName: r.ProjectName,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
	}
}

// CreateUserRequest is the admin user creation payload.
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// CreateBillingRequest is the admin billing creation payload.
type CreateBillingRequest struct {
	Amount        float64    `json:"amount" binding:"required"`
	Status        string     `json:"status" binding:"required"`
	InvoiceNumber *string    `json:"invoiceNumber"`
	ClientName    string     `json:"clientName"`
	DueDate       *time.Time `json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate"`
	Notes         string     `json:"notes"`
	ProjectID     *uint64    `json:"projectId"`
}

// ToModel builds a new Billing from the request.
func (r CreateBillingRequest) ToModel() models.Billing {
	return models.Billing{
		Amount:        r.Amount,
		Status:        r.Status,
		InvoiceNumber: r.InvoiceNumber,
		ClientName:    r.ClientName,
		DueDate:       r.DueDate,
		PaidDate:      r.PaidDate,
		Notes:         r.Notes,
		ProjectID:     r.ProjectID,
	}
}

// ContactFormRequest is the public contact submission payload. Required-field
// validation happens in the service so the responses carry the per-field
// messages the form expects.
type ContactFormRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UploadResponse is returned by the project file upload endpoint.
type UploadResponse struct {
	Success   bool     `json:"success"`
	FilePaths []string `json:"filePaths,omitempty"`
	Message   string   `json:"message"`
}

// DeleteFileResponse is returned by the project file delete endpoint.
type DeleteFileResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	Error          string          `json:"error,omitempty"`
	DeletedFile    string          `json:"deletedFile,omitempty"`
	RemainingFiles []string        `json:"remainingFiles,omitempty"`
	UpdatedProject *models.Project `json:"updatedProject,omitempty"`
	FileDeleted    bool            `json:"fileSystemDeleted"`
}

// VerifyFileResponse is returned by the file verification endpoint.
type VerifyFileResponse struct {
	Success      bool   `json:"success"`
	FilePath     string `json:"filePath"`
	ResolvedPath string `json:"resolvedPath"`
	Exists       bool   `json:"exists"`
	Readable     bool   `json:"readable"`
	Size         int64  `json:"size"`
}
