package dto

import (
	"time"

	"github.com/jestatech/jts-site/internal/models"
)

// Patch types carry partial-update payloads. Every field is a pointer: nil
// means "leave the stored value alone", non-nil overwrites. Each Apply is the
// single place its entity's merge rule lives.

// ProjectPatch is a partial project update.
type ProjectPatch struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
	StartDate   *time.Time            `json:"startDate"`
	EndDate     *time.Time            `json:"endDate"`
	ImageURL    *string               `json:"imageUrl"`
	ClientName  *string               `json:"clientName"`
	Category    *string               `json:"category"`
	Budget      *float64              `json:"budget"`
	Progress    *int                  `json:"progress"`
	FilePaths   *string               `json:"filePaths"`
}

// Apply merges the non-nil fields onto the stored project.
func (p ProjectPatch) Apply(project *models.Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	if p.StartDate != nil {
		project.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		project.EndDate = p.EndDate
	}
	if p.ImageURL != nil {
		project.ImageURL = p.ImageURL
	}
	if p.ClientName != nil {
		project.ClientName = *p.ClientName
	}
	if p.Category != nil {
		project.Category = *p.Category
	}
	if p.Budget != nil {
		project.Budget = p.Budget
	}
	if p.Progress != nil {
		project.Progress = p.Progress
	}
	if p.FilePaths != nil {
		project.FilePaths = p.FilePaths
	}
}

// TaskPatch is a partial task update.
type TaskPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	AssignedTo  *string    `json:"assignedTo"`
	ProjectID   *uint64    `json:"projectId"`
	ProjectName *string    `json:"projectName"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        *string    `json:"tags"`
}

// Apply merges the non-nil fields onto the stored task.
func (p TaskPatch) Apply(task *models.Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.AssignedTo != nil {
		task.AssignedTo = *p.AssignedTo
	}
	if p.ProjectID != nil {
		task.ProjectID = p.ProjectID
	}
	if p.ProjectName != nil {
		task.ProjectName = *p.ProjectName
	}
	if p.DueDate != nil {
		task.DueDate = p.DueDate
	}
	if p.Tags != nil {
		task.Tags = *p.Tags
	}
}

// UserPatch is a partial user update. Password, when present, is the new
// plaintext password; the service hashes it before storage.
type UserPatch struct {
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Status     *string `json:"status"`
}

// Apply merges the non-nil fields onto the stored user. Password is handled
// by the service, not here.
func (p UserPatch) Apply(user *models.User) {
	if p.Username != nil {
		user.Username = *p.Username
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Role != nil {
		user.Role = *p.Role
	}
	if p.Phone != nil {
		user.Phone = *p.Phone
	}
	if p.Department != nil {
		user.Department = *p.Department
	}
	if p.Status != nil {
		user.Status = *p.Status
	}
}

// BillingPatch is a partial billing update.
type BillingPatch struct {
	Amount        *float64   `json:"amount"`
	Status        *string    `json:"status"`
	InvoiceNumber *string    `json:"invoiceNumber"`
	ClientName    *string    `json:"clientName"`
	DueDate       *time.Time `json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate"`
	Notes         *string    `json:"notes"`
	ProjectID     *uint64    `json:"projectId"`
}

// Apply merges the non-nil fields onto the stored billing record.
func (p BillingPatch) Apply(billing *models.Billing) {
	if p.Amount != nil {
		billing.Amount = *p.Amount
	}
	if p.Status != nil {
		billing.Status = *p.Status
	}
	if p.InvoiceNumber != nil {
		billing.InvoiceNumber = p.InvoiceNumber
	}
	if p.ClientName != nil {
		billing.ClientName = *p.ClientName
	}
	if p.DueDate != nil {
		billing.DueDate = p.DueDate
	}
	if p.PaidDate != nil {
		billing.PaidDate = p.PaidDate
	}
	if p.Notes != nil {
		billing.Notes = *p.Notes
	}
	if p.ProjectID != nil {
		billing.ProjectID = p.ProjectID
	}
}

// SettingsPatch is a partial settings update.
type SettingsPatch struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Role           *string `json:"role"`
	ProfilePicture *string `json:"profilePicture"`

	EmailNotifications *bool `json:"emailNotifications"`
	PushNotifications  *bool `json:"pushNotifications"`
	SMSNotifications   *bool `json:"smsNotifications"`
	WeeklyReport       *bool `json:"weeklyReport"`

	SessionTimeout *int `json:"sessionTimeout"`

	Language   *string `json:"language"`
	Timezone   *string `json:"timezone"`
	DateFormat *string `json:"dateFormat"`

	CompanyName    *string `json:"companyName"`
	CompanyEmail   *string `json:"companyEmail"`
	CompanyPhone   *string `json:"companyPhone"`
	CompanyWebsite *string `json:"companyWebsite"`
	TaxID          *string `json:"taxId"`

	SlackEnabled          *bool   `json:"slackEnabled"`
	SlackWebhook          *string `json:"slackWebhook"`
	GoogleCalendarEnabled *bool   `json:"googleCalendarEnabled"`
	GithubEnabled         *bool   `json:"githubEnabled"`
}

// Apply merges the non-nil fields onto the stored settings.
func (p SettingsPatch) Apply(settings *models.Settings) {
	if p.FirstName != nil {
		settings.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		settings.LastName = *p.LastName
	}
	if p.Email != nil {
		settings.Email = *p.Email
	}
	if p.Phone != nil {
		settings.Phone = *p.Phone
	}
	if p.Role != nil {
		settings.Role = *p.Role
	}
	if p.ProfilePicture != nil {
		settings.ProfilePicture = *p.ProfilePicture
	}
	if p.EmailNotifications != nil {
		settings.EmailNotifications = *p.EmailNotifications
	}
	if p.PushNotifications != nil {
		settings.PushNotifications = *p.PushNotifications
	}
	if p.SMSNotifications != nil {
		settings.SMSNotifications = *p.SMSNotifications
	}
	if p.WeeklyReport != nil {
		settings.WeeklyReport = *p.WeeklyReport
	}
	if p.SessionTimeout != nil {
		settings.SessionTimeout = *p.SessionTimeout
	}
	if p.Language != nil {
		settings.Language = *p.Language
	}
	if p.Timezone != nil {
		settings.Timezone = *p.Timezone
	}
	if p.DateFormat != nil {
		settings.DateFormat = *p.DateFormat
	}
	if p.CompanyName != nil {
		settings.CompanyName = *p.CompanyName
	}
	if p.CompanyEmail != nil {
		settings.CompanyEmail = *p.CompanyEmail
	}
	if p.CompanyPhone != nil {
		settings.CompanyPhone = *p.CompanyPhone
	}
	if p.CompanyWebsite != nil {
		settings.CompanyWebsite = *p.CompanyWebsite
	}
	if p.TaxID != nil {
		settings.TaxID = *p.TaxID
	}
	if p.SlackEnabled != nil {
		settings.SlackEnabled = *p.SlackEnabled
	}
	if p.SlackWebhook != nil {
		settings.SlackWebhook = *p.SlackWebhook
	}
	if p.GoogleCalendarEnabled != nil {
		settings.GoogleCalendarEnabled = *p.GoogleCalendarEnabled
	}
	if p.GithubEnabled != nil {
		settings.GithubEnabled = *p.GithubEnabled
	}
}
