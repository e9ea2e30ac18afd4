package models

import "time"

// Settings holds per-user back-office preferences. One row per user.
type Settings struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"uniqueIndex;not null" json:"userId"`

	// Profile
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`

	// Notifications
	EmailNotifications bool `gorm:"not null;default:true" json:"emailNotifications"`
	PushNotifications  bool `gorm:"not null;default:true" json:"pushNotifications"`
	SMSNotifications   bool `gorm:"column:sms_notifications;not null;default:false" json:"smsNotifications"`
	WeeklyReport       bool `gorm:"not null;default:true" json:"weeklyReport"`

	// Security
	SessionTimeout    int        `gorm:"not null;default:30" json:"sessionTimeout"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt"`

	// Appearance
	Language   string `gorm:"not null;default:'en'" json:"language"`
	Timezone   string `gorm:"not null;default:'Asia/Kolkata'" json:"timezone"`
	DateFormat string `gorm:"not null;default:'DD/MM/YYYY'" json:"dateFormat"`

	// Company
	CompanyName    string `json:"companyName"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyWebsite string `json:"companyWebsite"`
	TaxID          string `gorm:"column:tax_id" json:"taxId"`

	// Integrations
	SlackEnabled          bool   `gorm:"not null;default:false" json:"slackEnabled"`
	SlackWebhook          string `json:"slackWebhook"`
	GoogleCalendarEnabled bool   `gorm:"not null;default:false" json:"googleCalendarEnabled"`
	GithubEnabled         bool   `gorm:"not null;default:false" json:"githubEnabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
