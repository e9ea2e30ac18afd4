package models

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
)

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:varchar(1000)" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	ImageURL    *string       `gorm:"column:image_url" json:"imageUrl"`
	ClientName  string        `json:"clientName"`
	Category    string        `json:"category"`
	Budget      *float64      `json:"budget"`
	Progress    *int          `json:"progress"`
	// FilePaths is a JSON-encoded array of web-relative upload paths. It is
	// read-modify-written as a whole; there is no concurrent-append guarantee.
	FilePaths *string   `gorm:"type:text" json:"filePaths"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
