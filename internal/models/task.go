package models

import "time"

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"type:varchar(20);not null;default:'TODO'" json:"status"`
	Priority    string     `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`
	AssignedTo  string     `json:"assignedTo"`
	ProjectID   *uint64    `json:"projectId"`
	ProjectName string     `json:"projectName"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        string     `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
}
