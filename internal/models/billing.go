package models

import "time"

type Billing struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Status        string     `gorm:"type:varchar(20);not null" json:"status"`
	InvoiceNumber *string    `gorm:"type:varchar(50)" json:"invoiceNumber"`
	ClientName    string     `json:"clientName"`
	DueDate       *time.Time `json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate"`
	Notes         string     `gorm:"type:text" json:"notes"`
	ProjectID     *uint64    `json:"projectId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
