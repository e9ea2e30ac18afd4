package models

import "time"

// ContactForm is a public contact submission. Optional fields are pointers so
// blank values submitted by the form can be stored as absent, not "".
type ContactForm struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Service   string    `gorm:"type:varchar(100);not null" json:"service"`
	Email     *string   `gorm:"type:varchar(255)" json:"email"`
	Subject   *string   `gorm:"type:varchar(255)" json:"subject"`
	Message   *string   `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
