package models

import "time"

// UserProfile is a 1:1 extension of User holding contact details.
type UserProfile struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone       string     `gorm:"size:15" json:"phone"`
	Address     string     `gorm:"type:text" json:"address"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
