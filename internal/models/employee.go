package models

import "time"

type Employee struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`
	Phone string `gorm:"not null" json:"phone"`

	UserID *string `gorm:"size:36;index" json:"user_id,omitempty"`
	User   *User   `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
