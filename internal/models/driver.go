package models

import "time"

// Driver can be assigned at most one Vehicle; the foreign key lives on
// the Vehicle side and is unique, which enforces the 1:1 both ways.
type Driver struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	LicenseNumber string `gorm:"not null" json:"license_number"`
	Phone         string `gorm:"not null" json:"phone"`

	Vehicle   *Vehicle   `json:"-"`
	Schedules []Schedule `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
