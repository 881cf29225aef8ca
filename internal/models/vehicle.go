package models

import "time"

type Vehicle struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Plate string `gorm:"uniqueIndex;not null" json:"plate"`
	Model string `gorm:"not null" json:"model"`
	Brand string `gorm:"not null" json:"brand"`

	// Nullable + unique: a vehicle has at most one driver and vice versa.
	DriverID *uint   `gorm:"uniqueIndex" json:"driver_id,omitempty"`
	Driver   *Driver `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
