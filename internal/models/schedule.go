package models

import "time"

// Schedule assigns a driver and arrival time to exactly one pickup.
// PickupID is unique: a pickup has zero or one schedule.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PickupID uint    `gorm:"uniqueIndex;not null" json:"pickup_id"`
	Pickup   *Pickup `json:"-"`

	DriverID uint    `gorm:"not null;index" json:"driver_id"`
	Driver   *Driver `json:"-"`

	ArrivalTime time.Time `gorm:"not null" json:"arrival_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
