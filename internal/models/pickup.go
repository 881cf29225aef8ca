package models

import "time"

// Pickup is a client's collection request. Weight and volume are numeric;
// Dimensions keeps the original "LxWxH" free-form string.
type Pickup struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	VolumeCount int     `gorm:"not null" json:"volume_count"`
	TotalWeight float64 `gorm:"not null" json:"total_weight"`
	Dimensions  string  `gorm:"not null" json:"dimensions"`
	Address     string  `gorm:"not null" json:"address"`

	ClientID uint    `gorm:"not null;index" json:"client_id"`
	Client   *Client `json:"-"`

	WasteItems []PickupWasteItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Schedule   *Schedule         `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PickupWasteItem is the pickup↔waste-item join row, keyed by the pair.
type PickupWasteItem struct {
	PickupID    uint `gorm:"primaryKey;autoIncrement:false" json:"pickup_id"`
	WasteItemID uint `gorm:"primaryKey;autoIncrement:false" json:"waste_item_id"`

	WasteItem *WasteItem `json:"-"`
}
