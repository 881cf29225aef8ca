package models

import "time"

// Client is a company that requests waste pickups. The optional UserID
// links the client to its login account; deleting the client deletes the
// account in the same transaction (see ClientService.Delete).
type Client struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Contact    string `gorm:"not null" json:"contact"`
	CNPJ       string `gorm:"column:cnpj;not null" json:"cnpj"`
	Address    string `gorm:"not null" json:"address"`
	PostalCode string `gorm:"not null" json:"postal_code"`

	UserID *string `gorm:"size:36;index" json:"user_id,omitempty"`
	User   *User   `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	Pickups []Pickup `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
