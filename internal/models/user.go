package models

import (
	"time"
)

// Role names seeded at bootstrap.
const (
	RoleAdmin       = "Admin"
	RoleFuncionario = "Funcionario"
	RoleCliente     = "Cliente"
)

// User is the identity record behind Client and Employee accounts.
// Confirmation and reset tokens are one-time values cleared on redemption.
type User struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	EmailConfirmed bool   `json:"email_confirmed"`

	ConfirmationToken string     `json:"-"`
	ResetToken        string     `json:"-"`
	ResetTokenExpiry  *time.Time `json:"-"`

	Roles []Role `gorm:"many2many:user_roles" json:"roles,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames flattens the user's roles for token claims.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
