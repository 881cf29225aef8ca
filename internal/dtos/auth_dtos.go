package dtos

import "time"

// RegisterRequest creates the login account and the client record together.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`

	Name       string `json:"name" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	CNPJ       string `json:"cnpj" validate:"required"`
	Address    string `json:"address" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// AuthResult is the uniform auth payload. Token and ExpireDate are set only
// on successful login.
type AuthResult struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
	Errors     []string   `json:"errors,omitempty"`
	Token      string     `json:"token,omitempty"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
}
