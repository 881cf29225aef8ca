package dtos

import "github.com/ecogestao/erp-backend/internal/models"

type EmployeeRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type EmployeeResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewEmployeeResponseFromModel(e *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
		Phone: e.Phone,
	}
}
