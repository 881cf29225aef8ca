package dtos

import "github.com/ecogestao/erp-backend/internal/models"

type ProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

type ProductResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

func NewProductResponseFromModel(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Type:     p.Type,
	}
}
