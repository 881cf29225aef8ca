package dtos

import "github.com/ecogestao/erp-backend/internal/models"

type WasteItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

type WasteItemResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

func NewWasteItemResponseFromModel(w *models.WasteItem) *WasteItemResponse {
	return &WasteItemResponse{
		ID:       w.ID,
		Name:     w.Name,
		Category: w.Category,
		Type:     w.Type,
	}
}
