package dtos

import (
	"github.com/ecogestao/erp-backend/internal/models"
)

// PickupRequest is the staff-facing payload: the client is chosen explicitly.
type PickupRequest struct {
	VolumeCount  int     `json:"volume_count" validate:"required,gt=0"`
	TotalWeight  float64 `json:"total_weight" validate:"required,gt=0"`
	Dimensions   string  `json:"dimensions" validate:"required,dimensions"`
	Address      string  `json:"address" validate:"required"`
	ClientID     uint    `json:"client_id" validate:"required"`
	WasteItemIDs []uint  `json:"waste_item_ids" validate:"omitempty,dive,required"`
}

// SelfPickupRequest is the client-facing payload: the client comes from the
// caller's token, never from the body.
type SelfPickupRequest struct {
	VolumeCount  int     `json:"volume_count" validate:"required,gt=0"`
	TotalWeight  float64 `json:"total_weight" validate:"required,gt=0"`
	Dimensions   string  `json:"dimensions" validate:"required,dimensions"`
	Address      string  `json:"address" validate:"required"`
	WasteItemIDs []uint  `json:"waste_item_ids" validate:"omitempty,dive,required"`
}

type PickupResponse struct {
	ID          uint    `json:"id"`
	VolumeCount int     `json:"volume_count"`
	TotalWeight float64 `json:"total_weight"`
	Dimensions  string  `json:"dimensions"`
	Address     string  `json:"address"`
	ClientID    uint    `json:"client_id"`

	Client     *ClientBasicInfo    `json:"client,omitempty"`
	WasteItems []WasteItemResponse `json:"waste_items"`
	Schedule   *ScheduleBasicInfo  `json:"schedule,omitempty"`
}

func NewPickupResponseFromModel(p *models.Pickup) *PickupResponse {
	resp := &PickupResponse{
		ID:          p.ID,
		VolumeCount: p.VolumeCount,
		TotalWeight: p.TotalWeight,
		Dimensions:  p.Dimensions,
		Address:     p.Address,
		ClientID:    p.ClientID,
		Client:      NewClientBasicInfoFromModel(p.Client),
		WasteItems:  make([]WasteItemResponse, 0, len(p.WasteItems)),
	}
	for _, link := range p.WasteItems {
		if link.WasteItem != nil {
			resp.WasteItems = append(resp.WasteItems, *NewWasteItemResponseFromModel(link.WasteItem))
		}
	}
	if p.Schedule != nil {
		resp.Schedule = NewScheduleBasicInfoFromModel(p.Schedule)
	}
	return resp
}
