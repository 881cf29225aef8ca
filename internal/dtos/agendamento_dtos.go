package dtos

import (
	"time"

	"github.com/ecogestao/erp-backend/internal/models"
)

type ScheduleRequest struct {
	PickupID    uint      `json:"pickup_id" validate:"required"`
	DriverID    uint      `json:"driver_id" validate:"required"`
	ArrivalTime time.Time `json:"arrival_time" validate:"required"`
}

type ScheduleResponse struct {
	ID          uint      `json:"id"`
	PickupID    uint      `json:"pickup_id"`
	DriverID    uint      `json:"driver_id"`
	ArrivalTime time.Time `json:"arrival_time"`

	Driver *DriverBasicInfo `json:"driver,omitempty"`
}

// ScheduleBasicInfo is the flattened schedule shape embedded in pickup
// responses.
type ScheduleBasicInfo struct {
	ID          uint      `json:"id"`
	DriverID    uint      `json:"driver_id"`
	ArrivalTime time.Time `json:"arrival_time"`
}

func NewScheduleResponseFromModel(s *models.Schedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		ID:          s.ID,
		PickupID:    s.PickupID,
		DriverID:    s.DriverID,
		ArrivalTime: s.ArrivalTime,
	}
	if s.Driver != nil {
		resp.Driver = NewDriverBasicInfoFromModel(s.Driver)
	}
	return resp
}

func NewScheduleBasicInfoFromModel(s *models.Schedule) *ScheduleBasicInfo {
	if s == nil {
		return nil
	}
	return &ScheduleBasicInfo{
		ID:          s.ID,
		DriverID:    s.DriverID,
		ArrivalTime: s.ArrivalTime,
	}
}
