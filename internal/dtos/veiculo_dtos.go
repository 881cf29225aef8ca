package dtos

import "github.com/ecogestao/erp-backend/internal/models"

type VehicleRequest struct {
	Plate    string `json:"plate" validate:"required"`
	Model    string `json:"model" validate:"required"`
	Brand    string `json:"brand" validate:"required"`
	DriverID *uint  `json:"driver_id" validate:"omitempty,gt=0"`
}

type VehicleResponse struct {
	ID       uint   `json:"id"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Brand    string `json:"brand"`
	DriverID *uint  `json:"driver_id,omitempty"`

	Driver *DriverBasicInfo `json:"driver,omitempty"`
}

type VehicleBasicInfo struct {
	ID    uint   `json:"id"`
	Plate string `json:"plate"`
	Model string `json:"model"`
	Brand string `json:"brand"`
}

func NewVehicleResponseFromModel(v *models.Vehicle) *VehicleResponse {
	resp := &VehicleResponse{
		ID:       v.ID,
		Plate:    v.Plate,
		Model:    v.Model,
		Brand:    v.Brand,
		DriverID: v.DriverID,
	}
	if v.Driver != nil {
		resp.Driver = NewDriverBasicInfoFromModel(v.Driver)
	}
	return resp
}

func NewVehicleBasicInfoFromModel(v *models.Vehicle) *VehicleBasicInfo {
	if v == nil {
		return nil
	}
	return &VehicleBasicInfo{
		ID:    v.ID,
		Plate: v.Plate,
		Model: v.Model,
		Brand: v.Brand,
	}
}
