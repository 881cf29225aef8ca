package dtos

import "github.com/ecogestao/erp-backend/internal/models"

type DriverRequest struct {
	Name          string `json:"name" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
}

type DriverResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Phone         string `json:"phone"`

	Vehicle *VehicleBasicInfo `json:"vehicle,omitempty"`
}

// DriverBasicInfo is the flattened driver shape embedded in schedule and
// vehicle responses.
type DriverBasicInfo struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
}

func NewDriverResponseFromModel(d *models.Driver) *DriverResponse {
	resp := &DriverResponse{
		ID:            d.ID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		Phone:         d.Phone,
	}
	if d.Vehicle != nil {
		resp.Vehicle = NewVehicleBasicInfoFromModel(d.Vehicle)
	}
	return resp
}

func NewDriverBasicInfoFromModel(d *models.Driver) *DriverBasicInfo {
	if d == nil {
		return nil
	}
	return &DriverBasicInfo{
		ID:            d.ID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
	}
}
