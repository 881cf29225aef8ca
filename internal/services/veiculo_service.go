package services

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

func (s *VehicleService) Create(ctx context.Context, req *dtos.VehicleRequest) (*models.Vehicle, error) {
	if err := s.checkPlateFree(ctx, req.Plate, 0); err != nil {
		return nil, err
	}
	if err := s.checkDriver(ctx, req.DriverID); err != nil {
		return nil, err
	}
	if err := s.checkDriverFree(ctx, req.DriverID, 0); err != nil {
		return nil, err
	}

	vehicle := models.Vehicle{
		Plate:    req.Plate,
		Model:    req.Model,
		Brand:    req.Brand,
		DriverID: req.DriverID,
	}
	if err := s.db.WithContext(ctx).Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) List(ctx context.Context, skip, take int) ([]models.Vehicle, error) {
	skip, take = normalizePage(skip, take)
	var vehicles []models.Vehicle
	err := s.db.WithContext(ctx).
		Preload("Driver").
		Order("id").
		Offset(skip).
		Limit(take).
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.WithContext(ctx).Preload("Driver").First(&vehicle, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicleNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, id uint, req *dtos.VehicleRequest) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.WithContext(ctx).First(&vehicle, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicleNotFound()
	}
	if err != nil {
		return nil, err
	}

	if err := s.checkPlateFree(ctx, req.Plate, id); err != nil {
		return nil, err
	}
	if err := s.checkDriver(ctx, req.DriverID); err != nil {
		return nil, err
	}
	if err := s.checkDriverFree(ctx, req.DriverID, id); err != nil {
		return nil, err
	}

	vehicle.Plate = req.Plate
	vehicle.Model = req.Model
	vehicle.Brand = req.Brand
	vehicle.DriverID = req.DriverID

	if err := s.db.WithContext(ctx).Save(&vehicle).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return vehicleNotFound()
	}
	return nil
}

// checkPlateFree rejects a plate already registered to another vehicle.
// excludeID skips the vehicle being updated.
func (s *VehicleService) checkPlateFree(ctx context.Context, plate string, excludeID uint) error {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Vehicle{}).Where("plate = ?", plate)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Já existe um veículo com essa placa",
			Err:        utils.ErrDuplicatePlate,
		}
	}
	return nil
}

func (s *VehicleService) checkDriver(ctx context.Context, driverID *uint) error {
	if driverID == nil {
		return nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Driver{}).Where("id = ?", *driverID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeReferential,
			Message:    "Motorista informado não existe",
			Err:        utils.ErrDriverNotFound,
		}
	}
	return nil
}

// checkDriverFree rejects a driver already bound to another vehicle, so
// the 1:1 invariant answers a clean conflict instead of a raw unique
// index violation. excludeID skips the vehicle being updated.
func (s *VehicleService) checkDriverFree(ctx context.Context, driverID *uint, excludeID uint) error {
	if driverID == nil {
		return nil
	}
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Vehicle{}).Where("driver_id = ?", *driverID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Motorista já está vinculado a outro veículo",
			Err:        utils.ErrDriverAssigned,
		}
	}
	return nil
}

func vehicleNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Veículo não encontrado",
		Err:        utils.ErrVehicleNotFound,
	}
}
