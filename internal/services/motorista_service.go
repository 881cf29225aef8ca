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

type DriverService struct {
	db *gorm.DB
}

func NewDriverService(db *gorm.DB) *DriverService {
	return &DriverService{db: db}
}

func (s *DriverService) Create(ctx context.Context, req *dtos.DriverRequest) (*models.Driver, error) {
	driver := models.Driver{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
	}
	if err := s.db.WithContext(ctx).Create(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) List(ctx context.Context, skip, take int) ([]models.Driver, error) {
	skip, take = normalizePage(skip, take)
	var drivers []models.Driver
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Order("id").
		Offset(skip).
		Limit(take).
		Find(&drivers).Error
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *DriverService) GetByID(ctx context.Context, id uint) (*models.Driver, error) {
	var driver models.Driver
	err := s.db.WithContext(ctx).Preload("Vehicle").First(&driver, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, driverNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) Update(ctx context.Context, id uint, req *dtos.DriverRequest) (*models.Driver, error) {
	var driver models.Driver
	err := s.db.WithContext(ctx).First(&driver, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, driverNotFound()
	}
	if err != nil {
		return nil, err
	}

	driver.Name = req.Name
	driver.LicenseNumber = req.LicenseNumber
	driver.Phone = req.Phone

	if err := s.db.WithContext(ctx).Save(&driver).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete also releases the driver's vehicle and removes any schedules
// still assigned to them.
func (s *DriverService) Delete(ctx context.Context, id uint) error {
	var driver models.Driver
	err := s.db.WithContext(ctx).First(&driver, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return driverNotFound()
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Vehicle{}).Where("driver_id = ?", id).Update("driver_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("driver_id = ?", id).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&driver).Error
	})
}

func driverNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Motorista não encontrado",
		Err:        utils.ErrDriverNotFound,
	}
}
