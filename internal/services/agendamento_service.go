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

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

func (s *ScheduleService) Create(ctx context.Context, req *dtos.ScheduleRequest) (*models.Schedule, error) {
	if err := s.checkReferences(ctx, req.PickupID, req.DriverID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Schedule{}).Where("pickup_id = ?", req.PickupID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Coleta já possui agendamento",
			Err:        utils.ErrConcurrencyConflict,
		}
	}

	schedule := models.Schedule{
		PickupID:    req.PickupID,
		DriverID:    req.DriverID,
		ArrivalTime: req.ArrivalTime,
	}
	if err := s.db.WithContext(ctx).Create(&schedule).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, schedule.ID)
}

func (s *ScheduleService) List(ctx context.Context, skip, take int) ([]models.Schedule, error) {
	skip, take = normalizePage(skip, take)
	var schedules []models.Schedule
	err := s.db.WithContext(ctx).
		Preload("Driver").
		Order("id").
		Offset(skip).
		Limit(take).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.db.WithContext(ctx).Preload("Driver").First(&schedule, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, scheduleNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleService) Update(ctx context.Context, id uint, req *dtos.ScheduleRequest) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.db.WithContext(ctx).First(&schedule, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, scheduleNotFound()
	}
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.PickupID, req.DriverID); err != nil {
		return nil, err
	}
	if req.PickupID != schedule.PickupID {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Schedule{}).Where("pickup_id = ?", req.PickupID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, &utils.AppError{
				StatusCode: http.StatusConflict,
				Code:       utils.ErrCodeConflict,
				Message:    "Coleta já possui agendamento",
				Err:        utils.ErrConcurrencyConflict,
			}
		}
	}

	schedule.PickupID = req.PickupID
	schedule.DriverID = req.DriverID
	schedule.ArrivalTime = req.ArrivalTime

	if err := s.db.WithContext(ctx).Save(&schedule).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ScheduleService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Schedule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scheduleNotFound()
	}
	return nil
}

func (s *ScheduleService) checkReferences(ctx context.Context, pickupID, driverID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Pickup{}).Where("id = ?", pickupID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeReferential,
			Message:    "Coleta informada não existe",
			Err:        utils.ErrPickupNotFound,
		}
	}
	if err := s.db.WithContext(ctx).Model(&models.Driver{}).Where("id = ?", driverID).Count(&count).Error; err != nil {
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

func scheduleNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Agendamento não encontrado",
		Err:        gorm.ErrRecordNotFound,
	}
}
