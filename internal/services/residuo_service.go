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

type WasteItemService struct {
	db *gorm.DB
}

func NewWasteItemService(db *gorm.DB) *WasteItemService {
	return &WasteItemService{db: db}
}

func (s *WasteItemService) Create(ctx context.Context, req *dtos.WasteItemRequest) (*models.WasteItem, error) {
	item := models.WasteItem{
		Name:     req.Name,
		Category: req.Category,
		Type:     req.Type,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WasteItemService) List(ctx context.Context, skip, take int) ([]models.WasteItem, error) {
	skip, take = normalizePage(skip, take)
	var items []models.WasteItem
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(take).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *WasteItemService) GetByID(ctx context.Context, id uint) (*models.WasteItem, error) {
	var item models.WasteItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wasteItemNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WasteItemService) Update(ctx context.Context, id uint, req *dtos.WasteItemRequest) (*models.WasteItem, error) {
	var item models.WasteItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wasteItemNotFound()
	}
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Category = req.Category
	item.Type = req.Type

	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WasteItemService) Delete(ctx context.Context, id uint) error {
	var item models.WasteItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wasteItemNotFound()
	}
	if err != nil {
		return err
	}

	// Pickups referencing this item keep working; only the links go away.
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("waste_item_id = ?", id).Delete(&models.PickupWasteItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

func wasteItemNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Resíduo não encontrado",
		Err:        utils.ErrWasteItemNotFound,
	}
}
