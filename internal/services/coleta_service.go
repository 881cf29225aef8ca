package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"gorm.io/gorm"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/utils"
)

// dimensionsPattern accepts the "LxWxH" shape, e.g. "120x80x60".
var dimensionsPattern = regexp.MustCompile(`^\d+x\d+x\d+$`)

type PickupService struct {
	db *gorm.DB
}

func NewPickupService(db *gorm.DB) *PickupService {
	return &PickupService{db: db}
}

func (s *PickupService) Create(ctx context.Context, req *dtos.PickupRequest) (*models.Pickup, error) {
	if err := s.checkReferences(ctx, req.ClientID, req.WasteItemIDs); err != nil {
		return nil, err
	}
	if !dimensionsPattern.MatchString(req.Dimensions) {
		return nil, invalidDimensions()
	}

	pickup := models.Pickup{
		VolumeCount: req.VolumeCount,
		TotalWeight: req.TotalWeight,
		Dimensions:  req.Dimensions,
		Address:     req.Address,
		ClientID:    req.ClientID,
	}
	seen := make(map[uint]bool, len(req.WasteItemIDs))
	for _, wid := range req.WasteItemIDs {
		if seen[wid] {
			continue
		}
		seen[wid] = true
		pickup.WasteItems = append(pickup.WasteItems, models.PickupWasteItem{WasteItemID: wid})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&pickup).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, pickup.ID)
}

// CreateForClient is the self-service variant: the owning client comes
// from the caller's token, not from the payload.
func (s *PickupService) CreateForClient(ctx context.Context, clientID uint, req *dtos.SelfPickupRequest) (*models.Pickup, error) {
	return s.Create(ctx, &dtos.PickupRequest{
		VolumeCount:  req.VolumeCount,
		TotalWeight:  req.TotalWeight,
		Dimensions:   req.Dimensions,
		Address:      req.Address,
		ClientID:     clientID,
		WasteItemIDs: req.WasteItemIDs,
	})
}

func (s *PickupService) List(ctx context.Context, skip, take int) ([]models.Pickup, error) {
	skip, take = normalizePage(skip, take)
	var pickups []models.Pickup
	err := s.preloaded(ctx).
		Order("pickups.id").
		Offset(skip).
		Limit(take).
		Find(&pickups).Error
	if err != nil {
		return nil, err
	}
	return pickups, nil
}

func (s *PickupService) ListByClient(ctx context.Context, clientID uint, skip, take int) ([]models.Pickup, error) {
	skip, take = normalizePage(skip, take)
	var pickups []models.Pickup
	err := s.preloaded(ctx).
		Where("client_id = ?", clientID).
		Order("pickups.id").
		Offset(skip).
		Limit(take).
		Find(&pickups).Error
	if err != nil {
		return nil, err
	}
	return pickups, nil
}

func (s *PickupService) GetByID(ctx context.Context, id uint) (*models.Pickup, error) {
	var pickup models.Pickup
	err := s.preloaded(ctx).First(&pickup, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pickupNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &pickup, nil
}

// GetByIDForClient behaves like GetByID but hides pickups owned by other
// clients behind the same not-found answer.
func (s *PickupService) GetByIDForClient(ctx context.Context, clientID, id uint) (*models.Pickup, error) {
	pickup, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pickup.ClientID != clientID {
		return nil, pickupNotFound()
	}
	return pickup, nil
}

// UpdateForClient applies the self-service payload to one of the caller's
// own pickups. Pickups owned by other clients answer the same not-found
// as a missing id, and ownership cannot be reassigned from this path.
func (s *PickupService) UpdateForClient(ctx context.Context, clientID, id uint, req *dtos.SelfPickupRequest) (*models.Pickup, error) {
	if _, err := s.GetByIDForClient(ctx, clientID, id); err != nil {
		return nil, err
	}
	return s.Update(ctx, id, &dtos.PickupRequest{
		VolumeCount:  req.VolumeCount,
		TotalWeight:  req.TotalWeight,
		Dimensions:   req.Dimensions,
		Address:      req.Address,
		ClientID:     clientID,
		WasteItemIDs: req.WasteItemIDs,
	})
}

// DeleteForClient removes one of the caller's own pickups, hiding other
// clients' pickups behind not-found.
func (s *PickupService) DeleteForClient(ctx context.Context, clientID, id uint) error {
	if _, err := s.GetByIDForClient(ctx, clientID, id); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

// Update overwrites the pickup's own fields and reconciles the waste-item
// join set against the requested ids: links no longer referenced are
// removed, new ones are added, shared ones are left untouched.
func (s *PickupService) Update(ctx context.Context, id uint, req *dtos.PickupRequest) (*models.Pickup, error) {
	var pickup models.Pickup
	err := s.db.WithContext(ctx).Preload("WasteItems").First(&pickup, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pickupNotFound()
	}
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.ClientID, req.WasteItemIDs); err != nil {
		return nil, err
	}
	if !dimensionsPattern.MatchString(req.Dimensions) {
		return nil, invalidDimensions()
	}

	requested := make(map[uint]bool, len(req.WasteItemIDs))
	for _, wid := range req.WasteItemIDs {
		requested[wid] = true
	}
	existing := make(map[uint]bool, len(pickup.WasteItems))
	for _, link := range pickup.WasteItems {
		existing[link.WasteItemID] = true
	}

	var toAdd, toRemove []uint
	for wid := range requested {
		if !existing[wid] {
			toAdd = append(toAdd, wid)
		}
	}
	for wid := range existing {
		if !requested[wid] {
			toRemove = append(toRemove, wid)
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"volume_count": req.VolumeCount,
			"total_weight": req.TotalWeight,
			"dimensions":   req.Dimensions,
			"address":      req.Address,
			"client_id":    req.ClientID,
		}
		if err := tx.Model(&models.Pickup{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if len(toRemove) > 0 {
			if err := tx.Where("pickup_id = ? AND waste_item_id IN ?", id, toRemove).
				Delete(&models.PickupWasteItem{}).Error; err != nil {
				return err
			}
		}
		for _, wid := range toAdd {
			link := models.PickupWasteItem{PickupID: id, WasteItemID: wid}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PickupService) Delete(ctx context.Context, id uint) error {
	var pickup models.Pickup
	err := s.db.WithContext(ctx).First(&pickup, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pickupNotFound()
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pickup_id = ?", id).Delete(&models.PickupWasteItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pickup_id = ?", id).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pickup).Error
	})
}

func (s *PickupService) preloaded(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Client").
		Preload("WasteItems.WasteItem").
		Preload("Schedule")
}

func (s *PickupService) checkReferences(ctx context.Context, clientID uint, wasteItemIDs []uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeReferential,
			Message:    "Cliente informado não existe",
			Err:        utils.ErrClientNotFound,
		}
	}

	if len(wasteItemIDs) == 0 {
		return nil
	}
	unique := make(map[uint]bool, len(wasteItemIDs))
	for _, wid := range wasteItemIDs {
		unique[wid] = true
	}
	ids := make([]uint, 0, len(unique))
	for wid := range unique {
		ids = append(ids, wid)
	}
	if err := s.db.WithContext(ctx).Model(&models.WasteItem{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeReferential,
			Message:    "Um ou mais resíduos informados não existem",
			Err:        utils.ErrWasteItemNotFound,
		}
	}
	return nil
}

func pickupNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Coleta não encontrada",
		Err:        utils.ErrPickupNotFound,
	}
}

func invalidDimensions() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeValidation,
		Message:    "Dimensões devem seguir o formato LxWxH, ex. 120x80x60",
		Err:        utils.ErrInvalidDimensions,
	}
}
