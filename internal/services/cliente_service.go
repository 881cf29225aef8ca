package services

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) Create(ctx context.Context, req *dtos.ClientRequest) (*models.Client, error) {
	client := models.Client{
		Name:       req.Name,
		Contact:    req.Contact,
		CNPJ:       req.CNPJ,
		Address:    req.Address,
		PostalCode: req.PostalCode,
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) List(ctx context.Context, skip, take int) ([]models.Client, error) {
	skip, take = normalizePage(skip, take)
	var clients []models.Client
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(take).
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientService) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clientNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByUserID resolves the client record linked to a login account. Used
// by the self-service endpoints, where the id comes from the token.
func (s *ClientService) GetByUserID(ctx context.Context, userID string) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clientNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(ctx context.Context, id uint, req *dtos.ClientRequest) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, clientNotFound()
	}
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Contact = req.Contact
	client.CNPJ = req.CNPJ
	client.Address = req.Address
	client.PostalCode = req.PostalCode

	if err := s.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// Delete removes the client together with everything it owns: pickups,
// their waste-item links and schedules, and the login account, all in one
// transaction.
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	var client models.Client
	err := s.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clientNotFound()
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pickupIDs []uint
		if err := tx.Model(&models.Pickup{}).Where("client_id = ?", id).Pluck("id", &pickupIDs).Error; err != nil {
			return err
		}
		if len(pickupIDs) > 0 {
			if err := tx.Where("pickup_id IN ?", pickupIDs).Delete(&models.PickupWasteItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("pickup_id IN ?", pickupIDs).Delete(&models.Schedule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("client_id = ?", id).Delete(&models.Pickup{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&client).Error; err != nil {
			return err
		}
		if client.UserID != nil {
			user := models.User{ID: *client.UserID}
			if err := tx.Select(clause.Associations).Delete(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func clientNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Cliente não encontrado",
		Err:        utils.ErrClientNotFound,
	}
}
