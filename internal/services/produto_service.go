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

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) Create(ctx context.Context, req *dtos.ProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:     req.Name,
		Category: req.Category,
		Type:     req.Type,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) List(ctx context.Context, skip, take int) ([]models.Product, error) {
	skip, take = normalizePage(skip, take)
	var products []models.Product
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(take).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, productNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req *dtos.ProductRequest) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, productNotFound()
	}
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Type = req.Type

	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return productNotFound()
	}
	return nil
}

func productNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Produto não encontrado",
		Err:        gorm.ErrRecordNotFound,
	}
}
