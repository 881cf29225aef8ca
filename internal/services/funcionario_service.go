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

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) Create(ctx context.Context, req *dtos.EmployeeRequest) (*models.Employee, error) {
	employee := models.Employee{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) List(ctx context.Context, skip, take int) ([]models.Employee, error) {
	skip, take = normalizePage(skip, take)
	var employees []models.Employee
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(take).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employeeNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, req *dtos.EmployeeRequest) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employeeNotFound()
	}
	if err != nil {
		return nil, err
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.Phone = req.Phone

	if err := s.db.WithContext(ctx).Save(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Employee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return employeeNotFound()
	}
	return nil
}

func employeeNotFound() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    "Funcionário não encontrado",
		Err:        gorm.ErrRecordNotFound,
	}
}
