package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecogestao/erp-backend/internal/config"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/utils"
)

// SeedRoles makes sure every role the system grants exists. Safe to run
// on every startup.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	for _, name := range []string{models.RoleAdmin, models.RoleFuncionario, models.RoleCliente} {
		role := models.Role{Name: name}
		if err := db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultAdmin provisions the bootstrap staff account if it does not
// exist yet. The account is created confirmed, with both Admin and
// Funcionario roles and a matching Employee record.
func SeedDefaultAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", cfg.SeedAdminEmail).First(&existing).Error
	if err == nil {
		utils.Logger.Debug("Default admin already present, skipping seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roles []models.Role
		if err := tx.Where("name IN ?", []string{models.RoleAdmin, models.RoleFuncionario}).Find(&roles).Error; err != nil {
			return err
		}

		user := models.User{
			ID:             uuid.NewString(),
			Email:          cfg.SeedAdminEmail,
			PasswordHash:   hash,
			EmailConfirmed: true,
			Roles:          roles,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		employee := models.Employee{
			Name:   "Administrador",
			Email:  cfg.SeedAdminEmail,
			Phone:  "",
			UserID: &user.ID,
		}
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}

		utils.Logger.WithField("email", cfg.SeedAdminEmail).Info("Seeded default admin account")
		return nil
	})
}
