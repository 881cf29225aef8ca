package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecogestao/erp-backend/internal/config"
	"github.com/ecogestao/erp-backend/internal/models"
)

func seedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestSeedRolesIsIdempotent(t *testing.T) {
	db := seedTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedRoles(ctx, db))
	require.NoError(t, SeedRoles(ctx, db))

	var count int64
	require.NoError(t, db.Model(&models.Role{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestSeedDefaultAdmin(t *testing.T) {
	db := seedTestDB(t)
	ctx := context.Background()
	cfg := &config.Config{
		SeedAdminEmail:    "admin@example.com",
		SeedAdminPassword: "admin-s3nha",
	}

	require.NoError(t, SeedRoles(ctx, db))
	require.NoError(t, SeedDefaultAdmin(ctx, db, cfg))

	var admin models.User
	require.NoError(t, db.Preload("Roles").Where("email = ?", cfg.SeedAdminEmail).First(&admin).Error)
	assert.True(t, admin.EmailConfirmed)
	assert.True(t, admin.HasRole(models.RoleAdmin))
	assert.True(t, admin.HasRole(models.RoleFuncionario))
	assert.False(t, admin.HasRole(models.RoleCliente))

	var employee models.Employee
	require.NoError(t, db.Where("user_id = ?", admin.ID).First(&employee).Error)
	assert.Equal(t, cfg.SeedAdminEmail, employee.Email)

	// Second run must not duplicate anything.
	require.NoError(t, SeedDefaultAdmin(ctx, db, cfg))
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Employee{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
