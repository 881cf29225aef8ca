package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecogestao/erp-backend/internal/config"
	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	for _, name := range []string{models.RoleAdmin, models.RoleFuncionario, models.RoleCliente} {
		require.NoError(t, db.Create(&models.Role{Name: name}).Error)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:       "erp-backend-test",
		AppUrl:        "http://localhost:8080",
		JWTSigningKey: []byte("0123456789abcdef0123456789abcdef"),
		JWTIssuer:     "erp-backend-test",
		JWTAudience:   "http://localhost:8080",
		TokenValidity: time.Hour,
	}
}

// fakeEmailSender records outbound mail and can be told to fail, which
// lets tests assert transactional rollback.
type fakeEmailSender struct {
	confirmations []string
	resets        []string
	failNext      bool
}

func (f *fakeEmailSender) SendAccountConfirmation(_ context.Context, toEmail, _ string) error {
	if f.failNext {
		return errAlwaysFails
	}
	f.confirmations = append(f.confirmations, toEmail)
	return nil
}

func (f *fakeEmailSender) SendPasswordReset(_ context.Context, toEmail, _ string) error {
	if f.failNext {
		return errAlwaysFails
	}
	f.resets = append(f.resets, toEmail)
	return nil
}

var errAlwaysFails = errors.New("smtp unavailable")

func mustCreateClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()
	svc := NewClientService(db)
	client, err := svc.Create(context.Background(), &dtos.ClientRequest{
		Name:       name,
		Contact:    "contato@" + name + ".com",
		CNPJ:       "12.345.678/0001-90",
		Address:    "Rua das Flores, 100",
		PostalCode: "01001-000",
	})
	require.NoError(t, err)
	return client
}

func mustCreateWasteItem(t *testing.T, db *gorm.DB, name string) *models.WasteItem {
	t.Helper()
	svc := NewWasteItemService(db)
	item, err := svc.Create(context.Background(), &dtos.WasteItemRequest{
		Name:     name,
		Category: "Químico",
		Type:     "Perigoso",
	})
	require.NoError(t, err)
	return item
}

func mustCreateDriver(t *testing.T, db *gorm.DB, name string) *models.Driver {
	t.Helper()
	svc := NewDriverService(db)
	driver, err := svc.Create(context.Background(), &dtos.DriverRequest{
		Name:          name,
		LicenseNumber: "CNH-0001",
		Phone:         "+55 11 99999-0000",
	})
	require.NoError(t, err)
	return driver
}

func mustCreatePickup(t *testing.T, db *gorm.DB, clientID uint, wasteItemIDs ...uint) *models.Pickup {
	t.Helper()
	svc := NewPickupService(db)
	pickup, err := svc.Create(context.Background(), &dtos.PickupRequest{
		VolumeCount:  3,
		TotalWeight:  120.5,
		Dimensions:   "120x80x60",
		Address:      "Av. Industrial, 500",
		ClientID:     clientID,
		WasteItemIDs: wasteItemIDs,
	})
	require.NoError(t, err)
	return pickup
}
