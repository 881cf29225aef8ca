package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/utils"
)

func TestClientCreateAndGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)
	ctx := context.Background()

	created := mustCreateClient(t, db, "acme")

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.CNPJ, got.CNPJ)
	assert.Equal(t, created.PostalCode, got.PostalCode)
}

func TestClientUpdateNotFoundPerformsNoWrite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)
	ctx := context.Background()

	mustCreateClient(t, db, "acme")

	_, err := svc.Update(ctx, 9999, &dtos.ClientRequest{
		Name:       "ghost",
		Contact:    "ghost@example.com",
		CNPJ:       "00.000.000/0001-00",
		Address:    "Nowhere",
		PostalCode: "00000-000",
	})
	require.ErrorIs(t, err, utils.ErrClientNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Client{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestClientDeleteNotFoundLeavesStoreUnchanged(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	mustCreateClient(t, db, "acme")

	err := svc.Delete(context.Background(), 9999)
	require.ErrorIs(t, err, utils.ErrClientNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Client{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestClientDeleteCascadesPickupsAndAccount(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserService(db, testConfig(), &fakeEmailSender{})
	res, err := users.Register(ctx, &dtos.RegisterRequest{
		Email:           "dono@acme.com",
		Password:        "s3nha-forte",
		ConfirmPassword: "s3nha-forte",
		Name:            "acme",
		Contact:         "contato@acme.com",
		CNPJ:            "12.345.678/0001-90",
		Address:         "Rua das Flores, 100",
		PostalCode:      "01001-000",
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	svc := NewClientService(db)
	var client models.Client
	require.NoError(t, db.First(&client).Error)

	item := mustCreateWasteItem(t, db, "solvente")
	pickup := mustCreatePickup(t, db, client.ID, item.ID)
	driver := mustCreateDriver(t, db, "Carlos")

	schedules := NewScheduleService(db)
	_, err = schedules.Create(ctx, &dtos.ScheduleRequest{
		PickupID:    pickup.ID,
		DriverID:    driver.ID,
		ArrivalTime: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, client.ID))

	var count int64
	db.Model(&models.Client{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Pickup{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.PickupWasteItem{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Schedule{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)

	// Catalog data survives the cascade.
	db.Model(&models.WasteItem{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Driver{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestClientDeleteRollsBackWhenAccountDeleteFails(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserService(db, testConfig(), &fakeEmailSender{})
	res, err := users.Register(ctx, registerReq())
	require.NoError(t, err)
	require.True(t, res.Success)

	svc := NewClientService(db)
	var client models.Client
	require.NoError(t, db.First(&client).Error)

	item := mustCreateWasteItem(t, db, "solvente")
	mustCreatePickup(t, db, client.ID, item.ID)

	// Make the identity-user delete inside the transaction fail.
	require.NoError(t, db.Migrator().DropTable(&models.User{}))

	require.Error(t, svc.Delete(ctx, client.ID))

	// Nothing the cascade touched may be gone.
	var count int64
	db.Model(&models.Client{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Pickup{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.PickupWasteItem{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestClientListPaging(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)
	ctx := context.Background()

	for _, name := range []string{"alfa", "beta", "gama"} {
		mustCreateClient(t, db, name)
	}

	page, err := svc.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "beta", page[0].Name)

	// Negative values fall back to defaults and return everything.
	all, err := svc.List(ctx, -5, -1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestClientGetByUserID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)
	ctx := context.Background()

	users := NewUserService(db, testConfig(), &fakeEmailSender{})
	res, err := users.Register(ctx, &dtos.RegisterRequest{
		Email:           "dono@acme.com",
		Password:        "s3nha-forte",
		ConfirmPassword: "s3nha-forte",
		Name:            "acme",
		Contact:         "contato@acme.com",
		CNPJ:            "12.345.678/0001-90",
		Address:         "Rua das Flores, 100",
		PostalCode:      "01001-000",
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	var user models.User
	require.NoError(t, db.First(&user).Error)

	client, err := svc.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", client.Name)

	_, err = svc.GetByUserID(ctx, "no-such-user")
	assert.ErrorIs(t, err, utils.ErrClientNotFound)
}
