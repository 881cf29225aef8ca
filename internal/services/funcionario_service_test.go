package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
)

func TestEmployeeCrudRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.EmployeeRequest{
		Name:  "Maria",
		Email: "maria@ecogestao.app",
		Phone: "+55 11 98888-0000",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.Name)

	_, err = svc.Update(ctx, created.ID, &dtos.EmployeeRequest{
		Name:  "Maria Souza",
		Email: "maria@ecogestao.app",
		Phone: "+55 11 98888-0000",
	})
	require.NoError(t, err)

	got, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", got.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.Error(t, err)
}

func TestEmployeeNotFoundIsANoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	_, err := svc.Update(ctx, 31337, &dtos.EmployeeRequest{
		Name:  "Ninguém",
		Email: "x@y.z",
		Phone: "0",
	})
	assert.Error(t, err)
	assert.Error(t, svc.Delete(ctx, 31337))

	var count int64
	db.Model(&models.Employee{}).Count(&count)
	assert.Zero(t, count)
}

func TestDriverDeleteReleasesVehicleAndSchedules(t *testing.T) {
	db := setupTestDB(t)
	drivers := NewDriverService(db)
	vehicles := NewVehicleService(db)
	ctx := context.Background()

	driver := mustCreateDriver(t, db, "Carlos")
	v, err := vehicles.Create(ctx, &dtos.VehicleRequest{
		Plate:    "ABC-1234",
		Model:    "Atego",
		Brand:    "Mercedes",
		DriverID: &driver.ID,
	})
	require.NoError(t, err)

	client := mustCreateClient(t, db, "acme")
	pickup := mustCreatePickup(t, db, client.ID)
	schedules := NewScheduleService(db)
	_, err = schedules.Create(ctx, &dtos.ScheduleRequest{
		PickupID:    pickup.ID,
		DriverID:    driver.ID,
		ArrivalTime: pickup.CreatedAt,
	})
	require.NoError(t, err)

	require.NoError(t, drivers.Delete(ctx, driver.ID))

	got, err := vehicles.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DriverID)

	var count int64
	db.Model(&models.Schedule{}).Count(&count)
	assert.Zero(t, count)
}

func TestProductCrudRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.ProductRequest{
		Name:     "Tambor 200L",
		Category: "Armazenamento",
		Type:     "Reutilizável",
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Error(t, svc.Delete(ctx, created.ID))
}
