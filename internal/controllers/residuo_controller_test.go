package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/routes"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

func newWasteItemRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	ctrl := NewWasteItemController(services.NewWasteItemService(db), NewValidator())

	router := mux.NewRouter()
	router.HandleFunc(routes.WasteBase, ctrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.WasteBase, ctrl.GetAll).Methods(http.MethodGet)
	router.HandleFunc(routes.WasteByID, ctrl.GetByID).Methods(http.MethodGet)
	router.HandleFunc(routes.WasteByID, ctrl.Update).Methods(http.MethodPut)
	router.HandleFunc(routes.WasteByID, ctrl.Delete).Methods(http.MethodDelete)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWasteItemEndpointLifecycle(t *testing.T) {
	router := newWasteItemRouter(t)

	// Create
	rec := doJSON(t, router, http.MethodPost, "/api/Residuo", dtos.WasteItemRequest{
		Name:     "solvente",
		Category: "Químico",
		Type:     "Perigoso",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dtos.WasteItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	// Get by id
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/Residuo/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// List
	rec = doJSON(t, router, http.MethodGet, "/api/Residuo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dtos.WasteItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Update
	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/Residuo/%d", created.ID), dtos.WasteItemRequest{
		Name:     "solvente industrial",
		Category: "Químico",
		Type:     "Perigoso",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Delete
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/Residuo/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Gone
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/Residuo/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, utils.ErrCodeNotFound, errResp.Code)
}

func TestWasteItemValidationFailure(t *testing.T) {
	router := newWasteItemRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/Residuo", dtos.WasteItemRequest{Name: "solvente"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, utils.ErrCodeValidation, errResp.Code)
	assert.NotNil(t, errResp.Details)
}

func TestWasteItemUpdateNotFoundAnswers404(t *testing.T) {
	router := newWasteItemRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/Residuo/777", dtos.WasteItemRequest{
		Name:     "solvente",
		Category: "Químico",
		Type:     "Perigoso",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWasteItemMalformedBodyAnswers400(t *testing.T) {
	router := newWasteItemRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/Residuo", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
