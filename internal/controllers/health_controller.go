package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	resp := dtos.HealthResponse{Status: "ok", Database: "ok"}

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
