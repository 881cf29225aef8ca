package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type DriverController struct {
	drivers  *services.DriverService
	validate *validator.Validate
}

func NewDriverController(drivers *services.DriverService, validate *validator.Validate) *DriverController {
	return &DriverController{drivers: drivers, validate: validate}
}

func (c *DriverController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.DriverRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	driver, err := c.drivers.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewDriverResponseFromModel(driver))
}

func (c *DriverController) GetAll(w http.ResponseWriter, r *http.Request) {
	skip, take := parsePaging(r)
	drivers, err := c.drivers.List(r.Context(), skip, take)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.DriverResponse, 0, len(drivers))
	for i := range drivers {
		resp = append(resp, *dtos.NewDriverResponseFromModel(&drivers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *DriverController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	driver, err := c.drivers.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewDriverResponseFromModel(driver))
}

func (c *DriverController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	var req dtos.DriverRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	if _, err := c.drivers.Update(r.Context(), id, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *DriverController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	if err := c.drivers.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
