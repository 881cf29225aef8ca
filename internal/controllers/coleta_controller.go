package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type PickupController struct {
	pickups  *services.PickupService
	validate *validator.Validate
}

func NewPickupController(pickups *services.PickupService, validate *validator.Validate) *PickupController {
	return &PickupController{pickups: pickups, validate: validate}
}

func (c *PickupController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.PickupRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	pickup, err := c.pickups.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewPickupResponseFromModel(pickup))
}

func (c *PickupController) GetAll(w http.ResponseWriter, r *http.Request) {
	skip, take := parsePaging(r)
	pickups, err := c.pickups.List(r.Context(), skip, take)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.PickupResponse, 0, len(pickups))
	for i := range pickups {
		resp = append(resp, *dtos.NewPickupResponseFromModel(&pickups[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *PickupController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	pickup, err := c.pickups.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPickupResponseFromModel(pickup))
}

func (c *PickupController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	var req dtos.PickupRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	if _, err := c.pickups.Update(r.Context(), id, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *PickupController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	if err := c.pickups.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
