package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type ScheduleController struct {
	schedules *services.ScheduleService
	validate  *validator.Validate
}

func NewScheduleController(schedules *services.ScheduleService, validate *validator.Validate) *ScheduleController {
	return &ScheduleController{schedules: schedules, validate: validate}
}

func (c *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	schedule, err := c.schedules.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewScheduleResponseFromModel(schedule))
}

func (c *ScheduleController) GetAll(w http.ResponseWriter, r *http.Request) {
	skip, take := parsePaging(r)
	schedules, err := c.schedules.List(r.Context(), skip, take)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, *dtos.NewScheduleResponseFromModel(&schedules[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *ScheduleController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	schedule, err := c.schedules.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewScheduleResponseFromModel(schedule))
}

func (c *ScheduleController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	var req dtos.ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	if _, err := c.schedules.Update(r.Context(), id, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	if err := c.schedules.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
