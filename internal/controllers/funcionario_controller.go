package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type EmployeeController struct {
	employees *services.EmployeeService
	validate  *validator.Validate
}

func NewEmployeeController(employees *services.EmployeeService, validate *validator.Validate) *EmployeeController {
	return &EmployeeController{employees: employees, validate: validate}
}

func (c *EmployeeController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.EmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	employee, err := c.employees.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewEmployeeResponseFromModel(employee))
}

func (c *EmployeeController) GetAll(w http.ResponseWriter, r *http.Request) {
	skip, take := parsePaging(r)
	employees, err := c.employees.List(r.Context(), skip, take)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, *dtos.NewEmployeeResponseFromModel(&employees[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *EmployeeController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	employee, err := c.employees.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewEmployeeResponseFromModel(employee))
}

func (c *EmployeeController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	var req dtos.EmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	if _, err := c.employees.Update(r.Context(), id, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *EmployeeController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	if err := c.employees.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
