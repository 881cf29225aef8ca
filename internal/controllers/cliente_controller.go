package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/middleware"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

// ClientController serves both the staff-facing client CRUD and the
// client self-service surface under /me, where the client record is
// resolved from the caller's token.
type ClientController struct {
	clients  *services.ClientService
	pickups  *services.PickupService
	validate *validator.Validate
}

func NewClientController(clients *services.ClientService, pickups *services.PickupService, validate *validator.Validate) *ClientController {
	return &ClientController{clients: clients, pickups: pickups, validate: validate}
}

func (c *ClientController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.ClientRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	client, err := c.clients.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewClientResponseFromModel(client))
}

func (c *ClientController) GetAll(w http.ResponseWriter, r *http.Request) {
	skip, take := parsePaging(r)
	clients, err := c.clients.List(r.Context(), skip, take)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, *dtos.NewClientResponseFromModel(&clients[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *ClientController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	client, err := c.clients.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewClientResponseFromModel(client))
}

func (c *ClientController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	var req dtos.ClientRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	if _, err := c.clients.Update(r.Context(), id, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *ClientController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	if err := c.clients.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the caller's own client record.
func (c *ClientController) Me(w http.ResponseWriter, r *http.Request) {
	client, ok := c.callerClient(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewClientResponseFromModel(client))
}

// UpdateMe lets the caller edit their own client record.
func (c *ClientController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	client, ok := c.callerClient(w, r)
	if !ok {
		return
	}

	var req dtos.ClientRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	if _, err := c.clients.Update(r.Context(), client.ID, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequestPickup creates a pickup owned by the caller's client record.
func (c *ClientController) RequestPickup(w http.ResponseWriter, r *http.Request) {
	client, ok := c.callerClient(w, r)
	if !ok {
		return
	}

	var req dtos.SelfPickupRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	pickup, err := c.pickups.CreateForClient(r.Context(), client.ID, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewPickupResponseFromModel(pickup))
}

// MyPickups lists the caller's own pickups.
func (c *ClientController) MyPickups(w http.ResponseWriter, r *http.Request) {
	client, ok := c.callerClient(w, r)
	if !ok {
		return
	}

	skip, take := parsePaging(r)
	pickups, err := c.pickups.ListByClient(r.Context(), client.ID, skip, take)
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

// MyPickupByID fetches one of the caller's pickups; pickups owned by other
// clients answer 404.
func (c *ClientController) MyPickupByID(w http.ResponseWriter, r *http.Request) {
	client, ok := c.callerClient(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	pickup, err := c.pickups.GetByIDForClient(r.Context(), client.ID, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPickupResponseFromModel(pickup))
}

// UpdateMyPickup edits one of the caller's own pickups.
func (c *ClientController) UpdateMyPickup(w http.ResponseWriter, r *http.Request) {
	client, ok := c.callerClient(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	var req dtos.SelfPickupRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	if _, err := c.pickups.UpdateForClient(r.Context(), client.ID, id, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteMyPickup removes one of the caller's own pickups.
func (c *ClientController) DeleteMyPickup(w http.ResponseWriter, r *http.Request) {
	client, ok := c.callerClient(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id parameter", nil, err)
		return
	}

	if err := c.pickups.DeleteForClient(r.Context(), client.ID, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *ClientController) callerClient(w http.ResponseWriter, r *http.Request) (*models.Client, bool) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing authenticated user", nil)
		return nil, false
	}
	client, err := c.clients.GetByUserID(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return nil, false
	}
	return client, true
}
