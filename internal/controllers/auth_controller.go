package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/services"
	"github.com/ecogestao/erp-backend/internal/utils"
)

type AuthController struct {
	users    *services.UserService
	validate *validator.Validate
}

func NewAuthController(users *services.UserService, validate *validator.Validate) *AuthController {
	return &AuthController{users: users, validate: validate}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	result, err := c.users.Register(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if !result.Success {
		utils.RespondWithJSON(w, http.StatusBadRequest, result)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, result)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	result, err := c.users.Login(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if !result.Success {
		utils.RespondWithJSON(w, http.StatusUnauthorized, result)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// ConfirmEmail redeems the token from the confirmation link. Served on
// both GET (link click) and POST.
func (c *AuthController) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	token := r.URL.Query().Get("token")
	if userID == "" || token == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "userId and token query parameters are required", nil)
		return
	}

	result, err := c.users.ConfirmEmail(r.Context(), userID, token)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if !result.Success {
		utils.RespondWithJSON(w, http.StatusBadRequest, result)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	result, err := c.users.ForgotPassword(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := c.validate.Struct(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err))
		return
	}

	result, err := c.users.ResetPassword(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if !result.Success {
		utils.RespondWithJSON(w, http.StatusBadRequest, result)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
