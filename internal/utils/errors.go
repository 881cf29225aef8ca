package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrEmailExists       = errors.New("email_exists")
	ErrClientNotFound    = errors.New("client_not_found")
	ErrPickupNotFound    = errors.New("pickup_not_found")
	ErrDriverNotFound    = errors.New("driver_not_found")
	ErrVehicleNotFound   = errors.New("vehicle_not_found")
	ErrWasteItemNotFound = errors.New("waste_item_not_found")
	ErrDuplicatePlate    = errors.New("duplicate_plate")
	ErrDriverAssigned    = errors.New("driver_already_assigned")
	ErrInvalidDimensions = errors.New("invalid_dimensions")

	// For concurrency conflicts surfaced by the database on save.
	ErrConcurrencyConflict = errors.New("concurrency_conflict")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
