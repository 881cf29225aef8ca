package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var dimensionsPattern = regexp.MustCompile(`^\d+x\d+x\d+$`)

// NewValidator builds the request validator with the custom rules the
// payloads rely on.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("dimensions", func(fl validator.FieldLevel) bool {
		return dimensionsPattern.MatchString(fl.Field().String())
	})
	return v
}

// validationDetails flattens validator errors into a per-field message list.
func validationDetails(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
	}
	return details
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// parseIDParam reads the {id} route variable as an unsigned integer.
func parseIDParam(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// parsePaging reads skip/take query params; absent or malformed values
// fall back to the service defaults.
func parsePaging(r *http.Request) (int, int) {
	skip, err := strconv.Atoi(r.URL.Query().Get("skip"))
	if err != nil {
		skip = 0
	}
	take, err := strconv.Atoi(r.URL.Query().Get("take"))
	if err != nil {
		take = 0
	}
	return skip, take
}
