package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/srs"
	"github.com/phrazzld/vocab-drill/internal/schema"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/spreadsheet"
	"github.com/phrazzld/vocab-drill/internal/store"
	"github.com/phrazzld/vocab-drill/internal/training"
)

// ErrBadRequest marks request bodies or parameters that could not be read.
var ErrBadRequest = errors.New("bad request")

// MapErrorToStatusCode maps internal errors to HTTP status codes. Unknown
// errors are internal server errors.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrListNotFound),
		errors.Is(err, domain.ErrPairNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, training.ErrInvalidTransition):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, training.ErrInvalidMode),
		errors.Is(err, service.ErrInvalidSort),
		errors.Is(err, schema.ErrMalformedDocument),
		errors.Is(err, srs.ErrInvalidDays),
		errors.Is(err, spreadsheet.ErrUnsupportedFormat),
		errors.Is(err, ErrBadRequest),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	case errors.Is(err, training.ErrNoCard):
		return http.StatusNoContent

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that never
// includes internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, domain.ErrListNotFound):
		return "List not found"
	case errors.Is(err, domain.ErrPairNotFound):
		return "Pair not found"
	case errors.Is(err, domain.ErrEmptyText):
		return "Front and back must not be empty"
	case errors.Is(err, domain.ErrEmptyListName):
		return "List name must not be empty"
	case errors.Is(err, domain.ErrInvalidDirection):
		return "Direction must be forward or reverse"
	case errors.Is(err, training.ErrInvalidMode):
		return "Mode must be all, due or dueAndRecentWrong"
	case errors.Is(err, training.ErrInvalidTransition):
		return "Action not allowed in the current session state"
	case errors.Is(err, training.ErrNoCard):
		return "No card available"
	case errors.Is(err, service.ErrInvalidSort):
		return "Sort must be front, back or created"
	case errors.Is(err, schema.ErrMalformedDocument):
		return "Document must be a JSON object"
	case errors.Is(err, srs.ErrInvalidDays):
		return "Days must be at least 1"
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
		return "File must be .xlsx or .csv"
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, ErrBadRequest):
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}
	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", lowerFirst(fe.Field()), getValidationTagMessage(fe.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// HandleAPIError writes the status and safe message for err. A non-empty
// message overrides the safe message for server errors only.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	safe := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && message != "" {
		safe = message
	}
	shared.RespondWithErrorAndLog(w, r, status, safe, err)
}
