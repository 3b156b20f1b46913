package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// ErrIDMismatch is returned when the id in the URL differs from the id in the body.
var ErrIDMismatch = errors.New("ID in URL does not match ID in request body.") //nolint:staticcheck // returned to clients verbatim

// MapErrorToStatusCode maps internal errors to HTTP status codes based on the
// error type. Unknown errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidJSON),
		errors.Is(err, ErrIDMismatch):
		return http.StatusBadRequest

	// A missing task is reported as a bad request, not a missing route
	case errors.Is(err, store.ErrNotFound):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to clients for err.
// Only errors whose text is meant for clients are passed through; everything
// else gets a generic message so internal details do not leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return shared.MsgUnexpectedError
	}

	var validationErr *domain.ValidationError
	var notFoundErr *store.TaskNotFoundError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message

	case errors.Is(err, domain.ErrInvalidJSON):
		return shared.MsgInvalidJSON

	case errors.Is(err, ErrIDMismatch):
		return ErrIDMismatch.Error()

	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()

	case errors.Is(err, store.ErrNotFound):
		return "Task does not exist."

	default:
		return shared.MsgUnexpectedError
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// underlying error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
