package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/carte/api/internal/middleware"
	"github.com/forgo/carte/api/internal/model"
	"github.com/forgo/carte/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found → 404 =====
	case errors.Is(err, service.ErrItemNotFound):
		return model.NewNotFoundError("menu item")

	// ===== Conflict → 409 =====
	case errors.Is(err, service.ErrDuplicateName):
		return model.NewConflictError(err.Error())

	// ===== Validation → 400 =====
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNameTooShort),
		errors.Is(err, service.ErrNameTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})

	case errors.Is(err, service.ErrQueryRequired),
		errors.Is(err, service.ErrQueryTooShort):
		return model.NewValidationError([]model.FieldError{{Field: "q", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidLimit),
		errors.Is(err, service.ErrLimitTooLarge):
		return model.NewValidationError([]model.FieldError{{Field: "limit", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidOffset):
		return model.NewValidationError([]model.FieldError{{Field: "offset", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidID):
		return model.NewBadRequestError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// RespondError maps err and writes it. Store and other unexpected failures
// are logged with full detail server-side; the client only ever sees the
// generic 500 envelope.
func RespondError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	pd := MapServiceError(err)
	if pd.Status == http.StatusInternalServerError {
		slog.Error("operation failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		pd.Detail = "An unexpected error occurred"
	}
	WriteError(w, pd)
}
