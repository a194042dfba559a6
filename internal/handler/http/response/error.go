package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Selection values not present in the loaded data
	case errors.Is(err, dashboard.ErrUnknownRoute),
		errors.Is(err, dashboard.ErrUnknownArea),
		errors.Is(err, dashboard.ErrUnknownMonth):
		BadRequest(w, err.Error(), nil)

	// Dataset errors
	case errors.Is(err, dataset.ErrNotLoaded):
		ServiceUnavailable(w, "Dataset has not been loaded yet")
	case errors.Is(err, dataset.ErrFileAccess),
		errors.Is(err, dataset.ErrSchema),
		errors.Is(err, dataset.ErrSheetNotFound),
		errors.Is(err, dataset.ErrUnsupportedFormat),
		errors.Is(err, dataset.ErrEmptySource):
		slog.Error("Dataset error", "error", err)
		InternalServerError(w, err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
