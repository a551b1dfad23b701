package controllers

import (
	"errors"
	"net/http"

	"beacon-guard/backend/app/services"
	"beacon-guard/backend/global"
)

// writeServiceError collapses the whole failure taxonomy into the empty
// 404 the dashboard contract promises; only unexpected storage errors
// escape as 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrAlreadyQueued),
		errors.Is(err, services.ErrAlreadyEnabled),
		errors.Is(err, services.ErrNotEnabled),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUnknownModule),
		errors.Is(err, services.ErrDeliveryFailed):
		w.WriteHeader(http.StatusNotFound)
	default:
		global.Logger.Error().Err(err).Msg("unhandled service error")
		w.WriteHeader(http.StatusInternalServerError)
	}
}
