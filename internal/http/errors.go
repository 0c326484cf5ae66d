package http

import (
	"errors"
	"net/http"

	"vinylapi/internal/httpx"
	"vinylapi/internal/usecase"
)

// writeUsecaseError maps the service error taxonomy onto the JSON error
// envelope. Anything unrecognized is a 500.
func writeUsecaseError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	case errors.Is(err, usecase.ErrAuthRequired):
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
	case errors.Is(err, usecase.ErrAlreadyExists):
		httpx.JSONError(r, w, http.StatusConflict, "ALREADY_EXISTS", "Already exists", nil)
	case errors.Is(err, usecase.ErrMissingConfig):
		httpx.JSONError(r, w, http.StatusInternalServerError, "CONFIG_ERROR", err.Error(), nil)
	case errors.Is(err, usecase.ErrUpstream):
		httpx.JSONError(r, w, http.StatusBadGateway, "UPSTREAM_ERROR", "Upstream service unavailable", nil)
	default:
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
