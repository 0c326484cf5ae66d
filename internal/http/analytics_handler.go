package http

import (
	"context"
	"net/http"
	"strings"

	"vinylapi/internal/httpx"
	"vinylapi/internal/usecase"
)

type AnalyticsLoader interface {
	AnalyticsPage(ctx context.Context, username string) (usecase.AnalyticsView, error)
}

type AnalyticsHandler struct {
	vinyls AnalyticsLoader
}

func NewAnalyticsHandler(vinyls AnalyticsLoader) *AnalyticsHandler {
	return &AnalyticsHandler{vinyls: vinyls}
}

// Analytics handles GET /analytics/{username}.
func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	const prefix = "/analytics/"
	username := strings.TrimPrefix(r.URL.Path, prefix)
	if username == "" || strings.Contains(username, "/") {
		http.NotFound(w, r)
		return
	}

	view, err := h.vinyls.AnalyticsPage(r.Context(), username)
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, view, nil)
}
