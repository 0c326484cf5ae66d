package http

import (
	"context"
	"net/http"

	"vinylapi/internal/entity"
	"vinylapi/internal/httpx"
)

// ScanSearcher is the slice of the vinyl usecase this handler needs.
type ScanSearcher interface {
	ScanSearch(ctx context.Context, query, barcode string) ([]entity.CatalogAlbum, error)
}

type ScanHandler struct {
	vinyls ScanSearcher
}

func NewScanHandler(vinyls ScanSearcher) *ScanHandler {
	return &ScanHandler{vinyls: vinyls}
}

type scanParams struct {
	Query   string `validate:"omitempty,max=200"`
	Barcode string `validate:"omitempty,barcode"`
}

// Search handles GET /scan?query=&barcode=. Both parameters absent is the
// idle state and renders an empty result list.
func (h *ScanHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := scanParams{
		Query:   r.URL.Query().Get("query"),
		Barcode: r.URL.Query().Get("barcode"),
	}

	if details := ValidateStruct(params); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	results, err := h.vinyls.ScanSearch(r.Context(), params.Query, params.Barcode)
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}

	httpx.JSONSuccess(r, w, results, map[string]interface{}{
		"count": len(results),
	})
}
