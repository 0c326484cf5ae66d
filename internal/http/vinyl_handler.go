package http

import (
	"context"
	"net/http"
	"strings"

	"vinylapi/internal/entity"
	"vinylapi/internal/httpx"
	"vinylapi/internal/usecase"
)

// VinylPages is the slice of the vinyl usecase serving the collection and
// release pages.
type VinylPages interface {
	CollectionPage(ctx context.Context) ([]entity.CatalogAlbum, error)
	ReleasePage(ctx context.Context, releaseID string) (usecase.ReleaseView, error)
}

type VinylHandler struct {
	vinyls VinylPages
}

func NewVinylHandler(vinyls VinylPages) *VinylHandler {
	return &VinylHandler{vinyls: vinyls}
}

// Collection handles GET /vinyls.
func (h *VinylHandler) Collection(w http.ResponseWriter, r *http.Request) {
	albums, err := h.vinyls.CollectionPage(r.Context())
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, albums, map[string]interface{}{
		"count": len(albums),
	})
}

// Release handles GET /vinyls/{id}.
func (h *VinylHandler) Release(w http.ResponseWriter, r *http.Request) {
	// crude path param extraction with net/http's ServeMux
	const prefix = "/vinyls/"
	releaseID := strings.TrimPrefix(r.URL.Path, prefix)
	if releaseID == "" || strings.Contains(releaseID, "/") {
		http.NotFound(w, r)
		return
	}

	view, err := h.vinyls.ReleasePage(r.Context(), releaseID)
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, view, nil)
}
