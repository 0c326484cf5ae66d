package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"vinylapi/internal/entity"
	"vinylapi/internal/httpx"
	"vinylapi/internal/usecase"
)

// WishlistPages is the slice of the wishlist usecase the handlers need.
type WishlistPages interface {
	List(ctx context.Context, userID string) ([]entity.WishlistItem, error)
	Search(ctx context.Context, userID, query string) (usecase.WishlistSearchView, error)
	AlbumPage(ctx context.Context, albumID string) (usecase.AlbumView, error)
	Add(ctx context.Context, userID string, input usecase.AddWishlistInput) (entity.WishlistItem, error)
	Remove(ctx context.Context, userID, itemID string) error
}

type WishlistHandler struct {
	wishlist WishlistPages
}

func NewWishlistHandler(wishlist WishlistPages) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishlist.List(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, items, map[string]interface{}{
		"count": len(items),
	})
}

type addWishlistRequest struct {
	ExternalID  string `json:"external_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Artist      string `json:"artist"`
	Year        int    `json:"year" validate:"gte=0,lte=9999"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	ExternalURL string `json:"external_url" validate:"omitempty,url"`
}

// Add handles POST /wishlist.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input addWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	item, err := h.wishlist.Add(r.Context(), httpx.UserIDFrom(r), usecase.AddWishlistInput{
		ExternalID:  input.ExternalID,
		Name:        input.Name,
		Artist:      input.Artist,
		Year:        input.Year,
		ImageURL:    input.ImageURL,
		ExternalURL: input.ExternalURL,
	})
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, item)
}

// Remove handles DELETE /wishlist/{id}. Removing an id that is already
// gone still returns 204.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	const prefix = "/wishlist/"
	itemID := strings.TrimPrefix(r.URL.Path, prefix)
	if itemID == "" || strings.Contains(itemID, "/") {
		http.NotFound(w, r)
		return
	}

	if err := h.wishlist.Remove(r.Context(), httpx.UserIDFrom(r), itemID); err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Search handles GET /wishlist/search?query=. Anonymous requests get
// results with no membership flags.
func (h *WishlistHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	view, err := h.wishlist.Search(r.Context(), httpx.UserIDFrom(r), query)
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, view, map[string]interface{}{
		"count": len(view.Albums),
	})
}

// Album handles GET /wishlist/albums/{id}.
func (h *WishlistHandler) Album(w http.ResponseWriter, r *http.Request) {
	const prefix = "/wishlist/albums/"
	albumID := strings.TrimPrefix(r.URL.Path, prefix)
	if albumID == "" || strings.Contains(albumID, "/") {
		http.NotFound(w, r)
		return
	}

	view, err := h.wishlist.AlbumPage(r.Context(), albumID)
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, view, nil)
}
