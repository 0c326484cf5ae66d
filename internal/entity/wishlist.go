package entity

import "time"

// WishlistItem is a persisted wishlist row. ID is the storage-assigned
// primary key; ExternalID is the catalog provider's album id and is what
// membership checks compare against.
type WishlistItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ExternalID  string    `json:"external_id"`
	Name        string    `json:"name"`
	Artist      string    `json:"artist"`
	Year        int       `json:"year"`
	ImageURL    string    `json:"image_url"`
	ExternalURL string    `json:"external_url"`
	CreatedAt   time.Time `json:"created_at"`
}
