package entity

// CatalogAlbum is a normalized search or browse result from either catalog
// provider. Year is 0 when the source did not supply a parseable 4-digit
// year; image and link URLs degrade to "" rather than null.
type CatalogAlbum struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	Year        int    `json:"year"`
	ImageURL    string `json:"image_url"`
	ExternalURL string `json:"external_url"`
	Source      string `json:"source"` // discogs, spotify
}

// Artist credit on a release. ANV is the abbreviated name variant some
// sources carry alongside the full name.
type Artist struct {
	Name string `json:"name"`
	ANV  string `json:"anv,omitempty"`
}

type Image struct {
	URL string `json:"url"`
}

type ReleaseTrack struct {
	Position string `json:"position"`
	Title    string `json:"title"`
}

type Video struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// VinylRelease is the full detail of one physical release. It is built per
// request and never persisted.
type VinylRelease struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Artists   []Artist       `json:"artists"`
	Year      int            `json:"year"`
	Genres    []string       `json:"genres"`
	Images    []Image        `json:"images"`
	Tracklist []ReleaseTrack `json:"tracklist"`
	Notes     string         `json:"notes,omitempty"`
	Country   string         `json:"country,omitempty"`
	Videos    []Video        `json:"videos,omitempty"`
}

type Price struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// PricingSummary holds optional marketplace statistics for a release.
// Absence of pricing is an expected state, not an error.
type PricingSummary struct {
	NumForSale  int    `json:"num_for_sale"`
	LowestPrice *Price `json:"lowest_price,omitempty"`
}

// Track is an album track from the second catalog provider, ordered by
// TrackNumber.
type Track struct {
	TrackNumber int    `json:"track_number"`
	Name        string `json:"name"`
	DurationMS  int    `json:"duration_ms"`
}

// CollectionValue is the marketplace valuation of a user's collection.
// Values are preformatted strings as returned by the provider.
type CollectionValue struct {
	Minimum string `json:"minimum"`
	Median  string `json:"median"`
	Maximum string `json:"maximum"`
}
