package discogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotFound maps an upstream 404; callers translate it into the
	// service error taxonomy.
	ErrNotFound = errors.New("discogs: not found")

	// ErrNoToken is returned when the client was built without a token.
	ErrNoToken = errors.New("DISCOGS_API_TOKEN is not set")
)

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	token      string
}

func NewClient(token, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   "https://api.discogs.com",
		token:     token,
	}
}

// SearchResponse matches /database/search. Title carries artist and album
// joined as "Artist - Album"; year comes back as a string.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Year  string `json:"year"`
	Thumb string `json:"thumb"`
	URI   string `json:"uri"`
}

// Release matches /releases/{id}
type Release struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Year      int             `json:"year"`
	Country   string          `json:"country"`
	Notes     string          `json:"notes"`
	Artists   []ReleaseArtist `json:"artists"`
	Genres    []string        `json:"genres"`
	Images    []ReleaseImage  `json:"images"`
	Tracklist []ReleaseTrack  `json:"tracklist"`
	Videos    []ReleaseVideo  `json:"videos"`
}

// ReleaseArtist carries the full name and the abbreviated name variation
// (anv) the release credits use.
type ReleaseArtist struct {
	Name string `json:"name"`
	ANV  string `json:"anv"`
}

type ReleaseImage struct {
	ResourceURL string `json:"resource_url"`
}

type ReleaseTrack struct {
	Position string `json:"position"`
	Title    string `json:"title"`
}

type ReleaseVideo struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// MarketplaceStats matches /marketplace/stats/{id}. LowestPrice is null when
// nothing is for sale.
type MarketplaceStats struct {
	NumForSale      int               `json:"num_for_sale"`
	LowestPrice     *MarketplacePrice `json:"lowest_price"`
	BlockedFromSale bool              `json:"blocked_from_sale"`
}

type MarketplacePrice struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// CollectionPage matches /users/{u}/collection/folders/0/releases
type CollectionPage struct {
	Releases []CollectionRelease `json:"releases"`
}

type CollectionRelease struct {
	ID               int              `json:"id"`
	BasicInformation BasicInformation `json:"basic_information"`
}

type BasicInformation struct {
	Title   string          `json:"title"`
	Year    int             `json:"year"`
	Thumb   string          `json:"thumb"`
	Cover   string          `json:"cover_image"`
	Artists []ReleaseArtist `json:"artists"`
}

// CollectionValue matches /users/{u}/collection/value
type CollectionValue struct {
	Minimum string `json:"minimum"`
	Median  string `json:"median"`
	Maximum string `json:"maximum"`
}

// SearchReleases queries the catalog for vinyl releases. Callers are
// expected to skip the call when both query and barcode are empty; an empty
// search here is still sent upstream.
func (c *Client) SearchReleases(ctx context.Context, query, barcode string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("format", "vinyl")
	params.Set("type", "release")
	if query != "" {
		params.Set("q", query)
	}
	if barcode != "" {
		params.Set("barcode", barcode)
	}

	var res SearchResponse
	if err := c.get(ctx, "/database/search?"+params.Encode(), &res); err != nil {
		return nil, err
	}
	return res.Results, nil
}

func (c *Client) GetRelease(ctx context.Context, releaseID string) (*Release, error) {
	var res Release
	if err := c.get(ctx, "/releases/"+url.PathEscape(releaseID), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetMarketplaceStats fetches pricing for a release. Failures here are
// expected to be swallowed by the caller; a missing listing is not an error
// condition for the page.
func (c *Client) GetMarketplaceStats(ctx context.Context, releaseID string) (*MarketplaceStats, error) {
	var res MarketplaceStats
	if err := c.get(ctx, "/marketplace/stats/"+url.PathEscape(releaseID), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetCollection fetches the first page of the user's default folder. The
// page is fixed at 1 with 100 items; larger collections truncate.
func (c *Client) GetCollection(ctx context.Context, username string) (*CollectionPage, error) {
	path := fmt.Sprintf("/users/%s/collection/folders/0/releases?page=1&per_page=100", url.PathEscape(username))
	var res CollectionPage
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetCollectionValue(ctx context.Context, username string) (*CollectionValue, error) {
	var res CollectionValue
	if err := c.get(ctx, fmt.Sprintf("/users/%s/collection/value", url.PathEscape(username)), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	if c.token == "" {
		return ErrNoToken
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("discogs: %w", err)
	}
	params := u.Query()
	params.Set("token", c.token)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discogs: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("discogs: unexpected status code %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
