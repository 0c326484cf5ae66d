package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNotFound maps an upstream 404.
	ErrNotFound = errors.New("spotify: not found")

	// ErrNoCredentials is returned when the client id or secret is unset.
	ErrNoCredentials = errors.New("SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET are not set")
)

type Client struct {
	httpClient   *http.Client
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:      "https://api.spotify.com",
		tokenURL:     "https://accounts.spotify.com/api/token",
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int    `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Album matches /v1/albums/{id} and the album items of /v1/search.
type Album struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []Artist     `json:"artists"`
	ReleaseDate  string       `json:"release_date"`
	Images       []Image      `json:"images"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Genres       []string     `json:"genres"`
	Label        string       `json:"label"`
	Popularity   int          `json:"popularity"`
	Tracks       TrackPage    `json:"tracks"`
}

type Artist struct {
	Name string `json:"name"`
}

type Image struct {
	URL string `json:"url"`
}

type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

type TrackPage struct {
	Items []TrackItem `json:"items"`
}

type TrackItem struct {
	TrackNumber int    `json:"track_number"`
	Name        string `json:"name"`
	DurationMS  int    `json:"duration_ms"`
}

type searchResponse struct {
	Albums struct {
		Items []Album `json:"items"`
	} `json:"albums"`
}

// Token performs the client-credentials grant. The returned bearer token is
// held only for the duration of the calling request; there is no
// process-wide token cache.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrNoCredentials
	}

	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, body)
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("spotify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Best effort: the error body is JSON on auth failures but not
		// guaranteed for upstream proxies, so the status always appears.
		var tok tokenResponse
		_ = json.NewDecoder(resp.Body).Decode(&tok)
		if tok.ErrorDescription != "" {
			return "", fmt.Errorf("spotify token: status %d: %s", resp.StatusCode, tok.ErrorDescription)
		}
		return "", fmt.Errorf("spotify token: unexpected status code %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("spotify token: %w", err)
	}
	return tok.AccessToken, nil
}

func (c *Client) SearchAlbums(ctx context.Context, token, query string) ([]Album, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "album")

	var res searchResponse
	if err := c.get(ctx, token, "/v1/search?"+params.Encode(), &res); err != nil {
		return nil, err
	}
	return res.Albums.Items, nil
}

func (c *Client) GetAlbum(ctx context.Context, token, albumID string) (*Album, error) {
	var res Album
	if err := c.get(ctx, token, "/v1/albums/"+url.PathEscape(albumID), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, token, path string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("spotify: unexpected status code %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
