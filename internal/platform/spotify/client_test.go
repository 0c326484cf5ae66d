package spotify

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient("test-id", "test-secret")
	httpmock.ActivateNonDefault(c.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_Token(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://accounts.spotify.com/api/token",
		func(req *http.Request) (*http.Response, error) {
			wantBasic := base64.StdEncoding.EncodeToString([]byte("test-id:test-secret"))
			assert.Equal(t, "Basic "+wantBasic, req.Header.Get("Authorization"))
			assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

			body, _ := io.ReadAll(req.Body)
			assert.Equal(t, "grant_type=client_credentials", string(body))

			return httpmock.NewStringResponse(http.StatusOK,
				`{"access_token": "tok-abc", "token_type": "Bearer", "expires_in": 3600}`), nil
		})

	token, err := c.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestClient_Token_MissingCredentials(t *testing.T) {
	c := NewClient("", "")

	_, err := c.Token(context.Background())

	assert.True(t, errors.Is(err, ErrNoCredentials))
}

func TestClient_Token_InvalidClient(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://accounts.spotify.com/api/token",
		httpmock.NewStringResponder(http.StatusBadRequest,
			`{"error": "invalid_client", "error_description": "Invalid client"}`))

	_, err := c.Token(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "Invalid client")
}

func TestClient_Token_NonJSONErrorBody(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://accounts.spotify.com/api/token",
		httpmock.NewStringResponder(http.StatusBadGateway, "<html>bad gateway</html>"))

	_, err := c.Token(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 502")
}

func TestClient_SearchAlbums(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, "https://api.spotify.com/v1/search",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "thriller", q.Get("q"))
			assert.Equal(t, "album", q.Get("type"))
			assert.Equal(t, "Bearer tok-abc", req.Header.Get("Authorization"))
			return httpmock.NewStringResponse(http.StatusOK, `{
				"albums": {
					"items": [
						{
							"id": "album-a",
							"name": "Thriller",
							"artists": [{"name": "Michael Jackson"}],
							"release_date": "1982-11-30",
							"images": [{"url": "https://img.example/640.jpg"}],
							"external_urls": {"spotify": "https://open.spotify.example/album-a"}
						}
					]
				}
			}`), nil
		})

	albums, err := c.SearchAlbums(context.Background(), "tok-abc", "thriller")

	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "album-a", albums[0].ID)
	assert.Equal(t, "Michael Jackson", albums[0].Artists[0].Name)
	assert.Equal(t, "https://open.spotify.example/album-a", albums[0].ExternalURLs.Spotify)
}

func TestClient_GetAlbum(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, "https://api.spotify.com/v1/albums/album-a",
		httpmock.NewStringResponder(http.StatusOK, `{
			"id": "album-a",
			"name": "Thriller",
			"genres": ["Pop"],
			"label": "Epic",
			"popularity": 92,
			"tracks": {"items": [{"track_number": 1, "name": "Baby Be Mine", "duration_ms": 260466}]}
		}`))

	album, err := c.GetAlbum(context.Background(), "tok-abc", "album-a")

	require.NoError(t, err)
	assert.Equal(t, "Epic", album.Label)
	require.Len(t, album.Tracks.Items, 1)
	assert.Equal(t, 260466, album.Tracks.Items[0].DurationMS)
}

func TestClient_GetAlbum_NotFound(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, "https://api.spotify.com/v1/albums/missing",
		httpmock.NewStringResponder(http.StatusNotFound, `{"error": {"status": 404, "message": "non existing id"}}`))

	_, err := c.GetAlbum(context.Background(), "tok-abc", "missing")

	assert.True(t, errors.Is(err, ErrNotFound))
}
