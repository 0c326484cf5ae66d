package usecase

import (
	"context"

	"vinylapi/internal/platform/discogs"
	"vinylapi/internal/platform/spotify"
)

// DiscogsClient is the port for catalog provider A. The concrete client
// lives in internal/platform/discogs.
type DiscogsClient interface {
	SearchReleases(ctx context.Context, query, barcode string) ([]discogs.SearchResult, error)
	GetRelease(ctx context.Context, releaseID string) (*discogs.Release, error)
	GetMarketplaceStats(ctx context.Context, releaseID string) (*discogs.MarketplaceStats, error)
	GetCollection(ctx context.Context, username string) (*discogs.CollectionPage, error)
	GetCollectionValue(ctx context.Context, username string) (*discogs.CollectionValue, error)
}

// SpotifyClient is the port for catalog provider B. Every page fetches its
// own bearer token; tokens never outlive a request.
type SpotifyClient interface {
	Token(ctx context.Context) (string, error)
	SearchAlbums(ctx context.Context, token, query string) ([]spotify.Album, error)
	GetAlbum(ctx context.Context, token, albumID string) (*spotify.Album, error)
}
