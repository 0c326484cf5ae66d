package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"vinylapi/internal/entity"
	"vinylapi/internal/normalize"
	"vinylapi/internal/platform/spotify"
)

// SearchAlbum is one wishlist-search result annotated with membership.
type SearchAlbum struct {
	entity.CatalogAlbum
	Wishlisted bool `json:"wishlisted"`
}

// WishlistSearchView is the wishlist-search page. Albums is empty both for
// an idle page (no query) and for zero results.
type WishlistSearchView struct {
	Albums []SearchAlbum `json:"albums"`
}

// AlbumTrack is a track rendered for the album detail page; Duration is
// "m:ss" with zero-padded seconds.
type AlbumTrack struct {
	TrackNumber int    `json:"track_number"`
	Name        string `json:"name"`
	DurationMS  int    `json:"duration_ms"`
	Duration    string `json:"duration"`
}

// AlbumView is the Spotify album detail page.
type AlbumView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Artist      string       `json:"artist"`
	Year        int          `json:"year"`
	ReleaseDate string       `json:"release_date"`
	ImageURL    string       `json:"image_url"`
	ExternalURL string       `json:"external_url"`
	Genre       string       `json:"genre,omitempty"`
	Label       string       `json:"label,omitempty"`
	Popularity  int          `json:"popularity"`
	Tracks      []AlbumTrack `json:"tracks"`
}

// AddWishlistInput carries the catalog fields captured when the user adds a
// search result to the wishlist.
type AddWishlistInput struct {
	ExternalID  string
	Name        string
	Artist      string
	Year        int
	ImageURL    string
	ExternalURL string
}

// WishlistUsecase loads the wishlist pages and performs the wishlist
// mutations: the Spotify-backed search and album detail plus the
// Postgres-backed list/add/remove.
type WishlistUsecase struct {
	spotify  SpotifyClient
	wishlist WishlistRepository
}

func NewWishlistUsecase(client SpotifyClient, wishlist WishlistRepository) *WishlistUsecase {
	return &WishlistUsecase{
		spotify:  client,
		wishlist: wishlist,
	}
}

// List returns the signed-in user's wishlist in insertion order.
func (u *WishlistUsecase) List(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	items, err := u.wishlist.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.WishlistItem{}
	}
	return items, nil
}

// Search runs the album search and, for a signed-in user, fetches the
// wishlist membership ids in parallel. Anonymous callers get results with
// an empty membership set, never an error. An empty query is the idle
// state: no upstream call at all.
func (u *WishlistUsecase) Search(ctx context.Context, userID, query string) (WishlistSearchView, error) {
	if strings.TrimSpace(query) == "" {
		return WishlistSearchView{Albums: []SearchAlbum{}}, nil
	}

	g, ctx := errgroup.WithContext(ctx)

	var items []spotify.Album
	var memberIDs []string

	g.Go(func() error {
		token, err := u.spotify.Token(ctx)
		if err != nil {
			return mapSpotifyErr(err)
		}
		found, err := u.spotify.SearchAlbums(ctx, token, query)
		if err != nil {
			return mapSpotifyErr(err)
		}
		items = found
		return nil
	})
	if userID != "" {
		g.Go(func() error {
			ids, err := u.wishlist.ListExternalIDs(ctx, userID)
			if err != nil {
				return err
			}
			memberIDs = ids
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return WishlistSearchView{}, err
	}

	members := normalize.MembershipSet(memberIDs)
	albums := make([]SearchAlbum, len(items))
	for i, item := range items {
		album := normalize.SpotifyAlbum(item)
		_, wishlisted := members[album.ID]
		albums[i] = SearchAlbum{CatalogAlbum: album, Wishlisted: wishlisted}
	}
	return WishlistSearchView{Albums: albums}, nil
}

// AlbumPage loads the album detail: token exchange then the album fetch,
// both required.
func (u *WishlistUsecase) AlbumPage(ctx context.Context, albumID string) (AlbumView, error) {
	token, err := u.spotify.Token(ctx)
	if err != nil {
		return AlbumView{}, mapSpotifyErr(err)
	}
	album, err := u.spotify.GetAlbum(ctx, token, albumID)
	if err != nil {
		return AlbumView{}, mapSpotifyErr(err)
	}

	header := normalize.SpotifyAlbum(*album)
	view := AlbumView{
		ID:          header.ID,
		Name:        header.Name,
		Artist:      header.Artist,
		Year:        header.Year,
		ReleaseDate: album.ReleaseDate,
		ImageURL:    header.ImageURL,
		ExternalURL: header.ExternalURL,
		Label:       album.Label,
		Popularity:  album.Popularity,
	}
	if len(album.Genres) > 0 {
		view.Genre = album.Genres[0]
	}
	for _, t := range normalize.SpotifyTracks(album.Tracks.Items) {
		view.Tracks = append(view.Tracks, AlbumTrack{
			TrackNumber: t.TrackNumber,
			Name:        t.Name,
			DurationMS:  t.DurationMS,
			Duration:    normalize.FormatDuration(t.DurationMS),
		})
	}
	return view, nil
}

// Add inserts a wishlist item for the signed-in user. Duplicates surface
// ErrAlreadyExists from the store's uniqueness constraint rather than
// relying on the client-side membership check alone.
func (u *WishlistUsecase) Add(ctx context.Context, userID string, input AddWishlistInput) (entity.WishlistItem, error) {
	if userID == "" {
		return entity.WishlistItem{}, ErrAuthRequired
	}

	item := entity.WishlistItem{
		UserID:      userID,
		ExternalID:  input.ExternalID,
		Name:        input.Name,
		Artist:      input.Artist,
		Year:        input.Year,
		ImageURL:    input.ImageURL,
		ExternalURL: input.ExternalURL,
	}
	if err := u.wishlist.Add(ctx, &item); err != nil {
		return entity.WishlistItem{}, err
	}
	return item, nil
}

// Remove deletes by primary key. Removing an id that is already gone
// succeeds; the operation is idempotent.
func (u *WishlistUsecase) Remove(ctx context.Context, userID, itemID string) error {
	if userID == "" {
		return ErrAuthRequired
	}
	return u.wishlist.Remove(ctx, userID, itemID)
}

func mapSpotifyErr(err error) error {
	switch {
	case errors.Is(err, spotify.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, spotify.ErrNoCredentials):
		return fmt.Errorf("%w: %v", ErrMissingConfig, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
