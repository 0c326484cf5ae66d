package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"vinylapi/internal/entity"
	"vinylapi/internal/normalize"
	"vinylapi/internal/platform/discogs"
)

// ReleaseView is the release detail page: the release itself plus optional
// marketplace pricing. Pricing is nil when the stats call failed or the
// listing is blocked; the page still renders.
type ReleaseView struct {
	Release entity.VinylRelease    `json:"release"`
	Pricing *entity.PricingSummary `json:"pricing,omitempty"`
}

// AnalyticsView combines the synced collection with its marketplace value.
type AnalyticsView struct {
	Collection []entity.CatalogAlbum  `json:"collection"`
	Value      entity.CollectionValue `json:"value"`
}

// VinylUsecase loads the Discogs-backed pages: scan search, release detail,
// the synced collection, and collection analytics.
type VinylUsecase struct {
	discogs  DiscogsClient
	username string
}

func NewVinylUsecase(client DiscogsClient, username string) *VinylUsecase {
	return &VinylUsecase{
		discogs:  client,
		username: username,
	}
}

// ScanSearch runs a barcode/text search. When both parameters are empty no
// upstream call is made and an empty result page is returned; "no search
// performed" is distinct from "zero results" only in that it is free.
func (u *VinylUsecase) ScanSearch(ctx context.Context, query, barcode string) ([]entity.CatalogAlbum, error) {
	if query == "" && barcode == "" {
		return []entity.CatalogAlbum{}, nil
	}

	results, err := u.discogs.SearchReleases(ctx, query, barcode)
	if err != nil {
		return nil, mapDiscogsErr(err)
	}
	return normalize.DiscogsSearchResults(results), nil
}

// ReleasePage fans out the detail fetch and the pricing fetch. The detail
// call is required and its failure fails the page; the pricing call is best
// effort and degrades to "no pricing available". A required failure cancels
// the sibling call through the group context.
func (u *VinylUsecase) ReleasePage(ctx context.Context, releaseID string) (ReleaseView, error) {
	g, ctx := errgroup.WithContext(ctx)

	var release *discogs.Release
	var stats *discogs.MarketplaceStats

	g.Go(func() error {
		r, err := u.discogs.GetRelease(ctx, releaseID)
		if err != nil {
			return mapDiscogsErr(err)
		}
		release = r
		return nil
	})
	g.Go(func() error {
		s, err := u.discogs.GetMarketplaceStats(ctx, releaseID)
		if err != nil {
			log.Printf("pricing unavailable for release %s: %v", releaseID, err)
			return nil
		}
		stats = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return ReleaseView{}, err
	}

	return ReleaseView{
		Release: normalize.DiscogsRelease(release),
		Pricing: normalize.DiscogsPricing(stats),
	}, nil
}

// CollectionPage lists the configured user's collection (first page, 100
// items, the fixed contract).
func (u *VinylUsecase) CollectionPage(ctx context.Context) ([]entity.CatalogAlbum, error) {
	if u.username == "" {
		return nil, fmt.Errorf("%w: DISCOGS_USERNAME", ErrMissingConfig)
	}

	page, err := u.discogs.GetCollection(ctx, u.username)
	if err != nil {
		return nil, mapDiscogsErr(err)
	}
	return normalize.DiscogsCollection(page), nil
}

// AnalyticsPage fans out the collection fetch and the value fetch; both are
// required, so either failure fails the page and cancels the other call.
func (u *VinylUsecase) AnalyticsPage(ctx context.Context, username string) (AnalyticsView, error) {
	g, ctx := errgroup.WithContext(ctx)

	var page *discogs.CollectionPage
	var value *discogs.CollectionValue

	g.Go(func() error {
		p, err := u.discogs.GetCollection(ctx, username)
		if err != nil {
			return mapDiscogsErr(err)
		}
		page = p
		return nil
	})
	g.Go(func() error {
		v, err := u.discogs.GetCollectionValue(ctx, username)
		if err != nil {
			return mapDiscogsErr(err)
		}
		value = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return AnalyticsView{}, err
	}

	return AnalyticsView{
		Collection: normalize.DiscogsCollection(page),
		Value:      normalize.DiscogsCollectionValue(value),
	}, nil
}

func mapDiscogsErr(err error) error {
	switch {
	case errors.Is(err, discogs.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, discogs.ErrNoToken):
		return fmt.Errorf("%w: %v", ErrMissingConfig, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
