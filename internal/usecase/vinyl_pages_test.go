package usecase_test

import (
	"context"
	"errors"
	"testing"

	"vinylapi/internal/platform/discogs"
	"vinylapi/internal/usecase"
	"vinylapi/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestVinylUsecase_ScanSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscogs := mocks.NewMockDiscogsClient(ctrl)
	uc := usecase.NewVinylUsecase(mockDiscogs, "collector")
	ctx := context.Background()

	t.Run("success - query search", func(t *testing.T) {
		mockDiscogs.EXPECT().SearchReleases(ctx, "dark side", "").Return([]discogs.SearchResult{
			{ID: 1, Title: "Pink Floyd - The Dark Side Of The Moon", Year: "1973"},
		}, nil)

		albums, err := uc.ScanSearch(ctx, "dark side", "")

		assert.NoError(t, err)
		assert.Len(t, albums, 1)
		assert.Equal(t, "Pink Floyd", albums[0].Artist)
		assert.Equal(t, "The Dark Side Of The Moon", albums[0].Name)
		assert.Equal(t, 1973, albums[0].Year)
	})

	t.Run("success - empty query and barcode skip the upstream call", func(t *testing.T) {
		albums, err := uc.ScanSearch(ctx, "", "")

		assert.NoError(t, err)
		assert.NotNil(t, albums)
		assert.Empty(t, albums)
	})

	t.Run("error - upstream failure", func(t *testing.T) {
		mockDiscogs.EXPECT().SearchReleases(ctx, "", "0123456789012").
			Return(nil, errors.New("discogs: unexpected status code 500"))

		_, err := uc.ScanSearch(ctx, "", "0123456789012")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrUpstream))
	})

	t.Run("error - missing token maps to config error", func(t *testing.T) {
		mockDiscogs.EXPECT().SearchReleases(ctx, "abbey road", "").
			Return(nil, discogs.ErrNoToken)

		_, err := uc.ScanSearch(ctx, "abbey road", "")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrMissingConfig))
	})
}

func TestVinylUsecase_ReleasePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscogs := mocks.NewMockDiscogsClient(ctrl)
	uc := usecase.NewVinylUsecase(mockDiscogs, "collector")
	ctx := context.Background()

	release := &discogs.Release{
		ID:      42,
		Title:   "Abbey Road",
		Year:    1969,
		Artists: []discogs.ReleaseArtist{{Name: "The Beatles"}},
	}

	t.Run("success - release with pricing", func(t *testing.T) {
		mockDiscogs.EXPECT().GetRelease(gomock.Any(), "42").Return(release, nil)
		mockDiscogs.EXPECT().GetMarketplaceStats(gomock.Any(), "42").Return(&discogs.MarketplaceStats{
			NumForSale:  5,
			LowestPrice: &discogs.MarketplacePrice{Value: 19.99, Currency: "EUR"},
		}, nil)

		view, err := uc.ReleasePage(ctx, "42")

		assert.NoError(t, err)
		assert.Equal(t, "42", view.Release.ID)
		assert.NotNil(t, view.Pricing)
		assert.Equal(t, 5, view.Pricing.NumForSale)
		assert.Equal(t, 19.99, view.Pricing.LowestPrice.Value)
	})

	t.Run("success - pricing failure degrades to no pricing", func(t *testing.T) {
		mockDiscogs.EXPECT().GetRelease(gomock.Any(), "42").Return(release, nil)
		mockDiscogs.EXPECT().GetMarketplaceStats(gomock.Any(), "42").
			Return(nil, errors.New("discogs: unexpected status code 429"))

		view, err := uc.ReleasePage(ctx, "42")

		assert.NoError(t, err)
		assert.Equal(t, "Abbey Road", view.Release.Title)
		assert.Nil(t, view.Pricing)
	})

	t.Run("error - release not found fails the page", func(t *testing.T) {
		mockDiscogs.EXPECT().GetRelease(gomock.Any(), "404").Return(nil, discogs.ErrNotFound)
		mockDiscogs.EXPECT().GetMarketplaceStats(gomock.Any(), "404").
			Return(nil, errors.New("canceled")).AnyTimes()

		_, err := uc.ReleasePage(ctx, "404")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrNotFound))
	})
}

func TestVinylUsecase_CollectionPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscogs := mocks.NewMockDiscogsClient(ctrl)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc := usecase.NewVinylUsecase(mockDiscogs, "collector")
		mockDiscogs.EXPECT().GetCollection(ctx, "collector").Return(&discogs.CollectionPage{
			Releases: []discogs.CollectionRelease{
				{ID: 10, BasicInformation: discogs.BasicInformation{Title: "Rumours", Year: 1977}},
			},
		}, nil)

		albums, err := uc.CollectionPage(ctx)

		assert.NoError(t, err)
		assert.Len(t, albums, 1)
		assert.Equal(t, "Rumours", albums[0].Name)
	})

	t.Run("error - missing username is a config error", func(t *testing.T) {
		uc := usecase.NewVinylUsecase(mockDiscogs, "")

		_, err := uc.CollectionPage(ctx)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrMissingConfig))
		assert.Contains(t, err.Error(), "DISCOGS_USERNAME")
	})
}

func TestVinylUsecase_AnalyticsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscogs := mocks.NewMockDiscogsClient(ctrl)
	uc := usecase.NewVinylUsecase(mockDiscogs, "collector")
	ctx := context.Background()

	t.Run("success - collection and value combined", func(t *testing.T) {
		mockDiscogs.EXPECT().GetCollection(gomock.Any(), "collector").Return(&discogs.CollectionPage{
			Releases: []discogs.CollectionRelease{
				{ID: 10, BasicInformation: discogs.BasicInformation{Title: "Rumours", Year: 1977}},
			},
		}, nil)
		mockDiscogs.EXPECT().GetCollectionValue(gomock.Any(), "collector").Return(&discogs.CollectionValue{
			Minimum: "$100.00",
			Median:  "$150.00",
			Maximum: "$210.00",
		}, nil)

		view, err := uc.AnalyticsPage(ctx, "collector")

		assert.NoError(t, err)
		assert.Len(t, view.Collection, 1)
		assert.Equal(t, "$150.00", view.Value.Median)
	})

	t.Run("error - value failure fails the page", func(t *testing.T) {
		mockDiscogs.EXPECT().GetCollection(gomock.Any(), "collector").
			Return(&discogs.CollectionPage{}, nil).AnyTimes()
		mockDiscogs.EXPECT().GetCollectionValue(gomock.Any(), "collector").
			Return(nil, errors.New("discogs: unexpected status code 502"))

		_, err := uc.AnalyticsPage(ctx, "collector")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrUpstream))
	})
}
