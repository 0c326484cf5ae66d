package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vinylapi/internal/entity"
	apphttp "vinylapi/internal/http"
	"vinylapi/internal/http/mocks"
	"vinylapi/internal/testutil"
	"vinylapi/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestVinylHandler_Collection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockPages := mocks.NewMockVinylPages(ctrl)
		mockPages.EXPECT().CollectionPage(gomock.Any()).Return([]entity.CatalogAlbum{
			{ID: "10", Name: "Rumours", Artist: "Fleetwood Mac"},
		}, nil)
		handler := apphttp.NewVinylHandler(mockPages)

		w := httptest.NewRecorder()
		handler.Collection(w, testutil.NewRequest(http.MethodGet, "/vinyls", nil))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
		testutil.AssertResponseBody(t, resp.Body, "success", true)
		meta, _ := resp.Body["meta"].(map[string]interface{})
		assert.Equal(t, float64(1), meta["count"])
	})

	t.Run("error - missing username config", func(t *testing.T) {
		mockPages := mocks.NewMockVinylPages(ctrl)
		mockPages.EXPECT().CollectionPage(gomock.Any()).Return(nil, usecase.ErrMissingConfig)
		handler := apphttp.NewVinylHandler(mockPages)

		w := httptest.NewRecorder()
		handler.Collection(w, testutil.NewRequest(http.MethodGet, "/vinyls", nil))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusInternalServerError)
		errBody, _ := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "CONFIG_ERROR", errBody["code"])
	})
}

func TestVinylHandler_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success - with pricing", func(t *testing.T) {
		mockPages := mocks.NewMockVinylPages(ctrl)
		mockPages.EXPECT().ReleasePage(gomock.Any(), "42").Return(usecase.ReleaseView{
			Release: entity.VinylRelease{ID: "42", Title: "Abbey Road"},
			Pricing: &entity.PricingSummary{NumForSale: 5},
		}, nil)
		handler := apphttp.NewVinylHandler(mockPages)

		w := httptest.NewRecorder()
		handler.Release(w, testutil.NewRequest(http.MethodGet, "/vinyls/42", nil))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
		data, _ := resp.Body["data"].(map[string]interface{})
		release, _ := data["release"].(map[string]interface{})
		assert.Equal(t, "Abbey Road", release["title"])
		assert.NotNil(t, data["pricing"])
	})

	t.Run("success - pricing omitted when unavailable", func(t *testing.T) {
		mockPages := mocks.NewMockVinylPages(ctrl)
		mockPages.EXPECT().ReleasePage(gomock.Any(), "42").Return(usecase.ReleaseView{
			Release: entity.VinylRelease{ID: "42", Title: "Abbey Road"},
		}, nil)
		handler := apphttp.NewVinylHandler(mockPages)

		w := httptest.NewRecorder()
		handler.Release(w, testutil.NewRequest(http.MethodGet, "/vinyls/42", nil))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
		data, _ := resp.Body["data"].(map[string]interface{})
		_, hasPricing := data["pricing"]
		assert.False(t, hasPricing)
	})

	t.Run("error - unknown release", func(t *testing.T) {
		mockPages := mocks.NewMockVinylPages(ctrl)
		mockPages.EXPECT().ReleasePage(gomock.Any(), "404").Return(usecase.ReleaseView{}, usecase.ErrNotFound)
		handler := apphttp.NewVinylHandler(mockPages)

		w := httptest.NewRecorder()
		handler.Release(w, testutil.NewRequest(http.MethodGet, "/vinyls/404", nil))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusNotFound)
	})

	t.Run("error - empty id in path", func(t *testing.T) {
		mockPages := mocks.NewMockVinylPages(ctrl)
		handler := apphttp.NewVinylHandler(mockPages)

		w := httptest.NewRecorder()
		handler.Release(w, testutil.NewRequest(http.MethodGet, "/vinyls/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - nested path", func(t *testing.T) {
		mockPages := mocks.NewMockVinylPages(ctrl)
		handler := apphttp.NewVinylHandler(mockPages)

		w := httptest.NewRecorder()
		handler.Release(w, testutil.NewRequest(http.MethodGet, "/vinyls/42/extra", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
