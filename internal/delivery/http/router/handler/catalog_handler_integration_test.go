package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"descu/internal/domain/entity"
	"descu/internal/domain/ranking"
	"descu/internal/domain/service"
	"descu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogUsecase returns canned results for handler tests.
type stubCatalogUsecase struct {
	browseResult *usecase.BrowseResult
	browseErr    error
	browseQuery  usecase.BrowseQuery
	reseedCount  int
	reseedLocale entity.Locale
}

func (s *stubCatalogUsecase) Browse(_ context.Context, query usecase.BrowseQuery) (*usecase.BrowseResult, error) {
	s.browseQuery = query

	return s.browseResult, s.browseErr
}

func (s *stubCatalogUsecase) SubmitListing(_ context.Context, _ usecase.Submitter, _ usecase.SubmitListingInput) (*entity.Listing, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) BoostListing(_ context.Context, _ usecase.Submitter, _ string) (*entity.Listing, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) MyListings(_ context.Context, _ string) ([]entity.Listing, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) GetListing(_ context.Context, _ string) (*entity.Listing, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) ListingQR(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) Suggest(_ context.Context, _ string, _ entity.Locale) (*service.ListingSuggestion, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) Reseed(_ context.Context, locale entity.Locale) (int, error) {
	s.reseedLocale = locale

	return s.reseedCount, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogHandler_Browse_Integration(t *testing.T) {
	viewer := entity.Coordinate{Latitude: 19.4326, Longitude: -99.1332}
	stub := &stubCatalogUsecase{
		browseResult: &usecase.BrowseResult{
			Listings: []ranking.Ranked{
				{
					Listing:  entity.Listing{ID: "l-1", Title: "Bicicleta urbana"},
					Distance: 2.34,
				},
				{
					Listing:  entity.Listing{ID: "l-2", Title: "Mesa de centro"},
					Distance: ranking.UnknownDistance,
				},
			},
			Viewer:           &viewer,
			LocationResolved: true,
		},
	}
	handler := NewCatalogHandler(stub, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/listings?q=bici&category=vehicles&locale=es", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Browse(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Query parameters flow through to the usecase untouched.
	assert.Equal(t, "bici", stub.browseQuery.Query)
	assert.Equal(t, "vehicles", stub.browseQuery.Category)
	assert.Equal(t, entity.LocaleSpanish, stub.browseQuery.Locale)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Listings []struct {
				ID       string   `json:"id"`
				Title    string   `json:"title"`
				Distance *float64 `json:"distance"`
			} `json:"listings"`
			LocationResolved bool `json:"locationResolved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.True(t, envelope.Data.LocationResolved)
	require.Len(t, envelope.Data.Listings, 2)

	// Known distance is rounded to one decimal for display.
	require.NotNil(t, envelope.Data.Listings[0].Distance)
	assert.InDelta(t, 2.3, *envelope.Data.Listings[0].Distance, 1e-9)

	// Unknown distance is omitted from the wire shape entirely.
	assert.Nil(t, envelope.Data.Listings[1].Distance)
}

func TestCatalogHandler_Browse_DefaultsCategoryToAll(t *testing.T) {
	stub := &stubCatalogUsecase{browseResult: &usecase.BrowseResult{}}
	handler := NewCatalogHandler(stub, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Browse(c))
	assert.Equal(t, entity.CategoryAll, stub.browseQuery.Category)
}

func TestCatalogHandler_Reseed_Integration(t *testing.T) {
	stub := &stubCatalogUsecase{reseedCount: 400}
	handler := NewCatalogHandler(stub, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/catalog/reseed", strings.NewReader(`{"locale":"zh"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Reseed(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.LocaleChinese, stub.reseedLocale)
	assert.Contains(t, rec.Body.String(), `"seeded":400`)
}
