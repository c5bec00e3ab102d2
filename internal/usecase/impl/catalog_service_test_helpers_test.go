package impl

import (
	"context"
	"io"
	"log/slog"

	"descu/config"
	"descu/internal/domain/entity"
	"descu/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalogTestConfig(seedCount int) *config.Config {
	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{
		SeedCount:     seedCount,
		ProximityKm:   5,
		DefaultLocale: "es",
	}
	cfg.Location = &config.LocationConfig{
		FallbackLatitude:  19.4326,
		FallbackLongitude: -99.1332,
	}

	return cfg
}

// fakeLocationProvider resolves to a fixed coordinate or a fixed error.
type fakeLocationProvider struct {
	coord entity.Coordinate
	err   error
}

func (f *fakeLocationProvider) ViewerCoordinate(_ context.Context) (entity.Coordinate, error) {
	if f.err != nil {
		return entity.Coordinate{}, f.err
	}

	return f.coord, nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []*service.ListingEvent
}

func (p *recordingPublisher) PublishListingEvent(_ context.Context, event *service.ListingEvent) error {
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

// fakeSuggestionService returns a canned suggestion or error.
type fakeSuggestionService struct {
	suggestion *service.ListingSuggestion
	err        error
}

func (f *fakeSuggestionService) SuggestFromImage(_ context.Context, _ string, _ entity.Locale) (*service.ListingSuggestion, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.suggestion, nil
}
