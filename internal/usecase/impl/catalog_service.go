package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"descu/config"
	deliverycontext "descu/internal/delivery/context"
	"descu/internal/domain/entity"
	domainerrors "descu/internal/domain/errors"
	"descu/internal/domain/ranking"
	"descu/internal/domain/repository"
	"descu/internal/domain/service"
	"descu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo   repository.CatalogRepository
	generator     service.CatalogGenerator
	localizer     service.Localizer
	location      service.LocationProvider
	qrcodeService service.QRCodeService
	suggestions   service.SuggestionService
	publisher     service.EventPublisher
	config        *config.Config
	logger        *slog.Logger

	// Viewer location cache. Acquisition is one-shot per request; the
	// generation counter makes a later result supersede an earlier
	// pending one instead of racing it.
	viewerMu   sync.Mutex
	viewer     entity.Coordinate
	resolved   bool
	appliedGen uint64
	nextGen    uint64
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo       repository.CatalogRepository
	Generator         service.CatalogGenerator
	Localizer         service.Localizer
	LocationProvider  service.LocationProvider
	QRCodeService     service.QRCodeService
	SuggestionService service.SuggestionService
	EventPublisher    service.EventPublisher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:   params.CatalogRepo,
		generator:     params.Generator,
		localizer:     params.Localizer,
		location:      params.LocationProvider,
		qrcodeService: params.QRCodeService,
		suggestions:   params.SuggestionService,
		publisher:     params.EventPublisher,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// Browse resolves the viewer location, then filters and ranks the catalog
func (s *catalogService) Browse(ctx context.Context, query usecase.BrowseQuery) (*usecase.BrowseResult, error) {
	viewer, resolved := s.resolveViewer(ctx)

	listings, err := s.catalogRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	locale := query.Locale.OrDefault()
	filtered := ranking.Filter(listings, query.Query, query.Category, func(category entity.Category) string {
		return s.localizer.CategoryLabel(category, locale)
	})

	ranked := ranking.Rank(filtered, &viewer, s.proximityKm())

	return &usecase.BrowseResult{
		Listings:         ranked,
		Viewer:           &viewer,
		LocationResolved: resolved,
	}, nil
}

// SubmitListing adds a user-provenance listing and publishes a created event
func (s *catalogService) SubmitListing(ctx context.Context, submitter usecase.Submitter, input usecase.SubmitListingInput) (*entity.Listing, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be non-negative")
	}
	if !input.Delivery.IsValid() {
		input.Delivery = entity.DeliveryMeetup
	}

	locale := input.Locale.OrDefault()
	location := s.listingLocation(ctx, input)

	listing := entity.Listing{
		ID: uuid.New().String(),
		Seller: entity.Seller{
			ID:     submitter.ID,
			Name:   submitter.Name,
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + submitter.ID,
		},
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Currency:     s.localizer.Currency(locale),
		Image:        input.Image,
		Category:     input.Category,
		Delivery:     input.Delivery,
		Location:     location,
		LocationName: s.localizer.LocationName(locale),
		CreatedAt:    time.Now().UnixMilli(),
		Provenance:   entity.ProvenanceUser,
	}

	if err := s.catalogRepo.AddUserListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to add user listing")
	}

	s.publishEvent(ctx, service.ListingEventCreated, listing)

	return &listing, nil
}

// BoostListing promotes a listing owned by the submitter. A repeated boost
// is a no-op and publishes no event.
func (s *catalogService) BoostListing(ctx context.Context, submitter usecase.Submitter, listingID string) (*entity.Listing, error) {
	listing, err := s.catalogRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if listing.Seller.ID != submitter.ID {
		return nil, domainerrors.ErrListingOwnershipViolation
	}

	changed, err := s.catalogRepo.Boost(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to boost listing")
	}

	listing.Promoted = true
	if changed {
		s.publishEvent(ctx, service.ListingEventBoosted, listing)
	}

	return &listing, nil
}

// MyListings retrieves the submitter's listings, most recent first
func (s *catalogService) MyListings(ctx context.Context, sellerID string) ([]entity.Listing, error) {
	listings, err := s.catalogRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by seller")
	}

	return listings, nil
}

// GetListing retrieves a single listing by identity
func (s *catalogService) GetListing(ctx context.Context, listingID string) (*entity.Listing, error) {
	listing, err := s.catalogRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return &listing, nil
}

// ListingQR renders the share QR code for a listing
func (s *catalogService) ListingQR(ctx context.Context, listingID string) ([]byte, error) {
	if _, err := s.GetListing(ctx, listingID); err != nil {
		return nil, err
	}

	qrBytes, err := s.qrcodeService.GenerateListingQR(listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR")
	}

	return qrBytes, nil
}

// Suggest analyzes a listing photo and proposes submission metadata.
// Unavailability of the suggestion service is surfaced as-is so the
// delivery layer can tell the client to proceed with manual entry.
func (s *catalogService) Suggest(ctx context.Context, imageBase64 string, locale entity.Locale) (*service.ListingSuggestion, error) {
	return s.suggestions.SuggestFromImage(ctx, imageBase64, locale)
}

// Reseed regenerates the synthetic catalog for a locale, preserving user listings
func (s *catalogService) Reseed(ctx context.Context, locale entity.Locale) (int, error) {
	viewer, _ := s.resolveViewer(ctx)

	count := s.config.Catalog.SeedCount
	listings, err := s.generator.Generate(count, viewer, locale.OrDefault())
	if err != nil {
		return 0, errors.Wrap(err, "failed to generate synthetic catalog")
	}

	if err := s.catalogRepo.ReplaceSynthetic(ctx, listings); err != nil {
		return 0, errors.Wrap(err, "failed to replace synthetic catalog")
	}

	s.logger.Info("Synthetic catalog reseeded",
		slog.Int("count", len(listings)),
		slog.String("locale", locale.OrDefault().String()),
	)

	return len(listings), nil
}

// resolveViewer performs a one-shot location acquisition. On failure the
// configured fallback coordinate is substituted; the pipeline never
// blocks on location. Returns the coordinate and whether it came from the
// provider rather than the fallback.
func (s *catalogService) resolveViewer(ctx context.Context) (entity.Coordinate, bool) {
	s.viewerMu.Lock()
	s.nextGen++
	gen := s.nextGen
	s.viewerMu.Unlock()

	coord, err := s.location.ViewerCoordinate(ctx)
	resolved := err == nil
	if err != nil {
		coord = s.fallbackCoordinate()
	}

	s.viewerMu.Lock()
	defer s.viewerMu.Unlock()

	// A result from an older acquisition never overwrites a newer one.
	if gen > s.appliedGen {
		s.appliedGen = gen
		s.viewer = coord
		s.resolved = resolved
	}

	return s.viewer, s.resolved
}

func (s *catalogService) fallbackCoordinate() entity.Coordinate {
	loc := s.config.Location

	return entity.Coordinate{
		Latitude:  loc.FallbackLatitude,
		Longitude: loc.FallbackLongitude,
	}
}

func (s *catalogService) proximityKm() float64 {
	if s.config.Catalog != nil && s.config.Catalog.ProximityKm > 0 {
		return s.config.Catalog.ProximityKm
	}

	return ranking.DefaultProximityKm
}

// publishEvent publishes a listing event. Publishing is best-effort: a
// failure is logged but never fails the catalog mutation.
func (s *catalogService) publishEvent(ctx context.Context, eventType string, listing entity.Listing) {
	event := &service.ListingEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		ListingID: listing.ID,
		SellerID:  listing.Seller.ID,
		Category:  listing.Category.String(),
		Price:     listing.Price,
		Latitude:  listing.Location.Latitude,
		Longitude: listing.Location.Longitude,
	}

	if err := s.publisher.PublishListingEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish listing event",
			slog.String("event_type", eventType),
			slog.String("listing_id", listing.ID),
			slog.Any("error", err),
		)
	}
}

func (s *catalogService) listingLocation(ctx context.Context, input usecase.SubmitListingInput) entity.Coordinate {
	if input.Latitude != nil && input.Longitude != nil {
		return entity.Coordinate{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
		}
	}

	viewer, _ := s.resolveViewer(ctx)

	return viewer
}
