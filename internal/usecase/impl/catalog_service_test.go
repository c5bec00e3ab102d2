package impl

import (
	"context"
	"testing"

	"descu/internal/domain/entity"
	domainerrors "descu/internal/domain/errors"
	"descu/internal/domain/service"
	"descu/internal/infra/generator"
	"descu/internal/infra/i18n"
	"descu/internal/infra/location"
	"descu/internal/infra/persistence/memory"
	"descu/internal/infra/qrcode"
	"descu/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// degreesPerKm converts a northward kilometer offset to latitude degrees.
const degreesPerKm = 1.0 / 111.19492664455873

var testViewer = entity.Coordinate{Latitude: 19.4326, Longitude: -99.1332}

type catalogFixture struct {
	svc       usecase.CatalogUsecase
	publisher *recordingPublisher
	suggest   *fakeSuggestionService
}

func newCatalogFixture(t *testing.T, seedCount int, provider service.LocationProvider) *catalogFixture {
	t.Helper()

	publisher := &recordingPublisher{}
	suggest := &fakeSuggestionService{}

	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo:       memory.NewCatalogStore(),
		Generator:         generator.NewSeeded(42),
		Localizer:         i18n.NewLocalizer(),
		LocationProvider:  provider,
		QRCodeService:     qrcode.NewQRCodeService(256, "M"),
		SuggestionService: suggest,
		EventPublisher:    publisher,
		Config:            newCatalogTestConfig(seedCount),
		Logger:            newDiscardLogger(),
	})

	return &catalogFixture{svc: svc, publisher: publisher, suggest: suggest}
}

func staticProviderAt(coord entity.Coordinate) service.LocationProvider {
	return location.NewStaticProvider(coord)
}

// submitAtKm submits a user listing a given number of kilometers north of
// the test viewer.
func submitAtKm(t *testing.T, fix *catalogFixture, seller usecase.Submitter, title string, km float64, category entity.Category) *entity.Listing {
	t.Helper()

	lat := testViewer.Latitude + km*degreesPerKm
	lng := testViewer.Longitude

	listing, err := fix.svc.SubmitListing(context.Background(), seller, usecase.SubmitListingInput{
		Title:     title,
		Price:     100,
		Category:  category,
		Delivery:  entity.DeliveryBoth,
		Locale:    entity.LocaleSpanish,
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)

	return listing
}

func newSubmitter() usecase.Submitter {
	return usecase.Submitter{ID: uuid.New().String(), Name: "Usuario Test"}
}

func TestCatalogService_Browse_RanksPromotedAndDistance(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	seller := newSubmitter()

	near2 := submitAtKm(t, fix, seller, "two km", 2, entity.CategoryOther)
	near3 := submitAtKm(t, fix, seller, "three km", 3, entity.CategoryOther)
	near4 := submitAtKm(t, fix, seller, "four km", 4, entity.CategoryOther)
	far20 := submitAtKm(t, fix, seller, "twenty km", 20, entity.CategoryOther)

	// Promote the farthest listing; it must outrank every plain listing.
	_, err := fix.svc.BoostListing(context.Background(), seller, far20.ID)
	require.NoError(t, err)

	result, err := fix.svc.Browse(context.Background(), usecase.BrowseQuery{Category: entity.CategoryAll})
	require.NoError(t, err)
	require.Len(t, result.Listings, 4)

	assert.Equal(t, far20.ID, result.Listings[0].ID)
	assert.Equal(t, near2.ID, result.Listings[1].ID)
	assert.Equal(t, near3.ID, result.Listings[2].ID)
	assert.Equal(t, near4.ID, result.Listings[3].ID)

	assert.InDelta(t, 20, result.Listings[0].Distance, 0.1)
	assert.InDelta(t, 2, result.Listings[1].Distance, 0.1)
	assert.True(t, result.LocationResolved)
	require.NotNil(t, result.Viewer)
	assert.InDelta(t, testViewer.Latitude, result.Viewer.Latitude, 1e-9)
}

func TestCatalogService_Browse_FallbackWhenLocationDenied(t *testing.T) {
	fix := newCatalogFixture(t, 0, location.NewDeniedProvider())

	result, err := fix.svc.Browse(context.Background(), usecase.BrowseQuery{Category: entity.CategoryAll})
	require.NoError(t, err)

	assert.False(t, result.LocationResolved)
	require.NotNil(t, result.Viewer)
	assert.InDelta(t, 19.4326, result.Viewer.Latitude, 1e-9)
	assert.InDelta(t, -99.1332, result.Viewer.Longitude, 1e-9)
}

func TestCatalogService_Browse_FiltersByLocalizedLabel(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	seller := newSubmitter()

	sofa := submitAtKm(t, fix, seller, "Sofá de tres plazas", 1, entity.CategoryFurniture)
	submitAtKm(t, fix, seller, "Bicicleta", 1, entity.CategorySports)

	// "muebles" matches the furniture listing through the localized label.
	result, err := fix.svc.Browse(context.Background(), usecase.BrowseQuery{
		Query:    "muebles",
		Category: entity.CategoryAll,
		Locale:   entity.LocaleSpanish,
	})
	require.NoError(t, err)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, sofa.ID, result.Listings[0].ID)

	// Facet filtering alone.
	result, err = fix.svc.Browse(context.Background(), usecase.BrowseQuery{
		Category: entity.CategorySports.String(),
	})
	require.NoError(t, err)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, "Bicicleta", result.Listings[0].Title)

	// No match.
	result, err = fix.svc.Browse(context.Background(), usecase.BrowseQuery{
		Query:    "zapatos de montaña",
		Category: entity.CategoryAll,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Listings)
}

func TestCatalogService_SubmitListing(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	seller := newSubmitter()

	listing, err := fix.svc.SubmitListing(context.Background(), seller, usecase.SubmitListingInput{
		Title:       "iPhone 13",
		Description: "Buen estado",
		Price:       5000,
		Category:    entity.CategoryElectronics,
		Delivery:    entity.DeliveryShipping,
		Locale:      entity.LocaleSpanish,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, seller.ID, listing.Seller.ID)
	assert.Equal(t, "MXN", listing.Currency)
	assert.Equal(t, "CDMX", listing.LocationName)
	assert.Equal(t, entity.ProvenanceUser, listing.Provenance)
	assert.False(t, listing.Promoted)

	// Location defaults to the resolved viewer coordinate.
	assert.InDelta(t, testViewer.Latitude, listing.Location.Latitude, 1e-9)

	// Created event published.
	require.Len(t, fix.publisher.events, 1)
	assert.Equal(t, service.ListingEventCreated, fix.publisher.events[0].Type)
	assert.Equal(t, listing.ID, fix.publisher.events[0].ListingID)

	// The submission shows up first in a browse.
	result, err := fix.svc.Browse(context.Background(), usecase.BrowseQuery{Category: entity.CategoryAll})
	require.NoError(t, err)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, listing.ID, result.Listings[0].ID)
}

func TestCatalogService_SubmitListing_ChineseLocaleCurrency(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))

	listing, err := fix.svc.SubmitListing(context.Background(), newSubmitter(), usecase.SubmitListingInput{
		Title:    "山地自行车",
		Price:    800,
		Category: entity.CategorySports,
		Delivery: entity.DeliveryBoth,
		Locale:   entity.LocaleChinese,
	})
	require.NoError(t, err)
	assert.Equal(t, "CNY", listing.Currency)
	assert.Equal(t, "Nearby", listing.LocationName)
}

func TestCatalogService_SubmitListing_InvalidCategory(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))

	_, err := fix.svc.SubmitListing(context.Background(), newSubmitter(), usecase.SubmitListingInput{
		Title:    "whatever",
		Price:    100,
		Category: entity.Category("weapons"),
		Delivery: entity.DeliveryBoth,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
}

func TestCatalogService_BoostListing(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	seller := newSubmitter()

	listing := submitAtKm(t, fix, seller, "boost me", 1, entity.CategoryOther)
	require.Len(t, fix.publisher.events, 1) // created event

	boosted, err := fix.svc.BoostListing(context.Background(), seller, listing.ID)
	require.NoError(t, err)
	assert.True(t, boosted.Promoted)
	require.Len(t, fix.publisher.events, 2)
	assert.Equal(t, service.ListingEventBoosted, fix.publisher.events[1].Type)

	// A second boost is idempotent and publishes nothing.
	boosted, err = fix.svc.BoostListing(context.Background(), seller, listing.ID)
	require.NoError(t, err)
	assert.True(t, boosted.Promoted)
	assert.Len(t, fix.publisher.events, 2)
}

func TestCatalogService_BoostListing_OwnershipViolation(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	seller := newSubmitter()
	listing := submitAtKm(t, fix, seller, "mine", 1, entity.CategoryOther)

	_, err := fix.svc.BoostListing(context.Background(), newSubmitter(), listing.ID)
	assert.ErrorIs(t, err, domainerrors.ErrListingOwnershipViolation)
}

func TestCatalogService_BoostListing_NotFound(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))

	_, err := fix.svc.BoostListing(context.Background(), newSubmitter(), uuid.New().String())
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestCatalogService_Reseed_PreservesUserListings(t *testing.T) {
	fix := newCatalogFixture(t, 25, staticProviderAt(testViewer))
	seller := newSubmitter()

	mine := submitAtKm(t, fix, seller, "survives reseed", 1, entity.CategoryOther)

	count, err := fix.svc.Reseed(context.Background(), entity.LocaleSpanish)
	require.NoError(t, err)
	assert.Equal(t, 25, count)

	// The user listing is still there alongside the fresh synthetic set.
	got, err := fix.svc.GetListing(context.Background(), mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "survives reseed", got.Title)

	result, err := fix.svc.Browse(context.Background(), usecase.BrowseQuery{Category: entity.CategoryAll})
	require.NoError(t, err)
	assert.Len(t, result.Listings, 26)

	// Reseeding again replaces synthetic listings without duplication.
	_, err = fix.svc.Reseed(context.Background(), entity.LocaleEnglish)
	require.NoError(t, err)

	result, err = fix.svc.Browse(context.Background(), usecase.BrowseQuery{Category: entity.CategoryAll})
	require.NoError(t, err)
	assert.Len(t, result.Listings, 26)
}

func TestCatalogService_MyListings(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	mySeller := newSubmitter()
	otherSeller := newSubmitter()

	first := submitAtKm(t, fix, mySeller, "first", 1, entity.CategoryOther)
	submitAtKm(t, fix, otherSeller, "not mine", 1, entity.CategoryOther)
	second := submitAtKm(t, fix, mySeller, "second", 1, entity.CategoryOther)

	mine, err := fix.svc.MyListings(context.Background(), mySeller.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// Most recent first.
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
}

func TestCatalogService_ListingQR(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	seller := newSubmitter()
	listing := submitAtKm(t, fix, seller, "qr target", 1, entity.CategoryOther)

	qrBytes, err := fix.svc.ListingQR(context.Background(), listing.ID)
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)
	assert.Equal(t, byte(0x89), qrBytes[0]) // PNG magic

	_, err = fix.svc.ListingQR(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestCatalogService_Suggest_PassesThroughServiceError(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	fix.suggest.err = domainerrors.ErrSuggestionDisabled

	_, err := fix.svc.Suggest(context.Background(), "aW1hZ2U=", entity.LocaleSpanish)
	assert.ErrorIs(t, err, domainerrors.ErrSuggestionDisabled)
}

func TestCatalogService_Suggest_ReturnsSuggestion(t *testing.T) {
	fix := newCatalogFixture(t, 0, staticProviderAt(testViewer))
	fix.suggest.suggestion = &service.ListingSuggestion{
		Title:    "Bicicleta de montaña",
		Category: entity.CategorySports,
		Price:    2500,
		Delivery: entity.DeliveryMeetup,
	}

	got, err := fix.svc.Suggest(context.Background(), "aW1hZ2U=", entity.LocaleSpanish)
	require.NoError(t, err)
	assert.Equal(t, "Bicicleta de montaña", got.Title)
}
