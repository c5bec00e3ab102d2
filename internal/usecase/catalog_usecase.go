package usecase

import (
	"context"

	"descu/internal/domain/entity"
	"descu/internal/domain/ranking"
	"descu/internal/domain/service"
)

// BrowseQuery holds the parameters of a catalog browse request.
type BrowseQuery struct {
	// Query is the free-text search input; empty or whitespace means no
	// text filtering.
	Query string

	// Category is a category key or the "all" sentinel.
	Category string

	// Locale selects the label table for the text filter's reverse lookup.
	Locale entity.Locale
}

// BrowseResult is the ranked catalog slice for a browse request.
type BrowseResult struct {
	Listings []ranking.Ranked

	// Viewer is the coordinate the ranking used, nil when location could
	// not be resolved and ranking ran in pass-through mode.
	Viewer *entity.Coordinate

	// LocationResolved reports whether the viewer coordinate came from
	// the location provider rather than the configured fallback.
	LocationResolved bool
}

// SubmitListingInput carries a user-submitted listing draft.
type SubmitListingInput struct {
	Title       string
	Description string
	Price       int64
	Category    entity.Category
	Delivery    entity.DeliveryMode
	Image       string
	Locale      entity.Locale

	// Latitude/Longitude override the listing location; when nil the
	// viewer's resolved coordinate is used.
	Latitude  *float64
	Longitude *float64
}

// Submitter identifies the authenticated viewer submitting or boosting.
type Submitter struct {
	ID   string
	Name string
}

// CatalogUsecase defines the catalog discovery and submission use cases
type CatalogUsecase interface {
	// Browse resolves the viewer location, filters and ranks the catalog
	Browse(ctx context.Context, query BrowseQuery) (*BrowseResult, error)

	// SubmitListing adds a user-provenance listing and publishes a created event
	SubmitListing(ctx context.Context, submitter Submitter, input SubmitListingInput) (*entity.Listing, error)

	// BoostListing promotes a listing owned by the submitter; idempotent
	BoostListing(ctx context.Context, submitter Submitter, listingID string) (*entity.Listing, error)

	// MyListings retrieves the submitter's listings, most recent first
	MyListings(ctx context.Context, sellerID string) ([]entity.Listing, error)

	// GetListing retrieves a single listing by identity
	GetListing(ctx context.Context, listingID string) (*entity.Listing, error)

	// ListingQR renders the share QR code for a listing
	ListingQR(ctx context.Context, listingID string) ([]byte, error)

	// Suggest analyzes a listing photo and proposes submission metadata
	Suggest(ctx context.Context, imageBase64 string, locale entity.Locale) (*service.ListingSuggestion, error)

	// Reseed regenerates the synthetic catalog for a locale, preserving
	// user listings. Returns the number of listings generated.
	Reseed(ctx context.Context, locale entity.Locale) (int, error)
}
