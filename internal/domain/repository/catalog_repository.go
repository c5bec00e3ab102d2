// Package repository defines the interfaces for the catalog storage layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"descu/internal/domain/entity"
	"descu/internal/errors"
)

// Domain-specific errors for catalog storage.
var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrDuplicateListing is returned when a listing identity already exists.
	// Identity generation discipline should make this unreachable; hitting
	// it is a programmer error, not a user-facing condition.
	ErrDuplicateListing = errors.New("listing identity already exists")
	// ErrInvalidProvenance is returned when a listing carries the wrong
	// provenance tag for the operation.
	ErrInvalidProvenance = errors.New("listing has invalid provenance for this operation")
)

// CatalogRepository defines the interface for catalog storage operations.
// The catalog is partitioned by provenance: the synthetic set may be
// wholesale replaced while user-submitted listings must survive.
type CatalogRepository interface {
	// ReplaceSynthetic atomically removes every synthetic listing and
	// inserts the given set. User-provenance listings are untouched; no
	// intermediate state with both old and new synthetic sets (or
	// neither) is ever visible. Every listing in the set must carry
	// entity.ProvenanceSynthetic.
	ReplaceSynthetic(ctx context.Context, listings []entity.Listing) error

	// AddUserListing prepends a new user-provenance listing. Returns
	// ErrDuplicateListing on identity collision.
	AddUserListing(ctx context.Context, listing entity.Listing) error

	// Boost flips the promoted flag to true. The transition is monotonic
	// and idempotent: a second call, or a call for an unknown identity,
	// changes nothing. The returned bool reports whether state changed.
	Boost(ctx context.Context, id string) (bool, error)

	// All returns the current full catalog: user listings first, most
	// recent first, followed by the synthetic set in no guaranteed order.
	All(ctx context.Context) ([]entity.Listing, error)

	// FindByID retrieves a listing by identity.
	// Returns ErrListingNotFound if absent.
	FindByID(ctx context.Context, id string) (entity.Listing, error)

	// FindBySeller retrieves all listings offered by a seller, user
	// submissions first in most-recent-first order.
	FindBySeller(ctx context.Context, sellerID string) ([]entity.Listing, error)
}
