// Package memory contains the in-memory implementation of the catalog
// storage layer. The catalog fits in memory at reference scale (hundreds
// of listings) and durability across restarts is an explicit non-goal,
// so there is no database behind it.
package memory

import (
	"context"
	"sync"

	"descu/internal/domain/entity"
	"descu/internal/domain/repository"
)

// catalogStore implements repository.CatalogRepository with a mutex-guarded
// map. Mutations are serialized by the write lock, which is what makes
// ReplaceSynthetic atomic from any reader's perspective.
type catalogStore struct {
	mu sync.RWMutex

	listings  map[string]entity.Listing
	userOrder []string // user-provenance ids, most recent first

	// snapshot caches the All() view; it is invalidated on structural
	// change and rebuilt lazily on the next read.
	snapshot []entity.Listing
}

// NewCatalogStore is the constructor for the in-memory catalog store.
func NewCatalogStore() repository.CatalogRepository {
	return &catalogStore{
		listings: make(map[string]entity.Listing),
	}
}

// ReplaceSynthetic atomically swaps the synthetic partition of the catalog.
func (s *catalogStore) ReplaceSynthetic(ctx context.Context, incoming []entity.Listing) error {
	for _, listing := range incoming {
		if listing.Provenance != entity.ProvenanceSynthetic {
			return repository.ErrInvalidProvenance
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, listing := range s.listings {
		if listing.Provenance == entity.ProvenanceSynthetic {
			delete(s.listings, id)
		}
	}
	for _, listing := range incoming {
		s.listings[listing.ID] = listing
	}
	s.snapshot = nil

	return nil
}

// AddUserListing prepends a user-submitted listing.
func (s *catalogStore) AddUserListing(ctx context.Context, listing entity.Listing) error {
	if listing.Provenance != entity.ProvenanceUser {
		return repository.ErrInvalidProvenance
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.listings[listing.ID]; exists {
		return repository.ErrDuplicateListing
	}

	s.listings[listing.ID] = listing
	s.userOrder = append([]string{listing.ID}, s.userOrder...)
	s.snapshot = nil

	return nil
}

// Boost flips the promoted flag to true, once.
func (s *catalogStore) Boost(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, exists := s.listings[id]
	if !exists || listing.Promoted {
		return false, nil
	}

	listing.Promoted = true
	s.listings[id] = listing
	s.snapshot = nil

	return true, nil
}

// All returns the cached catalog view, rebuilding it if a mutation
// invalidated it since the last read.
func (s *catalogStore) All(ctx context.Context) ([]entity.Listing, error) {
	s.mu.RLock()
	if snap := s.snapshot; snap != nil {
		s.mu.RUnlock()

		return snap, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		s.snapshot = s.buildSnapshotLocked()
	}

	return s.snapshot, nil
}

// FindByID retrieves a listing by identity.
func (s *catalogStore) FindByID(ctx context.Context, id string) (entity.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, exists := s.listings[id]
	if !exists {
		return entity.Listing{}, repository.ErrListingNotFound
	}

	return listing, nil
}

// FindBySeller retrieves every listing for a seller, user submissions first.
func (s *catalogStore) FindBySeller(ctx context.Context, sellerID string) ([]entity.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Listing
	for _, id := range s.userOrder {
		if listing, exists := s.listings[id]; exists && listing.Seller.ID == sellerID {
			out = append(out, listing)
		}
	}
	for _, listing := range s.listings {
		if listing.Provenance == entity.ProvenanceSynthetic && listing.Seller.ID == sellerID {
			out = append(out, listing)
		}
	}

	return out, nil
}

// buildSnapshotLocked assembles the full catalog sequence: user listings
// in most-recent-first order, then the synthetic set. Callers must hold
// the write lock.
func (s *catalogStore) buildSnapshotLocked() []entity.Listing {
	out := make([]entity.Listing, 0, len(s.listings))

	for _, id := range s.userOrder {
		if listing, exists := s.listings[id]; exists {
			out = append(out, listing)
		}
	}
	for _, listing := range s.listings {
		if listing.Provenance == entity.ProvenanceSynthetic {
			out = append(out, listing)
		}
	}

	return out
}
