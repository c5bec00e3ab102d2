package service

import (
	"context"
)

// Listing event types.
const (
	ListingEventCreated = "listing.created"
	ListingEventBoosted = "listing.boosted"
)

// ListingEvent represents a catalog mutation published for async consumers
type ListingEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Type      string  `json:"type"`
	ListingID string  `json:"listing_id"`
	SellerID  string  `json:"seller_id"`
	Category  string  `json:"category"`
	Price     int64   `json:"price"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a listing event for async processing
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
