// Package service defines domain-level interfaces for external collaborators.
// Concrete implementations live under internal/infra.
package service

import (
	"context"

	"descu/internal/domain/entity"
)

// LocationProvider supplies the viewer's coordinate. Acquisition is a
// one-shot request: it either succeeds with a coordinate or fails
// (denied, unavailable), with no retry. On failure the caller substitutes
// a documented fallback coordinate and proceeds; the pipeline never
// blocks on location.
type LocationProvider interface {
	// ViewerCoordinate resolves the viewer's current position.
	ViewerCoordinate(ctx context.Context) (entity.Coordinate, error)
}
