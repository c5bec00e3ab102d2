// Package location provides viewer location acquisition strategies.
package location

import (
	"context"

	"descu/config"
	"descu/internal/domain/entity"
	"descu/internal/domain/service"
	"descu/internal/errors"
)

// Provider names accepted in configuration.
const (
	ProviderStatic = "static"
	ProviderDenied = "denied"
)

// ErrLocationDenied is returned when the viewer refuses the location request.
var ErrLocationDenied = errors.New("location access denied")

// staticProvider serves a fixed coordinate from configuration.
type staticProvider struct {
	coordinate entity.Coordinate
}

// NewStaticProvider creates a provider that always resolves to the given coordinate.
func NewStaticProvider(coordinate entity.Coordinate) service.LocationProvider {
	return &staticProvider{coordinate: coordinate}
}

func (p *staticProvider) ViewerCoordinate(_ context.Context) (entity.Coordinate, error) {
	return p.coordinate, nil
}

// deniedProvider simulates a viewer refusing the location request.
type deniedProvider struct{}

// NewDeniedProvider creates a provider whose acquisition always fails.
func NewDeniedProvider() service.LocationProvider {
	return &deniedProvider{}
}

func (p *deniedProvider) ViewerCoordinate(_ context.Context) (entity.Coordinate, error) {
	return entity.Coordinate{}, ErrLocationDenied
}

// NewProvider selects a LocationProvider from configuration.
func NewProvider(cfg *config.Config) (service.LocationProvider, error) {
	loc := cfg.Location
	if loc == nil {
		return NewDeniedProvider(), nil
	}

	switch loc.Provider {
	case ProviderStatic:
		return NewStaticProvider(entity.Coordinate{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		}), nil
	case ProviderDenied, "":
		return NewDeniedProvider(), nil
	default:
		return nil, errors.Errorf("unknown location provider: %s", loc.Provider)
	}
}
