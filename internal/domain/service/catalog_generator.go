package service

import (
	"descu/internal/domain/entity"
)

// CatalogGenerator produces synthetic listings centered on a viewer
// coordinate. The concrete implementation lives in internal/infra/generator.
type CatalogGenerator interface {
	// Generate produces count synthetic listings with titles and
	// descriptions drawn from the pools of the given locale.
	Generate(count int, viewer entity.Coordinate, locale entity.Locale) ([]entity.Listing, error)
}
