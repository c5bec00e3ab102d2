// Package generator produces synthetic catalog listings with a controlled
// geographic and categorical distribution around a viewer coordinate. The
// output seeds the catalog store and stresses the ranking pipeline; with
// a fixed random source the output is fully deterministic.
package generator

import (
	"math/rand"
	"time"

	"descu/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Spatial bands. Each band is a square window of side bandWindow degrees
// centered on the viewer; latitude and longitude offsets are drawn
// independently and uniformly from [-window/2, +window/2]. This is a
// square-window approximation rather than a uniform disk, and the shape
// is load-bearing for downstream distribution checks, so it must not be
// "corrected" to disk sampling.
const (
	nearWindowDeg = 0.036 // most listings land within a few kilometers
	midWindowDeg  = 0.14  // tens of kilometers
	farWindowDeg  = 0.4   // continental-city distances

	nearBandProbability = 0.4
	midBandProbability  = 0.4 // remaining 0.2 falls in the far band
)

const (
	promotedRate       = 0.08
	sellerVerifiedRate = 0.2
	sellerPoolSize     = 50
	maxListingAgeDays  = 30
)

// Generator produces synthetic listings. The random source is injected so
// tests can pin a seed and assert exact output.
type Generator struct {
	rng *rand.Rand
}

// New is the constructor for Generator.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded is a convenience constructor with an explicit seed.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// Generate produces count synthetic listings centered on the viewer
// coordinate, with titles and descriptions drawn from the pools of the
// given locale (falling back to the default locale's pools).
func (g *Generator) Generate(count int, viewer entity.Coordinate, locale entity.Locale) ([]entity.Listing, error) {
	if count < 0 {
		return nil, errors.Errorf("invalid listing count: %d", count)
	}

	listings := make([]entity.Listing, 0, count)
	categories := entity.Categories()
	now := time.Now()

	for i := 0; i < count; i++ {
		category := categories[g.rng.Intn(len(categories))]
		pool := templatePools[category]
		tmpl := pool[g.rng.Intn(len(pool))]

		location := g.placeInBand(viewer)
		price := jitterPrice(tmpl.basePrice, g.rng.Float64())
		descPool := descriptions(locale)

		listings = append(listings, entity.Listing{
			ID:           g.newListingID(),
			Seller:       g.pickSeller(),
			Title:        tmpl.title(locale),
			Description:  descPool[g.rng.Intn(len(descPool))],
			Price:        price,
			Currency:     currencyFor(locale),
			Image:        tmpl.image,
			Category:     category,
			Delivery:     g.deliveryFor(category),
			Location:     location,
			LocationName: locationNameFor(locale),
			CreatedAt:    now.Add(-g.randomAge()).UnixMilli(),
			Promoted:     g.rng.Float64() < promotedRate,
			Provenance:   entity.ProvenanceSynthetic,
		})
	}

	return listings, nil
}

// placeInBand draws one of the three concentric bands (40% near, 40% mid,
// 20% far) and places a coordinate uniformly within the band's square
// window around the viewer.
func (g *Generator) placeInBand(viewer entity.Coordinate) entity.Coordinate {
	var window float64
	switch draw := g.rng.Float64(); {
	case draw < nearBandProbability:
		window = nearWindowDeg
	case draw < nearBandProbability+midBandProbability:
		window = midWindowDeg
	default:
		window = farWindowDeg
	}

	bound := bandBound(viewer, window)
	lon := bound.Min.Lon() + g.rng.Float64()*(bound.Max.Lon()-bound.Min.Lon())
	lat := bound.Min.Lat() + g.rng.Float64()*(bound.Max.Lat()-bound.Min.Lat())

	return entity.CoordinateFromPoint(orb.Point{lon, lat})
}

// bandBound is the square window of side windowDeg centered on the viewer.
func bandBound(viewer entity.Coordinate, windowDeg float64) orb.Bound {
	center := viewer.Point()
	half := windowDeg / 2

	return orb.Bound{
		Min: orb.Point{center.Lon() - half, center.Lat() - half},
		Max: orb.Point{center.Lon() + half, center.Lat() + half},
	}
}

// jitterPrice multiplies the base price by a factor in [0.8, 1.2] and
// floors the result to the nearest multiple of 10.
func jitterPrice(basePrice int64, draw float64) int64 {
	jitter := 0.8 + draw*0.4

	return int64(float64(basePrice)*jitter/10) * 10
}

// deliveryFor applies the category-dependent delivery policy: inherently
// local categories always meet up, easily shippable ones split evenly
// between shipping and both, everything else defaults to both.
func (g *Generator) deliveryFor(category entity.Category) entity.DeliveryMode {
	switch category {
	case entity.CategoryVehicles, entity.CategoryRealEstate, entity.CategoryServices, entity.CategoryFurniture:
		return entity.DeliveryMeetup
	case entity.CategoryClothing, entity.CategoryBooks:
		if g.rng.Float64() > 0.5 {
			return entity.DeliveryShipping
		}

		return entity.DeliveryBoth
	default:
		return entity.DeliveryBoth
	}
}

// pickSeller draws from a bounded seller pool so repeated runs produce
// recognizable recurring sellers.
func (g *Generator) pickSeller() entity.Seller {
	idx := g.rng.Intn(sellerPoolSize)

	return entity.Seller{
		ID:       sellerID(idx),
		Name:     sellerName(idx),
		Avatar:   sellerAvatar(idx),
		Verified: g.rng.Float64() < sellerVerifiedRate,
	}
}

func (g *Generator) randomAge() time.Duration {
	maxAge := maxListingAgeDays * 24 * time.Hour

	return time.Duration(g.rng.Int63n(int64(maxAge)))
}

func currencyFor(locale entity.Locale) string {
	if locale == entity.LocaleChinese {
		return "CNY"
	}

	return "MXN"
}

func locationNameFor(locale entity.Locale) string {
	if locale.OrDefault() == entity.LocaleSpanish {
		return "CDMX"
	}

	return "Nearby"
}
