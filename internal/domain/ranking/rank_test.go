package ranking

import (
	"math/rand"
	"testing"

	"descu/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewer = entity.Coordinate{Latitude: 19.4326, Longitude: -99.1332}

// degreesPerKm converts a northward kilometer offset into latitude degrees,
// so test listings can be placed at (approximately) exact distances.
const degreesPerKm = 1 / 111.19492664455873

func listingAtKm(id string, km float64, promoted bool) entity.Listing {
	return entity.Listing{
		ID:       id,
		Title:    "listing " + id,
		Category: entity.CategoryOther,
		Promoted: promoted,
		Location: entity.Coordinate{
			Latitude:  viewer.Latitude + km*degreesPerKm,
			Longitude: viewer.Longitude,
		},
	}
}

func TestRank_NilViewerPassesThrough(t *testing.T) {
	listings := []entity.Listing{
		listingAtKm("a", 30, false),
		listingAtKm("b", 1, true),
		listingAtKm("c", 10, false),
	}

	ranked := Rank(listings, nil, DefaultProximityKm)

	require.Len(t, ranked, 3)
	for i, r := range ranked {
		assert.Equal(t, listings[i].ID, r.ID)
		assert.Equal(t, UnknownDistance, r.Distance)
	}
}

func TestRank_PromotedAlwaysFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	listings := make([]entity.Listing, 0, 60)
	for i := 0; i < 60; i++ {
		listings = append(listings, listingAtKm(
			string(rune('a'+i%26))+string(rune('0'+i/26)),
			rng.Float64()*40,
			rng.Float64() < 0.3,
		))
	}

	ranked := Rank(listings, &viewer, DefaultProximityKm)

	seenPlain := false
	for _, r := range ranked {
		if !r.Promoted {
			seenPlain = true
		} else {
			assert.False(t, seenPlain, "promoted listing %s sorted after a non-promoted one", r.ID)
		}
	}
}

func TestRank_ProximityBucketBeforeDistance(t *testing.T) {
	listings := []entity.Listing{
		listingAtKm("far", 12, false),
		listingAtKm("near", 3, false),
		listingAtKm("edge", 4.9, false),
		listingAtKm("outside", 5.2, false),
	}

	ranked := Rank(listings, &viewer, DefaultProximityKm)

	require.Len(t, ranked, 4)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, "edge", ranked[1].ID)
	assert.Equal(t, "outside", ranked[2].ID)
	assert.Equal(t, "far", ranked[3].ID)
}

func TestRank_DistanceNonDecreasingWithinBucket(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	listings := make([]entity.Listing, 0, 100)
	for i := 0; i < 100; i++ {
		listings = append(listings, listingAtKm(
			string(rune('a'+i%26))+string(rune('0'+i/26)),
			rng.Float64()*60,
			rng.Float64() < 0.1,
		))
	}

	ranked := Rank(listings, &viewer, DefaultProximityKm)

	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if prev.Promoted != cur.Promoted {
			continue
		}
		prevClose := prev.Distance <= DefaultProximityKm
		curClose := cur.Distance <= DefaultProximityKm
		if prevClose != curClose {
			continue
		}
		assert.LessOrEqual(t, prev.Distance, cur.Distance)
	}
}

func TestRank_PromotedFarBeatsPlainNear(t *testing.T) {
	// End-to-end scenario from the product: a promoted listing 20 km out
	// still outranks a non-promoted listing 2 km away.
	listings := []entity.Listing{
		listingAtKm("plain-near", 2, false),
		listingAtKm("promoted-far", 20, true),
	}

	ranked := Rank(listings, &viewer, DefaultProximityKm)

	require.Len(t, ranked, 2)
	assert.Equal(t, "promoted-far", ranked[0].ID)
	assert.Equal(t, "plain-near", ranked[1].ID)
}

func TestRank_AscendingDistanceForPlainListings(t *testing.T) {
	listings := []entity.Listing{
		listingAtKm("four", 4, false),
		listingAtKm("three", 3, false),
	}

	ranked := Rank(listings, &viewer, DefaultProximityKm)

	require.Len(t, ranked, 2)
	assert.Equal(t, "three", ranked[0].ID)
	assert.Equal(t, "four", ranked[1].ID)
}

func TestRank_Stable(t *testing.T) {
	// Several listings at identical distances: their relative input order
	// must survive, and re-ranking an already ranked sequence must be a
	// fixed point.
	listings := []entity.Listing{
		listingAtKm("a", 3, false),
		listingAtKm("b", 3, false),
		listingAtKm("c", 3, false),
		listingAtKm("d", 8, false),
		listingAtKm("e", 8, false),
	}

	first := Rank(listings, &viewer, DefaultProximityKm)
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", first[1].ID)
	assert.Equal(t, "c", first[2].ID)

	again := make([]entity.Listing, 0, len(first))
	for _, r := range first {
		again = append(again, r.Listing)
	}
	second := Rank(again, &viewer, DefaultProximityKm)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.InDelta(t, first[i].Distance, second[i].Distance, 1e-12)
	}
}

func TestRanked_DisplayDistance(t *testing.T) {
	r := Ranked{Distance: 3.14159}
	assert.InDelta(t, 3.1, r.DisplayDistance(), 1e-9)

	r = Ranked{Distance: 4.97}
	assert.InDelta(t, 5.0, r.DisplayDistance(), 1e-9)

	r = Ranked{Distance: UnknownDistance}
	assert.Equal(t, UnknownDistance, r.DisplayDistance())
}
