package ranking

import (
	"math"
	"sort"

	"descu/internal/domain/entity"
	"descu/internal/domain/geo"
)

// DefaultProximityKm is the reference proximity threshold: listings within
// this distance of the viewer outrank listings outside it, promoted status
// being equal. Configurable via catalog.proximityKm.
const DefaultProximityKm = 5.0

// UnknownDistance is the Distance value of a Ranked entry produced
// without a viewer coordinate.
const UnknownDistance = -1.0

// Ranked is a listing annotated with its distance from the viewer at
// ranking time. The distance is transient: it is recomputed on every
// ranking pass and never stored on the listing itself.
type Ranked struct {
	entity.Listing

	// Distance is the unrounded viewer distance in kilometers, or
	// UnknownDistance when no viewer coordinate was available.
	Distance float64 `json:"distance"`
}

// DisplayDistance returns the distance rounded to one decimal place for
// presentation. Ranking always uses the unrounded value; rounding here
// would flip orderings between listings in the same bucket.
func (r Ranked) DisplayDistance() float64 {
	if r.Distance == UnknownDistance {
		return UnknownDistance
	}

	return math.Round(r.Distance*10) / 10
}

// Rank orders listings for a viewer. With a nil viewer coordinate the
// input passes through unordered, distances unknown; distance tiers
// cannot apply. Otherwise every listing is annotated with its haversine
// distance and sorted by a three-tier comparator:
//
//  1. promoted listings strictly before non-promoted ones;
//  2. within equal promoted status, listings inside the proximity
//     threshold before those outside it;
//  3. within equal promoted status and proximity bucket, ascending
//     distance.
//
// The sort is stable: listings tied on all three tiers keep their input
// order, so feeding an already ranked sequence back in reproduces it.
func Rank(listings []entity.Listing, viewer *entity.Coordinate, proximityKm float64) []Ranked {
	out := make([]Ranked, 0, len(listings))

	if viewer == nil {
		for _, listing := range listings {
			out = append(out, Ranked{Listing: listing, Distance: UnknownDistance})
		}

		return out
	}

	for _, listing := range listings {
		out = append(out, Ranked{
			Listing:  listing,
			Distance: geo.Distance(*viewer, listing.Location),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if a.Promoted != b.Promoted {
			return a.Promoted
		}

		aClose := a.Distance <= proximityKm
		bClose := b.Distance <= proximityKm
		if aClose != bClose {
			return aClose
		}

		return a.Distance < b.Distance
	})

	return out
}
