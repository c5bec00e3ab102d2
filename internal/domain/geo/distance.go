// Package geo provides great-circle distance computation for catalog ranking.
package geo

import (
	"math"

	"descu/internal/domain/entity"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between two coordinates in
// kilometers, using the haversine formula. It is symmetric and returns 0
// for identical coordinates. Out-of-range latitude or longitude values
// are not validated; supplying valid WGS-84 degrees is the caller's
// responsibility.
func Distance(a, b entity.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
