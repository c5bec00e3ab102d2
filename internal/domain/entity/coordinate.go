// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// Coordinate is a geographic position in WGS-84 degrees.
// Values are not normalized; callers are responsible for supplying
// latitudes in [-90, 90] and longitudes in [-180, 180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinate to an orb.Point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinateFromPoint builds a Coordinate from an orb.Point (lon, lat order).
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}
