// Package geo converts bounding-box corners into polygons for
// within-polygon containment queries.
package geo

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformedCoordinate is returned when a "lat,lng" pair cannot be parsed.
var ErrMalformedCoordinate = errors.New("coordinate must be in lat,lng format")

// LatLng is a geographic coordinate.
type LatLng struct {
	Lat float64
	Lng float64
}

// Point is a vertex in (longitude, latitude) order.
type Point [2]float64

// Polygon is a closed ring of points: the first point is repeated last.
type Polygon []Point

// ParseLatLng parses a "lat,lng" pair such as "60.17,24.94".
// Values are not range checked.
func ParseLatLng(s string) (LatLng, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return LatLng{}, ErrMalformedCoordinate
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return LatLng{}, ErrMalformedCoordinate
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return LatLng{}, ErrMalformedCoordinate
	}

	return LatLng{Lat: lat, Lng: lng}, nil
}

// RectangleFromCorners returns the closed rectangle spanned by two opposite corners,
// traced topRight, top-left, bottomLeft, bottom-right and back to topRight.
func RectangleFromCorners(topRight, bottomLeft LatLng) Polygon {
	return Polygon{
		{topRight.Lng, topRight.Lat},
		{bottomLeft.Lng, topRight.Lat},
		{bottomLeft.Lng, bottomLeft.Lat},
		{topRight.Lng, bottomLeft.Lat},
		{topRight.Lng, topRight.Lat},
	}
}

// String renders the polygon as a PostgreSQL polygon literal,
// e.g. ((10,10),(0,10),(0,0),(10,0),(10,10)).
func (p Polygon) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, pt := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		b.WriteString(strconv.FormatFloat(pt[0], 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(pt[1], 'f', -1, 64))
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}
