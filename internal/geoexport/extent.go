// Package geoexport turns back-filled coordinate tracks into geographic
// summaries and shapefile exports.
package geoexport

import (
	"math"

	"github.com/twpayne/go-geom"

	"github.com/edafy/ingest-cli/internal/model"
	"github.com/edafy/ingest-cli/internal/store"
)

const earthRadiusMetres = 6371008.8

// Track builds a WGS84 line geometry from coordinate samples in
// longitude/latitude order. Returns nil for fewer than two samples.
func Track(coords []model.SeismicCoordinate) *geom.LineString {
	if len(coords) < 2 {
		return nil
	}
	flat := make([]float64, 0, len(coords)*2)
	for _, c := range coords {
		flat = append(flat, c.Longitude, c.Latitude)
	}
	return geom.NewLineStringFlat(geom.XY, flat).SetSRID(4326)
}

// Extent computes the line's geographic roll-up from its transformed
// coordinates: the bounding extremes and the great-circle track length.
// Returns false when there are too few samples to form a track.
func Extent(lineID string, coords []model.SeismicCoordinate) (store.LineExtent, bool) {
	ls := Track(coords)
	if ls == nil {
		return store.LineExtent{}, false
	}

	b := ls.Bounds()
	return store.LineExtent{
		LineID:               lineID,
		NorthernmostLatitude: b.Max(1),
		SouthernmostLatitude: b.Min(1),
		WesternmostLongitude: b.Min(0),
		EasternmostLongitude: b.Max(0),
		LengthMetres:         trackLength(ls),
	}, true
}

// trackLength sums great-circle segment distances along the line.
func trackLength(ls *geom.LineString) float64 {
	var total float64
	n := ls.NumCoords()
	for i := 1; i < n; i++ {
		total += haversine(ls.Coord(i-1), ls.Coord(i))
	}
	return total
}

// haversine returns the great-circle distance in metres between two
// lon/lat coordinates.
func haversine(a, b geom.Coord) float64 {
	lat1 := a[1] * math.Pi / 180
	lat2 := b[1] * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b[0] - a[0]) * math.Pi / 180

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMetres * math.Asin(math.Sqrt(s))
}
