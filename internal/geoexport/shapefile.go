package geoexport

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/model"
)

// LineTrack is one named coordinate track to export.
type LineTrack struct {
	Name        string
	Coordinates []model.SeismicCoordinate
}

// WriteShapefile exports line tracks as a POLYLINE shapefile with a
// NAME attribute per record. Tracks with fewer than two samples are
// skipped with a warning; writing zero records is still a valid file.
func WriteShapefile(path string, tracks []LineTrack) error {
	writer, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		return eris.Wrapf(err, "geoexport: create shapefile %s", path)
	}
	defer writer.Close()

	fields := []shp.Field{shp.StringField("NAME", 64)}
	if err := writer.SetFields(fields); err != nil {
		return eris.Wrap(err, "geoexport: set shapefile fields")
	}

	row := 0
	for _, track := range tracks {
		if len(track.Coordinates) < 2 {
			zap.L().Warn("skipping track with too few coordinates",
				zap.String("line", track.Name),
				zap.Int("samples", len(track.Coordinates)))
			continue
		}

		points := make([]shp.Point, 0, len(track.Coordinates))
		for _, c := range track.Coordinates {
			points = append(points, shp.Point{X: c.Longitude, Y: c.Latitude})
		}
		pl := &shp.PolyLine{
			Box:       boxFor(points),
			NumParts:  1,
			NumPoints: int32(len(points)),
			Parts:     []int32{0},
			Points:    points,
		}
		writer.Write(pl)
		if err := writer.WriteAttribute(row, 0, track.Name); err != nil {
			return eris.Wrapf(err, "geoexport: write NAME attribute for %s", track.Name)
		}
		row++
	}
	return nil
}

func boxFor(points []shp.Point) shp.Box {
	box := shp.Box{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < box.MinX {
			box.MinX = p.X
		}
		if p.X > box.MaxX {
			box.MaxX = p.X
		}
		if p.Y < box.MinY {
			box.MinY = p.Y
		}
		if p.Y > box.MaxY {
			box.MaxY = p.Y
		}
	}
	return box
}
