package store

import (
	"context"

	"github.com/edafy/ingest-cli/internal/db"
	"github.com/edafy/ingest-cli/internal/model"
)

var coordinateColumns = []string{"latitude", "longitude", "survey_id", "line_id"}

// InsertCoordinates bulk-loads transformed coordinate samples for a
// line via the COPY protocol. Coordinates are write-once; re-ingesting
// a line appends its fresh batch after ClearCoordinates.
func (s *Store) InsertCoordinates(ctx context.Context, coords []model.SeismicCoordinate) (int64, error) {
	if len(coords) == 0 {
		return 0, nil
	}
	rows := make([][]any, 0, len(coords))
	for _, c := range coords {
		rows = append(rows, []any{c.Latitude, c.Longitude, normalizeID(c.SurveyID), normalizeID(c.LineID)})
	}
	n, err := db.CopyFrom(ctx, s.q, "seismic_coordinates", coordinateColumns, rows)
	if err != nil {
		return 0, wrapQuery(err, "store: insert coordinates")
	}
	return n, nil
}

// ClearCoordinates drops any previously back-filled samples for a line
// so a re-ingest replaces rather than duplicates them.
func (s *Store) ClearCoordinates(ctx context.Context, lineID string) error {
	_, err := s.q.Exec(ctx, `DELETE FROM seismic_coordinates WHERE line_id = $1`, normalizeID(lineID))
	return wrapQuery(err, "store: clear coordinates")
}

// ListCoordinates returns a line's coordinate samples in insertion
// order.
func (s *Store) ListCoordinates(ctx context.Context, lineID string) ([]model.SeismicCoordinate, error) {
	rows, err := s.q.Query(ctx,
		`SELECT latitude, longitude, survey_id, line_id FROM seismic_coordinates WHERE line_id = $1 ORDER BY id`,
		normalizeID(lineID))
	if err != nil {
		return nil, wrapQuery(err, "store: list coordinates")
	}
	defer rows.Close()

	var coords []model.SeismicCoordinate
	for rows.Next() {
		var c model.SeismicCoordinate
		if err := rows.Scan(&c.Latitude, &c.Longitude, &c.SurveyID, &c.LineID); err != nil {
			return nil, wrapQuery(err, "store: list coordinates scan")
		}
		coords = append(coords, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQuery(err, "store: list coordinates rows")
	}
	return coords, nil
}

// LineExtent is the geographic roll-up computed from a line's
// coordinate samples, written back onto the line row. CompositeName
// must match the persisted row; the bulk upsert path requires it.
type LineExtent struct {
	LineID               string
	CompositeName        string
	NorthernmostLatitude float64
	SouthernmostLatitude float64
	WesternmostLongitude float64
	EasternmostLongitude float64
	LengthMetres         float64
}

var extentUpdateCols = []string{
	"northernmost_latitude", "southernmost_latitude",
	"westernmost_longitude", "easternmost_longitude",
	"length_metres", "updated_at",
}

// BackfillLineExtents writes computed extents onto their line rows in
// one bulk upsert. Must run inside the caller's transaction: the lines
// were just upserted there, and the temp table drops on commit.
func (s *Store) BackfillLineExtents(ctx context.Context, extents []LineExtent) error {
	rows := make([][]any, 0, len(extents))
	for _, e := range extents {
		id := normalizeID(e.LineID)
		if id == "" {
			continue
		}
		rows = append(rows, []any{
			id, NormalizeKey(e.CompositeName),
			e.NorthernmostLatitude, e.SouthernmostLatitude,
			e.WesternmostLongitude, e.EasternmostLongitude, e.LengthMetres,
		})
	}
	_, err := db.BulkUpsert(ctx, s.q, db.UpsertConfig{
		Table: "seismic_lines",
		Columns: []string{
			"id", "composite_name",
			"northernmost_latitude", "southernmost_latitude",
			"westernmost_longitude", "easternmost_longitude", "length_metres",
		},
		ConflictKeys: []string{"id"},
		UpdateCols:   extentUpdateCols,
	}, rows)
	if err != nil {
		return wrapQuery(err, "store: backfill line extents")
	}
	return nil
}
