package store

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// linkPivot runs one idempotent pivot insert. Either identifier being
// empty is a skip, not an error: the orchestrator links whatever halves
// of a relation exist and warns about the rest.
func (s *Store) linkPivot(ctx context.Context, sql, table, a, b string) error {
	a = normalizeID(a)
	b = normalizeID(b)
	if a == "" || b == "" {
		zap.L().Warn("skipping pivot link with missing identifier",
			zap.String("table", table),
			zap.String("left", a),
			zap.String("right", b))
		return nil
	}
	_, err := s.q.Exec(ctx, sql, uuid.New().String(), a, b)
	return wrapQuery(err, "store: link "+table)
}

const linkSurveyLineSQL = `
INSERT INTO survey_line_pivots (id, survey_id, line_id)
VALUES ($1, $2, $3)
ON CONFLICT (survey_id, line_id) DO UPDATE SET updated_at = now()`

// LinkSurveyLine records that a line belongs to a survey.
func (s *Store) LinkSurveyLine(ctx context.Context, surveyID, lineID string) error {
	return s.linkPivot(ctx, linkSurveyLineSQL, "survey_line_pivots", surveyID, lineID)
}

const linkLineDataSQL = `
INSERT INTO line_data_pivots (id, line_id, seismic_data_id)
VALUES ($1, $2, $3)
ON CONFLICT (line_id, seismic_data_id) DO UPDATE SET updated_at = now()`

// LinkLineData records that a seismic file was shot on a line.
func (s *Store) LinkLineData(ctx context.Context, lineID, seismicDataID string) error {
	return s.linkPivot(ctx, linkLineDataSQL, "line_data_pivots", lineID, seismicDataID)
}

const linkWellMetadataSQL = `
INSERT INTO well_metadata_pivots (id, well_id, well_data_id)
VALUES ($1, $2, $3)
ON CONFLICT (well_id, well_data_id) DO UPDATE SET updated_at = now()`

// LinkWellMetadata records that a well document belongs to a well.
func (s *Store) LinkWellMetadata(ctx context.Context, wellID, wellDataID string) error {
	return s.linkPivot(ctx, linkWellMetadataSQL, "well_metadata_pivots", wellID, wellDataID)
}

const linkLineWellMetadataSQL = `
INSERT INTO line_well_metadata_pivots (id, seismic_line_id, well_metadata_id)
VALUES ($1, $2, $3)
ON CONFLICT (seismic_line_id, well_metadata_id) DO UPDATE SET updated_at = now()`

// LinkLineWellMetadata records that a well document was tagged against
// a seismic line.
func (s *Store) LinkLineWellMetadata(ctx context.Context, lineID, wellMetadataID string) error {
	return s.linkPivot(ctx, linkLineWellMetadataSQL, "line_well_metadata_pivots", lineID, wellMetadataID)
}

const linkWellSeismicDataSQL = `
INSERT INTO well_seismic_data_pivots (id, well_id, seismic_data_id)
VALUES ($1, $2, $3)
ON CONFLICT (well_id, seismic_data_id) DO UPDATE SET updated_at = now()`

// LinkWellSeismicData records that a seismic file was tagged against a
// well.
func (s *Store) LinkWellSeismicData(ctx context.Context, wellID, seismicDataID string) error {
	return s.linkPivot(ctx, linkWellSeismicDataSQL, "well_seismic_data_pivots", wellID, seismicDataID)
}
