package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/model"
	"github.com/edafy/ingest-cli/pkg/coordtrans"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

// stubTransform satisfies coordtrans.Client with a canned response.
type stubTransform struct {
	result *coordtrans.BatchResult
	err    error
	calls  int
	gotCfg []coordtrans.FileConfig
}

func (s *stubTransform) TransformBatch(_ context.Context, configs []coordtrans.FileConfig, _ int, _ string) (*coordtrans.BatchResult, error) {
	s.calls++
	s.gotCfg = configs
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func rowsWithID(id string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now)
}

// anyArgs builds a placeholder matcher per bound statement argument.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

const (
	surveyArgCount  = 17
	lineArgCount    = 24
	seismicArgCount = 20
	wellArgCount    = 20
	pivotArgCount   = 3
)

func fullCommitBatch() *Batch {
	return &Batch{
		Survey: model.SeismicSurvey{Name: "North Block Survey"},
		Lines:  []model.SeismicLine{{Name: "LINE-42", CompositeName: "LINE-42.sgy"}},
		SeismicData: []model.SeismicData{{
			FileName:     "LINE-42.sgy",
			FileFormat:   "SEGY",
			FileLocation: "/data/in/LINE-42.sgy",
		}},
		CRS: model.CRS{SRID: 32631},
	}
}

// A full happy-path run: one survey, one line, one file named after the
// line's composite name, two transformed coordinates, all committed
// together.
func TestCommitFullBatch(t *testing.T) {
	m, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer m.Close()

	m.ExpectBegin()
	m.ExpectQuery("INSERT INTO seismic_surveys").WithArgs(anyArgs(surveyArgCount)...).
		WillReturnRows(rowsWithID("survey-1"))
	m.ExpectQuery("INSERT INTO seismic_lines").WithArgs(anyArgs(lineArgCount)...).
		WillReturnRows(rowsWithID("line-1"))
	m.ExpectExec("INSERT INTO survey_line_pivots").WithArgs(anyArgs(pivotArgCount)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectQuery("INSERT INTO seismic_data").WithArgs(anyArgs(seismicArgCount)...).
		WillReturnRows(rowsWithID("sd-1"))
	m.ExpectExec("INSERT INTO line_data_pivots").WithArgs(anyArgs(pivotArgCount)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectExec("DELETE FROM seismic_coordinates").WithArgs("line-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	m.ExpectCopyFrom(pgx.Identifier{"seismic_coordinates"}, []string{"latitude", "longitude", "survey_id", "line_id"}).
		WillReturnResult(2)
	m.ExpectExec("CREATE TEMP TABLE").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	m.ExpectCopyFrom(pgx.Identifier{"_tmp_upsert_seismic_lines"},
		[]string{"id", "composite_name", "northernmost_latitude", "southernmost_latitude",
			"westernmost_longitude", "easternmost_longitude", "length_metres"}).
		WillReturnResult(1)
	m.ExpectExec(`INSERT INTO "seismic_lines"`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectCommit()

	transform := &stubTransform{result: &coordtrans.BatchResult{Files: []coordtrans.FileResult{{
		SeismicID: "sd-1",
		Coordinates: []coordtrans.Coordinate{
			{Latitude: 4.51, Longitude: 8.02},
			{Latitude: 4.52, Longitude: 8.03},
		},
	}}}}

	o := NewOrchestrator(m, transform)
	require.NoError(t, o.Commit(context.Background(), fullCommitBatch()))

	assert.Equal(t, 1, transform.calls)
	require.Len(t, transform.gotCfg, 1)
	assert.Equal(t, "sd-1", transform.gotCfg[0].SeismicID)
	assert.Equal(t, 71, transform.gotCfg[0].ScalarField)
	assert.NoError(t, m.ExpectationsWereMet())
}

// A transform failure after survey, line, and data writes must roll the
// whole transaction back.
func TestCommitRollsBackOnTransformFailure(t *testing.T) {
	m, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer m.Close()

	m.ExpectBegin()
	m.ExpectQuery("INSERT INTO seismic_surveys").WithArgs(anyArgs(surveyArgCount)...).
		WillReturnRows(rowsWithID("survey-1"))
	m.ExpectQuery("INSERT INTO seismic_lines").WithArgs(anyArgs(lineArgCount)...).
		WillReturnRows(rowsWithID("line-1"))
	m.ExpectExec("INSERT INTO survey_line_pivots").WithArgs(anyArgs(pivotArgCount)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectQuery("INSERT INTO seismic_data").WithArgs(anyArgs(seismicArgCount)...).
		WillReturnRows(rowsWithID("sd-1"))
	m.ExpectExec("INSERT INTO line_data_pivots").WithArgs(anyArgs(pivotArgCount)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectRollback()

	transform := &stubTransform{err: eris.New("transform service unavailable")}

	o := NewOrchestrator(m, transform)
	err = o.Commit(context.Background(), fullCommitBatch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transform service unavailable")
	assert.NoError(t, m.ExpectationsWereMet())
}

// A file whose name equals no line's composite name is skipped with a
// warning; the batch still commits, with no data writes and no
// transform requests for it.
func TestCommitSkipsUnmatchedSeismicData(t *testing.T) {
	m, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer m.Close()

	m.ExpectBegin()
	m.ExpectQuery("INSERT INTO seismic_surveys").WithArgs(anyArgs(surveyArgCount)...).
		WillReturnRows(rowsWithID("survey-1"))
	m.ExpectQuery("INSERT INTO seismic_lines").WithArgs(anyArgs(lineArgCount)...).
		WillReturnRows(rowsWithID("line-1"))
	m.ExpectExec("INSERT INTO survey_line_pivots").WithArgs(anyArgs(pivotArgCount)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectCommit()

	transform := &stubTransform{result: &coordtrans.BatchResult{}}

	batch := fullCommitBatch()
	batch.SeismicData[0].FileName = "unrelated_file.sgy"

	o := NewOrchestrator(m, transform)
	require.NoError(t, o.Commit(context.Background(), batch))
	assert.Zero(t, transform.calls, "no requests means no transform call")
	assert.NoError(t, m.ExpectationsWereMet())
}

// Well metadata: the foreign well id never enters the upsert statement
// and is carried only through the pivot; a record without one skips the
// pivot but still upserts.
func TestCommitWellMetadata(t *testing.T) {
	m, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer m.Close()

	m.ExpectBegin()
	m.ExpectQuery("INSERT INTO well_metadata").
		WithArgs(pgxmock.AnyArg(), "", "", "", "w1.las", "LAS", (*int64)(nil),
			"", "", "ops", "", "", "", "", "", "", (*float64)(nil), "",
			(*float64)(nil), "").
		WillReturnRows(rowsWithID("wm-1"))
	m.ExpectExec("INSERT INTO well_metadata_pivots").
		WithArgs(pgxmock.AnyArg(), "well-9", "wm-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectQuery("INSERT INTO well_metadata").WithArgs(anyArgs(wellArgCount)...).
		WillReturnRows(rowsWithID("wm-2"))
	m.ExpectCommit()

	batch := &Batch{WellMetadata: []model.WellMetadata{
		{FileName: "w1.las", FileFormat: "LAS", CreatedBy: "ops", WellID: "well-9", ID: "stale-transient-id"},
		{FileName: "w2.las"}, // no well id: upsert only
	}}

	o := NewOrchestrator(m, &stubTransform{})
	require.NoError(t, o.Commit(context.Background(), batch))
	assert.NoError(t, m.ExpectationsWereMet())
}

// Tag linking: a grouped "other" instruction resolves through the
// other-seismic batch and links every referenced line and well.
func TestCommitLinksTags(t *testing.T) {
	m, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer m.Close()

	m.ExpectBegin()
	// Other-seismic pass: upsert carrying its own line reference.
	m.ExpectQuery("INSERT INTO seismic_data").WithArgs(anyArgs(seismicArgCount)...).
		WillReturnRows(rowsWithID("sd-9"))
	m.ExpectExec("INSERT INTO line_data_pivots").WithArgs(anyArgs(pivotArgCount)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// Tag pass: look the row up by file name, then link refs.
	cols := []string{
		"id", "dataset_type_id", "sub_dataset_type_id", "status", "file_name",
		"file_format", "file_size", "title", "description", "created_by",
		"created_for", "recorded_by", "remarks", "file_location",
		"s3_file_path", "record_length", "record_length_uom", "sample_rate",
		"sample_rate_uom", "seismic_line_id", "created_at", "updated_at",
	}
	now := time.Now()
	m.ExpectQuery("SELECT (.+) FROM seismic_data").
		WithArgs("report.pdf").
		WillReturnRows(pgxmock.NewRows(cols).AddRow(
			"sd-9", "", "", "", "report.pdf", "PDF", nil, "", "", "", "",
			"", "", "", "", nil, "", nil, "", "line-7", now, now))
	m.ExpectExec("INSERT INTO line_data_pivots").
		WithArgs(pgxmock.AnyArg(), "line-8", "sd-9").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectExec("INSERT INTO well_seismic_data_pivots").
		WithArgs(pgxmock.AnyArg(), "well-3", "sd-9").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	m.ExpectCommit()

	batch := &Batch{
		OtherSeismicData: []model.SeismicData{{FileName: "report.pdf", FileFormat: "PDF", SeismicLineID: "line-7"}},
		Tags: []model.TagInstruction{{
			File: model.TagFile{Name: "report.pdf", Category: model.DataTypeOther},
			Line: []model.TagRef{{ID: "line-8"}},
			Well: []model.TagRef{{ID: "well-3"}},
		}},
	}

	o := NewOrchestrator(m, &stubTransform{})
	require.NoError(t, o.Commit(context.Background(), batch))
	assert.NoError(t, m.ExpectationsWereMet())
}
