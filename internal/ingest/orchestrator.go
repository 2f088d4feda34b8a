package ingest

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/edafy/ingest-cli/internal/db"
	"github.com/edafy/ingest-cli/internal/geoexport"
	"github.com/edafy/ingest-cli/internal/model"
	"github.com/edafy/ingest-cli/internal/store"
	"github.com/edafy/ingest-cli/pkg/coordtrans"
)

// scalarField is the byte position of the standard SEG-Y coordinate
// scalar in the trace header.
const scalarField = 71

// Orchestrator commits an ingestion batch as one atomic transaction:
// survey and lines, seismic data and pivots, coordinate back-fill, well
// metadata, the miscellaneous-document second pass, and tag linking.
// Any failure rolls the whole batch back; nothing is retried.
type Orchestrator struct {
	pool      db.Pool
	transform coordtrans.Client
}

// NewOrchestrator builds an orchestrator over a connection pool and a
// coordinate transform client.
func NewOrchestrator(pool db.Pool, transform coordtrans.Client) *Orchestrator {
	return &Orchestrator{pool: pool, transform: transform}
}

// lineOwner tracks which survey/line a transformed coordinate batch
// belongs to, keyed by the persisted seismic data identifier.
type lineOwner struct {
	surveyID string
	lineID   string
	lineKey  string
}

// Commit runs the full orchestration for one batch. All writes happen
// inside a single transaction; on any error the transaction is rolled
// back and no partial state is visible.
func (o *Orchestrator) Commit(ctx context.Context, batch *Batch) error {
	tx, err := o.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "ingest: begin transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	st := store.New(tx)

	lines, surveyID, err := o.upsertSurveyAndLines(ctx, st, batch)
	if err != nil {
		return err
	}

	requests, owners, err := o.upsertSeismicData(ctx, st, batch, lines, surveyID)
	if err != nil {
		return err
	}

	if err := o.backfillCoordinates(ctx, st, batch, requests, owners); err != nil {
		return err
	}

	if err := o.upsertWellMetadata(ctx, st, batch.WellMetadata); err != nil {
		return err
	}

	if err := o.upsertOthers(ctx, st, batch, lines); err != nil {
		return err
	}

	if err := o.linkTags(ctx, st, batch); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return eris.Wrap(err, "ingest: commit transaction")
	}
	zap.L().Info("batch committed",
		zap.String("survey", batch.Survey.Name),
		zap.Int("lines", len(batch.Lines)),
		zap.Int("seismic_data", len(batch.SeismicData)),
		zap.Int("well_metadata", len(batch.WellMetadata)))
	return nil
}

// upsertSurveyAndLines persists the survey and its lines and links
// them. Runs only when both a survey name and lines were supplied; the
// persisted lines are returned for file-to-line matching.
func (o *Orchestrator) upsertSurveyAndLines(ctx context.Context, st *store.Store, batch *Batch) ([]model.SeismicLine, string, error) {
	if batch.Survey.Name == "" || len(batch.Lines) == 0 {
		return nil, "", nil
	}

	survey, err := st.UpsertSurvey(ctx, batch.Survey)
	if err != nil {
		return nil, "", err
	}

	lines := make([]model.SeismicLine, 0, len(batch.Lines))
	for _, ln := range batch.Lines {
		ln.ID = ""
		persisted, err := st.UpsertLine(ctx, ln)
		if err != nil {
			return nil, "", err
		}
		if err := st.LinkSurveyLine(ctx, survey.ID, persisted.ID); err != nil {
			return nil, "", err
		}
		lines = append(lines, persisted)
	}
	return lines, survey.ID, nil
}

// upsertSeismicData persists each seismic file row, links it to its
// owning line, and accumulates the batch of coordinate transform
// requests. A record with no matching line is skipped with a warning.
func (o *Orchestrator) upsertSeismicData(ctx context.Context, st *store.Store, batch *Batch, lines []model.SeismicLine, surveyID string) ([]coordtrans.FileConfig, map[string]lineOwner, error) {
	var requests []coordtrans.FileConfig
	owners := make(map[string]lineOwner)

	for i, sd := range batch.SeismicData {
		line, ok := matchLine(sd.FileName, lines)
		if !ok {
			zap.L().Warn("no line matches seismic data file, skipping",
				zap.String("file", sd.FileName))
			continue
		}

		sd.ID = ""
		sd.SeismicLineID = line.ID
		persisted, err := st.UpsertSeismicData(ctx, sd)
		if err != nil {
			return nil, nil, err
		}
		if err := st.LinkLineData(ctx, line.ID, persisted.ID); err != nil {
			return nil, nil, err
		}

		cfg := batch.CoordinateConfigs[i]
		requests = append(requests, coordtrans.FileConfig{
			SeismicID:   persisted.ID,
			FilePath:    persisted.FileLocation,
			SrcXField:   cfg.SrcXField,
			SrcYField:   cfg.SrcYField,
			SrcXFormat:  cfg.SrcXFormat,
			SrcYFormat:  cfg.SrcYFormat,
			ScalarField: scalarField,
		})
		owners[persisted.ID] = lineOwner{surveyID: surveyID, lineID: line.ID, lineKey: line.CompositeName}
	}
	return requests, owners, nil
}

// backfillCoordinates calls the transform service once for the whole
// batch, bulk-inserts each file's coordinates, and rolls the resulting
// geographic extents back onto the line rows. A transform failure is
// fatal to the run.
func (o *Orchestrator) backfillCoordinates(ctx context.Context, st *store.Store, batch *Batch, requests []coordtrans.FileConfig, owners map[string]lineOwner) error {
	if len(requests) == 0 {
		return nil
	}

	res, err := o.transform.TransformBatch(ctx, requests, batch.CRS.SRID, batch.CRS.Proj4)
	if err != nil {
		return eris.Wrap(err, "ingest: coordinate transform")
	}

	byLine := make(map[string][]model.SeismicCoordinate)
	lineKeys := make(map[string]string)
	cleared := make(map[string]bool)
	for _, file := range res.Files {
		owner, ok := owners[file.SeismicID]
		if !ok {
			zap.L().Warn("transform returned unknown seismic id, skipping",
				zap.String("seismic_id", file.SeismicID))
			continue
		}
		coords := make([]model.SeismicCoordinate, 0, len(file.Coordinates))
		for _, c := range file.Coordinates {
			coords = append(coords, model.SeismicCoordinate{
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
				SurveyID:  owner.surveyID,
				LineID:    owner.lineID,
			})
		}
		// A line's old samples go before its first fresh batch so a
		// re-committed batch replaces them instead of appending.
		if !cleared[owner.lineID] {
			if err := st.ClearCoordinates(ctx, owner.lineID); err != nil {
				return err
			}
			cleared[owner.lineID] = true
		}
		if _, err := st.InsertCoordinates(ctx, coords); err != nil {
			return err
		}
		byLine[owner.lineID] = append(byLine[owner.lineID], coords...)
		lineKeys[owner.lineID] = owner.lineKey
	}

	var extents []store.LineExtent
	for lineID, coords := range byLine {
		if ext, ok := geoexport.Extent(lineID, coords); ok {
			ext.CompositeName = lineKeys[lineID]
			extents = append(extents, ext)
		}
	}
	return st.BackfillLineExtents(ctx, extents)
}

// upsertWellMetadata persists well document rows. The transient record
// identifier is stripped, and the foreign well identifier never reaches
// the row at all: the well relation lives only in the pivot, and a
// missing well identifier skips the pivot, not the row.
func (o *Orchestrator) upsertWellMetadata(ctx context.Context, st *store.Store, records []model.WellMetadata) error {
	for _, wm := range records {
		wellID := wm.WellID
		wm.ID = ""

		persisted, err := st.UpsertWellMetadata(ctx, wm)
		if err != nil {
			return err
		}
		if wellID == "" {
			zap.L().Warn("well metadata has no well id, skipping pivot",
				zap.String("file", wm.FileName))
			continue
		}
		if err := st.LinkWellMetadata(ctx, wellID, persisted.ID); err != nil {
			return err
		}
	}
	return nil
}

// upsertOthers runs the second pass for miscellaneous documents tagged
// against existing lines/wells: the same upsert and link calls, but a
// record carrying its own line reference keeps it, and there is no
// coordinate accumulation.
func (o *Orchestrator) upsertOthers(ctx context.Context, st *store.Store, batch *Batch, lines []model.SeismicLine) error {
	for _, sd := range batch.OtherSeismicData {
		lineID := sd.SeismicLineID
		if lineID == "" {
			if line, ok := matchLine(sd.FileName, lines); ok {
				lineID = line.ID
			}
		}
		sd.ID = ""
		sd.SeismicLineID = lineID
		persisted, err := st.UpsertSeismicData(ctx, sd)
		if err != nil {
			return err
		}
		if lineID == "" {
			zap.L().Warn("other seismic document has no line, skipping pivot",
				zap.String("file", sd.FileName))
			continue
		}
		if err := st.LinkLineData(ctx, lineID, persisted.ID); err != nil {
			return err
		}
	}
	return o.upsertWellMetadata(ctx, st, batch.OtherWellMetadata)
}

// linkTags materializes the grouped tag instructions into pivot rows
// against the now-persisted data rows. A tagged file that was never
// persisted is skipped with a warning.
func (o *Orchestrator) linkTags(ctx context.Context, st *store.Store, batch *Batch) error {
	otherSeismic := fileNameSet(batch.OtherSeismicData)
	otherWell := wellFileNameSet(batch.OtherWellMetadata)

	for _, tag := range GroupTags(batch.Tags) {
		category := tag.File.Category
		if category == model.DataTypeOther {
			switch {
			case otherSeismic[tag.File.Name]:
				category = model.DataTypeSeismic
			case otherWell[tag.File.Name]:
				category = model.DataTypeWell
			default:
				zap.L().Warn("tagged document not in batch, skipping",
					zap.String("file", tag.File.Name))
				continue
			}
		}

		switch category {
		case model.DataTypeSeismic:
			if err := o.linkSeismicTag(ctx, st, tag); err != nil {
				return err
			}
		case model.DataTypeWell:
			if err := o.linkWellTag(ctx, st, tag); err != nil {
				return err
			}
		default:
			zap.L().Warn("tag has unknown category, skipping",
				zap.String("file", tag.File.Name),
				zap.String("category", string(tag.File.Category)))
		}
	}
	return nil
}

func (o *Orchestrator) linkSeismicTag(ctx context.Context, st *store.Store, tag model.TagInstruction) error {
	sd, err := st.FindSeismicData(ctx, tag.File.Name)
	if eris.Is(err, store.ErrNotFound) {
		zap.L().Warn("tagged seismic file not persisted, skipping",
			zap.String("file", tag.File.Name))
		return nil
	}
	if err != nil {
		return err
	}
	for _, line := range tag.Line {
		if err := st.LinkLineData(ctx, line.ID, sd.ID); err != nil {
			return err
		}
	}
	for _, well := range tag.Well {
		if err := st.LinkWellSeismicData(ctx, well.ID, sd.ID); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) linkWellTag(ctx context.Context, st *store.Store, tag model.TagInstruction) error {
	wm, err := st.FindWellMetadata(ctx, tag.File.Name)
	if eris.Is(err, store.ErrNotFound) {
		zap.L().Warn("tagged well document not persisted, skipping",
			zap.String("file", tag.File.Name))
		return nil
	}
	if err != nil {
		return err
	}
	for _, line := range tag.Line {
		if err := st.LinkLineWellMetadata(ctx, line.ID, wm.ID); err != nil {
			return err
		}
	}
	for _, well := range tag.Well {
		if err := st.LinkWellMetadata(ctx, well.ID, wm.ID); err != nil {
			return err
		}
	}
	return nil
}

// matchLine resolves the owning line for a seismic file: the line whose
// composite name equals the file name after key normalization. A file
// matching no line stays unmatched; it is never attached to a partial
// name.
func matchLine(fileName string, lines []model.SeismicLine) (model.SeismicLine, bool) {
	key := store.NormalizeKey(fileName)
	if key == "" {
		return model.SeismicLine{}, false
	}
	for _, ln := range lines {
		if ln.Key() == key {
			return ln, true
		}
	}
	return model.SeismicLine{}, false
}

func fileNameSet(records []model.SeismicData) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.FileName] = true
	}
	return set
}

func wellFileNameSet(records []model.WellMetadata) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.FileName] = true
	}
	return set
}
