package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/edafy/ingest-cli/internal/model"
)

const upsertSurveySQL = `
INSERT INTO seismic_surveys (
	id, name, block, dimension, acq_start_date, acq_end_date, survey_year,
	area, country, survey_area, survey_area_uom, record_length,
	record_length_uom, sample_rate, sample_rate_uom, energy_type, vessel_name
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
ON CONFLICT (name) DO UPDATE SET
	block = EXCLUDED.block,
	dimension = EXCLUDED.dimension,
	acq_start_date = EXCLUDED.acq_start_date,
	acq_end_date = EXCLUDED.acq_end_date,
	survey_year = EXCLUDED.survey_year,
	area = EXCLUDED.area,
	country = EXCLUDED.country,
	survey_area = EXCLUDED.survey_area,
	survey_area_uom = EXCLUDED.survey_area_uom,
	record_length = EXCLUDED.record_length,
	record_length_uom = EXCLUDED.record_length_uom,
	sample_rate = EXCLUDED.sample_rate,
	sample_rate_uom = EXCLUDED.sample_rate_uom,
	energy_type = EXCLUDED.energy_type,
	vessel_name = EXCLUDED.vessel_name,
	updated_at = now()
RETURNING id, created_at, updated_at`

// UpsertSurvey inserts or refreshes a survey keyed on its normalized
// name and returns the persisted row with its identifier filled in.
func (s *Store) UpsertSurvey(ctx context.Context, sv model.SeismicSurvey) (model.SeismicSurvey, error) {
	sv.Name = NormalizeKey(sv.Name)
	if sv.Name == "" {
		return sv, wrapQuery(ErrNotFound, "store: upsert survey: empty name")
	}
	row := s.q.QueryRow(ctx, upsertSurveySQL,
		uuid.New().String(), sv.Name, sv.Block, sv.Dimension, sv.AcqStartDate,
		sv.AcqEndDate, sv.SurveyYear, sv.Area, sv.Country, sv.SurveyArea,
		sv.SurveyAreaUom, sv.RecordLength, sv.RecordLenUom, sv.SampleRate,
		sv.SampleRateUom, sv.EnergyType, sv.VesselName,
	)
	if err := row.Scan(&sv.ID, &sv.CreatedAt, &sv.UpdatedAt); err != nil {
		return sv, wrapQuery(err, "store: upsert survey")
	}
	return sv, nil
}

const upsertLineSQL = `
INSERT INTO seismic_lines (
	id, name, composite_name, line_type, first_cdp, last_cdp, first_shot,
	last_shot, length_metres, northernmost_latitude, southernmost_latitude,
	westernmost_longitude, easternmost_longitude, country, area, block,
	survey_area, vintage_year, operator, contractor, shot_by,
	raw_data_format_type, processed_data_format_type, data_processed_coverage
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
ON CONFLICT (composite_name) DO UPDATE SET
	name = EXCLUDED.name,
	line_type = EXCLUDED.line_type,
	first_cdp = EXCLUDED.first_cdp,
	last_cdp = EXCLUDED.last_cdp,
	first_shot = EXCLUDED.first_shot,
	last_shot = EXCLUDED.last_shot,
	length_metres = COALESCE(EXCLUDED.length_metres, seismic_lines.length_metres),
	northernmost_latitude = COALESCE(EXCLUDED.northernmost_latitude, seismic_lines.northernmost_latitude),
	southernmost_latitude = COALESCE(EXCLUDED.southernmost_latitude, seismic_lines.southernmost_latitude),
	westernmost_longitude = COALESCE(EXCLUDED.westernmost_longitude, seismic_lines.westernmost_longitude),
	easternmost_longitude = COALESCE(EXCLUDED.easternmost_longitude, seismic_lines.easternmost_longitude),
	country = EXCLUDED.country,
	area = EXCLUDED.area,
	block = EXCLUDED.block,
	survey_area = EXCLUDED.survey_area,
	vintage_year = EXCLUDED.vintage_year,
	operator = EXCLUDED.operator,
	contractor = EXCLUDED.contractor,
	shot_by = EXCLUDED.shot_by,
	raw_data_format_type = EXCLUDED.raw_data_format_type,
	processed_data_format_type = EXCLUDED.processed_data_format_type,
	data_processed_coverage = EXCLUDED.data_processed_coverage,
	updated_at = now()
RETURNING id, created_at, updated_at`

// UpsertLine inserts or refreshes a line keyed on its composite name.
// A line arriving without a composite name uses its plain name as the
// identity. Geographic extents only move forward: an upsert without
// coordinates keeps previously back-filled values.
func (s *Store) UpsertLine(ctx context.Context, ln model.SeismicLine) (model.SeismicLine, error) {
	ln.Name = NormalizeKey(ln.Name)
	ln.CompositeName = NormalizeKey(ln.CompositeName)
	if ln.CompositeName == "" {
		ln.CompositeName = ln.Name
	}
	if ln.CompositeName == "" {
		return ln, wrapQuery(ErrNotFound, "store: upsert line: empty name")
	}
	row := s.q.QueryRow(ctx, upsertLineSQL,
		uuid.New().String(), ln.Name, ln.CompositeName, ln.LineType,
		ln.FirstCDP, ln.LastCDP, ln.FirstShot, ln.LastShot, ln.LengthMetres,
		ln.NorthernmostLatitude, ln.SouthernmostLatitude,
		ln.WesternmostLongitude, ln.EasternmostLongitude,
		ln.Country, ln.Area, ln.Block, ln.SurveyArea, ln.VintageYear,
		ln.Operator, ln.Contractor, ln.ShotBy, ln.RawDataFormatType,
		ln.ProcessedDataFormat, ln.DataProcessedCoverage,
	)
	if err := row.Scan(&ln.ID, &ln.CreatedAt, &ln.UpdatedAt); err != nil {
		return ln, wrapQuery(err, "store: upsert line")
	}
	return ln, nil
}

const upsertSeismicDataSQL = `
INSERT INTO seismic_data (
	id, dataset_type_id, sub_dataset_type_id, status, file_name, file_format,
	file_size, title, description, created_by, created_for, recorded_by,
	remarks, file_location, s3_file_path, record_length, record_length_uom,
	sample_rate, sample_rate_uom, seismic_line_id
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
ON CONFLICT (file_name) DO UPDATE SET
	dataset_type_id = EXCLUDED.dataset_type_id,
	sub_dataset_type_id = EXCLUDED.sub_dataset_type_id,
	status = EXCLUDED.status,
	file_format = EXCLUDED.file_format,
	file_size = EXCLUDED.file_size,
	title = EXCLUDED.title,
	description = EXCLUDED.description,
	created_by = EXCLUDED.created_by,
	created_for = EXCLUDED.created_for,
	recorded_by = EXCLUDED.recorded_by,
	remarks = EXCLUDED.remarks,
	file_location = EXCLUDED.file_location,
	s3_file_path = EXCLUDED.s3_file_path,
	record_length = EXCLUDED.record_length,
	record_length_uom = EXCLUDED.record_length_uom,
	sample_rate = EXCLUDED.sample_rate,
	sample_rate_uom = EXCLUDED.sample_rate_uom,
	seismic_line_id = EXCLUDED.seismic_line_id,
	updated_at = now()
RETURNING id, created_at, updated_at`

// UpsertSeismicData inserts or refreshes a seismic file row keyed on
// file name.
func (s *Store) UpsertSeismicData(ctx context.Context, sd model.SeismicData) (model.SeismicData, error) {
	sd.FileName = NormalizeKey(sd.FileName)
	if sd.FileName == "" {
		return sd, wrapQuery(ErrNotFound, "store: upsert seismic data: empty file name")
	}
	sd.SeismicLineID = normalizeID(sd.SeismicLineID)
	row := s.q.QueryRow(ctx, upsertSeismicDataSQL,
		uuid.New().String(), sd.DatasetTypeID, sd.SubDatasetTypeID, sd.Status,
		sd.FileName, sd.FileFormat, sd.FileSize, sd.Title, sd.Description,
		sd.CreatedBy, sd.CreatedFor, sd.RecordedBy, sd.Remarks,
		sd.FileLocation, sd.S3FilePath, sd.RecordLength, sd.RecordLenUom,
		sd.SampleRate, sd.SampleRateUom, sd.SeismicLineID,
	)
	if err := row.Scan(&sd.ID, &sd.CreatedAt, &sd.UpdatedAt); err != nil {
		return sd, wrapQuery(err, "store: upsert seismic data")
	}
	return sd, nil
}

const upsertWellMetadataSQL = `
INSERT INTO well_metadata (
	id, dataset_type_id, sub_dataset_type_id, status, file_name, file_format,
	file_size, title, description, created_by, created_for, remarks,
	file_location, s3_file_path, spud_date, completion_date, top_depth,
	top_depth_uom, base_depth, base_depth_uom
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
ON CONFLICT (file_name) DO UPDATE SET
	dataset_type_id = EXCLUDED.dataset_type_id,
	sub_dataset_type_id = EXCLUDED.sub_dataset_type_id,
	status = EXCLUDED.status,
	file_format = EXCLUDED.file_format,
	file_size = EXCLUDED.file_size,
	title = EXCLUDED.title,
	description = EXCLUDED.description,
	created_by = EXCLUDED.created_by,
	created_for = EXCLUDED.created_for,
	remarks = EXCLUDED.remarks,
	file_location = EXCLUDED.file_location,
	s3_file_path = EXCLUDED.s3_file_path,
	spud_date = EXCLUDED.spud_date,
	completion_date = EXCLUDED.completion_date,
	top_depth = EXCLUDED.top_depth,
	top_depth_uom = EXCLUDED.top_depth_uom,
	base_depth = EXCLUDED.base_depth,
	base_depth_uom = EXCLUDED.base_depth_uom,
	updated_at = now()
RETURNING id, created_at, updated_at`

// UpsertWellMetadata inserts or refreshes a well document row keyed on
// file name. The record's WellID is ignored: the row carries no well
// column, the relation lives in well_metadata_pivots.
func (s *Store) UpsertWellMetadata(ctx context.Context, wm model.WellMetadata) (model.WellMetadata, error) {
	wm.FileName = NormalizeKey(wm.FileName)
	if wm.FileName == "" {
		return wm, wrapQuery(ErrNotFound, "store: upsert well metadata: empty file name")
	}
	row := s.q.QueryRow(ctx, upsertWellMetadataSQL,
		uuid.New().String(), wm.DatasetTypeID, wm.SubDatasetTypeID, wm.Status,
		wm.FileName, wm.FileFormat, wm.FileSize, wm.Title, wm.Description,
		wm.CreatedBy, wm.CreatedFor, wm.Remarks, wm.FileLocation,
		wm.S3FilePath, wm.SpudDate, wm.CompletionDate, wm.TopDepth,
		wm.TopDepthUom, wm.BaseDepth, wm.BaseDepthUom,
	)
	if err := row.Scan(&wm.ID, &wm.CreatedAt, &wm.UpdatedAt); err != nil {
		return wm, wrapQuery(err, "store: upsert well metadata")
	}
	return wm, nil
}

// FindSurveyID looks a survey's identifier up by name.
func (s *Store) FindSurveyID(ctx context.Context, name string) (string, error) {
	var id string
	row := s.q.QueryRow(ctx, `SELECT id FROM seismic_surveys WHERE name = $1`, NormalizeKey(name))
	if err := row.Scan(&id); err != nil {
		return "", wrapQuery(err, "store: find survey")
	}
	return id, nil
}

const findLineSQL = `
SELECT id, name, composite_name, line_type, first_cdp, last_cdp, first_shot,
	last_shot, length_metres, northernmost_latitude, southernmost_latitude,
	westernmost_longitude, easternmost_longitude, country, area, block,
	survey_area, vintage_year, operator, contractor, shot_by,
	raw_data_format_type, processed_data_format_type,
	data_processed_coverage, created_at, updated_at
FROM seismic_lines WHERE composite_name = $1`

// FindLine looks a line up by its composite name. Returns ErrNotFound
// when no line matches.
func (s *Store) FindLine(ctx context.Context, compositeName string) (model.SeismicLine, error) {
	var ln model.SeismicLine
	row := s.q.QueryRow(ctx, findLineSQL, NormalizeKey(compositeName))
	err := row.Scan(
		&ln.ID, &ln.Name, &ln.CompositeName, &ln.LineType, &ln.FirstCDP,
		&ln.LastCDP, &ln.FirstShot, &ln.LastShot, &ln.LengthMetres,
		&ln.NorthernmostLatitude, &ln.SouthernmostLatitude,
		&ln.WesternmostLongitude, &ln.EasternmostLongitude,
		&ln.Country, &ln.Area, &ln.Block, &ln.SurveyArea, &ln.VintageYear,
		&ln.Operator, &ln.Contractor, &ln.ShotBy, &ln.RawDataFormatType,
		&ln.ProcessedDataFormat, &ln.DataProcessedCoverage,
		&ln.CreatedAt, &ln.UpdatedAt,
	)
	if err != nil {
		return ln, wrapQuery(err, "store: find line")
	}
	return ln, nil
}

const findSeismicDataSQL = `
SELECT id, dataset_type_id, sub_dataset_type_id, status, file_name,
	file_format, file_size, title, description, created_by, created_for,
	recorded_by, remarks, file_location, s3_file_path, record_length,
	record_length_uom, sample_rate, sample_rate_uom, seismic_line_id,
	created_at, updated_at
FROM seismic_data WHERE file_name = $1`

// FindSeismicData looks a seismic file row up by file name.
func (s *Store) FindSeismicData(ctx context.Context, fileName string) (model.SeismicData, error) {
	var sd model.SeismicData
	row := s.q.QueryRow(ctx, findSeismicDataSQL, NormalizeKey(fileName))
	err := row.Scan(
		&sd.ID, &sd.DatasetTypeID, &sd.SubDatasetTypeID, &sd.Status,
		&sd.FileName, &sd.FileFormat, &sd.FileSize, &sd.Title,
		&sd.Description, &sd.CreatedBy, &sd.CreatedFor, &sd.RecordedBy,
		&sd.Remarks, &sd.FileLocation, &sd.S3FilePath, &sd.RecordLength,
		&sd.RecordLenUom, &sd.SampleRate, &sd.SampleRateUom,
		&sd.SeismicLineID, &sd.CreatedAt, &sd.UpdatedAt,
	)
	if err != nil {
		return sd, wrapQuery(err, "store: find seismic data")
	}
	return sd, nil
}

const findWellMetadataSQL = `
SELECT id, dataset_type_id, sub_dataset_type_id, status, file_name,
	file_format, file_size, title, description, created_by, created_for,
	remarks, file_location, s3_file_path, spud_date, completion_date,
	top_depth, top_depth_uom, base_depth, base_depth_uom,
	created_at, updated_at
FROM well_metadata WHERE file_name = $1`

// FindWellMetadata looks a well document row up by file name.
func (s *Store) FindWellMetadata(ctx context.Context, fileName string) (model.WellMetadata, error) {
	var wm model.WellMetadata
	row := s.q.QueryRow(ctx, findWellMetadataSQL, NormalizeKey(fileName))
	err := row.Scan(
		&wm.ID, &wm.DatasetTypeID, &wm.SubDatasetTypeID, &wm.Status,
		&wm.FileName, &wm.FileFormat, &wm.FileSize, &wm.Title,
		&wm.Description, &wm.CreatedBy, &wm.CreatedFor, &wm.Remarks,
		&wm.FileLocation, &wm.S3FilePath, &wm.SpudDate, &wm.CompletionDate,
		&wm.TopDepth, &wm.TopDepthUom, &wm.BaseDepth, &wm.BaseDepthUom,
		&wm.CreatedAt, &wm.UpdatedAt,
	)
	if err != nil {
		return wm, wrapQuery(err, "store: find well metadata")
	}
	return wm, nil
}

const listLinesForSurveySQL = `
SELECT l.id, l.name, l.composite_name
FROM seismic_lines l
JOIN survey_line_pivots p ON p.line_id = l.id
WHERE p.survey_id = $1
ORDER BY l.composite_name`

// ListLinesForSurvey returns the lines linked to a survey, composite
// name order, with only identity fields populated.
func (s *Store) ListLinesForSurvey(ctx context.Context, surveyID string) ([]model.SeismicLine, error) {
	rows, err := s.q.Query(ctx, listLinesForSurveySQL, normalizeID(surveyID))
	if err != nil {
		return nil, wrapQuery(err, "store: list lines")
	}
	defer rows.Close()

	var lines []model.SeismicLine
	for rows.Next() {
		var ln model.SeismicLine
		if err := rows.Scan(&ln.ID, &ln.Name, &ln.CompositeName); err != nil {
			return nil, wrapQuery(err, "store: list lines scan")
		}
		lines = append(lines, ln)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQuery(err, "store: list lines rows")
	}
	return lines, nil
}
