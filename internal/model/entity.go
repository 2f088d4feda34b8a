package model

import "time"

// SeismicSurvey is an acquisition survey. Natural key: Name.
type SeismicSurvey struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Block         string    `json:"block,omitempty" yaml:"block,omitempty"`
	Dimension     string    `json:"dimension,omitempty" yaml:"dimension,omitempty"`
	AcqStartDate  string    `json:"acq_start_date,omitempty" yaml:"acq_start_date,omitempty"`
	AcqEndDate    string    `json:"acq_end_date,omitempty" yaml:"acq_end_date,omitempty"`
	SurveyYear    string    `json:"survey_year,omitempty" yaml:"survey_year,omitempty"`
	Area          string    `json:"area,omitempty" yaml:"area,omitempty"`
	Country       string    `json:"country,omitempty" yaml:"country,omitempty"`
	SurveyArea    string    `json:"survey_area,omitempty" yaml:"survey_area,omitempty"`
	SurveyAreaUom string    `json:"survey_area_uom,omitempty" yaml:"survey_area_uom,omitempty"`
	RecordLength  *float64  `json:"record_length,omitempty" yaml:"record_length,omitempty"`
	RecordLenUom  string    `json:"record_length_uom,omitempty" yaml:"record_length_uom,omitempty"`
	SampleRate    *float64  `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	SampleRateUom string    `json:"sample_rate_uom,omitempty" yaml:"sample_rate_uom,omitempty"`
	EnergyType    *int      `json:"energy_type,omitempty" yaml:"energy_type,omitempty"`
	VesselName    string    `json:"vessel_name,omitempty" yaml:"vessel_name,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"-"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"-"`
}

// SeismicLine is a 2D line or 3D swath. Natural key: CompositeName,
// falling back to Name when the composite is empty.
type SeismicLine struct {
	ID                    string    `json:"id" yaml:"id"`
	Name                  string    `json:"name" yaml:"name"`
	CompositeName         string    `json:"composite_name" yaml:"composite_name"`
	LineType              string    `json:"line_type,omitempty" yaml:"line_type,omitempty"`
	FirstCDP              *float64  `json:"first_cdp,omitempty" yaml:"first_cdp,omitempty"`
	LastCDP               *float64  `json:"last_cdp,omitempty" yaml:"last_cdp,omitempty"`
	FirstShot             *float64  `json:"first_shot,omitempty" yaml:"first_shot,omitempty"`
	LastShot              *float64  `json:"last_shot,omitempty" yaml:"last_shot,omitempty"`
	LengthMetres          *float64  `json:"length_metres,omitempty" yaml:"length_metres,omitempty"`
	NorthernmostLatitude  *float64  `json:"northernmost_latitude,omitempty" yaml:"northernmost_latitude,omitempty"`
	SouthernmostLatitude  *float64  `json:"southernmost_latitude,omitempty" yaml:"southernmost_latitude,omitempty"`
	WesternmostLongitude  *float64  `json:"westernmost_longitude,omitempty" yaml:"westernmost_longitude,omitempty"`
	EasternmostLongitude  *float64  `json:"easternmost_longitude,omitempty" yaml:"easternmost_longitude,omitempty"`
	Country               string    `json:"country,omitempty" yaml:"country,omitempty"`
	Area                  string    `json:"area,omitempty" yaml:"area,omitempty"`
	Block                 string    `json:"block,omitempty" yaml:"block,omitempty"`
	SurveyArea            string    `json:"survey_area,omitempty" yaml:"survey_area,omitempty"`
	VintageYear           *int      `json:"vintage_year,omitempty" yaml:"vintage_year,omitempty"`
	Operator              string    `json:"operator,omitempty" yaml:"operator,omitempty"`
	Contractor            string    `json:"contractor,omitempty" yaml:"contractor,omitempty"`
	ShotBy                string    `json:"shot_by,omitempty" yaml:"shot_by,omitempty"`
	RawDataFormatType     string    `json:"raw_data_format_type,omitempty" yaml:"raw_data_format_type,omitempty"`
	ProcessedDataFormat   string    `json:"processed_data_format_type,omitempty" yaml:"processed_data_format_type,omitempty"`
	DataProcessedCoverage string    `json:"data_processed_coverage,omitempty" yaml:"data_processed_coverage,omitempty"`
	CreatedAt             time.Time `json:"created_at" yaml:"-"`
	UpdatedAt             time.Time `json:"updated_at" yaml:"-"`
}

// Key returns the line's upsert identity.
func (l SeismicLine) Key() string {
	if l.CompositeName != "" {
		return l.CompositeName
	}
	return l.Name
}

// SeismicData is one persisted row per ingested seismic file. Natural
// key: FileName.
type SeismicData struct {
	ID               string    `json:"id" yaml:"id"`
	DatasetTypeID    string    `json:"dataset_type_id" yaml:"dataset_type_id"`
	SubDatasetTypeID string    `json:"sub_dataset_type_id" yaml:"sub_dataset_type_id"`
	Status           string    `json:"status,omitempty" yaml:"status,omitempty"`
	FileName         string    `json:"file_name" yaml:"file_name"`
	FileFormat       string    `json:"file_format" yaml:"file_format"`
	FileSize         *int64    `json:"file_size,omitempty" yaml:"file_size,omitempty"`
	Title            string    `json:"title,omitempty" yaml:"title,omitempty"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedBy        string    `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedFor       string    `json:"created_for,omitempty" yaml:"created_for,omitempty"`
	RecordedBy       string    `json:"recorded_by,omitempty" yaml:"recorded_by,omitempty"`
	Remarks          string    `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	FileLocation     string    `json:"file_location" yaml:"file_location"`
	S3FilePath       string    `json:"s3_file_path,omitempty" yaml:"s3_file_path,omitempty"`
	RecordLength     *float64  `json:"record_length,omitempty" yaml:"record_length,omitempty"`
	RecordLenUom     string    `json:"record_length_uom,omitempty" yaml:"record_length_uom,omitempty"`
	SampleRate       *float64  `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	SampleRateUom    string    `json:"sample_rate_uom,omitempty" yaml:"sample_rate_uom,omitempty"`
	SeismicLineID    string    `json:"seismic_line_id,omitempty" yaml:"seismic_line_id,omitempty"`
	CreatedAt        time.Time `json:"created_at" yaml:"-"`
	UpdatedAt        time.Time `json:"updated_at" yaml:"-"`
}

// WellMetadata is one persisted row per ingested well document. Natural
// key: FileName. WellID references a Well owned elsewhere; it is batch
// input only and never stored on the row, the relation lives in the
// well pivot.
type WellMetadata struct {
	ID               string    `json:"id" yaml:"id"`
	DatasetTypeID    string    `json:"dataset_type_id,omitempty" yaml:"dataset_type_id,omitempty"`
	SubDatasetTypeID string    `json:"sub_dataset_type_id,omitempty" yaml:"sub_dataset_type_id,omitempty"`
	Status           string    `json:"status,omitempty" yaml:"status,omitempty"`
	FileName         string    `json:"file_name" yaml:"file_name"`
	FileFormat       string    `json:"file_format,omitempty" yaml:"file_format,omitempty"`
	FileSize         *int64    `json:"file_size,omitempty" yaml:"file_size,omitempty"`
	Title            string    `json:"title,omitempty" yaml:"title,omitempty"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedBy        string    `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedFor       string    `json:"created_for,omitempty" yaml:"created_for,omitempty"`
	Remarks          string    `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	FileLocation     string    `json:"file_location,omitempty" yaml:"file_location,omitempty"`
	S3FilePath       string    `json:"s3_file_path,omitempty" yaml:"s3_file_path,omitempty"`
	SpudDate         string    `json:"spud_date,omitempty" yaml:"spud_date,omitempty"`
	CompletionDate   string    `json:"completion_date,omitempty" yaml:"completion_date,omitempty"`
	TopDepth         *float64  `json:"top_depth,omitempty" yaml:"top_depth,omitempty"`
	TopDepthUom      string    `json:"top_depth_uom,omitempty" yaml:"top_depth_uom,omitempty"`
	BaseDepth        *float64  `json:"base_depth,omitempty" yaml:"base_depth,omitempty"`
	BaseDepthUom     string    `json:"base_depth_uom,omitempty" yaml:"base_depth_uom,omitempty"`
	WellID           string    `json:"well_id,omitempty" yaml:"well_id,omitempty"`
	CreatedAt        time.Time `json:"created_at" yaml:"-"`
	UpdatedAt        time.Time `json:"updated_at" yaml:"-"`
}

// SeismicCoordinate is a single back-filled coordinate sample for a
// line. Write-once: bulk-inserted, never updated.
type SeismicCoordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	SurveyID  string  `json:"survey_id" yaml:"survey_id"`
	LineID    string  `json:"line_id" yaml:"line_id"`
}
