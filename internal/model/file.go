package model

// SegyRecord holds the metadata extracted and user-assigned for a single
// SEG-Y file, as consumed by the QC engine. Optional fields are pointers
// so that "absent" and "zero" stay distinct.
type SegyRecord struct {
	FileName       *string  `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	SeismicID      *string  `json:"edafy_seismic_id,omitempty" yaml:"edafy_seismic_id,omitempty"`
	SeismicName    *string  `json:"seismic_name,omitempty" yaml:"seismic_name,omitempty"`
	ExtensionType  *string  `json:"extension_type,omitempty" yaml:"extension_type,omitempty"`
	Category       *string  `json:"category,omitempty" yaml:"category,omitempty"`
	Subcategory    *string  `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Dimension      *string  `json:"dimension,omitempty" yaml:"dimension,omitempty"`
	Description    *string  `json:"description,omitempty" yaml:"description,omitempty"`
	ItemRemarks    *string  `json:"item_remarks,omitempty" yaml:"item_remarks,omitempty"`
	CreatedFor     *string  `json:"created_for,omitempty" yaml:"created_for,omitempty"`
	CreatedBy      *string  `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedDate    *string  `json:"created_date,omitempty" yaml:"created_date,omitempty"`
	FirstFieldFile *float64 `json:"first_field_file,omitempty" yaml:"first_field_file,omitempty"`
	LastFieldFile  *float64 `json:"last_field_file,omitempty" yaml:"last_field_file,omitempty"`
	FSP            *float64 `json:"fsp,omitempty" yaml:"fsp,omitempty"`
	LSP            *float64 `json:"lsp,omitempty" yaml:"lsp,omitempty"`
	FCDP           *float64 `json:"fcdp,omitempty" yaml:"fcdp,omitempty"`
	LCDP           *float64 `json:"lcdp,omitempty" yaml:"lcdp,omitempty"`
	Inline         *float64 `json:"inline,omitempty" yaml:"inline,omitempty"`
	Xline          *float64 `json:"xline,omitempty" yaml:"xline,omitempty"`
	BinSpacing     *float64 `json:"bin_spacing,omitempty" yaml:"bin_spacing,omitempty"`
	FirstTrace     *float64 `json:"first_trc,omitempty" yaml:"first_trc,omitempty"`
	LastTrace      *float64 `json:"last_trc,omitempty" yaml:"last_trc,omitempty"`
	NumTraces      *float64 `json:"ntraces,omitempty" yaml:"ntraces,omitempty"`
	SampleType     *string  `json:"sample_type,omitempty" yaml:"sample_type,omitempty"`
	SampleRate     *float64 `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	SampleRateUom  *string  `json:"sample_rate_uom,omitempty" yaml:"sample_rate_uom,omitempty"`
	RecordLength   *float64 `json:"record_length,omitempty" yaml:"record_length,omitempty"`
	RecordLenUom   *string  `json:"record_length_uom,omitempty" yaml:"record_length_uom,omitempty"`
	WindowsPath    *string  `json:"file_windows_path,omitempty" yaml:"file_windows_path,omitempty"`
	UnixPath       *string  `json:"file_unix_path,omitempty" yaml:"file_unix_path,omitempty"`
	FileSizeBytes  *float64 `json:"file_size_bytes,omitempty" yaml:"file_size_bytes,omitempty"`
}

// LasRecord holds the metadata for a single LAS well-log file.
type LasRecord struct {
	FileName      *string  `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	WellID        *string  `json:"edafy_well_id,omitempty" yaml:"edafy_well_id,omitempty"`
	WellName      *string  `json:"well_name,omitempty" yaml:"well_name,omitempty"`
	ExtensionType *string  `json:"extension_type,omitempty" yaml:"extension_type,omitempty"`
	Category      *string  `json:"category,omitempty" yaml:"category,omitempty"`
	Subcategory   *string  `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	TopDepth      *float64 `json:"top_depth,omitempty" yaml:"top_depth,omitempty"`
	TopDepthUom   *string  `json:"top_depth_uom,omitempty" yaml:"top_depth_uom,omitempty"`
	BaseDepth     *float64 `json:"base_depth,omitempty" yaml:"base_depth,omitempty"`
	BaseDepthUom  *string  `json:"base_depth_uom,omitempty" yaml:"base_depth_uom,omitempty"`
	Curves        []string `json:"curves,omitempty" yaml:"curves,omitempty"`
	CreatedFor    *string  `json:"created_for,omitempty" yaml:"created_for,omitempty"`
	CreatedBy     *string  `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedDate   *string  `json:"created_date,omitempty" yaml:"created_date,omitempty"`
}

// OtherRecord holds the metadata for a miscellaneous document.
type OtherRecord struct {
	WellID        *string  `json:"edafy_well_id,omitempty" yaml:"edafy_well_id,omitempty"`
	SeismicID     *string  `json:"edafy_seismic_id,omitempty" yaml:"edafy_seismic_id,omitempty"`
	ProjectID     *string  `json:"edafy_project_id,omitempty" yaml:"edafy_project_id,omitempty"`
	FileName      *string  `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	ExtensionType *string  `json:"extension_type,omitempty" yaml:"extension_type,omitempty"`
	Category      *string  `json:"category,omitempty" yaml:"category,omitempty"`
	Subcategory   *string  `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Description   *string  `json:"description,omitempty" yaml:"description,omitempty"`
	ItemRemarks   *string  `json:"item_remarks,omitempty" yaml:"item_remarks,omitempty"`
	Author        *string  `json:"author,omitempty" yaml:"author,omitempty"`
	Title         *string  `json:"title,omitempty" yaml:"title,omitempty"`
	CreatedFor    *string  `json:"created_for,omitempty" yaml:"created_for,omitempty"`
	CreatedBy     *string  `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedDate   *string  `json:"created_date,omitempty" yaml:"created_date,omitempty"`
	WindowsPath   *string  `json:"file_windows_path,omitempty" yaml:"file_windows_path,omitempty"`
	UnixPath      *string  `json:"file_unix_path,omitempty" yaml:"file_unix_path,omitempty"`
	FileSizeBytes *float64 `json:"file_size_bytes,omitempty" yaml:"file_size_bytes,omitempty"`
}

// FileRecord is the ephemeral per-file ingestion state: classification,
// the format-specific metadata record, and the QC outcome. Exactly one
// of Segy/Las/Other is set, matching DataType.
type FileRecord struct {
	Path          string        `json:"path" yaml:"path"`
	Name          string        `json:"name" yaml:"name"`
	Extension     string        `json:"extension" yaml:"extension"`
	DataType      DataType      `json:"data_type" yaml:"data_type"`
	ExtensionType ExtensionType `json:"extension_type" yaml:"extension_type"`
	Category      Category      `json:"category" yaml:"category"`
	Subcategory   Subcategory   `json:"subcategory" yaml:"subcategory"`
	Dimension     Dimension     `json:"dimension" yaml:"dimension"`

	Segy  *SegyRecord  `json:"segy,omitempty" yaml:"segy,omitempty"`
	Las   *LasRecord   `json:"las,omitempty" yaml:"las,omitempty"`
	Other *OtherRecord `json:"other,omitempty" yaml:"other,omitempty"`
}

// Str returns a pointer to s, for building optional record fields.
func Str(s string) *string { return &s }

// Num returns a pointer to f, for building optional record fields.
func Num(f float64) *float64 { return &f }
