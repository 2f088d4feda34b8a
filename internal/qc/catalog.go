package qc

// RuleDoc is a human-readable description of one catalog rule, used for
// the `qc rules` dump. The executable rules live in the Validate*
// functions; this listing mirrors them for operators reviewing the
// active QC policy.
type RuleDoc struct {
	Format    Format `yaml:"format"`
	Field     string `yaml:"field"`
	Condition string `yaml:"condition,omitempty"`
	Rule      string `yaml:"rule"`
}

// Catalog returns the rule listing for all three formats in evaluation
// order.
func Catalog() []RuleDoc {
	return []RuleDoc{
		{FormatSegy, "created_by", "", "required"},
		{FormatSegy, "created_for", "", "required"},
		{FormatSegy, "ntraces", "", "required"},
		{FormatSegy, "first_trc", "", "required"},
		{FormatSegy, "last_trc", "", "required"},
		{FormatSegy, "first_field_file", "category FIELD", "required"},
		{FormatSegy, "first_field_file", "category SUPPORT + OBSERVERS", "required (reported as should-be-null)"},
		{FormatSegy, "first_field_file", "category PROCESSED or GATHERS", "must be null"},
		{FormatSegy, "last_field_file", "category FIELD", "required"},
		{FormatSegy, "last_field_file", "category SUPPORT + OBSERVERS", "required (reported as should-be-null)"},
		{FormatSegy, "last_field_file", "category PROCESSED or GATHERS", "must be null"},
		{FormatSegy, "fsp", "2D FIELD, 2D SUPPORT + OBSERVERS, or 2D PROCESSED", "required"},
		{FormatSegy, "fsp", "3D PROCESSED", "must be null"},
		{FormatSegy, "fsp", "when set", "range 1..99999999"},
		{FormatSegy, "lsp", "2D FIELD, 2D SUPPORT + OBSERVERS, or 2D PROCESSED", "required"},
		{FormatSegy, "lsp", "3D PROCESSED", "must be null"},
		{FormatSegy, "lsp", "when set", "range 1..99999999"},
		{FormatSegy, "fcdp", "2D PROCESSED", "required"},
		{FormatSegy, "fcdp", "category FIELD", "must be null"},
		{FormatSegy, "lcdp", "2D PROCESSED", "required"},
		{FormatSegy, "lcdp", "category FIELD", "must be null"},
		{FormatSegy, "inline", "2D FIELD or 2D PROCESSED", "must be null"},
		{FormatSegy, "inline", "3D PROCESSED STACK/MIGRATION, or 3D VELOCITY", "required"},
		{FormatSegy, "inline", "3D SHOT GATHERS, 3D FIELD WITH GEOMETRY", "not populated (no issue)"},
		{FormatSegy, "xline", "2D FIELD or 2D PROCESSED", "must be null"},
		{FormatSegy, "xline", "3D PROCESSED STACK/MIGRATION, or 3D VELOCITY", "required"},
		{FormatSegy, "xline", "3D SHOT GATHERS, 3D FIELD WITH GEOMETRY", "not populated (no issue)"},
		{FormatSegy, "bin_spacing", "3D PROCESSED", "required"},
		{FormatSegy, "created_date", "", "valid date, after 1900-01-01, not in the future"},
		{FormatSegy, "sample_type", "", "one of TIME, DEPTH"},
		{FormatSegy, "sample_rate_uom", "sample_type set", "must equal seconds"},
		{FormatSegy, "record_length_uom", "sample_type set", "must equal seconds"},
		{FormatSegy, "sample_rate", "category FIELD", "required"},
		{FormatSegy, "record_length", "category FIELD", "required"},
		{FormatSegy, "category", "", "required"},
		{FormatSegy, "subcategory", "", "required"},
		{FormatSegy, "extension_type", "", "required"},

		{FormatLas, "file_name", "", "required"},
		{FormatLas, "edafy_well_id", "", "required"},
		{FormatLas, "created_by", "", "required"},
		{FormatLas, "created_for", "", "required"},
		{FormatLas, "top_depth", "category WELL LOG", "required"},
		{FormatLas, "top_depth_uom", "category WELL LOG", "required"},
		{FormatLas, "base_depth", "category WELL LOG", "required"},
		{FormatLas, "base_depth_uom", "category WELL LOG", "required"},
		{FormatLas, "created_date", "", "valid date, after 1900-01-01, not in the future"},
		{FormatLas, "category", "", "required"},
		{FormatLas, "subcategory", "", "required"},
		{FormatLas, "extension_type", "", "required"},

		{FormatOther, "edafy_well_id", "", "at least one of well, seismic, or project ID"},
		{FormatOther, "created_by", "", "required"},
		{FormatOther, "created_for", "", "required"},
		{FormatOther, "author", "extension PDF or WORD", "required"},
		{FormatOther, "title", "extension PDF, TIFF, WORD, EXCEL, JPG, or PPT", "required"},
		{FormatOther, "created_date", "", "valid date, after 1900-01-01, not in the future"},
		{FormatOther, "category", "", "required"},
		{FormatOther, "subcategory", "", "required"},
		{FormatOther, "extension_type", "", "required"},
	}
}
