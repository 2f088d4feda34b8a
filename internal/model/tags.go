package model

// TagRef points at an existing line or well selected by the user.
type TagRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// TagFile identifies the file a tag instruction applies to.
type TagFile struct {
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Name     string   `json:"name" yaml:"name"`
	Category DataType `json:"category" yaml:"category"`
}

// TagInstruction is an ephemeral cross-linking instruction tagging one
// file against multiple lines and wells. Instructions are grouped and
// de-duplicated by file name before any pivot rows are written.
type TagInstruction struct {
	File TagFile  `json:"file" yaml:"file"`
	Line []TagRef `json:"line,omitempty" yaml:"line,omitempty"`
	Well []TagRef `json:"well,omitempty" yaml:"well,omitempty"`
}

// CoordinateConfig carries the user-supplied trace-header byte positions
// and formats for source X/Y extraction from one SEG-Y file. Nil fields
// mean "let the extractor use its defaults".
type CoordinateConfig struct {
	SrcXField  *int    `json:"srcx_field,omitempty" yaml:"srcx_field,omitempty"`
	SrcYField  *int    `json:"srcy_field,omitempty" yaml:"srcy_field,omitempty"`
	SrcXFormat *string `json:"srcx_format,omitempty" yaml:"srcx_format,omitempty"`
	SrcYFormat *string `json:"srcy_format,omitempty" yaml:"srcy_format,omitempty"`
}

// IndexedCoordinateConfig pairs a CoordinateConfig with the position of
// its file in the seismic-data batch.
type IndexedCoordinateConfig struct {
	Index  int              `json:"index" yaml:"index"`
	Config CoordinateConfig `json:"config" yaml:"config"`
}

// CRS is the active coordinate reference system for a batch.
type CRS struct {
	SRID  int    `json:"srid" yaml:"srid"`
	Proj4 string `json:"proj4" yaml:"proj4"`
}
