// Package model defines the file records, persisted entities, and enum
// vocabularies shared across the ingestion pipeline.
package model

// ExtensionType identifies the declared format of an ingested file.
type ExtensionType string

const (
	ExtensionNull  ExtensionType = "-"
	ExtensionLAS   ExtensionType = "LAS"
	ExtensionSEGY  ExtensionType = "SEGY"
	ExtensionPDF   ExtensionType = "PDF"
	ExtensionWord  ExtensionType = "WORD"
	ExtensionTIFF  ExtensionType = "TIFF"
	ExtensionExcel ExtensionType = "EXCEL"
	ExtensionJPG   ExtensionType = "JPG"
	ExtensionPPT   ExtensionType = "PPT"
)

// Category classifies the acquisition/processing stage of a file.
type Category string

const (
	CategoryNull      Category = "-"
	CategoryField     Category = "FIELD"
	CategoryProcessed Category = "PROCESSED"
	CategorySupport   Category = "SUPPORT"
	CategoryGathers   Category = "GATHERS"
	CategoryVelocity  Category = "VELOCITY"
	CategoryWellLog   Category = "WELL LOG"
)

// Subcategory refines a Category.
type Subcategory string

const (
	SubcategoryNull              Subcategory = "-"
	SubcategoryObservers         Subcategory = "OBSERVERS"
	SubcategoryStack             Subcategory = "STACK"
	SubcategoryMigration         Subcategory = "MIGRATION"
	SubcategoryShotGathers       Subcategory = "SHOT GATHERS"
	SubcategoryFieldWithGeometry Subcategory = "FIELD WITH GEOMETRY"
)

// Dimension is the survey dimensionality.
type Dimension string

const (
	DimensionNull Dimension = "-"
	Dimension2D   Dimension = "2D"
	Dimension3D   Dimension = "3D"
)

// SampleType is the vertical domain of seismic samples.
type SampleType string

const (
	SampleTypeTime  SampleType = "TIME"
	SampleTypeDepth SampleType = "DEPTH"
)

// ValidSampleTypes enumerates the accepted sample types.
var ValidSampleTypes = []SampleType{SampleTypeTime, SampleTypeDepth}

// DataType groups files into the three ingestion families.
type DataType string

const (
	DataTypeSeismic DataType = "seismic"
	DataTypeWell    DataType = "well"
	DataTypeOther   DataType = "other"
)
