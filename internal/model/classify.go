package model

import (
	"path/filepath"
	"strings"
)

// seismicExtensions are the raw seismic trace formats.
var seismicExtensions = map[string]bool{
	".sgy": true, ".segy": true,
}

// documentExtensions covers the miscellaneous document formats accepted
// for both well and "other" ingestion.
var documentExtensions = map[string]bool{
	".dat": true, ".bin": true, ".raw": true, ".txt": true, ".csv": true,
	".xlsx": true, ".xls": true, ".pdf": true, ".doc": true, ".docx": true,
	".tif": true, ".tiff": true, ".jpg": true, ".jpeg": true, ".png": true,
}

// extensionTypes maps a lowercase file extension to its declared format.
var extensionTypes = map[string]ExtensionType{
	".las": ExtensionLAS, ".sgy": ExtensionSEGY, ".segy": ExtensionSEGY,
	".pdf": ExtensionPDF, ".doc": ExtensionWord, ".docx": ExtensionWord,
	".tif": ExtensionTIFF, ".tiff": ExtensionTIFF,
	".xls": ExtensionExcel, ".xlsx": ExtensionExcel,
	".jpg": ExtensionJPG, ".jpeg": ExtensionJPG,
	".ppt": ExtensionPPT, ".pptx": ExtensionPPT,
}

// AllowedExtension reports whether a file extension is accepted for the
// given ingestion family.
func AllowedExtension(ext string, dt DataType) bool {
	ext = strings.ToLower(ext)
	switch dt {
	case DataTypeSeismic:
		return seismicExtensions[ext]
	case DataTypeWell:
		return ext == ".las" || documentExtensions[ext]
	case DataTypeOther:
		return documentExtensions[ext]
	}
	return false
}

// ClassifyExtension maps a file extension to its ExtensionType, or
// ExtensionNull when the extension carries no declared format.
func ClassifyExtension(ext string) ExtensionType {
	if et, ok := extensionTypes[strings.ToLower(ext)]; ok {
		return et
	}
	return ExtensionNull
}

// Classify builds a skeletal FileRecord for a path within an ingestion
// family. Category/subcategory/dimension are user-assigned later; the
// extraction gateway fills the format record.
func Classify(path string, dt DataType) FileRecord {
	ext := filepath.Ext(path)
	return FileRecord{
		Path:          path,
		Name:          filepath.Base(path),
		Extension:     strings.ToLower(ext),
		DataType:      dt,
		ExtensionType: ClassifyExtension(ext),
		Category:      CategoryNull,
		Subcategory:   SubcategoryNull,
		Dimension:     DimensionNull,
	}
}
