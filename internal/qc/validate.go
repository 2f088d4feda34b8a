package qc

import (
	"time"

	"github.com/edafy/ingest-cli/internal/model"
)

// Format selects which rule catalog applies to a record.
type Format string

const (
	FormatSegy  Format = "SEGY"
	FormatLas   Format = "LAS"
	FormatOther Format = "OTHER"
)

// FormatFor maps an ingestion family to its rule-catalog format.
func FormatFor(dt model.DataType) Format {
	switch dt {
	case model.DataTypeSeismic:
		return FormatSegy
	case model.DataTypeWell:
		return FormatLas
	default:
		return FormatOther
	}
}

// Validate runs the rule catalog for the given format against the
// record's metadata as of `at`. It never returns an error: a record
// whose format carrier is missing, or an unrecognized format, yields
// a Result describing the problem as issues.
func Validate(rec *model.FileRecord, format Format, at time.Time) Result {
	if rec == nil {
		return Result{Valid: false, Issues: []Issue{{Field: "record", Message: "record is null"}}}
	}
	switch format {
	case FormatSegy:
		return ValidateSegy(rec.Segy, at)
	case FormatLas:
		return ValidateLas(rec.Las, at)
	case FormatOther:
		return ValidateOther(rec.Other, at)
	}
	return Result{Valid: false, Issues: []Issue{{Field: "format", Message: "unknown format"}}}
}
