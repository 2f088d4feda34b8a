package qc

import (
	"strings"
	"time"

	"github.com/edafy/ingest-cli/internal/model"
)

const (
	shotPointMin = 1
	shotPointMax = 99999999
)

func is(p *string, v string) bool {
	return p != nil && strings.TrimSpace(*p) == v
}

func category(r *model.SegyRecord, c model.Category) bool {
	return is(r.Category, string(c))
}

func subcategory(r *model.SegyRecord, s model.Subcategory) bool {
	return is(r.Subcategory, string(s))
}

func dimension(r *model.SegyRecord, d model.Dimension) bool {
	return is(r.Dimension, string(d))
}

// ValidateSegy evaluates the SEG-Y rule catalog against one record.
// `at` is the validation instant used by the created-date rule.
//
// The field-level rules are pairwise constraints conditioned on
// category, subcategory, and dimension, not plain presence checks;
// the branch order below is the catalog's evaluation order and must
// stay stable so repeated runs produce identical issue lists.
func ValidateSegy(r *model.SegyRecord, at time.Time) Result {
	c := &issues{}
	if r == nil {
		r = &model.SegyRecord{}
	}

	if IsNullOrEmpty(r.CreatedBy) {
		c.add("created_by", "CREATED BY is null.")
	}
	if IsNullOrEmpty(r.CreatedFor) {
		c.add("created_for", "CREATED FOR is null.")
	}

	if IsNullOrEmpty(r.NumTraces) {
		c.add("ntraces", "# TRACES is null.")
	}
	if IsNullOrEmpty(r.FirstTrace) {
		c.add("first_trc", "FTRC is null.")
	}
	if IsNullOrEmpty(r.LastTrace) {
		c.add("last_trc", "LTRC is null.")
	}

	// FFFID/LFFID: required for field data and observer support files,
	// must be absent for processed data and gathers.
	checkFieldFileID(c, r, "first_field_file", "FFFID", r.FirstFieldFile)
	checkFieldFileID(c, r, "last_field_file", "LFFID", r.LastFieldFile)

	// FSP/LSP: scoped to 2D; 3D processed data must not carry them.
	checkShotPoint(c, r, "fsp", "FSP", r.FSP)
	checkShotPoint(c, r, "lsp", "LSP", r.LSP)

	// FCDP/LCDP: required for 2D processed data, absent for field data.
	checkCDP(c, r, "fcdp", "FCDP", r.FCDP)
	checkCDP(c, r, "lcdp", "LCDP", r.LCDP)

	checkInlineXline(c, r, "inline", "INLINE", r.Inline)
	checkInlineXline(c, r, "xline", "XLINE", r.Xline)

	if dimension(r, model.Dimension3D) && IsNullOrEmpty(r.BinSpacing) && category(r, model.CategoryProcessed) {
		c.add("bin_spacing", "BIN SPACING is null.")
	}

	checkCreatedDate(c, "created_date", r.CreatedDate, at)

	checkSampleType(c, r)

	if IsNullOrEmpty(r.SampleRate) && category(r, model.CategoryField) {
		c.add("sample_rate", "SAMPLE RATE is null.")
	}
	if IsNullOrEmpty(r.RecordLength) && category(r, model.CategoryField) {
		c.add("record_length", "RECORD LENGTH is null.")
	}

	if IsNullOrEmpty(r.Category) {
		c.add("category", "CATEGORY is null or invalid.")
	}
	if IsNullOrEmpty(r.Subcategory) {
		c.add("subcategory", "SUBCATEGORY is null or invalid.")
	}
	if IsNullOrEmpty(r.ExtensionType) {
		c.add("extension_type", "FORMAT is null or invalid.")
	}

	return c.result()
}

func checkFieldFileID(c *issues, r *model.SegyRecord, field, label string, v *float64) {
	switch {
	case category(r, model.CategoryField) && IsNullOrEmpty(v):
		c.add(field, label+" is null.")
	case category(r, model.CategorySupport) && subcategory(r, model.SubcategoryObservers) && IsNullOrEmpty(v):
		// The observers branch words a missing value as "should be
		// null.", unlike the field branch above.
		c.add(field, label+" should be null.")
	case (category(r, model.CategoryProcessed) || category(r, model.CategoryGathers)) && !IsNullOrEmpty(v):
		c.add(field, label+" should be null.")
	}
}

func checkShotPoint(c *issues, r *model.SegyRecord, field, label string, v *float64) {
	twoD := dimension(r, model.Dimension2D)
	switch {
	case twoD && category(r, model.CategoryField) && IsNullOrEmpty(v):
		c.add(field, label+" is null.")
	case twoD && category(r, model.CategorySupport) && subcategory(r, model.SubcategoryObservers) && IsNullOrEmpty(v):
		c.add(field, label+" is null.")
	case twoD && category(r, model.CategoryProcessed) && IsNullOrEmpty(v):
		c.add(field, label+" is null.")
	case dimension(r, model.Dimension3D) && category(r, model.CategoryProcessed) && !IsNullOrEmpty(v):
		c.add(field, label+" should be null.")
	case v != nil && (*v < shotPointMin || *v > shotPointMax):
		c.add(field, label+" is either < 1 or > 99999999.")
	}
}

func checkCDP(c *issues, r *model.SegyRecord, field, label string, v *float64) {
	switch {
	case dimension(r, model.Dimension2D) && category(r, model.CategoryProcessed) && IsNullOrEmpty(v):
		c.add(field, label+" is null.")
	case category(r, model.CategoryField) && !IsNullOrEmpty(v):
		c.add(field, label+" should be null.")
	}
}

func checkInlineXline(c *issues, r *model.SegyRecord, field, label string, v *float64) {
	if dimension(r, model.Dimension2D) && !IsNullOrEmpty(v) &&
		(category(r, model.CategoryField) || category(r, model.CategoryProcessed)) {
		c.add(field, label+" should be null for 2D.")
	}
	if dimension(r, model.Dimension3D) && IsNullOrEmpty(v) {
		switch {
		case category(r, model.CategoryProcessed) &&
			(subcategory(r, model.SubcategoryStack) || subcategory(r, model.SubcategoryMigration)):
			c.add(field, label+" is null.")
		case category(r, model.CategoryVelocity):
			c.add(field, label+" is null.")
		case category(r, model.CategoryGathers) && subcategory(r, model.SubcategoryShotGathers):
			// Inlines/xlines are not populated for 3D shot gathers.
		case category(r, model.CategoryField) && subcategory(r, model.SubcategoryFieldWithGeometry):
			// Not populated for 3D field-with-geometry either.
		}
	}
}

// checkSampleType enforces the sample-type enumeration and the UoM
// consistency rule. Both TIME and DEPTH require "seconds" units; the
// DEPTH branch inherits the TIME units verbatim from the rule source,
// so depth-domain data is still held to seconds.
func checkSampleType(c *issues, r *model.SegyRecord) {
	valid := false
	if r.SampleType != nil {
		for _, st := range model.ValidSampleTypes {
			if strings.TrimSpace(*r.SampleType) == string(st) {
				valid = true
				break
			}
		}
	}
	if IsNullOrEmpty(r.SampleType) || !valid {
		c.add("sample_type", "SAMPLE TYPE is null.")
		return
	}
	if !uomIsSeconds(r.SampleRateUom) {
		c.add("sample_rate_uom", "SAMPLE RATE UOM does not match SAMPLE TYPE.")
	}
	if !uomIsSeconds(r.RecordLenUom) {
		c.add("record_length_uom", "RECORD LENGTH UOM does not match SAMPLE TYPE.")
	}
}

func uomIsSeconds(uom *string) bool {
	return uom != nil && strings.EqualFold(strings.TrimSpace(*uom), "seconds")
}
