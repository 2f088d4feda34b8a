package qc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edafy/ingest-cli/internal/model"
)

// checkedAt is the fixed validation instant used across the tests so
// the created-date rules are deterministic.
var checkedAt = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// processedStack2D is a SEG-Y record that passes every rule for
// 2D PROCESSED STACK data.
func processedStack2D() *model.SegyRecord {
	return &model.SegyRecord{
		FileName:      model.Str("LINE-42.sgy"),
		ExtensionType: model.Str(string(model.ExtensionSEGY)),
		Category:      model.Str(string(model.CategoryProcessed)),
		Subcategory:   model.Str(string(model.SubcategoryStack)),
		Dimension:     model.Str(string(model.Dimension2D)),
		CreatedBy:     model.Str("jdoe"),
		CreatedFor:    model.Str("block-7 farm-in"),
		CreatedDate:   model.Str("2020-06-01"),
		NumTraces:     model.Num(854),
		FirstTrace:    model.Num(1),
		LastTrace:     model.Num(854),
		FSP:           model.Num(101),
		LSP:           model.Num(954),
		FCDP:          model.Num(200),
		LCDP:          model.Num(1900),
		SampleType:    model.Str(string(model.SampleTypeTime)),
		SampleRateUom: model.Str("seconds"),
		RecordLenUom:  model.Str("seconds"),
	}
}

func fieldsOf(res Result) []string {
	fields := make([]string, 0, len(res.Issues))
	for _, i := range res.Issues {
		fields = append(fields, i.Field)
	}
	return fields
}

func TestValidateSegyCleanRecord(t *testing.T) {
	res := ValidateSegy(processedStack2D(), checkedAt)
	assert.True(t, res.Valid, "issues: %v", res.Issues)
	assert.Empty(t, res.Issues)
}

func TestValidateSegyNilRecordReportsEverythingRequired(t *testing.T) {
	res := ValidateSegy(nil, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, fieldsOf(res), "created_by")
	assert.Contains(t, fieldsOf(res), "ntraces")
	assert.Contains(t, fieldsOf(res), "category")
}

func TestValidateSegyFieldRequiresFieldFileIDs(t *testing.T) {
	r := processedStack2D()
	r.Category = model.Str(string(model.CategoryField))
	r.Subcategory = model.Str(string(model.SubcategoryFieldWithGeometry))
	r.FCDP, r.LCDP = nil, nil
	r.SampleRate = model.Num(2)
	r.RecordLength = model.Num(6)

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, res.Issues, Issue{Field: "first_field_file", Message: "FFFID is null."})
	assert.Contains(t, res.Issues, Issue{Field: "last_field_file", Message: "LFFID is null."})
	assert.ElementsMatch(t, []string{"first_field_file", "last_field_file"}, fieldsOf(res))
}

func TestValidateSegyProcessedMustNotCarryFieldFileIDs(t *testing.T) {
	r := processedStack2D()
	r.FirstFieldFile = model.Num(5)
	r.LastFieldFile = model.Num(9)

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, res.Issues, Issue{Field: "first_field_file", Message: "FFFID should be null."})
	assert.Contains(t, res.Issues, Issue{Field: "last_field_file", Message: "LFFID should be null."})
}

func TestValidateSegyObserversWordingForMissingFieldFileIDs(t *testing.T) {
	r := processedStack2D()
	r.Category = model.Str(string(model.CategorySupport))
	r.Subcategory = model.Str(string(model.SubcategoryObservers))

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, res.Issues, Issue{Field: "first_field_file", Message: "FFFID should be null."})
	assert.Contains(t, res.Issues, Issue{Field: "last_field_file", Message: "LFFID should be null."})
}

func TestValidateSegyDeterministicIssueLists(t *testing.T) {
	r := &model.SegyRecord{
		Category:  model.Str(string(model.CategoryProcessed)),
		Dimension: model.Str(string(model.Dimension2D)),
	}
	first := ValidateSegy(r, checkedAt)
	second := ValidateSegy(r, checkedAt)
	require.False(t, first.Valid)
	assert.Equal(t, first.Issues, second.Issues)
}

func TestValidateSegyOneIssuePerMissingField(t *testing.T) {
	r := processedStack2D()
	r.CreatedBy = nil
	r.NumTraces = nil
	r.FCDP = nil

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.ElementsMatch(t, []string{"created_by", "ntraces", "fcdp"}, fieldsOf(res))
}

func TestValidateSegyFieldDataMustNotCarryCDP(t *testing.T) {
	r := processedStack2D()
	r.Category = model.Str(string(model.CategoryField))
	r.Subcategory = model.Str(string(model.SubcategoryFieldWithGeometry))
	r.FirstFieldFile = model.Num(1)
	r.LastFieldFile = model.Num(12)
	r.SampleRate = model.Num(2)
	r.RecordLength = model.Num(6)

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, res.Issues, Issue{Field: "fcdp", Message: "FCDP should be null."})
	assert.Contains(t, res.Issues, Issue{Field: "lcdp", Message: "LCDP should be null."})
}

func TestValidateSegy3DProcessedMustNotCarryShotPoints(t *testing.T) {
	r := processedStack2D()
	r.Dimension = model.Str(string(model.Dimension3D))
	r.Inline = model.Num(120)
	r.Xline = model.Num(480)
	r.BinSpacing = model.Num(12.5)

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, res.Issues, Issue{Field: "fsp", Message: "FSP should be null."})
	assert.Contains(t, res.Issues, Issue{Field: "lsp", Message: "LSP should be null."})
}

func TestValidateSegyShotPointRange(t *testing.T) {
	r := processedStack2D()
	r.FSP = model.Num(0)
	r.LSP = model.Num(100000000)

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, res.Issues, Issue{Field: "fsp", Message: "FSP is either < 1 or > 99999999."})
	assert.Contains(t, res.Issues, Issue{Field: "lsp", Message: "LSP is either < 1 or > 99999999."})
}

func TestValidateSegy3DStackRequiresInlineXline(t *testing.T) {
	r := processedStack2D()
	r.Dimension = model.Str(string(model.Dimension3D))
	r.FSP = nil
	r.LSP = nil
	r.BinSpacing = model.Num(12.5)

	res := ValidateSegy(r, checkedAt)
	require.False(t, res.Valid)
	assert.Contains(t, res.Issues, Issue{Field: "inline", Message: "INLINE is null."})
	assert.Contains(t, res.Issues, Issue{Field: "xline", Message: "XLINE is null."})
	assert.NotContains(t, fieldsOf(res), "bin_spacing")
}

func TestValidateSegy3DShotGathersSkipInlineXline(t *testing.T) {
	r := processedStack2D()
	r.Dimension = model.Str(string(model.Dimension3D))
	r.Category = model.Str(string(model.CategoryGathers))
	r.Subcategory = model.Str(string(model.SubcategoryShotGathers))
	r.FSP = nil
	r.LSP = nil
	r.FCDP = nil
	r.LCDP = nil

	res := ValidateSegy(r, checkedAt)
	assert.NotContains(t, fieldsOf(res), "inline")
	assert.NotContains(t, fieldsOf(res), "xline")
}

func TestValidateSegySampleType(t *testing.T) {
	t.Run("unknown sample type", func(t *testing.T) {
		r := processedStack2D()
		r.SampleType = model.Str("FREQUENCY")
		res := ValidateSegy(r, checkedAt)
		assert.Contains(t, res.Issues, Issue{Field: "sample_type", Message: "SAMPLE TYPE is null."})
		assert.NotContains(t, fieldsOf(res), "sample_rate_uom")
	})

	t.Run("uom mismatch", func(t *testing.T) {
		r := processedStack2D()
		r.SampleRateUom = model.Str("ms")
		r.RecordLenUom = nil
		res := ValidateSegy(r, checkedAt)
		assert.Contains(t, res.Issues, Issue{Field: "sample_rate_uom", Message: "SAMPLE RATE UOM does not match SAMPLE TYPE."})
		assert.Contains(t, res.Issues, Issue{Field: "record_length_uom", Message: "RECORD LENGTH UOM does not match SAMPLE TYPE."})
	})

	t.Run("depth domain still held to seconds", func(t *testing.T) {
		r := processedStack2D()
		r.SampleType = model.Str(string(model.SampleTypeDepth))
		res := ValidateSegy(r, checkedAt)
		assert.True(t, res.Valid, "issues: %v", res.Issues)
	})
}

func TestCheckCreatedDate(t *testing.T) {
	run := func(date *string) Result {
		r := processedStack2D()
		r.CreatedDate = date
		return ValidateSegy(r, checkedAt)
	}

	assert.Contains(t, run(nil).Issues, Issue{Field: "created_date", Message: "CREATED DATE is null."})
	assert.Contains(t, run(model.Str("June 2020")).Issues, Issue{Field: "created_date", Message: "Invalid date format"})
	assert.Contains(t, run(model.Str("1899-12-31")).Issues, Issue{Field: "created_date", Message: "Invalid Created Date"})
	assert.Contains(t, run(model.Str("2031-01-01")).Issues, Issue{Field: "created_date", Message: "Invalid Created Date"})

	for _, ok := range []string{"2020-06-01", "2020/06/01", "01/06/2020", "2020-06-01T10:30:00Z"} {
		assert.True(t, run(model.Str(ok)).Valid, "date %q should pass", ok)
	}
}

func TestValidateLasWellLogRequiresDepths(t *testing.T) {
	r := &model.LasRecord{
		FileName:      model.Str("well-9.las"),
		WellID:        model.Str("well-9"),
		ExtensionType: model.Str(string(model.ExtensionLAS)),
		Category:      model.Str(string(model.CategoryWellLog)),
		Subcategory:   model.Str("RAW"),
		CreatedBy:     model.Str("jdoe"),
		CreatedFor:    model.Str("block-7 farm-in"),
		CreatedDate:   model.Str("2020-06-01"),
	}

	res := ValidateLas(r, checkedAt)
	require.False(t, res.Valid)
	assert.ElementsMatch(t, []string{"top_depth", "top_depth_uom", "base_depth", "base_depth_uom"}, fieldsOf(res))

	r.TopDepth = model.Num(120.5)
	r.TopDepthUom = model.Str("m")
	r.BaseDepth = model.Num(2480)
	r.BaseDepthUom = model.Str("m")
	assert.True(t, ValidateLas(r, checkedAt).Valid)

	// Depths are optional outside WELL LOG.
	r.TopDepth, r.TopDepthUom, r.BaseDepth, r.BaseDepthUom = nil, nil, nil, nil
	r.Category = model.Str(string(model.CategorySupport))
	assert.True(t, ValidateLas(r, checkedAt).Valid)
}

func TestValidateOther(t *testing.T) {
	base := func() *model.OtherRecord {
		return &model.OtherRecord{
			SeismicID:     model.Str("sd-1"),
			FileName:      model.Str("acquisition-report.pdf"),
			ExtensionType: model.Str(string(model.ExtensionPDF)),
			Category:      model.Str(string(model.CategorySupport)),
			Subcategory:   model.Str(string(model.SubcategoryObservers)),
			Author:        model.Str("contractor"),
			Title:         model.Str("Acquisition Report"),
			CreatedBy:     model.Str("jdoe"),
			CreatedFor:    model.Str("block-7 farm-in"),
			CreatedDate:   model.Str("2020-06-01"),
		}
	}

	assert.True(t, ValidateOther(base(), checkedAt).Valid)

	t.Run("needs some owning entity", func(t *testing.T) {
		r := base()
		r.SeismicID = nil
		res := ValidateOther(r, checkedAt)
		assert.Contains(t, res.Issues, Issue{Field: "edafy_well_id", Message: "Ensure at least Well ID or Seismic ID or Project ID is chosen."})

		r.ProjectID = model.Str("proj-3")
		assert.True(t, ValidateOther(r, checkedAt).Valid)
	})

	t.Run("pdf requires author and title", func(t *testing.T) {
		r := base()
		r.Author = nil
		r.Title = model.Str("   ")
		res := ValidateOther(r, checkedAt)
		assert.Contains(t, res.Issues, Issue{Field: "author", Message: "AUTHOR is null."})
		assert.Contains(t, res.Issues, Issue{Field: "title", Message: "TITLE is null."})
	})

	t.Run("csv needs neither author nor title", func(t *testing.T) {
		r := base()
		r.ExtensionType = model.Str("CSV")
		r.Author = nil
		r.Title = nil
		assert.True(t, ValidateOther(r, checkedAt).Valid)
	})
}

func TestValidateDispatch(t *testing.T) {
	res := Validate(nil, FormatSegy, checkedAt)
	require.False(t, res.Valid)
	assert.Equal(t, "record", res.Issues[0].Field)

	rec := &model.FileRecord{Segy: processedStack2D()}
	assert.True(t, Validate(rec, FormatSegy, checkedAt).Valid)

	res = Validate(rec, Format("GRAVITY"), checkedAt)
	require.False(t, res.Valid)
	assert.Equal(t, "format", res.Issues[0].Field)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatSegy, FormatFor(model.DataTypeSeismic))
	assert.Equal(t, FormatLas, FormatFor(model.DataTypeWell))
	assert.Equal(t, FormatOther, FormatFor(model.DataTypeOther))
}

func TestIsNullOrEmpty(t *testing.T) {
	assert.True(t, IsNullOrEmpty(nil))
	assert.True(t, IsNullOrEmpty(""))
	assert.True(t, IsNullOrEmpty("   "))
	assert.True(t, IsNullOrEmpty((*string)(nil)))
	assert.True(t, IsNullOrEmpty((*float64)(nil)))
	assert.False(t, IsNullOrEmpty(model.Str("x")))
	assert.False(t, IsNullOrEmpty(model.Num(0)), "zero is present, not missing")
	assert.False(t, IsNullOrEmpty(false))
}

func TestCatalogCoversAllFormats(t *testing.T) {
	byFormat := map[Format]int{}
	for _, rule := range Catalog() {
		byFormat[rule.Format]++
	}
	assert.Positive(t, byFormat[FormatSegy])
	assert.Positive(t, byFormat[FormatLas])
	assert.Positive(t, byFormat[FormatOther])
}
