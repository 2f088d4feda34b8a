package qc

import (
	"time"

	"github.com/edafy/ingest-cli/internal/model"
)

// titleRequiredExtensions is the extension allowlist for the title rule.
var titleRequiredExtensions = []model.ExtensionType{
	model.ExtensionPDF,
	model.ExtensionTIFF,
	model.ExtensionWord,
	model.ExtensionExcel,
	model.ExtensionJPG,
	model.ExtensionPPT,
}

// ValidateOther evaluates the miscellaneous-document rule catalog
// against one record. Every document must reference at least one of a
// well, a seismic line, or a project.
func ValidateOther(r *model.OtherRecord, at time.Time) Result {
	c := &issues{}
	if r == nil {
		r = &model.OtherRecord{}
	}

	if IsNullOrEmpty(r.WellID) && IsNullOrEmpty(r.SeismicID) && IsNullOrEmpty(r.ProjectID) {
		c.add("edafy_well_id", "Ensure at least Well ID or Seismic ID or Project ID is chosen.")
	}

	if IsNullOrEmpty(r.CreatedBy) {
		c.add("created_by", "CREATED BY is null.")
	}
	if IsNullOrEmpty(r.CreatedFor) {
		c.add("created_for", "CREATED FOR is null.")
	}

	if IsNullOrEmpty(r.Author) &&
		(is(r.ExtensionType, string(model.ExtensionPDF)) || is(r.ExtensionType, string(model.ExtensionWord))) {
		c.add("author", "AUTHOR is null.")
	}

	if IsNullOrEmpty(r.Title) && titleRequired(r.ExtensionType) {
		c.add("title", "TITLE is null.")
	}

	checkCreatedDate(c, "created_date", r.CreatedDate, at)

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

func titleRequired(ext *string) bool {
	for _, e := range titleRequiredExtensions {
		if is(ext, string(e)) {
			return true
		}
	}
	return false
}
