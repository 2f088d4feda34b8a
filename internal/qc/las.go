package qc

import (
	"time"

	"github.com/edafy/ingest-cli/internal/model"
)

// ValidateLas evaluates the LAS rule catalog against one record. Depth
// fields are required only for well-log data; other categories may omit
// them.
func ValidateLas(r *model.LasRecord, at time.Time) Result {
	c := &issues{}
	if r == nil {
		r = &model.LasRecord{}
	}

	if IsNullOrEmpty(r.FileName) {
		c.add("file_name", "FILE NAME is null.")
	}
	if IsNullOrEmpty(r.WellID) {
		c.add("edafy_well_id", "EDAFY WELL ID is null.")
	}
	if IsNullOrEmpty(r.CreatedBy) {
		c.add("created_by", "CREATED BY is null.")
	}
	if IsNullOrEmpty(r.CreatedFor) {
		c.add("created_for", "CREATED FOR is null.")
	}

	wellLog := is(r.Category, string(model.CategoryWellLog))
	if IsNullOrEmpty(r.TopDepth) && wellLog {
		c.add("top_depth", "TOP DEPTH NEEDS TO BE POPULATED.")
	}
	if IsNullOrEmpty(r.TopDepthUom) && wellLog {
		c.add("top_depth_uom", "TOP DEPTH UoM NEEDS TO BE POPULATED")
	}
	if IsNullOrEmpty(r.BaseDepth) && wellLog {
		c.add("base_depth", "BASE DEPTH NEEDS TO BE POPULATED.")
	}
	if IsNullOrEmpty(r.BaseDepthUom) && wellLog {
		c.add("base_depth_uom", "BASE DEPTH UoM NEEDS TO BE POPULATED")
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
