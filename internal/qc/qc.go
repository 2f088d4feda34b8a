// Package qc implements the rule-based quality-control validator for
// extracted file metadata. Validation is pure and total: it never
// returns an error, accumulates every applicable issue in a stable
// order, and reports unparsable values as issues rather than failures.
package qc

import (
	"strings"
	"time"
)

// Issue is a single validation finding on one metadata field.
type Issue struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// Result is the outcome of validating one record.
type Result struct {
	Valid  bool    `json:"valid" yaml:"valid"`
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// issues accumulates findings in evaluation order.
type issues struct {
	list []Issue
}

func (c *issues) add(field, message string) {
	c.list = append(c.list, Issue{Field: field, Message: message})
}

func (c *issues) result() Result {
	return Result{Valid: len(c.list) == 0, Issues: c.list}
}

// IsNullOrEmpty reports whether a value counts as missing: nil, a nil
// string/number pointer, or a string that is empty or whitespace-only.
// Zero numbers and false booleans are present, not empty.
func IsNullOrEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case *string:
		return x == nil || strings.TrimSpace(*x) == ""
	case *float64:
		return x == nil
	case *int:
		return x == nil
	case *int64:
		return x == nil
	}
	return false
}

// minCreatedDate is the exclusive lower bound for createdDate.
var minCreatedDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// createdDateLayouts are tried in order when parsing createdDate.
var createdDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// checkCreatedDate applies the shared created-date rule: required,
// parsable, strictly after 1900-01-01, and not in the future relative
// to `at`. Invalid format and invalid range are distinct issues.
func checkCreatedDate(c *issues, field string, value *string, at time.Time) {
	if IsNullOrEmpty(value) {
		c.add(field, "CREATED DATE is null.")
		return
	}
	parsed, ok := parseDate(strings.TrimSpace(*value))
	if !ok {
		c.add(field, "Invalid date format")
		return
	}
	if !parsed.After(minCreatedDate) {
		c.add(field, "Invalid Created Date")
	}
	if parsed.After(at) {
		c.add(field, "Invalid Created Date")
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range createdDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
