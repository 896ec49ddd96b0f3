// Package domain provides the catalogue query service shared by all reference domains.
package domain

import (
	"isoref/internal/domain/filter"
)

// MaxListLimit caps one page of results.
const MaxListLimit = 500

// ListFilter contains the selection options for list operations.
type ListFilter struct {
	// Search matches a case-insensitive substring of the name, or any code exactly.
	Search string

	// AdvancedFilters are structured conditions, ANDed.
	AdvancedFilters []filter.Item

	// Expr is a CEL boolean expression over the record fields.
	Expr string

	// OrderBy is a field name, "-" prefix for descending. Empty keeps catalogue order.
	OrderBy string

	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{Limit: 50}
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// Record is a catalogue entry as seen by list operations.
type Record interface {
	// Codes returns every code of the entry in canonical text.
	Codes() []string
	// Fields returns the values visible to filters, expressions and ordering.
	Fields() map[string]any
}

// LookupRecorder observes code resolution outcomes.
type LookupRecorder interface {
	RecordLookup(domain string, err error)
}
