// Package filter describes catalogue selections: structured items and CEL expressions.
package filter

import (
	"fmt"
	"slices"

	"isoref/internal/core/apperror"
)

// ComparisonType is the operator of one filter item.
type ComparisonType string

const (
	Equal          ComparisonType = "eq"
	NotEqual       ComparisonType = "neq"
	Less           ComparisonType = "lt"
	LessOrEqual    ComparisonType = "lte"
	Greater        ComparisonType = "gt"
	GreaterOrEqual ComparisonType = "gte"
	InList         ComparisonType = "in"
	NotInList      ComparisonType = "nin"
	Contains       ComparisonType = "contains"  // case-insensitive substring
	NotContains    ComparisonType = "ncontains" // negated Contains
)

var operators = []ComparisonType{
	Equal, NotEqual, Less, LessOrEqual, Greater, GreaterOrEqual,
	InList, NotInList, Contains, NotContains,
}

// Item is one condition of a selection. Items are ANDed.
type Item struct {
	Field    string         `json:"field"`    // snake_case field name
	Operator ComparisonType `json:"operator"` // comparison
	Value    any            `json:"value"`    // string, number or array for in/nin
}

// Validate checks the operator and that Field is one of fields.
func (i Item) Validate(fields []string) error {
	if !slices.Contains(fields, i.Field) {
		return apperror.NewValidation(fmt.Sprintf("unknown filter field %q", i.Field)).
			WithDetail("allowed", fields)
	}
	if !slices.Contains(operators, i.Operator) {
		return apperror.NewValidation(fmt.Sprintf("unknown filter operator %q", i.Operator))
	}
	if i.Operator == InList || i.Operator == NotInList {
		if _, ok := i.Value.([]any); !ok {
			return apperror.NewValidation(fmt.Sprintf("operator %s needs an array value", i.Operator)).
				WithDetail("field", i.Field)
		}
	}
	return nil
}

// ValidateAll validates every item against fields.
func ValidateAll(items []Item, fields []string) error {
	for _, it := range items {
		if err := it.Validate(fields); err != nil {
			return err
		}
	}
	return nil
}
