package filter

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"isoref/internal/core/apperror"
)

// Match reports whether fields satisfy every item.
// List-valued fields match eq/in/contains when any element does.
func Match(fields map[string]any, items []Item) (bool, error) {
	for _, it := range items {
		ok, err := matchItem(fields[it.Field], it)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchItem(actual any, it Item) (bool, error) {
	switch it.Operator {
	case Equal:
		return equal(actual, it.Value), nil
	case NotEqual:
		return !equal(actual, it.Value), nil
	case InList, NotInList:
		values, _ := it.Value.([]any)
		in := slices.ContainsFunc(values, func(v any) bool { return equal(actual, v) })
		return in == (it.Operator == InList), nil
	case Contains, NotContains:
		found := contains(actual, strings.ToLower(fmt.Sprint(it.Value)))
		return found == (it.Operator == Contains), nil
	case Less, LessOrEqual, Greater, GreaterOrEqual:
		a, okA := number(actual)
		b, okB := number(it.Value)
		if !okA || !okB {
			return false, apperror.NewValidation(fmt.Sprintf("operator %s needs numeric operands", it.Operator)).
				WithDetail("field", it.Field)
		}
		switch it.Operator {
		case Less:
			return a < b, nil
		case LessOrEqual:
			return a <= b, nil
		case Greater:
			return a > b, nil
		default:
			return a >= b, nil
		}
	}
	return false, apperror.NewValidation(fmt.Sprintf("unknown filter operator %q", it.Operator))
}

func equal(actual, want any) bool {
	switch a := actual.(type) {
	case []string:
		return slices.ContainsFunc(a, func(s string) bool { return equal(s, want) })
	case string:
		return strings.EqualFold(a, fmt.Sprint(want))
	}
	a, okA := number(actual)
	b, okB := number(want)
	return okA && okB && a == b
}

func contains(actual any, sub string) bool {
	if list, ok := actual.([]string); ok {
		return slices.ContainsFunc(list, func(s string) bool { return contains(s, sub) })
	}
	return strings.Contains(strings.ToLower(fmt.Sprint(actual)), sub)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
