package filter

import (
	"encoding/json"
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
)

var switzerland = map[string]any{
	"alpha2":     "CH",
	"numeric":    int64(756),
	"name":       "Switzerland",
	"currencies": []string{"CHE", "CHF", "CHW"},
}

func TestMatch_Operators(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"eq case-insensitive", Item{Field: "alpha2", Operator: Equal, Value: "ch"}, true},
		{"neq", Item{Field: "alpha2", Operator: NotEqual, Value: "FR"}, true},
		{"eq number from json", Item{Field: "numeric", Operator: Equal, Value: float64(756)}, true},
		{"eq number from padded text", Item{Field: "numeric", Operator: Equal, Value: "0756"}, true},
		{"lt", Item{Field: "numeric", Operator: Less, Value: 100}, false},
		{"gte", Item{Field: "numeric", Operator: GreaterOrEqual, Value: 756}, true},
		{"in", Item{Field: "alpha2", Operator: InList, Value: []any{"FR", "CH"}}, true},
		{"nin", Item{Field: "alpha2", Operator: NotInList, Value: []any{"FR", "CH"}}, false},
		{"contains", Item{Field: "name", Operator: Contains, Value: "SWITZ"}, true},
		{"ncontains", Item{Field: "name", Operator: NotContains, Value: "land"}, false},
		{"list eq", Item{Field: "currencies", Operator: Equal, Value: "chf"}, true},
		{"list in", Item{Field: "currencies", Operator: InList, Value: []any{"EUR", "USD"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(switzerland, []Item{tt.item})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_AllItemsMustHold(t *testing.T) {
	ok, err := Match(switzerland, []Item{
		{Field: "alpha2", Operator: Equal, Value: "CH"},
		{Field: "currencies", Operator: Equal, Value: "EUR"},
	})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Match(switzerland, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatch_NonNumericComparison(t *testing.T) {
	_, err := Match(switzerland, []Item{{Field: "name", Operator: Greater, Value: 1}})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, err.(*apperror.AppError).Code)
}

func TestItem_Validate(t *testing.T) {
	fields := []string{"alpha2", "name"}

	assert.NoError(t, Item{Field: "alpha2", Operator: Equal, Value: "GB"}.Validate(fields))
	assert.Error(t, Item{Field: "id", Operator: Equal}.Validate(fields))
	assert.Error(t, Item{Field: "name", Operator: "like"}.Validate(fields))
	assert.Error(t, Item{Field: "name", Operator: InList, Value: "GB"}.Validate(fields))

	var items []Item
	require.NoError(t, json.Unmarshal([]byte(`[{"field":"alpha2","operator":"in","value":["GB","FR"]}]`), &items))
	assert.NoError(t, ValidateAll(items, fields))
}

func countryEnv(t *testing.T) *Env {
	t.Helper()
	env, err := NewEnv(
		Variable{Name: "alpha2", Type: cel.StringType},
		Variable{Name: "numeric", Type: cel.IntType},
		Variable{Name: "name", Type: cel.StringType},
		Variable{Name: "currencies", Type: cel.ListType(cel.StringType)},
	)
	require.NoError(t, err)
	return env
}

func TestExpr_Match(t *testing.T) {
	env := countryEnv(t)

	tests := []struct {
		expr string
		want bool
	}{
		{`"CHF" in currencies`, true},
		{`size(currencies) > 1 && numeric < 800`, true},
		{`name.startsWith("Swe")`, false},
		{`alpha2 == "CH"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			prg, err := env.Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, prg.String())

			got, err := prg.Match(switzerland)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpr_CompileErrors(t *testing.T) {
	env := countryEnv(t)

	for _, expr := range []string{`alpha2 ==`, `unknown == 1`, `numeric + 1`, `name`} {
		_, err := env.Compile(expr)
		require.Error(t, err, expr)
		app, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, app.Code)
	}
}
