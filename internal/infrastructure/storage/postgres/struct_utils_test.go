package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type auditFields struct {
	Source string `db:"source"`
}

type sampleRow struct {
	auditFields
	Code    string `db:"code"`
	Name    string `db:"name"`
	Ignored string `db:"-"`
	Plain   string
}

func TestExtractDBColumns_FlattensEmbedded(t *testing.T) {
	assert.Equal(t, []string{"source", "code", "name"}, ExtractDBColumns[sampleRow]())
	assert.Equal(t, []string{"source", "code", "name"}, ExtractDBColumns[*sampleRow]())
	assert.Empty(t, ExtractDBColumns[int]())
}

func TestStructToMap(t *testing.T) {
	row := sampleRow{auditFields: auditFields{Source: "iso"}, Code: "GB", Name: "United Kingdom", Plain: "x"}

	m := StructToMap(&row)
	assert.Equal(t, map[string]any{"source": "iso", "code": "GB", "name": "United Kingdom"}, m)
	assert.Nil(t, StructToMap(42))
}

func TestRowValues_FollowsColumnOrder(t *testing.T) {
	row := sampleRow{Code: "GB", Name: "United Kingdom"}
	assert.Equal(t, []any{"United Kingdom", "GB", nil}, RowValues(row, []string{"name", "code", "missing"}))
}

func TestCountryRowColumns(t *testing.T) {
	assert.Equal(t, []string{"alpha2", "alpha3", "numeric_code", "name", "sort_order"}, ExtractDBColumns[CountryRow]())
}
