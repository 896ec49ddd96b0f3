package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
	"isoref/internal/domain"
	"isoref/internal/domain/filter"
)

func TestListQuery_ToFilter(t *testing.T) {
	f, err := ListQuery{}.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultListFilter(), f)

	f, err = ListQuery{
		Search: "islands",
		Filter: `[{"field":"numeric","operator":"gte","value":800}]`,
		Expr:   `size(languages) > 1`,
		Limit:  20,
		Offset: 40,
	}.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, "islands", f.Search)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 40, f.Offset)
	require.Len(t, f.AdvancedFilters, 1)
	assert.Equal(t, filter.GreaterOrEqual, f.AdvancedFilters[0].Operator)

	_, err = ListQuery{Filter: `{"field":"name"}`}.ToFilter()
	app, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, app.Code)
}
