package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidAndUnknownAreDistinct(t *testing.T) {
	invalid := NewInvalidCode("country", "alpha2", "XYZ123")
	unknown := NewUnknownCode("country", "alpha2", "ZZ")

	assert.True(t, IsInvalidCode(invalid))
	assert.False(t, IsUnknownCode(invalid))
	assert.True(t, IsUnknownCode(unknown))
	assert.False(t, IsInvalidCode(unknown))

	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(invalid))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(unknown))
}

func TestSentinelMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("resolve: %w", NewUnknownCode("currency", "numeric", "999"))

	assert.True(t, errors.Is(err, ErrUnknownCode))
	assert.False(t, errors.Is(err, ErrInvalidCode))

	appErr, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, "currency", appErr.Details["domain"])
	assert.Equal(t, "999", appErr.Details["value"])
}

func TestErrorString(t *testing.T) {
	err := NewInternal(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR: Internal server error (caused by: boom)", err.Error())

	v := NewValidation("bad filter").WithDetail("field", "filter")
	assert.Equal(t, "VALIDATION_ERROR: bad filter", v.Error())
	assert.Equal(t, "filter", v.Details["field"])
	assert.False(t, IsAppError(errors.New("plain")))
}
