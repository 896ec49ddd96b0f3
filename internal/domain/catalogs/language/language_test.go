package language

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
)

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, Count)
	assert.Equal(t, AA, all[0])
	assert.Equal(t, all, All())
}

func TestBijection(t *testing.T) {
	for _, l := range All() {
		got, err := ParseAlpha2(l.Alpha2())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
}

func TestEnglish(t *testing.T) {
	l, err := ParseAlpha2("en")
	require.NoError(t, err)
	assert.Equal(t, EN, l)
	assert.Equal(t, "English", l.Name())
	assert.Equal(t, "EN", l.String())

	byName, err := FromName("English")
	require.NoError(t, err)
	assert.Equal(t, EN, byName)
}

func TestOnlyAlpha2(t *testing.T) {
	_, err := Parse("ENG", isocode.FormAlpha3)
	assert.True(t, apperror.IsInvalidCode(err))

	_, err = Parse("001", isocode.FormNumeric)
	assert.True(t, apperror.IsInvalidCode(err))

	_, err = ParseAlpha2("QQ")
	assert.True(t, apperror.IsUnknownCode(err))

	assert.Nil(t, Codes(isocode.FormNumeric))
	assert.Len(t, Codes(isocode.FormAlpha2), Count)
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal([]Language{FR, DE})
	require.NoError(t, err)
	assert.Equal(t, `["FR","DE"]`, string(b))

	var got []Language
	require.NoError(t, json.Unmarshal([]byte(`["fr","de"]`), &got))
	assert.Equal(t, []Language{FR, DE}, got)

	var zero Language
	assert.Equal(t, "Language(0)", zero.String())
}
