package country

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
)

func TestAll_CountAndStability(t *testing.T) {
	first := All()
	second := All()

	assert.Len(t, first, Count)
	assert.Equal(t, first, second)
	assert.Equal(t, AD, first[0])
	assert.Equal(t, ZW, first[len(first)-1])

	first[0] = GB
	assert.Equal(t, AD, All()[0])
}

func TestBijection_AllForms(t *testing.T) {
	for _, c := range All() {
		for _, f := range Forms {
			code := c.Code(f)
			require.NotEmpty(t, code, "%s has no %s code", c, f)

			got, err := Parse(code, f)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	}
}

func TestCrossFormRoundTrip(t *testing.T) {
	for _, c := range All() {
		a2, err := ToAlpha2(c.Alpha3())
		require.NoError(t, err)
		a3, err := ToAlpha3(a2)
		require.NoError(t, err)
		assert.Equal(t, c.Alpha3(), a3)

		num, err := ToNumeric(a3)
		require.NoError(t, err)
		assert.Equal(t, c.NumericCode(), num)
	}
}

func TestUnitedKingdom(t *testing.T) {
	c, err := ParseAlpha2("GB")
	require.NoError(t, err)
	assert.Equal(t, GB, c)
	assert.Equal(t, "GBR", c.Alpha3())
	assert.Equal(t, uint16(826), c.Numeric())
	assert.Equal(t, "826", c.NumericCode())
	assert.Equal(t, "United Kingdom of Great Britain and Northern Ireland", c.Name())
	assert.Equal(t, "GB", c.String())

	byName, err := FromName(c.Name())
	require.NoError(t, err)
	assert.Equal(t, GB, byName)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		form    isocode.Form
		invalid bool
	}{
		{"wrong length", "XYZ123", isocode.FormAlpha2, true},
		{"country name", "United Kingdom", isocode.FormAlpha2, true},
		{"alpha3 as alpha2", "GBR", isocode.FormAlpha2, true},
		{"unassigned alpha2", "ZZ", isocode.FormAlpha2, false},
		{"unassigned alpha3", "ZZZ", isocode.FormAlpha3, false},
		{"unassigned numeric", "000", isocode.FormNumeric, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw, tt.form)
			require.Error(t, err)
			if tt.invalid {
				assert.True(t, apperror.IsInvalidCode(err))
			} else {
				assert.True(t, apperror.IsUnknownCode(err))
			}
		})
	}
}

func TestParse_CaseAndPadding(t *testing.T) {
	c, err := ParseAlpha3("fra")
	require.NoError(t, err)
	assert.Equal(t, FR, c)

	c, err = ParseNumeric("4")
	require.NoError(t, err)
	assert.Equal(t, AF, c)
	assert.Equal(t, "004", c.NumericCode())

	c, err = FromNumeric(840)
	require.NoError(t, err)
	assert.Equal(t, US, c)

	c, err = ParseAny("deu")
	require.NoError(t, err)
	assert.Equal(t, DE, c)
}

func TestInvalidValue(t *testing.T) {
	var zero Country
	assert.False(t, zero.IsValid())
	assert.Equal(t, "", zero.Name())
	assert.Equal(t, "", zero.Alpha2())
	assert.Equal(t, uint16(0), zero.Numeric())
	assert.Equal(t, "Country(0)", zero.String())

	_, err := zero.MarshalText()
	assert.Error(t, err)
}

func TestJSONAndSQL(t *testing.T) {
	type payload struct {
		Country Country `json:"country"`
	}

	b, err := json.Marshal(payload{Country: JP})
	require.NoError(t, err)
	assert.JSONEq(t, `{"country":"JP"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"country":"jpn"}`), &p))
	assert.Equal(t, JP, p.Country)

	assert.Error(t, json.Unmarshal([]byte(`{"country":"Japan"}`), &p))

	v, err := NZ.Value()
	require.NoError(t, err)
	assert.Equal(t, "NZ", v)

	var scanned Country
	require.NoError(t, scanned.Scan("NZL"))
	assert.Equal(t, NZ, scanned)
	require.NoError(t, scanned.Scan(int64(250)))
	assert.Equal(t, FR, scanned)
	assert.Error(t, scanned.Scan(3.14))

	for _, n := range []int64{-250, 65786, math.MaxInt64} {
		assert.True(t, apperror.IsInvalidCode(scanned.Scan(n)), n)
	}
	assert.Equal(t, FR, scanned)
}

func TestCodes_Schema(t *testing.T) {
	codes := Codes(isocode.FormAlpha3)
	assert.Len(t, codes, Count)
	assert.Contains(t, codes, "GBR")
	assert.True(t, IsAlpha2("gb"))
	assert.False(t, IsAlpha3("gb"))
}
