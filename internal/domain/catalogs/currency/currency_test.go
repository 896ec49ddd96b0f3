package currency

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
)

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, Count)
	assert.Equal(t, AED, all[0])
	assert.Equal(t, all, All())
}

func TestBijection(t *testing.T) {
	for _, c := range All() {
		for _, f := range Forms {
			got, err := Parse(c.Code(f), f)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}

		a3, err := ToAlpha3(c.NumericCode())
		require.NoError(t, err)
		assert.Equal(t, c.Alpha3(), a3)
	}
}

func TestPoundSterling(t *testing.T) {
	c, err := ParseAlpha3("gbp")
	require.NoError(t, err)
	assert.Equal(t, GBP, c)
	assert.Equal(t, "GBP", c.Code(isocode.FormAlpha3))
	assert.Equal(t, "Pound sterling", c.Name())
	assert.Equal(t, 2, c.Digits())
	assert.Equal(t, uint16(826), c.Numeric())

	byName, err := FromName("Pound sterling")
	require.NoError(t, err)
	assert.Equal(t, GBP, byName)
}

func TestNumericCodes(t *testing.T) {
	c, err := FromNumeric(8)
	require.NoError(t, err)
	assert.Equal(t, ALL, c)
	assert.Equal(t, "008", c.NumericCode())

	num, err := ToNumeric("usd")
	require.NoError(t, err)
	assert.Equal(t, "840", num)

	_, err = FromNumeric(1)
	assert.True(t, apperror.IsUnknownCode(err))
}

func TestNoAlpha2Form(t *testing.T) {
	_, err := Parse("US", isocode.FormAlpha2)
	assert.True(t, apperror.IsInvalidCode(err))
	assert.Equal(t, "", USD.Code(isocode.FormAlpha2))

	_, err = ParseAny("US")
	assert.True(t, apperror.IsInvalidCode(err))
}

func TestParse_Failures(t *testing.T) {
	_, err := ParseAlpha3("EURO")
	assert.True(t, apperror.IsInvalidCode(err))

	_, err = ParseAlpha3("ZZZ")
	assert.True(t, apperror.IsUnknownCode(err))

	_, err = FromName("Foo dollar")
	assert.True(t, apperror.IsUnknownCode(err))
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		currency Currency
		amount   string
		rounded  string
		units    int64
	}{
		{GBP, "12.345", "12.35", 1235},
		{JPY, "1234.5", "1235", 1235},
		{BHD, "1.2345", "1.235", 1235},
		{USD, "-0.005", "-0.01", -1},
	}

	for _, tt := range tests {
		t.Run(tt.currency.String(), func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.rounded, tt.currency.Round(amount).String())
			units, err := tt.currency.MinorUnits(amount)
			require.NoError(t, err)
			assert.Equal(t, tt.units, units)
			assert.True(t, tt.currency.FromMinorUnits(tt.units).Equal(decimal.RequireFromString(tt.rounded)))
		})
	}
}

func TestMinorUnits_OutOfRange(t *testing.T) {
	for _, amount := range []string{"1e30", "-1e30", "92233720368547758.08", "-92233720368547758.09"} {
		_, err := GBP.MinorUnits(decimal.RequireFromString(amount))
		assert.ErrorIs(t, err, ErrOutOfRange, amount)
	}

	units, err := GBP.MinorUnits(decimal.RequireFromString("-92233720368547758.08"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), units)

	units, err = JPY.MinorUnits(decimal.RequireFromString("9223372036854775807"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), units)
}

func TestInvalidValue(t *testing.T) {
	var zero Currency
	assert.False(t, zero.IsValid())
	assert.Equal(t, 0, zero.Digits())
	assert.Equal(t, "Currency(0)", zero.String())
	_, err := zero.Value()
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var c Currency
	require.NoError(t, c.Scan([]byte("eur")))
	assert.Equal(t, EUR, c)
	require.NoError(t, c.Scan(int64(392)))
	assert.Equal(t, JPY, c)
	assert.Error(t, c.Scan(true))

	for _, n := range []int64{-1, 70000, math.MaxInt64, 4294967374} {
		err := c.Scan(n)
		assert.True(t, apperror.IsInvalidCode(err), n)
	}
	assert.Equal(t, JPY, c)
}
