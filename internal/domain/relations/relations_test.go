package relations

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
)

func TestTableCoversEveryCountryOnce(t *testing.T) {
	seen := make(map[country.Country]bool, len(table))
	for _, l := range table {
		require.True(t, l.country.IsValid())
		require.False(t, seen[l.country], "%s listed twice", l.country)
		seen[l.country] = true
	}
	assert.Len(t, seen, country.Count)
}

func TestUnitedKingdomScenario(t *testing.T) {
	c, err := country.ParseAlpha2("GB")
	require.NoError(t, err)

	currencies := CurrenciesOf(c)
	assert.Equal(t, []currency.Currency{currency.GBP}, currencies)
	assert.Equal(t, "GBP", currencies[0].Alpha3())

	users := CountriesUsingCurrency(currency.GBP)
	assert.Contains(t, users, country.GB)
	assert.Equal(t, []country.Country{country.GB, country.GG, country.IM, country.JE, country.SH}, users)
}

func TestSymmetry_Currencies(t *testing.T) {
	for _, c := range country.All() {
		for _, k := range currency.All() {
			forward := slices.Contains(CurrenciesOf(c), k)
			backward := slices.Contains(CountriesUsingCurrency(k), c)
			require.Equal(t, forward, backward, "%s / %s", c, k)
			require.Equal(t, forward, Uses(c, k))
		}
	}
}

func TestSymmetry_Languages(t *testing.T) {
	for _, c := range country.All() {
		for _, l := range language.All() {
			forward := slices.Contains(LanguagesOf(c), l)
			backward := slices.Contains(CountriesUsingLanguage(l), c)
			require.Equal(t, forward, backward, "%s / %s", c, l)
			require.Equal(t, forward, Speaks(c, l))
		}
	}
}

func TestOrderFollowsCatalogue(t *testing.T) {
	pos := func(c country.Country) int { i, _ := country.Registry().Index(c); return i }

	for _, k := range currency.All() {
		users := CountriesUsingCurrency(k)
		assert.True(t, slices.IsSortedFunc(users, func(a, b country.Country) int { return pos(a) - pos(b) }), k.String())
	}

	assert.Equal(t, []currency.Currency{currency.CHE, currency.CHF, currency.CHW}, CurrenciesOf(country.CH))
}

func TestEmptyButValid(t *testing.T) {
	got := CurrenciesOf(country.AQ)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, LanguagesOf(country.AQ))
	assert.NotNil(t, CountriesUsingCurrency(currency.XAU))
	assert.Empty(t, CountriesUsingCurrency(currency.XAU))
	assert.NotNil(t, CountriesUsingLanguage(language.AB))
}

func TestInvalidEntities(t *testing.T) {
	assert.Nil(t, CurrenciesOf(country.Country(0)))
	assert.Nil(t, LanguagesOf(country.Country(1)))
	assert.Nil(t, CountriesUsingCurrency(currency.Currency(0)))
	assert.Nil(t, CountriesUsingLanguage(language.Language(0)))
}

func TestResultsAreDetached(t *testing.T) {
	got := CountriesUsingCurrency(currency.EUR)
	require.NotEmpty(t, got)
	got[0] = country.US

	assert.NotEqual(t, country.US, CountriesUsingCurrency(currency.EUR)[0])
}

func TestBuild_PanicsOnDuplicateCountry(t *testing.T) {
	assert.Panics(t, func() {
		build([]link{
			{country: country.FR, currencies: []currency.Currency{currency.EUR}},
			{country: country.FR},
		})
	})
}
