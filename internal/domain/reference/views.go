// Package reference joins the catalogues with the relationship index into
// queryable views and wires them into catalog services.
package reference

import (
	"github.com/google/cel-go/cel"

	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/domain/filter"
	"isoref/internal/domain/relations"
)

// CountryView is a country with its currencies and languages.
type CountryView struct {
	Country    country.Country
	Currencies []currency.Currency
	Languages  []language.Language
}

// NewCountryView joins c with the relationship index.
func NewCountryView(c country.Country) CountryView {
	return CountryView{
		Country:    c,
		Currencies: relations.CurrenciesOf(c),
		Languages:  relations.LanguagesOf(c),
	}
}

func (v CountryView) Codes() []string {
	return []string{v.Country.Alpha2(), v.Country.Alpha3(), v.Country.NumericCode()}
}

func (v CountryView) Fields() map[string]any {
	return map[string]any{
		"alpha2":     v.Country.Alpha2(),
		"alpha3":     v.Country.Alpha3(),
		"numeric":    int64(v.Country.Numeric()),
		"name":       v.Country.Name(),
		"currencies": codes(v.Currencies),
		"languages":  codes(v.Languages),
	}
}

// CurrencyView is a currency with the countries using it.
type CurrencyView struct {
	Currency  currency.Currency
	Countries []country.Country
}

func NewCurrencyView(c currency.Currency) CurrencyView {
	return CurrencyView{Currency: c, Countries: relations.CountriesUsingCurrency(c)}
}

func (v CurrencyView) Codes() []string {
	return []string{v.Currency.Alpha3(), v.Currency.NumericCode()}
}

func (v CurrencyView) Fields() map[string]any {
	return map[string]any{
		"alpha3":    v.Currency.Alpha3(),
		"numeric":   int64(v.Currency.Numeric()),
		"name":      v.Currency.Name(),
		"digits":    int64(v.Currency.Digits()),
		"countries": codes(v.Countries),
	}
}

// LanguageView is a language with the countries using it.
type LanguageView struct {
	Language  language.Language
	Countries []country.Country
}

func NewLanguageView(l language.Language) LanguageView {
	return LanguageView{Language: l, Countries: relations.CountriesUsingLanguage(l)}
}

func (v LanguageView) Codes() []string {
	return []string{v.Language.Alpha2()}
}

func (v LanguageView) Fields() map[string]any {
	return map[string]any{
		"alpha2":    v.Language.Alpha2(),
		"name":      v.Language.Name(),
		"countries": codes(v.Countries),
	}
}

func codes[E interface{ String() string }](in []E) []string {
	out := make([]string, len(in))
	for i, e := range in {
		out[i] = e.String()
	}
	return out
}

var (
	stringList = cel.ListType(cel.StringType)

	countryVars = []filter.Variable{
		{Name: "alpha2", Type: cel.StringType},
		{Name: "alpha3", Type: cel.StringType},
		{Name: "numeric", Type: cel.IntType},
		{Name: "name", Type: cel.StringType},
		{Name: "currencies", Type: stringList},
		{Name: "languages", Type: stringList},
	}
	currencyVars = []filter.Variable{
		{Name: "alpha3", Type: cel.StringType},
		{Name: "numeric", Type: cel.IntType},
		{Name: "name", Type: cel.StringType},
		{Name: "digits", Type: cel.IntType},
		{Name: "countries", Type: stringList},
	}
	languageVars = []filter.Variable{
		{Name: "alpha2", Type: cel.StringType},
		{Name: "name", Type: cel.StringType},
		{Name: "countries", Type: stringList},
	}
)

func names(vars []filter.Variable) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Name
	}
	return out
}
