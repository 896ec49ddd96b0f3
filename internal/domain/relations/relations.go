// Package relations is the many-to-many index between countries and the
// currencies and languages used in them.
//
// Both directions are derived from one authored table, so a currency listed for
// a country always lists that country back. Results are ordered by the
// definition order of the returned catalogue.
package relations

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
)

// DatasetVersion identifies the relationship data revision.
// Language usage comes from general reference sources rather than a standard,
// so consumers should treat it as replaceable.
const DatasetVersion = "2024.06"

type link struct {
	country    country.Country
	currencies []currency.Currency
	languages  []language.Language
}

type index struct {
	currencies map[country.Country][]currency.Currency
	languages  map[country.Country][]language.Language
	byCurrency map[currency.Currency][]country.Country
	byLanguage map[language.Language][]country.Country
}

var (
	loadOnce sync.Once
	loaded   *index
)

func idx() *index {
	loadOnce.Do(func() {
		loaded = build(table[:])
	})
	return loaded
}

// build panics on a country listed twice; the table is static data.
func build(links []link) *index {
	ix := &index{
		currencies: make(map[country.Country][]currency.Currency, len(links)),
		languages:  make(map[country.Country][]language.Language, len(links)),
		byCurrency: make(map[currency.Currency][]country.Country),
		byLanguage: make(map[language.Language][]country.Country),
	}

	for _, l := range links {
		if _, dup := ix.currencies[l.country]; dup {
			panic(fmt.Sprintf("relations: country %s listed twice", l.country))
		}
		ix.currencies[l.country] = sortedUnique(l.currencies, currency.Registry().Index)
		ix.languages[l.country] = sortedUnique(l.languages, language.Registry().Index)

		for _, c := range ix.currencies[l.country] {
			ix.byCurrency[c] = append(ix.byCurrency[c], l.country)
		}
		for _, lang := range ix.languages[l.country] {
			ix.byLanguage[lang] = append(ix.byLanguage[lang], l.country)
		}
	}

	for k, v := range ix.byCurrency {
		ix.byCurrency[k] = sortedUnique(v, country.Registry().Index)
	}
	for k, v := range ix.byLanguage {
		ix.byLanguage[k] = sortedUnique(v, country.Registry().Index)
	}

	return ix
}

func sortedUnique[E comparable](in []E, position func(E) (int, bool)) []E {
	out := slices.Clone(in)
	slices.SortFunc(out, func(a, b E) int {
		pa, _ := position(a)
		pb, _ := position(b)
		return cmp.Compare(pa, pb)
	})
	return slices.Compact(out)
}

// lookup returns a detached copy; valid entities without edges get an empty slice.
func lookup[K comparable, V any](m map[K][]V, key K, valid bool) []V {
	if !valid {
		return nil
	}
	out := make([]V, len(m[key]))
	copy(out, m[key])
	return out
}

// CurrenciesOf returns the currencies used in c.
func CurrenciesOf(c country.Country) []currency.Currency {
	return lookup(idx().currencies, c, c.IsValid())
}

// LanguagesOf returns the languages used in c.
func LanguagesOf(c country.Country) []language.Language {
	return lookup(idx().languages, c, c.IsValid())
}

// CountriesUsingCurrency returns the countries where cur is used.
func CountriesUsingCurrency(cur currency.Currency) []country.Country {
	return lookup(idx().byCurrency, cur, cur.IsValid())
}

// CountriesUsingLanguage returns the countries where l is used.
func CountriesUsingLanguage(l language.Language) []country.Country {
	return lookup(idx().byLanguage, l, l.IsValid())
}

// Uses reports whether cur is used in c.
func Uses(c country.Country, cur currency.Currency) bool {
	return slices.Contains(idx().currencies[c], cur)
}

// Speaks reports whether l is used in c.
func Speaks(c country.Country, l language.Language) bool {
	return slices.Contains(idx().languages[c], l)
}
