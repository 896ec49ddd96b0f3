package dto

import (
	"isoref/internal/core/isocode"
	"isoref/internal/domain/reference"
)

// CountryResponse is a country with the codes of its currencies and languages.
// Numeric codes are bare JSON numbers; their zero-padded text form is
// available through /convert.
type CountryResponse struct {
	Alpha2     string   `json:"alpha2" meta:"code,domain=country,form=alpha2"`
	Alpha3     string   `json:"alpha3" meta:"code,domain=country,form=alpha3"`
	Numeric    uint16   `json:"numeric" meta:"code,domain=country,form=numeric"`
	Name       string   `json:"name"`
	Currencies []string `json:"currencies" meta:"ref,domain=currency,form=alpha3"`
	Languages  []string `json:"languages" meta:"ref,domain=language,form=alpha2"`
}

func FromCountryView(v reference.CountryView) CountryResponse {
	return CountryResponse{
		Alpha2:     v.Country.Alpha2(),
		Alpha3:     v.Country.Alpha3(),
		Numeric:    v.Country.Numeric(),
		Name:       v.Country.Name(),
		Currencies: codes(v.Currencies),
		Languages:  codes(v.Languages),
	}
}

// CurrencyResponse is a currency with the countries using it.
type CurrencyResponse struct {
	Alpha3    string   `json:"alpha3" meta:"code,domain=currency,form=alpha3"`
	Numeric   uint16   `json:"numeric" meta:"code,domain=currency,form=numeric"`
	Name      string   `json:"name"`
	Digits    int      `json:"digits"`
	Countries []string `json:"countries" meta:"ref,domain=country,form=alpha2"`
}

func FromCurrencyView(v reference.CurrencyView) CurrencyResponse {
	return CurrencyResponse{
		Alpha3:    v.Currency.Alpha3(),
		Numeric:   v.Currency.Numeric(),
		Name:      v.Currency.Name(),
		Digits:    v.Currency.Digits(),
		Countries: codes(v.Countries),
	}
}

// LanguageResponse is a language with the countries using it.
type LanguageResponse struct {
	Alpha2    string   `json:"alpha2" meta:"code,domain=language,form=alpha2"`
	Name      string   `json:"name"`
	Countries []string `json:"countries" meta:"ref,domain=country,form=alpha2"`
}

func FromLanguageView(v reference.LanguageView) LanguageResponse {
	return LanguageResponse{
		Alpha2:    v.Language.Alpha2(),
		Name:      v.Language.Name(),
		Countries: codes(v.Countries),
	}
}

// CodeResponse is the result of a conversion.
type CodeResponse struct {
	Domain string `json:"domain"`
	Form   string `json:"form"`
	Value  string `json:"value"`
}

func FromCode(c isocode.Code) CodeResponse {
	return CodeResponse{Domain: string(c.Domain), Form: c.Form.String(), Value: c.Value}
}

// RoundResponse is an amount rounded to a currency's minor unit.
type RoundResponse struct {
	Currency   string `json:"currency"`
	Digits     int    `json:"digits"`
	Amount     string `json:"amount"`
	MinorUnits int64  `json:"minorUnits"`
}

func FromRounding(r reference.Rounding) RoundResponse {
	return RoundResponse{
		Currency:   r.Currency.Alpha3(),
		Digits:     r.Currency.Digits(),
		Amount:     r.Amount.StringFixed(int32(r.Currency.Digits())),
		MinorUnits: r.MinorUnits,
	}
}

func codes[E interface{ String() string }](in []E) []string {
	out := make([]string, len(in))
	for i, e := range in {
		out[i] = e.String()
	}
	return out
}
