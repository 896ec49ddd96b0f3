package handlers

import (
	"github.com/gin-gonic/gin"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/domain/reference"
	"isoref/internal/infrastructure/http/v1/dto"
)

// ReferenceHandler serves the country, currency and language endpoints.
type ReferenceHandler struct {
	*BaseHandler
	service *reference.Service

	Countries  *CatalogHandler[reference.CountryView, dto.CountryResponse]
	Currencies *CatalogHandler[reference.CurrencyView, dto.CurrencyResponse]
	Languages  *CatalogHandler[reference.LanguageView, dto.LanguageResponse]
}

func NewReferenceHandler(base *BaseHandler, service *reference.Service) *ReferenceHandler {
	return &ReferenceHandler{
		BaseHandler: base,
		service:     service,
		Countries:   NewCatalogHandler(base, service.Countries, dto.FromCountryView),
		Currencies:  NewCatalogHandler(base, service.Currencies, dto.FromCurrencyView),
		Languages:   NewCatalogHandler(base, service.Languages, dto.FromLanguageView),
	}
}

// CountryCurrencies lists the currencies of a country.
// GET /countries/:code/currencies
func CountryCurrencies(v reference.CountryView) any {
	return mapAll(v.Currencies, func(c currency.Currency) dto.CurrencyResponse {
		return dto.FromCurrencyView(reference.NewCurrencyView(c))
	})
}

// CountryLanguages lists the languages of a country.
// GET /countries/:code/languages
func CountryLanguages(v reference.CountryView) any {
	return mapAll(v.Languages, func(l language.Language) dto.LanguageResponse {
		return dto.FromLanguageView(reference.NewLanguageView(l))
	})
}

// CurrencyCountries lists the countries using a currency.
// GET /currencies/:code/countries
func CurrencyCountries(v reference.CurrencyView) any {
	return countryResponses(v.Countries)
}

// LanguageCountries lists the countries using a language.
// GET /languages/:code/countries
func LanguageCountries(v reference.LanguageView) any {
	return countryResponses(v.Countries)
}

// Round rounds ?amount= to the minor unit of a currency.
// GET /currencies/:code/round?amount=12.345
func (h *ReferenceHandler) Round(c *gin.Context) {
	amount := c.Query("amount")
	if amount == "" {
		h.Error(c, apperror.NewValidation("amount is required"))
		return
	}

	r, err := h.service.Round(c.Request.Context(), c.Param("code"), amount)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromRounding(r))
}

// Convert translates a code between forms.
// GET /convert/:domain/:code?to=numeric
func (h *ReferenceHandler) Convert(c *gin.Context) {
	to, err := isocode.ParseForm(c.Query("to"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid target form").
			WithDetail("to", c.Query("to")).
			WithDetail("allowed", []isocode.Form{isocode.FormAlpha2, isocode.FormAlpha3, isocode.FormNumeric}))
		return
	}

	code, err := h.service.Convert(c.Request.Context(), isocode.Domain(c.Param("domain")), c.Param("code"), to)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCode(code))
}

func countryResponses(in []country.Country) []dto.CountryResponse {
	return mapAll(in, func(c country.Country) dto.CountryResponse {
		return dto.FromCountryView(reference.NewCountryView(c))
	})
}

func mapAll[E any, T any](in []E, fn func(E) T) []T {
	out := make([]T, len(in))
	for i, e := range in {
		out[i] = fn(e)
	}
	return out
}
