package main

import (
	"isoref/internal/core/isocode"
	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/infrastructure/http/v1/dto"
	"isoref/internal/metadata"
)

// setupMetadataRegistry initializes and populates the metadata registry.
func setupMetadataRegistry() *metadata.Registry {
	reg := metadata.NewRegistry()

	register := func(entity any, name, label string) {
		def := metadata.Inspect(entity, name, metadata.TypeCatalog, codeOptions)
		def.Label = label
		reg.Register(def)
	}

	register(dto.CountryResponse{}, "country", "Countries (ISO 3166-1)")
	register(dto.CurrencyResponse{}, "currency", "Currencies (ISO 4217)")
	register(dto.LanguageResponse{}, "language", "Languages (ISO 639-1)")

	return reg
}

// codeOptions lists every valid code of a domain in one form.
func codeOptions(domain, form string) []string {
	f, err := isocode.ParseForm(form)
	if err != nil {
		return nil
	}
	switch isocode.Domain(domain) {
	case isocode.DomainCountry:
		return country.Codes(f)
	case isocode.DomainCurrency:
		return currency.Codes(f)
	case isocode.DomainLanguage:
		return language.Codes(f)
	}
	return nil
}
