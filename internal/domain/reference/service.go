package reference

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
	"isoref/internal/domain"
	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/domain/filter"
	"isoref/pkg/logger"
)

// Service is the query facade over all three reference domains.
type Service struct {
	Countries  *domain.CatalogService[CountryView]
	Currencies *domain.CatalogService[CurrencyView]
	Languages  *domain.CatalogService[LanguageView]

	recorder domain.LookupRecorder
}

// NewService wires the catalog services. recorder may be nil.
func NewService(recorder domain.LookupRecorder) *Service {
	return &Service{
		Countries: domain.NewCatalogService(domain.CatalogServiceConfig[CountryView]{
			EntityName: string(isocode.DomainCountry),
			All:        func() []CountryView { return views(country.All(), NewCountryView) },
			Resolve:    resolver(country.ParseAny, NewCountryView),
			Fields:     names(countryVars),
			Env:        filter.MustEnv(countryVars...),
			Recorder:   recorder,
		}),
		Currencies: domain.NewCatalogService(domain.CatalogServiceConfig[CurrencyView]{
			EntityName: string(isocode.DomainCurrency),
			All:        func() []CurrencyView { return views(currency.All(), NewCurrencyView) },
			Resolve:    resolver(currency.ParseAny, NewCurrencyView),
			Fields:     names(currencyVars),
			Env:        filter.MustEnv(currencyVars...),
			Recorder:   recorder,
		}),
		Languages: domain.NewCatalogService(domain.CatalogServiceConfig[LanguageView]{
			EntityName: string(isocode.DomainLanguage),
			All:        func() []LanguageView { return views(language.All(), NewLanguageView) },
			Resolve:    resolver(language.ParseAny, NewLanguageView),
			Fields:     names(languageVars),
			Env:        filter.MustEnv(languageVars...),
			Recorder:   recorder,
		}),
		recorder: recorder,
	}
}

// Convert resolves raw in domain d and returns its code in form to.
func (s *Service) Convert(ctx context.Context, d isocode.Domain, raw string, to isocode.Form) (isocode.Code, error) {
	var (
		code isocode.Code
		err  error
	)
	switch d {
	case isocode.DomainCountry:
		code, err = convert(country.Registry(), raw, to)
	case isocode.DomainCurrency:
		code, err = convert(currency.Registry(), raw, to)
	case isocode.DomainLanguage:
		code, err = convert(language.Registry(), raw, to)
	default:
		return code, apperror.NewValidation(fmt.Sprintf("unknown domain %q", d)).
			WithDetail("allowed", []isocode.Domain{isocode.DomainCountry, isocode.DomainCurrency, isocode.DomainLanguage})
	}

	if s.recorder != nil {
		s.recorder.RecordLookup(string(d), err)
	}
	if err != nil {
		logger.Debug(ctx, "conversion failed", "domain", d, "code", raw, "to", to, "error", err)
	}
	return code, err
}

func convert[E comparable](r *isocode.Registry[E], raw string, to isocode.Form) (isocode.Code, error) {
	if !r.Supports(to) {
		return isocode.Code{}, apperror.NewInvalidCode(string(r.Domain()), to.String(), raw).
			WithDetail("supported_forms", r.Forms())
	}
	e, err := r.ParseAny(raw)
	if err != nil {
		return isocode.Code{}, err
	}
	value, _ := r.Code(e, to)
	return isocode.Code{Domain: r.Domain(), Form: to, Value: value}, nil
}

// Rounding is an amount rounded to a currency's minor unit.
type Rounding struct {
	Currency   currency.Currency
	Amount     decimal.Decimal
	MinorUnits int64
}

// Round resolves code and rounds amount to its minor unit.
func (s *Service) Round(ctx context.Context, code, amount string) (Rounding, error) {
	cur, err := s.Currencies.Get(ctx, code)
	if err != nil {
		return Rounding{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Rounding{}, apperror.NewValidation("invalid amount").WithDetail("amount", amount)
	}
	units, err := cur.Currency.MinorUnits(d)
	if err != nil {
		return Rounding{}, apperror.NewValidation("amount out of range").
			WithDetail("amount", amount).
			WithDetail("currency", cur.Currency.Alpha3())
	}
	return Rounding{
		Currency:   cur.Currency,
		Amount:     cur.Currency.Round(d),
		MinorUnits: units,
	}, nil
}

func views[E any, V any](entities []E, view func(E) V) []V {
	out := make([]V, len(entities))
	for i, e := range entities {
		out[i] = view(e)
	}
	return out
}

func resolver[E any, V any](parse func(string) (E, error), view func(E) V) func(string) (V, error) {
	return func(raw string) (V, error) {
		e, err := parse(raw)
		if err != nil {
			var zero V
			return zero, err
		}
		return view(e), nil
	}
}
