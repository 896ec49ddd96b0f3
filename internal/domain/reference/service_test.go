package reference

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
	"isoref/internal/domain"
	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/domain/filter"
)

type recorder struct {
	mu    sync.Mutex
	calls map[string]int
}

func (r *recorder) RecordLookup(d string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.calls[d+"/"+outcome]++
}

func TestGet_AnyForm(t *testing.T) {
	rec := &recorder{}
	svc := NewService(rec)
	ctx := context.Background()

	for _, code := range []string{"gb", "GBR", "826"} {
		v, err := svc.Countries.Get(ctx, code)
		require.NoError(t, err, code)
		assert.Equal(t, country.GB, v.Country)
		assert.Equal(t, []currency.Currency{currency.GBP}, v.Currencies)
	}

	_, err := svc.Countries.Get(ctx, "ZZ")
	assert.True(t, apperror.IsUnknownCode(err))

	assert.Equal(t, 3, rec.calls["country/ok"])
	assert.Equal(t, 1, rec.calls["country/error"])
}

func TestList_DefaultsToCatalogueOrder(t *testing.T) {
	svc := NewService(nil)

	res, err := svc.Languages.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, language.Count, res.TotalCount)
	assert.Len(t, res.Items, language.Count)
	assert.Equal(t, language.AA, res.Items[0].Language)
}

func TestList_Pagination(t *testing.T) {
	svc := NewService(nil)

	res, err := svc.Countries.List(context.Background(), domain.ListFilter{Limit: 10, Offset: 240})
	require.NoError(t, err)
	assert.EqualValues(t, country.Count, res.TotalCount)
	assert.Len(t, res.Items, 9)
	assert.Equal(t, country.ZW, res.Items[8].Country)

	res, err = svc.Countries.List(context.Background(), domain.ListFilter{Offset: 1000})
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestList_SearchFiltersAndExpr(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	res, err := svc.Countries.List(ctx, domain.ListFilter{Search: "gbr"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, country.GB, res.Items[0].Country)

	res, err = svc.Countries.List(ctx, domain.ListFilter{
		AdvancedFilters: []filter.Item{{Field: "currencies", Operator: filter.Equal, Value: "GBP"}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, res.TotalCount)

	cur, err := svc.Currencies.List(ctx, domain.ListFilter{Expr: `digits == 3`})
	require.NoError(t, err)
	assert.EqualValues(t, 7, cur.TotalCount)

	cur, err = svc.Currencies.List(ctx, domain.ListFilter{Expr: `size(countries) == 0`})
	require.NoError(t, err)
	assert.EqualValues(t, 13, cur.TotalCount)
	assert.Equal(t, currency.XAG, cur.Items[0].Currency)
}

func TestList_OrderBy(t *testing.T) {
	svc := NewService(nil)

	res, err := svc.Currencies.List(context.Background(), domain.ListFilter{OrderBy: "-numeric", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, currency.XXX, res.Items[0].Currency)

	_, err = svc.Currencies.List(context.Background(), domain.ListFilter{OrderBy: "colour"})
	assert.Error(t, err)
}

func TestList_RejectsBadSelections(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	_, err := svc.Countries.List(ctx, domain.ListFilter{Expr: `name +`})
	assert.Error(t, err)

	_, err = svc.Countries.List(ctx, domain.ListFilter{
		AdvancedFilters: []filter.Item{{Field: "population", Operator: filter.Greater, Value: 1}},
	})
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	code, err := svc.Convert(ctx, isocode.DomainCountry, "gb", isocode.FormNumeric)
	require.NoError(t, err)
	assert.Equal(t, isocode.Code{Domain: isocode.DomainCountry, Form: isocode.FormNumeric, Value: "826"}, code)

	code, err = svc.Convert(ctx, isocode.DomainCurrency, "978", isocode.FormAlpha3)
	require.NoError(t, err)
	assert.Equal(t, "EUR", code.Value)

	_, err = svc.Convert(ctx, isocode.DomainLanguage, "en", isocode.FormAlpha3)
	assert.True(t, apperror.IsInvalidCode(err))

	_, err = svc.Convert(ctx, isocode.DomainCurrency, "QQQ", isocode.FormNumeric)
	assert.True(t, apperror.IsUnknownCode(err))

	_, err = svc.Convert(ctx, "planet", "EA", isocode.FormAlpha2)
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	svc := NewService(nil)

	r, err := svc.Round(context.Background(), "jpy", "99.5")
	require.NoError(t, err)
	assert.Equal(t, currency.JPY, r.Currency)
	assert.Equal(t, "100", r.Amount.String())
	assert.EqualValues(t, 100, r.MinorUnits)

	_, err = svc.Round(context.Background(), "jpy", "lots")
	assert.Error(t, err)

	for _, amount := range []string{"1e30", "-1e30", "92233720368547758.08"} {
		_, err = svc.Round(context.Background(), "GBP", amount)
		app, ok := apperror.AsAppError(err)
		require.True(t, ok, amount)
		assert.Equal(t, apperror.CodeValidation, app.Code, amount)
	}

	r, err = svc.Round(context.Background(), "GBP", "92233720368547758.07")
	require.NoError(t, err)
	assert.EqualValues(t, int64(math.MaxInt64), r.MinorUnits)
}

func TestViews_Fields(t *testing.T) {
	f := NewCountryView(country.CH).Fields()
	assert.Equal(t, []string{"CHE", "CHF", "CHW"}, f["currencies"])
	assert.Equal(t, int64(756), f["numeric"])

	assert.Equal(t, []string{"CH", "CHE", "756"}, NewCountryView(country.CH).Codes())
	assert.Equal(t, int64(0), NewCurrencyView(currency.JPY).Fields()["digits"])
}
