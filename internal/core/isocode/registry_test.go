package isocode

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoref/internal/core/apperror"
)

type planet uint8

const (
	mercury planet = iota + 1
	venus
	earth
)

var planetForms = []Form{FormAlpha2, FormAlpha3, FormNumeric}

func planetRecords() []Record[planet] {
	return []Record[planet]{
		{Entity: mercury, Name: "Mercury", Alpha2: "ME", Alpha3: "MER", Numeric: 1},
		{Entity: venus, Name: "Venus", Alpha2: "VE", Alpha3: "VEN", Numeric: 2},
		{Entity: earth, Name: "Earth", Alpha2: "EA", Alpha3: "EAR", Numeric: 3},
	}
}

func newPlanets(t *testing.T) *Registry[planet] {
	t.Helper()
	r, err := New(Domain("planet"), planetForms, planetRecords(), 3)
	require.NoError(t, err)
	return r
}

func TestNew_RejectsBadCatalogues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Record[planet]) []Record[planet]
		count  int
	}{
		{"size mismatch", func(r []Record[planet]) []Record[planet] { return r }, 4},
		{"duplicate alpha2", func(r []Record[planet]) []Record[planet] { r[1].Alpha2 = "ME"; return r }, 3},
		{"duplicate numeric", func(r []Record[planet]) []Record[planet] { r[2].Numeric = 1; return r }, 3},
		{"lower case code", func(r []Record[planet]) []Record[planet] { r[0].Alpha3 = "mer"; return r }, 3},
		{"wrong length", func(r []Record[planet]) []Record[planet] { r[0].Alpha2 = "MER"; return r }, 3},
		{"missing numeric", func(r []Record[planet]) []Record[planet] { r[0].Numeric = 0; return r }, 3},
		{"duplicate entity", func(r []Record[planet]) []Record[planet] { r[2].Entity = venus; return r }, 3},
		{"duplicate name", func(r []Record[planet]) []Record[planet] { r[2].Name = "Venus"; return r }, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Domain("planet"), planetForms, tt.mutate(planetRecords()), tt.count)
			assert.Error(t, err)
		})
	}

	assert.Panics(t, func() {
		MustNew(Domain("planet"), planetForms, planetRecords(), 10)
	})
}

func TestRegistry_Bijection(t *testing.T) {
	r := newPlanets(t)

	for _, p := range r.All() {
		for _, f := range planetForms {
			code, ok := r.Code(p, f)
			require.True(t, ok)

			got, err := r.Parse(code, f)
			require.NoError(t, err)
			assert.Equal(t, p, got, "%s %s", f, code)
		}
	}
}

func TestRegistry_ParseErrors(t *testing.T) {
	r := newPlanets(t)

	tests := []struct {
		name    string
		raw     string
		form    Form
		invalid bool
	}{
		{"too long for alpha2", "XYZ123", FormAlpha2, true},
		{"digits for alpha2", "12", FormAlpha2, true},
		{"words", "Earth planet", FormAlpha3, true},
		{"four digits", "1000", FormNumeric, true},
		{"unsupported form", "EA", Form(9), true},
		{"unassigned alpha2", "ZZ", FormAlpha2, false},
		{"unassigned alpha3", "ZZZ", FormAlpha3, false},
		{"unassigned numeric", "999", FormNumeric, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Parse(tt.raw, tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.invalid, apperror.IsInvalidCode(err))
			assert.Equal(t, !tt.invalid, apperror.IsUnknownCode(err))
		})
	}
}

func TestRegistry_Normalization(t *testing.T) {
	r := newPlanets(t)

	got, err := r.Parse(" ea ", FormAlpha2)
	require.NoError(t, err)
	assert.Equal(t, earth, got)

	got, err = r.Parse("3", FormNumeric)
	require.NoError(t, err)
	assert.Equal(t, earth, got)

	got, err = r.Parse("03", FormNumeric)
	require.NoError(t, err)
	assert.Equal(t, earth, got)

	code, _ := r.Code(earth, FormNumeric)
	assert.Equal(t, "003", code)
}

func TestRegistry_ParseNumericAndAny(t *testing.T) {
	r := newPlanets(t)

	got, err := r.ParseNumeric(2)
	require.NoError(t, err)
	assert.Equal(t, venus, got)

	_, err = r.ParseNumeric(-1)
	assert.True(t, apperror.IsInvalidCode(err))
	_, err = r.ParseNumeric(1000)
	assert.True(t, apperror.IsInvalidCode(err))
	_, err = r.ParseNumeric(42)
	assert.True(t, apperror.IsUnknownCode(err))

	for raw, want := range map[string]planet{"me": mercury, "VEN": venus, "003": earth} {
		got, err := r.ParseAny(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err = r.ParseAny("EARTH")
	assert.True(t, apperror.IsInvalidCode(err))
}

func TestRegistry_Convert(t *testing.T) {
	r := newPlanets(t)

	a3, err := r.Convert("ve", FormAlpha2, FormAlpha3)
	require.NoError(t, err)
	assert.Equal(t, "VEN", a3)

	a2, err := r.Convert(a3, FormAlpha3, FormAlpha2)
	require.NoError(t, err)
	assert.Equal(t, "VE", a2)

	_, err = r.Convert("QQ", FormAlpha2, FormAlpha3)
	assert.True(t, apperror.IsUnknownCode(err))
}

func TestRegistry_UnsupportedForm(t *testing.T) {
	r, err := New(Domain("moon"), []Form{FormAlpha2}, []Record[planet]{
		{Entity: earth, Name: "Luna", Alpha2: "LU"},
	}, 1)
	require.NoError(t, err)

	assert.False(t, r.Supports(FormNumeric))
	assert.Nil(t, r.Codes(FormAlpha3))

	_, ok := r.Code(earth, FormNumeric)
	assert.False(t, ok)

	_, err = r.Parse("LUN", FormAlpha3)
	assert.True(t, apperror.IsInvalidCode(err))

	_, err = r.ParseAny("001")
	assert.True(t, apperror.IsInvalidCode(err))

	_, err = r.Convert("LU", FormAlpha2, FormNumeric)
	assert.True(t, apperror.IsInvalidCode(err))
}

func TestRegistry_Resolve(t *testing.T) {
	r := newPlanets(t)

	code, err := NewCode(Domain("planet"), FormAlpha3, "mer")
	require.NoError(t, err)
	assert.Equal(t, "MER", code.String())

	got, err := r.Resolve(code)
	require.NoError(t, err)
	assert.Equal(t, mercury, got)

	foreign, err := NewCode(DomainCountry, FormAlpha3, "MER")
	require.NoError(t, err)
	_, err = r.Resolve(foreign)
	assert.True(t, apperror.IsInvalidCode(err))
}

func TestRegistry_FromName(t *testing.T) {
	r := newPlanets(t)

	got, err := r.FromName("Venus")
	require.NoError(t, err)
	assert.Equal(t, venus, got)

	_, err = r.FromName("venus")
	assert.True(t, apperror.IsUnknownCode(err))

	_, err = r.FromName("  ")
	assert.True(t, apperror.IsInvalidCode(err))
}

func TestRegistry_AllIsStableAndDetached(t *testing.T) {
	r := newPlanets(t)

	first := r.All()
	first[0] = earth

	assert.Equal(t, []planet{mercury, venus, earth}, r.All())
	assert.Equal(t, []string{"ME", "VE", "EA"}, r.Codes(FormAlpha2))
	assert.Equal(t, []string{"001", "002", "003"}, r.Codes(FormNumeric))

	i, ok := r.Index(earth)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := newPlanets(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, code := range []string{"ME", "VE", "EA"} {
				_, err := r.Parse(code, FormAlpha2)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
