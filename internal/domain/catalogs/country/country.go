// Package country provides the ISO 3166-1 country catalogue.
// Countries are identified by alpha-2, alpha-3 and three-digit numeric codes.
package country

import (
	"database/sql/driver"
	"fmt"
	"math"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
)

// Country is one ISO 3166-1 country. The underlying value is its numeric code.
type Country uint16

// Count is the number of countries in the published ISO 3166-1 list.
const Count = 249

// Forms lists the code forms a country has.
var Forms = []isocode.Form{isocode.FormAlpha2, isocode.FormAlpha3, isocode.FormNumeric}

type info struct {
	country Country
	alpha2  string
	alpha3  string
	name    string
}

var registry = func() *isocode.Registry[Country] {
	records := make([]isocode.Record[Country], len(catalogue))
	for i, c := range catalogue {
		records[i] = isocode.Record[Country]{
			Entity:  c.country,
			Name:    c.name,
			Alpha2:  c.alpha2,
			Alpha3:  c.alpha3,
			Numeric: uint16(c.country),
		}
	}
	return isocode.MustNew(isocode.DomainCountry, Forms, records, Count)
}()

// Registry exposes the code registry for generic consumers.
func Registry() *isocode.Registry[Country] {
	return registry
}

// All returns every country in definition order.
func All() []Country {
	return registry.All()
}

// Parse resolves raw as a code of the given form.
func Parse(raw string, form isocode.Form) (Country, error) {
	return registry.Parse(raw, form)
}

func ParseAlpha2(raw string) (Country, error) {
	return registry.Parse(raw, isocode.FormAlpha2)
}

func ParseAlpha3(raw string) (Country, error) {
	return registry.Parse(raw, isocode.FormAlpha3)
}

// ParseNumeric resolves a numeric code given as text, e.g. "826" or "4".
func ParseNumeric(raw string) (Country, error) {
	return registry.Parse(raw, isocode.FormNumeric)
}

// FromNumeric resolves a numeric code given as a number.
func FromNumeric(n int) (Country, error) {
	return registry.ParseNumeric(n)
}

// ParseAny resolves an alpha-2, alpha-3 or numeric code, detected from its shape.
func ParseAny(raw string) (Country, error) {
	return registry.ParseAny(raw)
}

// FromName looks a country up by its exact canonical name.
func FromName(name string) (Country, error) {
	return registry.FromName(name)
}

// ToAlpha2 converts a country code of any form to alpha-2.
func ToAlpha2(raw string) (string, error) {
	return convert(raw, isocode.FormAlpha2)
}

// ToAlpha3 converts a country code of any form to alpha-3.
func ToAlpha3(raw string) (string, error) {
	return convert(raw, isocode.FormAlpha3)
}

// ToNumeric converts a country code of any form to its zero-padded numeric code.
func ToNumeric(raw string) (string, error) {
	return convert(raw, isocode.FormNumeric)
}

func IsAlpha2(raw string) bool { return isocode.IsAlpha2(raw) }

func IsAlpha3(raw string) bool { return isocode.IsAlpha3(raw) }

// Codes lists every country code of form, in definition order.
func Codes(form isocode.Form) []string {
	return registry.Codes(form)
}

func convert(raw string, to isocode.Form) (string, error) {
	c, err := registry.ParseAny(raw)
	if err != nil {
		return "", err
	}
	return c.Code(to), nil
}

// --- Country methods ---

// IsValid reports whether c is a catalogue member.
func (c Country) IsValid() bool {
	return registry.Contains(c)
}

func (c Country) Name() string {
	rec, _ := registry.Record(c)
	return rec.Name
}

func (c Country) Alpha2() string {
	return c.Code(isocode.FormAlpha2)
}

func (c Country) Alpha3() string {
	return c.Code(isocode.FormAlpha3)
}

// Numeric returns the numeric code as a number, or 0 for an invalid country.
func (c Country) Numeric() uint16 {
	if !c.IsValid() {
		return 0
	}
	return uint16(c)
}

// NumericCode returns the numeric code as zero-padded text, e.g. "004".
func (c Country) NumericCode() string {
	return c.Code(isocode.FormNumeric)
}

// Code returns the canonical code of c in form, or "" for an invalid country.
func (c Country) Code(form isocode.Form) string {
	code, _ := registry.Code(c, form)
	return code
}

// String returns the alpha-2 code.
func (c Country) String() string {
	if code, ok := registry.Code(c, isocode.FormAlpha2); ok {
		return code
	}
	return fmt.Sprintf("Country(%d)", uint16(c))
}

func (c Country) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, apperror.NewInvalidCode(string(isocode.DomainCountry), isocode.FormAlpha2.String(), c.String())
	}
	return []byte(c.Alpha2()), nil
}

// UnmarshalText accepts any code form.
func (c *Country) UnmarshalText(b []byte) error {
	parsed, err := ParseAny(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value stores the alpha-2 code.
func (c Country) Value() (driver.Value, error) {
	b, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads a country stored as a code string or numeric code.
func (c *Country) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return c.UnmarshalText([]byte(v))
	case []byte:
		return c.UnmarshalText(v)
	case int64:
		if v < 0 || v > math.MaxUint16 {
			return apperror.NewInvalidCode(string(isocode.DomainCountry), isocode.FormNumeric.String(), fmt.Sprint(v))
		}
		parsed, err := FromNumeric(int(v))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("country: cannot scan %T", src)
}
