// Package currency provides the ISO 4217 currency catalogue.
// Currencies are identified by alpha-3 and three-digit numeric codes and carry
// the number of minor-unit digits used for amounts.
package currency

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
)

// Currency is one ISO 4217 currency. The underlying value is its numeric code.
type Currency uint16

// Count is the number of currencies in the catalogue.
const Count = 179

// ErrOutOfRange is returned when an amount has too many minor units for an int64.
var ErrOutOfRange = errors.New("currency: amount out of range")

// Forms lists the code forms a currency has.
var Forms = []isocode.Form{isocode.FormAlpha3, isocode.FormNumeric}

type info struct {
	currency Currency
	alpha3   string
	name     string
	digits   uint8
}

var registry = func() *isocode.Registry[Currency] {
	records := make([]isocode.Record[Currency], len(catalogue))
	for i, c := range catalogue {
		records[i] = isocode.Record[Currency]{
			Entity:  c.currency,
			Name:    c.name,
			Alpha3:  c.alpha3,
			Numeric: uint16(c.currency),
		}
	}
	return isocode.MustNew(isocode.DomainCurrency, Forms, records, Count)
}()

// Registry exposes the code registry for generic consumers.
func Registry() *isocode.Registry[Currency] {
	return registry
}

// All returns every currency in definition order.
func All() []Currency {
	return registry.All()
}

// Parse resolves raw as a code of the given form.
func Parse(raw string, form isocode.Form) (Currency, error) {
	return registry.Parse(raw, form)
}

// ParseAlpha3 resolves a three-letter currency code.
func ParseAlpha3(raw string) (Currency, error) {
	return registry.Parse(raw, isocode.FormAlpha3)
}

// ParseNumeric resolves a numeric code given as one to three digits.
func ParseNumeric(raw string) (Currency, error) {
	return registry.Parse(raw, isocode.FormNumeric)
}

// FromNumeric resolves a numeric code given as an integer.
func FromNumeric(n int) (Currency, error) {
	return registry.ParseNumeric(n)
}

// ParseAny resolves an alpha-3 or numeric code, detected from its shape.
func ParseAny(raw string) (Currency, error) {
	return registry.ParseAny(raw)
}

// FromName looks a currency up by its exact canonical name.
func FromName(name string) (Currency, error) {
	return registry.FromName(name)
}

// ToAlpha3 converts a numeric (or alpha-3) currency code to alpha-3.
func ToAlpha3(raw string) (string, error) {
	c, err := registry.ParseAny(raw)
	if err != nil {
		return "", err
	}
	return c.Alpha3(), nil
}

// ToNumeric converts an alpha-3 (or numeric) currency code to its numeric code.
func ToNumeric(raw string) (string, error) {
	c, err := registry.ParseAny(raw)
	if err != nil {
		return "", err
	}
	return c.NumericCode(), nil
}

func IsAlpha3(raw string) bool { return isocode.IsAlpha3(raw) }

// Codes lists every currency code of form, in definition order.
func Codes(form isocode.Form) []string {
	return registry.Codes(form)
}

// --- Currency methods ---

// IsValid reports whether c is a member of the catalogue.
func (c Currency) IsValid() bool {
	return registry.Contains(c)
}

func (c Currency) Name() string {
	rec, _ := registry.Record(c)
	return rec.Name
}

func (c Currency) Alpha3() string {
	return c.Code(isocode.FormAlpha3)
}

// Numeric returns the numeric code as a number, or 0 for an invalid currency.
func (c Currency) Numeric() uint16 {
	if !c.IsValid() {
		return 0
	}
	return uint16(c)
}

func (c Currency) NumericCode() string {
	return c.Code(isocode.FormNumeric)
}

// Code returns the canonical code of c in form, or "" when c is invalid
// or form is not a currency form.
func (c Currency) Code(form isocode.Form) string {
	code, _ := registry.Code(c, form)
	return code
}

// Digits is the number of minor-unit digits after the decimal point.
func (c Currency) Digits() int {
	i, ok := registry.Index(c)
	if !ok {
		return 0
	}
	return int(catalogue[i].digits)
}

// Round rounds amount half away from zero to the currency's minor unit.
func (c Currency) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(int32(c.Digits()))
}

// MinorUnits converts amount into an integer count of minor units, e.g. 12.345 GBP -> 1235.
// It fails with ErrOutOfRange when the count does not fit in an int64.
func (c Currency) MinorUnits(amount decimal.Decimal) (int64, error) {
	units := c.Round(amount).Shift(int32(c.Digits()))
	if !units.BigInt().IsInt64() {
		return 0, ErrOutOfRange
	}
	return units.IntPart(), nil
}

// FromMinorUnits converts an integer count of minor units back into an amount.
func (c Currency) FromMinorUnits(units int64) decimal.Decimal {
	return decimal.New(units, -int32(c.Digits()))
}

// String returns the alpha-3 code.
func (c Currency) String() string {
	if code, ok := registry.Code(c, isocode.FormAlpha3); ok {
		return code
	}
	return fmt.Sprintf("Currency(%d)", uint16(c))
}

func (c Currency) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, apperror.NewInvalidCode(string(isocode.DomainCurrency), isocode.FormAlpha3.String(), c.String())
	}
	return []byte(c.Alpha3()), nil
}

func (c *Currency) UnmarshalText(b []byte) error {
	parsed, err := ParseAny(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Currency) Value() (driver.Value, error) {
	b, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *Currency) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return c.UnmarshalText([]byte(v))
	case []byte:
		return c.UnmarshalText(v)
	case int64:
		if v < 0 || v > math.MaxUint16 {
			return apperror.NewInvalidCode(string(isocode.DomainCurrency), isocode.FormNumeric.String(), fmt.Sprint(v))
		}
		parsed, err := FromNumeric(int(v))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("currency: cannot scan %T", src)
}
