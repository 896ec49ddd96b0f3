// Package language provides the ISO 639-1 language catalogue.
// Languages are identified by their alpha-2 code only.
package language

import (
	"database/sql/driver"
	"fmt"

	"isoref/internal/core/apperror"
	"isoref/internal/core/isocode"
)

// Language is one ISO 639-1 language. The underlying value is its position in
// the catalogue and has no meaning outside this package.
type Language uint8

// Count is the number of languages in the catalogue.
const Count = 183

// Forms lists the code forms a language has.
var Forms = []isocode.Form{isocode.FormAlpha2}

type info struct {
	language Language
	alpha2   string
	name     string
}

var registry = func() *isocode.Registry[Language] {
	records := make([]isocode.Record[Language], len(catalogue))
	for i, l := range catalogue {
		records[i] = isocode.Record[Language]{
			Entity: l.language,
			Name:   l.name,
			Alpha2: l.alpha2,
		}
	}
	return isocode.MustNew(isocode.DomainLanguage, Forms, records, Count)
}()

// Registry exposes the code registry for generic consumers.
func Registry() *isocode.Registry[Language] {
	return registry
}

// All returns every language in definition order.
func All() []Language {
	return registry.All()
}

// Parse resolves raw as a code of the given form.
func Parse(raw string, form isocode.Form) (Language, error) {
	return registry.Parse(raw, form)
}

// ParseAlpha2 resolves a two-letter language code.
func ParseAlpha2(raw string) (Language, error) {
	return registry.Parse(raw, isocode.FormAlpha2)
}

// ParseAny exists for symmetry with the other catalogues; only alpha-2 resolves.
func ParseAny(raw string) (Language, error) {
	return registry.ParseAny(raw)
}

// FromName looks a language up by its exact canonical name.
func FromName(name string) (Language, error) {
	return registry.FromName(name)
}

func IsAlpha2(raw string) bool { return isocode.IsAlpha2(raw) }

// Codes lists every language code of form, in definition order.
func Codes(form isocode.Form) []string {
	return registry.Codes(form)
}

// --- Language methods ---

// IsValid reports whether l is a member of the catalogue.
func (l Language) IsValid() bool {
	return registry.Contains(l)
}

func (l Language) Name() string {
	rec, _ := registry.Record(l)
	return rec.Name
}

func (l Language) Alpha2() string {
	return l.Code(isocode.FormAlpha2)
}

func (l Language) Code(form isocode.Form) string {
	code, _ := registry.Code(l, form)
	return code
}

func (l Language) String() string {
	if code, ok := registry.Code(l, isocode.FormAlpha2); ok {
		return code
	}
	return fmt.Sprintf("Language(%d)", uint8(l))
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, apperror.NewInvalidCode(string(isocode.DomainLanguage), isocode.FormAlpha2.String(), l.String())
	}
	return []byte(l.Alpha2()), nil
}

func (l *Language) UnmarshalText(b []byte) error {
	parsed, err := ParseAlpha2(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Language) Value() (driver.Value, error) {
	b, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *Language) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return l.UnmarshalText([]byte(v))
	case []byte:
		return l.UnmarshalText(v)
	}
	return fmt.Errorf("language: cannot scan %T", src)
}
