// Package isocode holds the domain-independent part of ISO code handling:
// code forms, shape validation, the Code value and a generic bidirectional registry.
package isocode

import (
	"fmt"
	"strings"

	"isoref/internal/core/apperror"
)

// Domain identifies one reference catalogue.
type Domain string

const (
	DomainCountry  Domain = "country"
	DomainCurrency Domain = "currency"
	DomainLanguage Domain = "language"
)

// Form is one textual or numeric representation of a code.
type Form uint8

const (
	FormAlpha2 Form = iota + 1
	FormAlpha3
	FormNumeric
)

// NumericWidth is the fixed width of ISO 3166-1 and ISO 4217 numeric codes.
const NumericWidth = 3

var formNames = map[Form]string{
	FormAlpha2:  "alpha2",
	FormAlpha3:  "alpha3",
	FormNumeric: "numeric",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Form(%d)", uint8(f))
}

func (f Form) MarshalText() ([]byte, error) {
	if _, ok := formNames[f]; !ok {
		return nil, fmt.Errorf("isocode: cannot marshal %s", f)
	}
	return []byte(f.String()), nil
}

func (f *Form) UnmarshalText(b []byte) error {
	parsed, err := ParseForm(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseForm accepts "alpha2", "alpha-2", "alpha3", "alpha-3" and "numeric" in any case.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alpha2", "alpha-2", "a2":
		return FormAlpha2, nil
	case "alpha3", "alpha-3", "a3":
		return FormAlpha3, nil
	case "numeric", "num", "n":
		return FormNumeric, nil
	}
	return 0, apperror.NewValidation("unknown code form").
		WithDetail("field", "form").
		WithDetail("value", s)
}
