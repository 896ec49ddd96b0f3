package isocode

import "isoref/internal/core/apperror"

// Code is a shape-validated code value of one form in one domain.
// Value is always canonical: upper case letters or zero-padded digits.
type Code struct {
	Domain Domain `json:"domain"`
	Form   Form   `json:"form"`
	Value  string `json:"value"`
}

// NewCode validates raw against form and returns its canonical Code.
// It does not check that the code is assigned.
func NewCode(domain Domain, form Form, raw string) (Code, error) {
	value := Normalize(raw)
	if !Matches(value, form) {
		return Code{}, apperror.NewInvalidCode(string(domain), form.String(), raw)
	}
	return Code{Domain: domain, Form: form, Value: canonical(value, form)}, nil
}

func (c Code) String() string {
	return c.Value
}

// IsZero reports whether c was never set.
func (c Code) IsZero() bool {
	return c.Value == ""
}
