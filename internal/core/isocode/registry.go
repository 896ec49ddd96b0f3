package isocode

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"isoref/internal/core/apperror"
)

// Record is one catalogue row as seen by the registry.
// Codes for forms the domain does not support are left empty.
type Record[E comparable] struct {
	Entity  E
	Name    string
	Alpha2  string
	Alpha3  string
	Numeric uint16
}

func (r Record[E]) code(form Form) string {
	switch form {
	case FormAlpha2:
		return r.Alpha2
	case FormAlpha3:
		return r.Alpha3
	case FormNumeric:
		return FormatNumeric(r.Numeric)
	}
	return ""
}

// Registry maps codes to entities and back for one domain.
// It is immutable after New returns and safe for concurrent use.
type Registry[E comparable] struct {
	domain  Domain
	forms   []Form
	records []Record[E]
	index   map[E]int
	byCode  map[Form]map[string]int
	byName  map[string]int
}

// New builds a registry over records, kept in the given order.
// It rejects catalogues whose size differs from expected, malformed codes,
// and any code or name that maps to more than one entity.
func New[E comparable](domain Domain, forms []Form, records []Record[E], expected int) (*Registry[E], error) {
	if len(records) != expected {
		return nil, fmt.Errorf("isocode: %s catalogue has %d entries, expected %d", domain, len(records), expected)
	}

	r := &Registry[E]{
		domain:  domain,
		forms:   slices.Clone(forms),
		records: slices.Clone(records),
		index:   make(map[E]int, len(records)),
		byCode:  make(map[Form]map[string]int, len(forms)),
		byName:  make(map[string]int, len(records)),
	}
	for _, f := range forms {
		r.byCode[f] = make(map[string]int, len(records))
	}

	for i, rec := range r.records {
		if _, dup := r.index[rec.Entity]; dup {
			return nil, fmt.Errorf("isocode: %s entity %v defined twice", domain, rec.Entity)
		}
		r.index[rec.Entity] = i

		if _, dup := r.byName[rec.Name]; dup || rec.Name == "" {
			return nil, fmt.Errorf("isocode: %s name %q is empty or not unique", domain, rec.Name)
		}
		r.byName[rec.Name] = i

		for _, f := range forms {
			code := rec.code(f)
			if f == FormNumeric && rec.Numeric == 0 {
				return nil, fmt.Errorf("isocode: %s %q has no numeric code", domain, rec.Name)
			}
			if code != canonical(code, f) || !Matches(code, f) || code != strings.ToUpper(code) {
				return nil, fmt.Errorf("isocode: %s %s code %q of %q is not canonical", domain, f, code, rec.Name)
			}
			if j, dup := r.byCode[f][code]; dup {
				return nil, fmt.Errorf("isocode: %s %s code %q shared by %q and %q", domain, f, code, r.records[j].Name, rec.Name)
			}
			r.byCode[f][code] = i
		}
	}

	return r, nil
}

// MustNew is New for static tables; a failure is a data bug and panics at load time.
func MustNew[E comparable](domain Domain, forms []Form, records []Record[E], expected int) *Registry[E] {
	r, err := New(domain, forms, records, expected)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry[E]) Domain() Domain { return r.domain }

// Forms returns the code forms this domain supports.
func (r *Registry[E]) Forms() []Form { return slices.Clone(r.forms) }

func (r *Registry[E]) Supports(form Form) bool {
	_, ok := r.byCode[form]
	return ok
}

func (r *Registry[E]) Len() int { return len(r.records) }

// All returns every entity in definition order. The slice is a fresh copy.
func (r *Registry[E]) All() []E {
	out := make([]E, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Entity
	}
	return out
}

// Records returns a copy of the catalogue rows in definition order.
func (r *Registry[E]) Records() []Record[E] {
	return slices.Clone(r.records)
}

// Index returns the definition-order position of e.
func (r *Registry[E]) Index(e E) (int, bool) {
	i, ok := r.index[e]
	return i, ok
}

func (r *Registry[E]) Contains(e E) bool {
	_, ok := r.index[e]
	return ok
}

// Record returns the catalogue row of e.
func (r *Registry[E]) Record(e E) (Record[E], bool) {
	i, ok := r.index[e]
	if !ok {
		return Record[E]{}, false
	}
	return r.records[i], true
}

// Code returns the canonical code of e in form. ok is false only when e is not
// a catalogue member or the domain has no such form.
func (r *Registry[E]) Code(e E, form Form) (string, bool) {
	i, ok := r.index[e]
	if !ok || !r.Supports(form) {
		return "", false
	}
	return r.records[i].code(form), true
}

// Codes lists the canonical codes of form for every entity, in definition order.
func (r *Registry[E]) Codes(form Form) []string {
	if !r.Supports(form) {
		return nil
	}
	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.code(form)
	}
	return out
}

// Parse resolves raw as a code of the given form.
// Shape mismatches and unsupported forms yield INVALID_CODE, unassigned codes UNKNOWN_CODE.
func (r *Registry[E]) Parse(raw string, form Form) (E, error) {
	var zero E
	if !r.Supports(form) {
		return zero, r.invalid(form, raw)
	}
	code, err := NewCode(r.domain, form, raw)
	if err != nil {
		return zero, err
	}
	return r.Resolve(code)
}

// ParseNumeric resolves an integer numeric code.
func (r *Registry[E]) ParseNumeric(n int) (E, error) {
	var zero E
	if n < 0 || n > 999 || !r.Supports(FormNumeric) {
		return zero, r.invalid(FormNumeric, strconv.Itoa(n))
	}
	return r.Parse(strconv.Itoa(n), FormNumeric)
}

// ParseAny detects the form of raw from its shape and resolves it.
func (r *Registry[E]) ParseAny(raw string) (E, error) {
	var zero E
	form, ok := Detect(raw)
	if !ok {
		return zero, apperror.NewInvalidCode(string(r.domain), "any", raw)
	}
	return r.Parse(raw, form)
}

// Resolve looks up an already validated code.
func (r *Registry[E]) Resolve(code Code) (E, error) {
	var zero E
	if code.Domain != r.domain {
		return zero, r.invalid(code.Form, code.Value).WithDetail("code_domain", string(code.Domain))
	}
	byCode, ok := r.byCode[code.Form]
	if !ok {
		return zero, r.invalid(code.Form, code.Value)
	}
	i, ok := byCode[code.Value]
	if !ok {
		return zero, apperror.NewUnknownCode(string(r.domain), code.Form.String(), code.Value)
	}
	return r.records[i].Entity, nil
}

// Convert translates raw from one form into another for the same entity.
func (r *Registry[E]) Convert(raw string, from, to Form) (string, error) {
	if !r.Supports(to) {
		return "", r.invalid(to, raw)
	}
	e, err := r.Parse(raw, from)
	if err != nil {
		return "", err
	}
	code, _ := r.Code(e, to)
	return code, nil
}

// FromName finds the entity with exactly this canonical name.
func (r *Registry[E]) FromName(name string) (E, error) {
	var zero E
	if strings.TrimSpace(name) == "" {
		return zero, apperror.NewInvalidCode(string(r.domain), "name", name)
	}
	i, ok := r.byName[name]
	if !ok {
		return zero, apperror.NewUnknownCode(string(r.domain), "name", name)
	}
	return r.records[i].Entity, nil
}

func (r *Registry[E]) invalid(form Form, raw string) *apperror.AppError {
	return apperror.NewInvalidCode(string(r.domain), form.String(), raw)
}
