// Package metadata describes the shape of the API entities, including the
// full list of valid codes for every code field.
package metadata

import (
	"slices"
	"strings"
)

// EntityType defines the category of the entity.
type EntityType string

const (
	TypeCatalog EntityType = "catalog"
)

// FieldType defines the data type of a field.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeInteger   FieldType = "integer"
	TypeNumber    FieldType = "number"
	TypeBoolean   FieldType = "boolean"
	TypeCode      FieldType = "code"      // one code of this entity's own domain
	TypeReference FieldType = "reference" // codes of another domain
)

// EntityDef describes an API entity.
type EntityDef struct {
	Name   string     `json:"name"`
	Label  string     `json:"label,omitempty"`
	Type   EntityType `json:"type"`
	Fields []FieldDef `json:"fields"`
}

// FieldDef describes a field.
type FieldDef struct {
	Name          string    `json:"name"`
	Label         string    `json:"label,omitempty"`
	Type          FieldType `json:"type"`
	List          bool      `json:"list,omitempty"`
	ReferenceType string    `json:"referenceType,omitempty"` // domain of a code or reference field
	Form          string    `json:"form,omitempty"`          // code form, e.g. "alpha2"
	Options       []string  `json:"options,omitempty"`       // every valid value
}

// Field returns the field called name.
func (d EntityDef) Field(name string) (FieldDef, bool) {
	i := slices.IndexFunc(d.Fields, func(f FieldDef) bool { return f.Name == name })
	if i < 0 {
		return FieldDef{}, false
	}
	return d.Fields[i], true
}

// Registry stores entity definitions. Populate it before serving; reads are
// not synchronised with writes.
type Registry struct {
	entities map[string]EntityDef
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]EntityDef),
	}
}

// Register stores def under its lower-cased name.
func (r *Registry) Register(def EntityDef) {
	r.entities[strings.ToLower(def.Name)] = def
}

// Get looks name up case-insensitively.
func (r *Registry) Get(name string) (EntityDef, bool) {
	d, ok := r.entities[strings.ToLower(name)]
	return d, ok
}

// List returns all definitions ordered by name.
func (r *Registry) List() []EntityDef {
	list := make([]EntityDef, 0, len(r.entities))
	for _, def := range r.entities {
		list = append(list, def)
	}
	slices.SortFunc(list, func(a, b EntityDef) int { return strings.Compare(a.Name, b.Name) })
	return list
}
