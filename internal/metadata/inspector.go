package metadata

import (
	"reflect"
	"strings"
	"unicode"
)

// OptionSource returns every valid code of domain in form.
type OptionSource func(domain, form string) []string

// Inspect analyzes a DTO struct and returns its EntityDef.
//
// Code fields are marked with a `meta` tag: "code,domain=country,form=alpha2"
// for the entity's own codes, "ref,domain=currency,form=alpha3" for codes of
// a related domain. options fills Options for both; it may be nil.
func Inspect(entity any, name string, entityType EntityType, options OptionSource) EntityDef {
	t := reflect.TypeOf(entity)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if name == "" {
		name = t.Name()
	}

	def := EntityDef{
		Name:   name,
		Label:  guessLabel(name),
		Type:   entityType,
		Fields: make([]FieldDef, 0, t.NumField()),
	}
	inspectStruct(t, &def, options)
	return def
}

func inspectStruct(t reflect.Type, def *EntityDef, options OptionSource) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			inspectStruct(field.Type, def, options)
			continue
		}

		fDef := FieldDef{
			Name:  jsonName(field),
			Label: guessLabel(field.Name),
		}
		if fDef.Name == "-" {
			continue
		}

		mapFieldType(&fDef, field)
		if fDef.ReferenceType != "" && options != nil {
			fDef.Options = options(fDef.ReferenceType, fDef.Form)
		}
		def.Fields = append(def.Fields, fDef)
	}
}

func mapFieldType(def *FieldDef, field reflect.StructField) {
	t := field.Type
	if t.Kind() == reflect.Slice {
		def.List = true
		t = t.Elem()
	}

	if tag, ok := field.Tag.Lookup("meta"); ok {
		kind, attrs := parseMetaTag(tag)
		switch kind {
		case "code":
			def.Type = TypeCode
		case "ref":
			def.Type = TypeReference
		}
		if def.Type != "" {
			def.ReferenceType = attrs["domain"]
			def.Form = attrs["form"]
			return
		}
	}

	switch t.Kind() {
	case reflect.String:
		def.Type = TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		def.Type = TypeInteger
	case reflect.Float32, reflect.Float64:
		def.Type = TypeNumber
	case reflect.Bool:
		def.Type = TypeBoolean
	default:
		def.Type = TypeString
	}
}

func parseMetaTag(tag string) (string, map[string]string) {
	parts := strings.Split(tag, ",")
	attrs := make(map[string]string, len(parts)-1)
	for _, p := range parts[1:] {
		if k, v, ok := strings.Cut(p, "="); ok {
			attrs[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(parts[0]), attrs
}

func jsonName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	runes := []rune(field.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// guessLabel splits a CamelCase name into words: "CountryCode" -> "Country Code".
func guessLabel(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
