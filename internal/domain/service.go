package domain

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"isoref/internal/core/apperror"
	"isoref/internal/domain/filter"
	"isoref/pkg/logger"
)

// CatalogService answers lookups and list queries for one reference domain.
type CatalogService[V Record] struct {
	entityName string
	all        func() []V
	resolve    func(raw string) (V, error)
	fields     []string
	env        *filter.Env
	recorder   LookupRecorder
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[V Record] struct {
	EntityName string
	All        func() []V
	Resolve    func(raw string) (V, error)
	Fields     []string    // filterable and sortable field names
	Env        *filter.Env // optional; nil disables Expr
	Recorder   LookupRecorder
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[V Record](cfg CatalogServiceConfig[V]) *CatalogService[V] {
	return &CatalogService[V]{
		entityName: cfg.EntityName,
		all:        cfg.All,
		resolve:    cfg.Resolve,
		fields:     cfg.Fields,
		env:        cfg.Env,
		recorder:   cfg.Recorder,
	}
}

// EntityName returns the domain name used in errors and metrics.
func (s *CatalogService[V]) EntityName() string { return s.entityName }

// Fields returns the filterable field names.
func (s *CatalogService[V]) Fields() []string { return slices.Clone(s.fields) }

// Get resolves code in any supported form.
func (s *CatalogService[V]) Get(ctx context.Context, code string) (V, error) {
	v, err := s.resolve(code)
	if s.recorder != nil {
		s.recorder.RecordLookup(s.entityName, err)
	}
	if err != nil {
		logger.Debug(ctx, "lookup failed", "entity", s.entityName, "code", code, "error", err)
		return v, err
	}
	return v, nil
}

// List returns the entries matching f, in catalogue order unless f.OrderBy is set.
func (s *CatalogService[V]) List(ctx context.Context, f ListFilter) (ListResult[V], error) {
	result := ListResult[V]{Items: []V{}, Limit: f.Limit, Offset: f.Offset}

	if err := filter.ValidateAll(f.AdvancedFilters, s.fields); err != nil {
		return result, err
	}

	var prg *filter.Program
	if strings.TrimSpace(f.Expr) != "" {
		if s.env == nil {
			return result, apperror.NewValidation(fmt.Sprintf("%s does not support filter expressions", s.entityName))
		}
		var err error
		if prg, err = s.env.Compile(f.Expr); err != nil {
			return result, err
		}
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	var matched []V
	for _, v := range s.all() {
		fields := v.Fields()
		if search != "" && !matchesSearch(v, fields, search) {
			continue
		}
		ok, err := filter.Match(fields, f.AdvancedFilters)
		if err != nil {
			return result, err
		}
		if ok && prg != nil {
			if ok, err = prg.Match(fields); err != nil {
				return result, err
			}
		}
		if ok {
			matched = append(matched, v)
		}
	}

	if f.OrderBy != "" {
		if err := s.sort(matched, f.OrderBy); err != nil {
			return result, err
		}
	}

	result.TotalCount = int64(len(matched))
	result.Items = page(matched, f.Offset, f.Limit)
	logger.Debug(ctx, "catalogue listed", "entity", s.entityName, "matched", len(matched), "returned", len(result.Items))
	return result, nil
}

func (s *CatalogService[V]) sort(items []V, orderBy string) error {
	field, desc := strings.CutPrefix(orderBy, "-")
	if !slices.Contains(s.fields, field) {
		return apperror.NewValidation(fmt.Sprintf("cannot order by %q", field)).WithDetail("allowed", s.fields)
	}

	slices.SortStableFunc(items, func(a, b V) int {
		c := compareValues(a.Fields()[field], b.Fields()[field])
		if desc {
			return -c
		}
		return c
	})
	return nil
}

func matchesSearch[V Record](v V, fields map[string]any, search string) bool {
	if name, ok := fields["name"].(string); ok && strings.Contains(strings.ToLower(name), search) {
		return true
	}
	return slices.ContainsFunc(v.Codes(), func(code string) bool {
		return strings.EqualFold(code, search)
	})
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		y, _ := b.(string)
		return cmp.Compare(x, y)
	case int64:
		y, _ := b.(int64)
		return cmp.Compare(x, y)
	case []string:
		y, _ := b.([]string)
		return cmp.Compare(len(x), len(y))
	}
	return 0
}

func page[V any](items []V, offset, limit int) []V {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []V{}
	}
	items = items[offset:]
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
