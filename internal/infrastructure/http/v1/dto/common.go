// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"encoding/json"

	"isoref/internal/core/apperror"
	"isoref/internal/domain"
	"isoref/internal/domain/filter"
)

// --- List Request ---

// ListQuery holds the query parameters of list endpoints.
type ListQuery struct {
	Search  string `form:"search"`
	Filter  string `form:"filter"` // JSON array of filter items
	Expr    string `form:"expr"`   // CEL boolean expression
	OrderBy string `form:"orderBy"`
	Limit   int    `form:"limit" binding:"min=0,max=500"`
	Offset  int    `form:"offset" binding:"min=0"`
}

// ToFilter converts the query into a domain list filter.
func (q ListQuery) ToFilter() (domain.ListFilter, error) {
	f := domain.DefaultListFilter()
	f.Search = q.Search
	f.Expr = q.Expr
	f.OrderBy = q.OrderBy
	f.Offset = q.Offset
	if q.Limit > 0 {
		f.Limit = q.Limit
	}

	if q.Filter != "" {
		var items []filter.Item
		if err := json.Unmarshal([]byte(q.Filter), &items); err != nil {
			return f, apperror.NewValidation("invalid filter format (json expected)").WithDetail("error", err.Error())
		}
		f.AdvancedFilters = items
	}
	return f, nil
}

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// FromListResult maps every item of r with fn.
func FromListResult[V any, T any](r domain.ListResult[V], fn func(V) T) ListResponse[T] {
	items := make([]T, len(r.Items))
	for i, v := range r.Items {
		items[i] = fn(v)
	}
	return ListResponse[T]{
		Items:      items,
		TotalCount: r.TotalCount,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

// --- Health ---

type HealthResponse struct {
	Status string `json:"status"`
}

// InfoResponse describes the loaded dataset.
type InfoResponse struct {
	Status         string         `json:"status"`
	DatasetVersion string         `json:"datasetVersion"`
	Counts         map[string]int `json:"counts"`
	Uptime         string         `json:"uptime"`
}
