package handlers

import (
	"github.com/gin-gonic/gin"

	"isoref/internal/domain"
	"isoref/internal/infrastructure/http/v1/dto"
)

// CatalogHandler provides the read endpoints of one reference catalogue.
type CatalogHandler[V domain.Record, T any] struct {
	*BaseHandler
	service  *domain.CatalogService[V]
	mapToDTO func(V) T
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[V domain.Record, T any](
	base *BaseHandler,
	service *domain.CatalogService[V],
	mapToDTO func(V) T,
) *CatalogHandler[V, T] {
	return &CatalogHandler[V, T]{
		BaseHandler: base,
		service:     service,
		mapToDTO:    mapToDTO,
	}
}

// List handles GET /{entity} - list with search, filters and pagination.
func (h *CatalogHandler[V, T]) List(c *gin.Context) {
	filter, ok := h.ListFilter(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromListResult(result, h.mapToDTO))
}

// Get handles GET /{entity}/:code - the code may be in any supported form.
func (h *CatalogHandler[V, T]) Get(c *gin.Context) {
	v, ok := h.resolve(c)
	if !ok {
		return
	}
	h.OK(c, h.mapToDTO(v))
}

// Related returns a handler for GET /{entity}/:code/{relation}.
func (h *CatalogHandler[V, T]) Related(project func(V) any) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := h.resolve(c)
		if !ok {
			return
		}
		h.OK(c, project(v))
	}
}

func (h *CatalogHandler[V, T]) resolve(c *gin.Context) (V, bool) {
	v, err := h.service.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return v, false
	}
	return v, true
}
