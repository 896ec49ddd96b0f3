package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the read endpoints every catalogue exposes.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

// RegisterCatalogRoutes registers the list and lookup routes of a catalogue
// plus one GET /:code/{name} route per entry of related.
//
// Usage:
//
//	RegisterCatalogRoutes(api.Group("/currencies"), h.Currencies, map[string]gin.HandlerFunc{
//		"countries": h.Currencies.Related(handlers.CurrencyCountries),
//	})
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, related map[string]gin.HandlerFunc) {
	group.GET("", handler.List)
	group.GET("/:code", handler.Get)
	for name, h := range related {
		group.GET("/:code/"+name, h)
	}
}
