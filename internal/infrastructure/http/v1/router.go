// Package v1 provides HTTP API version 1.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"isoref/internal/domain/reference"
	"isoref/internal/infrastructure/http/v1/handlers"
	"isoref/internal/infrastructure/http/v1/middleware"
	"isoref/internal/infrastructure/metrics"
	"isoref/internal/metadata"
	"isoref/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Service answers every catalogue query
	Service *reference.Service

	// Metrics is optional; nil disables /metrics and request metrics
	Metrics *metrics.Metrics

	// MetadataRegistry stores entity definitions
	MetadataRegistry *metadata.Registry

	// Dataset serves the snapshot; nil disables /api/v1/dataset
	Dataset *handlers.DatasetHandler

	// Started is reported as uptime by /health/info
	Started time.Time
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Started)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/info", healthHandler.Info)
	}

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		registerReferenceRoutes(v1, cfg)
		registerMetaRoutes(v1, cfg)
		if cfg.Dataset != nil {
			v1.GET("/dataset", cfg.Dataset.Get)
		}
	}

	return router
}

// registerReferenceRoutes registers the catalogue, relation and conversion endpoints.
func registerReferenceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	h := handlers.NewReferenceHandler(handlers.NewBaseHandler(), cfg.Service)

	RegisterCatalogRoutes(rg.Group("/countries"), h.Countries, map[string]gin.HandlerFunc{
		"currencies": h.Countries.Related(handlers.CountryCurrencies),
		"languages":  h.Countries.Related(handlers.CountryLanguages),
	})
	RegisterCatalogRoutes(rg.Group("/currencies"), h.Currencies, map[string]gin.HandlerFunc{
		"countries": h.Currencies.Related(handlers.CurrencyCountries),
		"round":     h.Round,
	})
	RegisterCatalogRoutes(rg.Group("/languages"), h.Languages, map[string]gin.HandlerFunc{
		"countries": h.Languages.Related(handlers.LanguageCountries),
	})

	rg.GET("/convert/:domain/:code", h.Convert)
}

// registerMetaRoutes registers metadata endpoints.
func registerMetaRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.MetadataRegistry == nil {
		return
	}

	h := handlers.NewMetadataHandler(handlers.NewBaseHandler(), cfg.MetadataRegistry)
	meta := rg.Group("/meta")
	{
		meta.GET("", h.ListEntities)
		meta.GET("/:name", h.GetEntity)
	}
}
