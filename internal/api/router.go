package api

import (
	"disposal-locator-service/internal/api/handlers"
	"disposal-locator-service/internal/ports"
	"disposal-locator-service/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	DefaultRadiusKm float64
	TopN            int
	SuggestionLimit int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	locator *services.Locator,
	geocoder ports.Geocoder,
	cfg RouterConfig,
	logger *zap.Logger,
) http.Handler {
	if cfg.DefaultRadiusKm == 0 {
		cfg.DefaultRadiusKm = 3
	}
	if cfg.TopN == 0 {
		cfg.TopN = services.DefaultTopN
	}
	if cfg.SuggestionLimit == 0 {
		cfg.SuggestionLimit = services.DefaultSuggestionLimit
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), requestIDMiddleware(), loggingMiddleware(logger))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	locHandler := &handlers.LocationHandler{
		Locator:         locator,
		Geocoder:        geocoder,
		DefaultRadiusKm: cfg.DefaultRadiusKm,
		TopN:            cfg.TopN,
	}
	suggestHandler := &handlers.SuggestionHandler{
		Locator: locator,
		Limit:   cfg.SuggestionLimit,
	}

	r.GET("/health", handlers.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/locations", locHandler.List)
		v1.GET("/locations/nearby", locHandler.Nearby)
		v1.GET("/locations/search", locHandler.Search)
		v1.GET("/suggestions", suggestHandler.List)
	}

	return r
}
