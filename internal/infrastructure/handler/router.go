package handler

import (
	"github.com/damon-houk/currency-converter/internal/application/service"
	"github.com/damon-houk/currency-converter/internal/application/session"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// Dependencies are the collaborators shared by every handler
type Dependencies struct {
	Conversion *service.ConversionService
	Trend      *service.TrendService
	Favorites  *service.FavoritesService
	Export     *service.ExportService
	Session    *session.Session
	Metrics    *metrics.Metrics
	Logger     logger.Logger
}

// NewRouter registers every route behind the middleware chain
func NewRouter(deps Dependencies) *mux.Router {
	log := deps.Logger
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware, middleware.LoggingMiddleware(log))
	if deps.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(deps.Metrics))
		router.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")
	}

	NewConversionHandler(deps.Conversion, deps.Session, deps.Metrics, log).RegisterRoutes(router)
	NewTrendHandler(deps.Trend, deps.Session, deps.Metrics, log).RegisterRoutes(router)
	NewFavoritesHandler(deps.Favorites, deps.Metrics, log).RegisterRoutes(router)
	NewExportHandler(deps.Export, deps.Session, deps.Metrics, log).RegisterRoutes(router)
	NewThemeHandler(deps.Session, log).RegisterRoutes(router)

	return router
}
