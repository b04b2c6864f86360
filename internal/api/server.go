package api

import (
	"net/http"

	"github.com/clinicavet/rut-api/internal/api/handlers"
	"github.com/clinicavet/rut-api/internal/api/middleware"
	"github.com/clinicavet/rut-api/internal/config"
	"github.com/clinicavet/rut-api/internal/models"
	"github.com/clinicavet/rut-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
	rateLimiter *middleware.RateLimiter
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()
	s.Router.HandleMethodNotAllowed = true

	// Global middleware
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Metrics(s.services.Metrics))

	s.rateLimiter = middleware.NewRateLimiter(s.config.Security.RateLimit)
	s.Router.Use(s.rateLimiter.Middleware())

	healthHandler := handlers.NewHealthHandler(s.services, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	metricsHandler := handlers.NewMetricsHandler(s.services.Metrics, s.services.CacheSize, s.logger)
	s.Router.GET("/metrics", metricsHandler.GetMetrics)
	s.Router.GET("/metrics/prometheus", metricsHandler.Prometheus())

	// Swagger documentation
	if !s.config.IsProduction() {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	v1 := s.Router.Group("/api/v1")
	{
		rutHandler := handlers.NewRUTHandler(s.services.RUTService, s.logger)
		rut := v1.Group("/rut")
		{
			rut.GET("/:rut", rutHandler.GetRUT)
			rut.GET("/:rut/format", rutHandler.FormatRUT)
			rut.GET("/:rut/extract", rutHandler.ExtractRUT)
			rut.GET("/check-digit/:body", rutHandler.CheckDigit)
			rut.POST("/validate", rutHandler.ValidateRUT)
			rut.POST("/batch", rutHandler.ValidateBatch)
			rut.POST("/extract-text", rutHandler.ExtractFromText)

			// Static segments would otherwise be read as a RUT by /:rut
			rut.GET("/validate", postOnly)
			rut.GET("/batch", postOnly)
			rut.GET("/extract-text", postOnly)
			rut.GET("/check-digit", notFound)
		}

		cache := v1.Group("/cache")
		cache.Use(middleware.AdminAuth(s.config.Security.AdminToken))
		{
			cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/:rut", cacheHandler.Delete)
		}
	}

	s.Router.NoRoute(notFound)
	s.Router.NoMethod(methodNotAllowed)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.NewErrorResponse(
		"Not Found", "The requested resource was not found", models.ErrorCodeNotFound, c.Request.URL.Path,
	))
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.NewErrorResponse(
		"Method Not Allowed", "The requested method is not allowed for this resource", models.ErrorCodeMethodNotAllowed, c.Request.URL.Path,
	))
}

func postOnly(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	methodNotAllowed(c)
}

// Close stops background work owned by the server
func (s *Server) Close() {
	s.rateLimiter.Stop()
}
