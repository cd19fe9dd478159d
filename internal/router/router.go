package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lgpd-forms/consent-form-api/internal/config"
	"github.com/lgpd-forms/consent-form-api/internal/database"
	"github.com/lgpd-forms/consent-form-api/internal/handlers"
	"github.com/lgpd-forms/consent-form-api/internal/service"
	"github.com/lgpd-forms/consent-form-api/pkg/utils"
)

// SetupRouter configures all API routes
func SetupRouter(
	cfg *config.Config,
	db *database.DB,
	termoService *service.TermoService,
	titularService *service.TitularService,
	logService *service.LogService,
) *gin.Engine {
	router := gin.Default()

	router.Use(correlationIDMiddleware())
	router.Use(corsMiddleware(cfg))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "unhealthy", "database": "down"})
			return
		}
		c.JSON(200, gin.H{"status": "healthy"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create handlers
	termoHandler := handlers.NewTermoHandler(termoService)
	titularHandler := handlers.NewTitularHandler(titularService, termoService)
	logHandler := handlers.NewLogHandler(logService)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		termos := v1.Group("/termos")
		{
			termos.POST("", termoHandler.CreateTermo)
			termos.GET("/validar-cpf/:cpf", termoHandler.ValidarCpf)
			termos.GET("/:id", termoHandler.GetTermo)
			termos.GET("/:id/documento", termoHandler.DownloadDocumento)
		}

		titulares := v1.Group("/titulares")
		{
			titulares.GET("/:cpf", titularHandler.GetTitular)
			titulares.GET("/:cpf/termos", titularHandler.ListTermos)
		}

		v1.GET("/logs", logHandler.ListLogs)
	}

	return router
}

// correlationIDMiddleware ensures every request carries a correlation id,
// generating one when the caller did not send it.
func correlationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			correlationID = utils.GenerateCorrelationID()
		}
		c.Set("correlationID", correlationID)
		c.Header("X-Correlation-ID", correlationID)
		c.Next()
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	methods := strings.Join(cfg.CORS.AllowedMethods, ", ")
	if methods == "" {
		methods = "GET, POST, OPTIONS"
	}
	headers := strings.Join(cfg.CORS.AllowedHeaders, ", ")
	if headers == "" {
		headers = "Content-Type, Authorization"
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && cfg.AllowsOrigin(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			if cfg.CORS.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
