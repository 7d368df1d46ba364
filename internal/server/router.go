package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"promptatlas/internal/http/handlers"
	"promptatlas/internal/http/middleware"
	"promptatlas/internal/platform/logger"
)

type RouterConfig struct {
	Log          *logger.Logger
	AllowOrigins []string

	HealthHandler *handlers.HealthHandler
	StatsHandler  *handlers.StatsHandler
	BrowseHandler *handlers.BrowseHandler
	LoraHandler   *handlers.LoraHandler
	PromptHandler *handlers.PromptHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))

	if len(cfg.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "X-Requested-With", "X-Request-ID"},
		}))
	}

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	router.GET("/", serveIndex)

	api := router.Group("/api")
	{
		api.GET("/stats", cfg.StatsHandler.GetStats)
		api.GET("/categories", cfg.BrowseHandler.ListCategories)
		api.POST("/browse", cfg.BrowseHandler.Browse)
		api.GET("/images/:id", cfg.BrowseHandler.GetRecord)
		api.POST("/random", cfg.BrowseHandler.Random)
		api.GET("/loras", cfg.LoraHandler.GetInsights)
		api.POST("/prompts/generate", cfg.PromptHandler.Generate)
	}

	return router
}
