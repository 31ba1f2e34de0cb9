package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/initium-os/axiom-backend/internal/handlers"
	"github.com/initium-os/axiom-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware   *middleware.AuthMiddleware
	ObjectiveHandler *handlers.ObjectiveHandler
	DecisionHandler  *handlers.DecisionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	objectives := protected.Group("/objectives")
	objectives.POST("/", cfg.ObjectiveHandler.Create)
	objectives.GET("/", cfg.ObjectiveHandler.List)
	objectives.GET("/:id", cfg.ObjectiveHandler.Get)
	objectives.PUT("/:id", cfg.ObjectiveHandler.Update)
	objectives.DELETE("/:id", cfg.ObjectiveHandler.Delete)

	ai := protected.Group("/ai")
	ai.POST("/analyze", cfg.DecisionHandler.Analyze)

	return router
}
