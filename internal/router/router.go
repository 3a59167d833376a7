// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nightmare5831/sales-pipeline/internal/config"
	"github.com/nightmare5831/sales-pipeline/internal/handlers"
	"github.com/nightmare5831/sales-pipeline/internal/middleware"
	"github.com/nightmare5831/sales-pipeline/internal/pipeline"
	"github.com/nightmare5831/sales-pipeline/internal/services"
	"github.com/nightmare5831/sales-pipeline/internal/utils"
)

func Initialize(store *pipeline.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(cfg)
	billingService := services.NewBillingService(cfg)
	dashboardService := services.NewDashboardService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	pipelineHandler := handlers.NewPipelineHandler(store)
	billingHandler := handlers.NewBillingHandler(billingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Pipeline board routes
		board := v1.Group("/pipeline")
		board.Use(middleware.AuthRequired())
		{
			board.GET("/stages", pipelineHandler.GetStages)
			board.GET("/columns", pipelineHandler.GetBoard)
			board.GET("/summary", pipelineHandler.GetSummary)
			board.GET("/deals", pipelineHandler.GetDeals)
			board.GET("/deals/:id", pipelineHandler.GetDeal)
			board.POST("/deals", pipelineHandler.CreateDeal)
			board.PUT("/deals/:id/stage", pipelineHandler.MoveDeal)
		}

		// Billing routes
		billing := v1.Group("/billing")
		{
			billing.GET("/plans", billingHandler.GetPlans)
			billing.POST("/checkout-session", middleware.AuthRequired(), billingHandler.CreateCheckoutSession)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired())
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
		}
	}

	return r
}
