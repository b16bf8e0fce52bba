// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chronyx/backend/internal/integration/entrypoint/controller"
	"github.com/chronyx/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	taxController       *controller.TaxController
	discoveryController *controller.DiscoveryController
	insuranceController *controller.InsuranceController
	loanController      *controller.LoanController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	taxController *controller.TaxController,
	discoveryController *controller.DiscoveryController,
	insuranceController *controller.InsuranceController,
	loanController *controller.LoanController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		taxController:       taxController,
		discoveryController: discoveryController,
		insuranceController: insuranceController,
		loanController:      loanController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Tax routes (require authentication)
		if r.taxController != nil && r.authMiddleware != nil {
			tax := v1.Group("/tax")
			tax.Use(r.authMiddleware.Authenticate())
			{
				tax.GET("/years", r.taxController.ListYears)
				tax.POST("/calculate", r.taxController.Calculate)
				tax.POST("/compare", r.taxController.Compare)
				tax.GET("/history", r.taxController.History)

				// Deduction discovery routes (nested under tax)
				if r.discoveryController != nil {
					deductions := tax.Group("/deductions")
					{
						deductions.POST("/discover", r.discoveryController.Discover)
						deductions.GET("/suggestions", r.discoveryController.ListSuggestions)
						deductions.POST("/suggestions/:id/accept", r.discoveryController.AcceptSuggestion)
						deductions.POST("/suggestions/:id/dismiss", r.discoveryController.DismissSuggestion)
					}
				}
			}
		}

		// Insurance policy routes (require authentication)
		if r.insuranceController != nil && r.authMiddleware != nil {
			insurance := v1.Group("/insurance")
			insurance.Use(r.authMiddleware.Authenticate())
			{
				insurance.GET("", r.insuranceController.List)
				insurance.POST("", r.insuranceController.Create)
				insurance.DELETE("/:id", r.insuranceController.Delete)
			}
		}

		// Loan routes (require authentication)
		if r.loanController != nil && r.authMiddleware != nil {
			loans := v1.Group("/loans")
			loans.Use(r.authMiddleware.Authenticate())
			{
				loans.GET("", r.loanController.List)
				loans.POST("", r.loanController.Create)
				loans.DELETE("/:id", r.loanController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
