// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	goalController        *controller.GoalController
	transactionController *controller.TransactionController
	snapshotController    *controller.SnapshotController
	profileController     *controller.ProfileController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	transactionController *controller.TransactionController,
	snapshotController *controller.SnapshotController,
	profileController *controller.ProfileController,
) *Router {
	return &Router{
		healthController:      healthController,
		goalController:        goalController,
		transactionController: transactionController,
		snapshotController:    snapshotController,
		profileController:     profileController,
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
		// Goal routes
		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/summary", r.goalController.Summary)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/toggle", r.goalController.Toggle)
			}
		}

		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Snapshot routes
		if r.snapshotController != nil {
			snapshot := v1.Group("/snapshot")
			{
				snapshot.GET("", r.snapshotController.Info)
				snapshot.POST("/backup", r.snapshotController.Backup)
				snapshot.POST("/restore", r.snapshotController.Restore)
			}
		}

		// Profile and settings routes
		if r.profileController != nil {
			v1.GET("/profile", r.profileController.GetProfile)
			v1.PATCH("/profile", r.profileController.UpdateProfile)
			v1.GET("/settings", r.profileController.GetSettings)
			v1.PATCH("/settings", r.profileController.UpdateSettings)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
