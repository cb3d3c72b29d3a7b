package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/finsaarthi/scholarhub/internal/app/controllers"
	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/middleware"
	"github.com/finsaarthi/scholarhub/internal/pkg/events"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	scholarshipController *controllers.ScholarshipController,
	applicationController *controllers.ApplicationController,
	authMiddleware *middleware.AuthMiddleware,
	hub *events.Hub,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public scholarship browsing ---
	scholarships := v1.Group("/scholarships")
	{
		scholarships.GET("", scholarshipController.ListScholarships)
		scholarships.GET("/:id", scholarshipController.GetScholarshipByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes
		profile := authenticated.Group("/profile")
		{
			profile.GET("", userController.GetProfile)
			profile.PUT("", userController.UpdateProfile)
			profile.POST("/documents", userController.UploadDocument)
		}

		// Application routes for the logged-in student
		authenticated.GET("/scholarships/:id/applied", scholarshipController.CheckApplied)
		authenticated.POST("/scholarships/:id/applications", applicationController.SubmitApplication)
		authenticated.GET("/applications", applicationController.ListMyApplications)
		authenticated.GET("/applications/:id", applicationController.GetApplicationByID)

		// Store change feed, consumed by dashboards over WebSocket
		authenticated.GET("/events", events.ServeWS(hub))

		// Admin-only routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.POST("/scholarships", scholarshipController.CreateScholarship)
			admin.PUT("/scholarships/:id", scholarshipController.UpdateScholarship)
			admin.DELETE("/scholarships/:id", scholarshipController.DeleteScholarship)

			admin.GET("/admin/scholarships", scholarshipController.ListAllScholarships)
			admin.GET("/admin/users", userController.ListUsers)
			admin.GET("/admin/applications", applicationController.ListAllApplications)
			admin.PUT("/admin/applications/:id/status", applicationController.UpdateApplicationStatus)
			admin.GET("/admin/stats", applicationController.GetStats)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
