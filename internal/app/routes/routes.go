package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/hosteldesk/internal/app/controllers"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/app/models/dto"
	"github.com/hosteldesk/hosteldesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	admissionController *controllers.AdmissionController,
	settingsController *controllers.SettingsController,
	meritListController *controllers.MeritListController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Applicants submit without an account
	v1.POST("/admissions", admissionController.SubmitAdmission)

	// --- Authenticated staff routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		admissions := authenticated.Group("/admissions")
		{
			admissions.GET("", admissionController.ListAdmissions)
			admissions.GET("/:id", admissionController.GetAdmissionByID)

			admissionsWardenProtected := admissions.Group("")
			admissionsWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				admissionsWardenProtected.PATCH("/:id/status", admissionController.ReviewAdmission)
			}
		}

		settings := authenticated.Group("/settings")
		{
			settings.GET("/merit-list", settingsController.GetMeritListConfig)

			settingsWardenProtected := settings.Group("")
			settingsWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				settingsWardenProtected.PUT("/merit-list", settingsController.UpdateMeritListConfig)
			}
		}

		meritLists := authenticated.Group("/merit-lists")
		{
			// Role checks beyond warden/rector live in the service layer,
			// which also scopes the returned lists per actor.
			meritLists.GET("", meritListController.ListMeritLists)

			meritListsWardenProtected := meritLists.Group("")
			meritListsWardenProtected.Use(authMiddleware.RoleRequired(models.RoleWarden))
			{
				meritListsWardenProtected.POST("/generate", meritListController.GenerateMeritLists)
				meritListsWardenProtected.GET("/pending", meritListController.PendingMeritLists)
				meritListsWardenProtected.POST("/:id/send-for-review", meritListController.SendForReview)
			}

			meritListsRectorProtected := meritLists.Group("")
			meritListsRectorProtected.Use(authMiddleware.RoleRequired(models.RoleRector))
			{
				meritListsRectorProtected.POST("/:id/publish", meritListController.Publish)
				meritListsRectorProtected.POST("/:id/dispatch-credentials", meritListController.DispatchCredentials)
			}
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
