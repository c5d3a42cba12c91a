package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/controllers"
	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/middleware"
)

// Controllers groups every route handler for registration
type Controllers struct {
	Auth          *controllers.AuthController
	Admin         *controllers.AdminController
	Faculty       *controllers.FacultyController
	Publication   *controllers.PublicationController
	Research      *controllers.ResearchController
	Patent        *controllers.PatentController
	Award         *controllers.AwardController
	Qualification *controllers.QualificationController
	Teaching      *controllers.TeachingController
	Event         *controllers.EventController
	Outreach      *controllers.OutreachController
	Citation      *controllers.CitationController
	Dashboard     *controllers.DashboardController
	Export        *controllers.ExportController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", ctrl.Auth.Signup)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/logout", ctrl.Auth.Logout)
	}

	// Public directory read
	api.GET("/faculty/:id", ctrl.Faculty.GetFaculty)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profile := authenticated.Group("/faculty/profile")
		{
			profile.GET("/:facultyId", ctrl.Faculty.GetProfile)
			profile.PUT("/:facultyId", ctrl.Faculty.UpdateProfile)
		}

		publications := authenticated.Group("/publications")
		{
			publications.POST("", ctrl.Publication.Create)
			publications.GET("", ctrl.Publication.List)
			publications.PUT("/:id", ctrl.Publication.Update)
			publications.DELETE("/:id", ctrl.Publication.Delete)
			publications.POST("/:id/links", ctrl.Publication.AddLink)
		}

		research := authenticated.Group("/research")
		{
			research.POST("", ctrl.Research.Create)
			research.GET("", ctrl.Research.List)
			research.PUT("/:id", ctrl.Research.Update)
			research.DELETE("/:id", ctrl.Research.Delete)
		}

		patents := authenticated.Group("/patents")
		{
			patents.POST("", ctrl.Patent.Create)
			patents.GET("", ctrl.Patent.List)
			patents.PUT("/:id", ctrl.Patent.Update)
			patents.DELETE("/:id", ctrl.Patent.Delete)
		}

		awards := authenticated.Group("/awards")
		{
			awards.POST("", ctrl.Award.Create)
			awards.GET("", ctrl.Award.List)
			awards.PUT("/:id", ctrl.Award.Update)
			awards.DELETE("/:id", ctrl.Award.Delete)
		}

		qualifications := authenticated.Group("/qualifications")
		{
			qualifications.POST("", ctrl.Qualification.Create)
			qualifications.GET("", ctrl.Qualification.List)
			qualifications.PUT("/:id", ctrl.Qualification.Update)
			qualifications.DELETE("/:id", ctrl.Qualification.Delete)
		}

		teaching := authenticated.Group("/teaching")
		{
			teaching.POST("", ctrl.Teaching.CreateExperience)
			teaching.GET("", ctrl.Teaching.ListExperiences)
			teaching.PUT("/:id", ctrl.Teaching.UpdateExperience)
			teaching.DELETE("/:id", ctrl.Teaching.DeleteExperience)

			teaching.POST("/subjects", ctrl.Teaching.CreateSubject)
			teaching.GET("/subjects", ctrl.Teaching.ListSubjects)
			teaching.PUT("/subjects/:id", ctrl.Teaching.UpdateSubject)
			teaching.DELETE("/subjects/:id", ctrl.Teaching.DeleteSubject)
		}

		events := authenticated.Group("/events")
		{
			events.POST("", ctrl.Event.Create)
			events.GET("", ctrl.Event.List)
			events.PUT("/:id", ctrl.Event.Update)
			events.DELETE("/:id", ctrl.Event.Delete)

			events.GET("/types", ctrl.Event.ListTypes)
			events.POST("/types", ctrl.Event.CreateType)
		}

		outreach := authenticated.Group("/outreach")
		{
			outreach.POST("", ctrl.Outreach.Create)
			outreach.GET("", ctrl.Outreach.List)
			outreach.PUT("/:id", ctrl.Outreach.Update)
			outreach.DELETE("/:id", ctrl.Outreach.Delete)
		}

		citation := authenticated.Group("/citation")
		{
			citation.POST("", ctrl.Citation.Create)
			citation.GET("", ctrl.Citation.List)
			citation.PUT("/:id", ctrl.Citation.Update)
			citation.DELETE("/:id", ctrl.Citation.Delete)
		}

		authenticated.GET("/dashboard/dashboard-stats/:facultyId", ctrl.Dashboard.GetStats)

		filter := authenticated.Group("/filter")
		{
			filter.GET("", ctrl.Export.ExportFiltered)
			filter.GET("/export/name", ctrl.Export.ExportByName)
		}

		// --- Admin-only routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/pending", ctrl.Admin.ListPending)
			admin.PUT("/approve/:facultyId", ctrl.Admin.Approve)
			admin.DELETE("/reject/:facultyId", ctrl.Admin.Reject)
		}
	}
}
