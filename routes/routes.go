package routes

import (
	"rp-community-api/controllers"
	"rp-community-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/auth/discord", controllers.DiscordLogin)

			public.GET("/application-types", controllers.GetActiveApplicationTypes)
			public.GET("/application-types/:slug/form", controllers.GetApplicationForm)

			public.GET("/announcements", controllers.GetAnnouncements)
			public.GET("/knowledgebase/:slug", controllers.GetKnowledgebasePage)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Community API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", controllers.GetProfile)
			protected.GET("/dashboard", controllers.GetDashboard)
			protected.GET("/characters", controllers.GetMyCharacters)

			protected.POST("/applications", controllers.SubmitApplication)
			protected.GET("/applications/mine", controllers.GetMyApplications)

			// Admin back-office
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				types := admin.Group("/application-types")
				{
					types.GET("", controllers.GetAllApplicationTypes)
					types.POST("", controllers.CreateApplicationType)
					types.GET("/:id", controllers.GetApplicationType)
					types.PUT("/:id", controllers.UpdateApplicationType)
					types.DELETE("/:id", controllers.DeleteApplicationType)
					types.GET("/:id/questions", controllers.GetQuestions)
				}

				questions := admin.Group("/questions")
				{
					questions.POST("", controllers.CreateQuestion)
					questions.PUT("/reorder", controllers.ReorderQuestions)
					questions.PUT("/:id", controllers.UpdateQuestion)
					questions.DELETE("/:id", controllers.DeleteQuestion)
				}

				applications := admin.Group("/applications")
				{
					applications.GET("", controllers.GetApplications)
					applications.GET("/:id", controllers.GetApplication)
					applications.PATCH("/:id", controllers.UpdateApplicationStatus)
				}

				announcements := admin.Group("/announcements")
				{
					announcements.POST("", controllers.CreateAnnouncement)
					announcements.PUT("/:id", controllers.UpdateAnnouncement)
					announcements.DELETE("/:id", controllers.DeleteAnnouncement)
				}

				knowledgebase := admin.Group("/knowledgebase")
				{
					knowledgebase.GET("", controllers.GetKnowledgebasePages)
					knowledgebase.POST("", controllers.CreateKnowledgebasePage)
					knowledgebase.PUT("/:id", controllers.UpdateKnowledgebasePage)
					knowledgebase.DELETE("/:id", controllers.DeleteKnowledgebasePage)
				}

				admin.GET("/logs", controllers.GetAdminLogs)

				server := admin.Group("/server")
				{
					server.GET("/players", controllers.GetServerPlayers)
					server.GET("/data", controllers.GetServerData)
					server.GET("/items/:name", controllers.GetServerItem)
					server.POST("/action", controllers.PostServerAction)
				}
			}
		}
	}
}
