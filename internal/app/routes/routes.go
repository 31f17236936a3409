package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/controllers"
	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	jobController *controllers.JobController,
	eventController *controllers.EventController,
	postController *controllers.PostController,
	mentorController *controllers.MentorController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")
	requireAuth := authMiddleware.JWTAuth()

	api.GET("/health", healthController.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/profile", requireAuth, authController.Profile)
	}

	users := api.Group("/users")
	{
		// Anonymous quick-match. A valid token only excludes the caller
		// from the candidate pool.
		users.POST("/ai-match", authMiddleware.OptionalAuth(), userController.QuickMatch)
		users.GET("/matches", requireAuth, userController.Matches)
		// Legacy clients send connect, apply and rsvp as GET
		users.POST("/connect/:id", requireAuth, userController.Connect)
		users.GET("/connect/:id", requireAuth, userController.Connect)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobController.List)
		jobs.POST("", requireAuth, authMiddleware.RoleRequired(models.RoleAlumni), jobController.Create)
		jobs.POST("/:id/apply", requireAuth, jobController.Apply)
		jobs.GET("/:id/apply", requireAuth, jobController.Apply)
		jobs.GET("/my-jobs", requireAuth, jobController.Mine)
	}

	events := api.Group("/events")
	{
		events.GET("", eventController.List)
		events.POST("", requireAuth, authMiddleware.RoleRequired(models.RoleAlumni, models.RoleAdmin), eventController.Create)
		events.POST("/:id/rsvp", requireAuth, eventController.RSVP)
		events.GET("/:id/rsvp", requireAuth, eventController.RSVP)
		events.GET("/my-events", requireAuth, eventController.Mine)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", postController.List)
		posts.POST("", requireAuth, postController.Create)
		posts.POST("/:id/like", requireAuth, postController.Like)
		posts.POST("/:id/comment", requireAuth, postController.Comment)
		posts.GET("/my-posts", requireAuth, postController.Mine)
	}

	mentor := api.Group("/mentor")
	{
		mentor.GET("/mentors", mentorController.List)
		mentor.POST("/book", requireAuth, mentorController.Book)
		mentor.GET("/bookings", requireAuth, mentorController.Bookings)
		mentor.PUT("/:id/status", requireAuth, mentorController.UpdateBookingStatus)
	}

	admin := api.Group("/admin", requireAuth, authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/stats", adminController.Stats)
		admin.GET("/export", adminController.Export)
	}
}
