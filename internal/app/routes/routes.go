package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardiansetya/coursehub/internal/app/controllers"
	"github.com/ardiansetya/coursehub/internal/app/models"
	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	paymentController *controllers.PaymentController,
	courseController *controllers.CourseController,
	contentController *controllers.ContentController,
	studentController *controllers.StudentController,
	overviewController *controllers.OverviewController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("OK"))
	})

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.SignUp)
		auth.POST("/signin", authController.SignIn)
	}

	// Gateway webhook, authenticated by the gateway's own channel
	api.POST("/payments/callback", paymentController.HandleCallback)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	managerOnly := authMiddleware.RoleRequired(string(models.RoleManager))

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/contents/:id", contentController.GetContent)
		courses.GET("/students/:id", courseController.GetCourseRoster)

		coursesManager := courses.Group("")
		coursesManager.Use(managerOnly)
		{
			coursesManager.POST("", courseController.CreateCourse)
			coursesManager.PUT("/:id", courseController.UpdateCourse)
			coursesManager.DELETE("/:id", courseController.DeleteCourse)

			coursesManager.POST("/contents", contentController.CreateContent)
			coursesManager.PUT("/contents/:id", contentController.UpdateContent)
			coursesManager.DELETE("/contents/:id", contentController.DeleteContent)

			coursesManager.POST("/students/:id", courseController.EnrollStudent)
			// The original client removes a student with PUT, kept as is
			coursesManager.PUT("/students/:id", courseController.UnenrollStudent)
		}
	}

	authenticated.GET("/categories", courseController.GetCategories)

	students := authenticated.Group("/students")
	{
		students.GET("/courses", studentController.GetMyCourses)

		studentsManager := students.Group("")
		studentsManager.Use(managerOnly)
		{
			studentsManager.GET("", studentController.GetStudents)
			studentsManager.GET("/:id", studentController.GetStudent)
			studentsManager.POST("", studentController.CreateStudent)
			studentsManager.PUT("/:id", studentController.UpdateStudent)
			studentsManager.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	authenticated.GET("/overview", managerOnly, overviewController.GetOverview)
}
