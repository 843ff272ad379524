package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/services"
	"github.com/ardiansetya/coursehub/internal/middleware"
)

// StudentController handles student management and the student course list
type StudentController struct {
	studentService    *services.StudentService
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService *services.StudentService,
	enrollmentService *services.EnrollmentService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService:    studentService,
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// GetStudents lists the authenticated manager's students
func (c *StudentController) GetStudents(ctx *gin.Context) {
	managerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	students, err := c.studentService.GetStudents(ctx.Request.Context(), managerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get students success", students))
}

// GetStudent returns a single student's editable fields
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get student success", student))
}

// CreateStudent registers a student account from a multipart form with an
// optional photo upload
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	managerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.MutateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	photo, _ := ctx.FormFile("photo")

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), managerID, &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Create student success", student))
}

// UpdateStudent updates a student from a multipart form
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	var req dto.MutateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	photo, _ := ctx.FormFile("photo")

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Update student success", student))
}

// DeleteStudent removes a student account
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Delete student success"))
}

// GetMyCourses lists the authenticated student's enrolled courses
func (c *StudentController) GetMyCourses(ctx *gin.Context) {
	studentID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	courses, err := c.enrollmentService.GetStudentCourses(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get student courses success", courses))
}
