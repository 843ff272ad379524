package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ardiansetya/coursehub/internal/app/models/dto"
	"github.com/ardiansetya/coursehub/internal/app/services"
	"github.com/ardiansetya/coursehub/internal/middleware"
)

// CourseController handles course, category and roster endpoints
type CourseController struct {
	courseService     *services.CourseService
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(
	courseService *services.CourseService,
	enrollmentService *services.EnrollmentService,
	logger zerolog.Logger,
) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// GetCourses lists the authenticated manager's courses
func (c *CourseController) GetCourses(ctx *gin.Context) {
	managerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	courses, err := c.courseService.GetCourses(ctx.Request.Context(), managerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get courses success", courses))
}

// GetCourseByID returns a course with its content listing. Passing
// ?preview=true includes video ids and text bodies.
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	preview := ctx.Query("preview") == "true"

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id, preview)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get course success", course))
}

// CreateCourse creates a course from a multipart form with an optional
// thumbnail upload
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	managerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.MutateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid course payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	thumbnail, _ := ctx.FormFile("thumbnail")

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), managerID, &req, thumbnail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Create course success", course))
}

// UpdateCourse updates a course from a multipart form
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	managerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	var req dto.MutateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid course payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	thumbnail, _ := ctx.FormFile("thumbnail")

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, managerID, &req, thumbnail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Update course success", course))
}

// DeleteCourse deletes a course and its thumbnail asset
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Delete course success"))
}

// GetCategories lists all course categories
func (c *CourseController) GetCategories(ctx *gin.Context) {
	categories, err := c.courseService.GetCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get categories success", categories))
}

// GetCourseRoster lists the students enrolled in a course
func (c *CourseController) GetCourseRoster(ctx *gin.Context) {
	courseID, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	roster, err := c.enrollmentService.GetCourseRoster(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Get course students success", roster))
}

// EnrollStudent adds a student to a course roster
func (c *CourseController) EnrollStudent(ctx *gin.Context) {
	courseID, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enrollment payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.enrollmentService.Enroll(ctx.Request.Context(), courseID, req.StudentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Add student to course success"))
}

// UnenrollStudent removes a student from a course roster
func (c *CourseController) UnenrollStudent(ctx *gin.Context) {
	courseID, err := pathID(ctx)
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enrollment payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.enrollmentService.Unenroll(ctx.Request.Context(), courseID, req.StudentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Remove student from course success"))
}

// pathID parses the :id path parameter
func pathID(ctx *gin.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
