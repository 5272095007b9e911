package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/app/services"
	"github.com/baris/collegehub/internal/middleware"
	"github.com/baris/collegehub/internal/pkg/helpers"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course. The course code is derived when omitted. Faculty role required.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate code"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course created successfully", http.StatusCreated))
}

// GetCourses lists courses with pagination and optional filters
// @Summary List courses
// @Description Retrieves a paginated course list. Only active courses are returned unless isActive says otherwise.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param department query string false "Filter by department ID"
// @Param type query string false "Filter by course type"
// @Param semester query int false "Filter by semester"
// @Param isActive query bool false "Filter by active flag (defaults to true)"
// @Param search query string false "Search in name, code and description"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	// Inactive courses stay hidden unless the client asks for them
	isActive := true
	filter := repositories.CourseListFilter{
		Type:     ctx.Query("type"),
		Search:   ctx.Query("search"),
		IsActive: &isActive,
	}
	if isActiveStr := ctx.Query("isActive"); isActiveStr != "" {
		if parsed, err := strconv.ParseBool(isActiveStr); err == nil {
			isActive = parsed
		}
	}
	if departmentHex := ctx.Query("department"); departmentHex != "" {
		if departmentID, err := primitive.ObjectIDFromHex(departmentHex); err == nil {
			filter.DepartmentID = &departmentID
		}
	}
	if semesterStr := ctx.Query("semester"); semesterStr != "" {
		if semester, err := strconv.Atoi(semesterStr); err == nil {
			filter.Semester = &semester
		}
	}

	courses, total, err := c.courseService.List(ctx.Request.Context(), filter, skip, lim)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.CourseListResponse{
		Courses:    courses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Courses retrieved successfully", http.StatusOK))
}

// GetCourseByID retrieves a single course
// @Summary Get course by ID
// @Description Retrieves a course with department, faculty and enrolled students resolved
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course retrieved successfully", http.StatusOK))
}

// UpdateCourse applies a partial update
// @Summary Update course
// @Description Updates the provided fields. The course code never changes here. Faculty role required.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course updated successfully", http.StatusOK))
}

// DeleteCourse deactivates a course
// @Summary Delete course
// @Description Marks a course inactive. Enrollment references survive. Faculty role required.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course deleted successfully", http.StatusOK))
}

// GetCoursesByDepartment lists a department's active courses
// @Summary List courses by department
// @Description Retrieves a department's active courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /courses/department/{departmentId} [get]
func (c *CourseController) GetCoursesByDepartment(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	courses, total, err := c.courseService.ListByDepartment(ctx.Request.Context(), ctx.Param("departmentId"), skip, lim)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.CourseListResponse{
		Courses:    courses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Courses retrieved successfully", http.StatusOK))
}
