package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/app/services"
	"github.com/baris/collegehub/internal/middleware"
	"github.com/baris/collegehub/internal/pkg/helpers"
)

// DepartmentController handles department-related endpoints
type DepartmentController struct {
	departmentService *services.DepartmentService
	facultyService    *services.FacultyService
	courseService     *services.CourseService
	studentService    *services.StudentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(
	departmentService *services.DepartmentService,
	facultyService *services.FacultyService,
	courseService *services.CourseService,
	studentService *services.StudentService,
) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		facultyService:    facultyService,
		courseService:     courseService,
		studentService:    studentService,
	}
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Description Creates a new department. Faculty role required.
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department} "Department created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate name/code"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department, err := c.departmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(department, "Department created successfully", http.StatusCreated))
}

// GetDepartments lists departments with pagination and optional filters
// @Summary List departments
// @Description Retrieves a paginated department list. isActive and search filters are optional.
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param isActive query bool false "Filter by active flag"
// @Param search query string false "Search in name, code and description"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Departments retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /departments [get]
func (c *DepartmentController) GetDepartments(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	filter := repositories.DepartmentListFilter{
		Search: ctx.Query("search"),
	}
	if isActiveStr := ctx.Query("isActive"); isActiveStr != "" {
		if isActive, err := strconv.ParseBool(isActiveStr); err == nil {
			filter.IsActive = &isActive
		}
	}

	departments, total, err := c.departmentService.List(ctx.Request.Context(), filter, skip, lim)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.DepartmentListResponse{
		Departments: departments,
		Pagination:  helpers.NewPaginationInfo(total, page, limit),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Departments retrieved successfully", http.StatusOK))
}

// GetDepartmentByID retrieves a single department
// @Summary Get department by ID
// @Description Retrieves a department with its head resolved and counts computed
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid department ID"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	department, err := c.departmentService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department retrieved successfully", http.StatusOK))
}

// UpdateDepartment applies a partial update
// @Summary Update department
// @Description Updates the provided department fields. Faculty role required.
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department, err := c.departmentService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department updated successfully", http.StatusOK))
}

// DeleteDepartment deactivates a department
// @Summary Delete department
// @Description Marks a department inactive. The document survives. Faculty role required.
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse "Department deleted successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	if err := c.departmentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Department deleted successfully", http.StatusOK))
}

// GetDepartmentStats returns per-department aggregates
// @Summary Department statistics
// @Description Returns faculty-by-designation, students-by-semester and active course counts
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.DepartmentStats} "Statistics retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id}/stats [get]
func (c *DepartmentController) GetDepartmentStats(ctx *gin.Context) {
	stats, err := c.departmentService.Stats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, "Statistics retrieved successfully", http.StatusOK))
}

// GetDepartmentFaculty lists a department's faculty members
// @Summary List department faculty
// @Description Retrieves a department's faculty members ordered by first name
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyListResponse} "Faculty retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id}/faculty [get]
func (c *DepartmentController) GetDepartmentFaculty(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	faculty, total, err := c.facultyService.ListByDepartment(ctx.Request.Context(), ctx.Param("id"), skip, lim)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.FacultyListResponse{
		Faculty:    faculty,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Faculty retrieved successfully", http.StatusOK))
}

// GetDepartmentStudents lists a department's students
// @Summary List department students
// @Description Retrieves a department's students ordered by first name
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id}/students [get]
func (c *DepartmentController) GetDepartmentStudents(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	students, total, err := c.studentService.ListByDepartment(ctx.Request.Context(), ctx.Param("id"), skip, lim)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StudentListResponse{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Students retrieved successfully", http.StatusOK))
}

// GetDepartmentCourses lists a department's active courses
// @Summary List department courses
// @Description Retrieves a department's active courses
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /departments/{id}/courses [get]
func (c *DepartmentController) GetDepartmentCourses(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	courses, total, err := c.courseService.ListByDepartment(ctx.Request.Context(), ctx.Param("id"), skip, lim)
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
