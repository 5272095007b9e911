package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/app/services"
	"github.com/baris/collegehub/internal/middleware"
	"github.com/baris/collegehub/internal/pkg/helpers"
)

// FacultyController handles faculty-related endpoints
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateFaculty registers a new faculty member
// @Summary Create a new faculty member
// @Description Registers a faculty member. The facultyId is generated server-side. Faculty role required.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Faculty created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate email"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	faculty, err := c.facultyService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(faculty, "Faculty created successfully", http.StatusCreated))
}

// GetFaculty lists faculty members with pagination and optional filters
// @Summary List faculty
// @Description Retrieves a paginated faculty list with optional filters
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param department query string false "Filter by department ID"
// @Param designation query string false "Filter by designation"
// @Param status query string false "Filter by status"
// @Param search query string false "Search in name, email and facultyId"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyListResponse} "Faculty retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /faculty [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	filter := repositories.FacultyListFilter{
		Designation: ctx.Query("designation"),
		Status:      ctx.Query("status"),
		Search:      ctx.Query("search"),
	}
	if departmentHex := ctx.Query("department"); departmentHex != "" {
		if departmentID, err := primitive.ObjectIDFromHex(departmentHex); err == nil {
			filter.DepartmentID = &departmentID
		}
	}

	faculty, total, err := c.facultyService.List(ctx.Request.Context(), filter, skip, lim)
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

// GetFacultyByID retrieves a single faculty member
// @Summary Get faculty by ID
// @Description Retrieves a faculty member with department and courses resolved
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid faculty ID"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.facultyService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty retrieved successfully", http.StatusOK))
}

// UpdateFaculty applies a partial update
// @Summary Update faculty
// @Description Updates the provided fields. Email, password and facultyId never change here. Faculty role required.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	faculty, err := c.facultyService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty updated successfully", http.StatusOK))
}

// DeleteFaculty removes a faculty member permanently
// @Summary Delete faculty
// @Description Removes the faculty document. This delete is permanent. Faculty role required.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse "Faculty deleted successfully"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Faculty deleted successfully", http.StatusOK))
}

// GetFacultyByDepartment lists a department's faculty members
// @Summary List faculty by department
// @Description Retrieves a department's faculty members ordered by first name
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyListResponse} "Faculty retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /faculty/department/{departmentId} [get]
func (c *FacultyController) GetFacultyByDepartment(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	faculty, total, err := c.facultyService.ListByDepartment(ctx.Request.Context(), ctx.Param("departmentId"), skip, lim)
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
