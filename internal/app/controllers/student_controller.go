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

// StudentController handles student-related endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent registers a new student
// @Summary Create a new student
// @Description Registers a student. The studentId is generated server-side. Faculty role required.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate email"
// @Failure 404 {object} dto.APIResponse "Department or course not found"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student created successfully", http.StatusCreated))
}

// GetStudents lists students with pagination and optional filters
// @Summary List students
// @Description Retrieves a paginated student list with optional filters
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param department query string false "Filter by department ID"
// @Param course query string false "Filter by course ID"
// @Param semester query int false "Filter by semester"
// @Param status query string false "Filter by status"
// @Param search query string false "Search in name, email and studentId"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	filter := repositories.StudentListFilter{
		Status: ctx.Query("status"),
		Search: ctx.Query("search"),
	}
	if departmentHex := ctx.Query("department"); departmentHex != "" {
		if departmentID, err := primitive.ObjectIDFromHex(departmentHex); err == nil {
			filter.DepartmentID = &departmentID
		}
	}
	if courseHex := ctx.Query("course"); courseHex != "" {
		if courseID, err := primitive.ObjectIDFromHex(courseHex); err == nil {
			filter.CourseID = &courseID
		}
	}
	if semesterStr := ctx.Query("semester"); semesterStr != "" {
		if semester, err := strconv.Atoi(semesterStr); err == nil {
			filter.Semester = &semester
		}
	}

	students, total, err := c.studentService.List(ctx.Request.Context(), filter, skip, lim)
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

// GetStudentByID retrieves a single student
// @Summary Get student by ID
// @Description Retrieves a student with department and course resolved
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid student ID"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student retrieved successfully", http.StatusOK))
}

// UpdateStudent applies a partial update
// @Summary Update student
// @Description Updates the provided fields. Email, password and studentId never change here. Faculty role required.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated successfully", http.StatusOK))
}

// DeleteStudent removes a student permanently
// @Summary Delete student
// @Description Removes the student document. This delete is permanent. Faculty role required.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted successfully", http.StatusOK))
}

// GetStudentsByDepartment lists a department's students
// @Summary List students by department
// @Description Retrieves a department's students ordered by first name
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /students/department/{departmentId} [get]
func (c *StudentController) GetStudentsByDepartment(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	skip, lim := helpers.CalculateSkipLimit(page, limit)

	students, total, err := c.studentService.ListByDepartment(ctx.Request.Context(), ctx.Param("departmentId"), skip, lim)
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
