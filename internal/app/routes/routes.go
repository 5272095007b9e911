package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/baris/collegehub/internal/app/controllers"
	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/middleware"
)

// SetupRouter configures all application routes. Every route except the two
// logins, the health check and the swagger UI sits behind authentication;
// mutations additionally require the faculty role.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	facultyController *controllers.FacultyController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
	startedAt time.Time,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Uptime:    time.Since(startedAt).Seconds(),
		}, "Service healthy", http.StatusOK))
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/student/login", authController.StudentLogin)
		auth.POST("/faculty/login", authController.FacultyLogin)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.Authenticate())

	authProfile := authenticated.Group("/auth")
	{
		authProfile.GET("/profile", authController.GetProfile)
		authProfile.PUT("/profile", authController.UpdateProfile)
	}

	facultyOnly := authMiddleware.RequireRole(models.UserTypeFaculty)

	departments := authenticated.Group("/departments")
	{
		departments.GET("", departmentController.GetDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.GET("/:id/stats", departmentController.GetDepartmentStats)
		departments.GET("/:id/faculty", departmentController.GetDepartmentFaculty)
		departments.GET("/:id/students", departmentController.GetDepartmentStudents)
		departments.GET("/:id/courses", departmentController.GetDepartmentCourses)

		departments.POST("", facultyOnly, departmentController.CreateDepartment)
		departments.PUT("/:id", facultyOnly, departmentController.UpdateDepartment)
		departments.DELETE("/:id", facultyOnly, departmentController.DeleteDepartment)
	}

	faculty := authenticated.Group("/faculty")
	{
		faculty.GET("", facultyController.GetFaculty)
		faculty.GET("/:id", facultyController.GetFacultyByID)
		faculty.GET("/department/:departmentId", facultyController.GetFacultyByDepartment)

		faculty.POST("", facultyOnly, facultyController.CreateFaculty)
		faculty.PUT("/:id", facultyOnly, facultyController.UpdateFaculty)
		faculty.DELETE("/:id", facultyOnly, facultyController.DeleteFaculty)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/department/:departmentId", courseController.GetCoursesByDepartment)

		courses.POST("", facultyOnly, courseController.CreateCourse)
		courses.PUT("/:id", facultyOnly, courseController.UpdateCourse)
		courses.DELETE("/:id", facultyOnly, courseController.DeleteCourse)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/department/:departmentId", studentController.GetStudentsByDepartment)

		students.POST("", facultyOnly, studentController.CreateStudent)
		students.PUT("/:id", facultyOnly, studentController.UpdateStudent)
		students.DELETE("/:id", facultyOnly, studentController.DeleteStudent)
	}
}
