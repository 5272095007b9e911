package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/pkg/apperrors"
	"github.com/baris/collegehub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	DepartmentService *DepartmentService
	FacultyService    *FacultyService
	CourseService     *CourseService
	StudentService    *StudentService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(repos.FacultyRepository, repos.StudentRepository,
			repos.DepartmentRepository, repos.CourseRepository, jwtService),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository,
			repos.FacultyRepository, repos.CourseRepository, repos.StudentRepository),
		FacultyService: NewFacultyService(repos.FacultyRepository,
			repos.DepartmentRepository, repos.CourseRepository),
		CourseService: NewCourseService(repos.CourseRepository,
			repos.DepartmentRepository, repos.FacultyRepository, repos.StudentRepository),
		StudentService: NewStudentService(repos.StudentRepository,
			repos.DepartmentRepository, repos.CourseRepository),
	}
}

// parseObjectID converts a client-supplied hex ID, returning a descriptive
// bad request error when the format is wrong.
func parseObjectID(hex, label string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s ID format", label))
	}
	return id, nil
}
