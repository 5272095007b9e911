package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	FacultyRepository    *FacultyRepository
	CourseRepository     *CourseRepository
	StudentRepository    *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		CourseRepository:     NewCourseRepository(db),
		StudentRepository:    NewStudentRepository(db),
	}
}
