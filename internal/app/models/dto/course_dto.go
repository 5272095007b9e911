package dto

import (
	"time"

	"github.com/baris/collegehub/internal/app/models"
)

// CreateCourseRequest carries a new course. CourseCode is optional; when
// omitted it is derived from the department code and the course name.
type CreateCourseRequest struct {
	CourseCode    string     `json:"courseCode" binding:"omitempty,max=10"`
	CourseName    string     `json:"courseName" binding:"required,max=100"`
	Description   string     `json:"description" binding:"omitempty,max=500"`
	Department    string     `json:"department" binding:"required"`
	Credits       *int       `json:"credits" binding:"required,min=1,max=10"`
	Duration      *int       `json:"duration" binding:"required,min=1,max=6"`
	Type          string     `json:"type" binding:"required,oneof=Undergraduate Postgraduate Diploma Certificate"`
	Faculty       []string   `json:"faculty" binding:"omitempty"`
	Prerequisites []string   `json:"prerequisites" binding:"omitempty"`
	Semester      *int       `json:"semester" binding:"required,min=1,max=8"`
	MaxStudents   *int       `json:"maxStudents" binding:"required,min=1"`
	Fee           *float64   `json:"fee" binding:"required,min=0"`
	StartDate     time.Time  `json:"startDate" binding:"required"`
	EndDate       *time.Time `json:"endDate" binding:"omitempty"`
}

// UpdateCourseRequest is a partial patch; the course code is stripped by
// construction.
type UpdateCourseRequest struct {
	CourseName    *string    `json:"courseName" binding:"omitempty,max=100"`
	Description   *string    `json:"description" binding:"omitempty,max=500"`
	Department    *string    `json:"department" binding:"omitempty"`
	Credits       *int       `json:"credits" binding:"omitempty,min=1,max=10"`
	Duration      *int       `json:"duration" binding:"omitempty,min=1,max=6"`
	Type          *string    `json:"type" binding:"omitempty,oneof=Undergraduate Postgraduate Diploma Certificate"`
	Faculty       []string   `json:"faculty" binding:"omitempty"`
	Prerequisites []string   `json:"prerequisites" binding:"omitempty"`
	Semester      *int       `json:"semester" binding:"omitempty,min=1,max=8"`
	MaxStudents   *int       `json:"maxStudents" binding:"omitempty,min=1"`
	Fee           *float64   `json:"fee" binding:"omitempty,min=0"`
	IsActive      *bool      `json:"isActive" binding:"omitempty"`
	StartDate     *time.Time `json:"startDate" binding:"omitempty"`
	EndDate       *time.Time `json:"endDate" binding:"omitempty"`
}

// CourseListResponse is the data payload of the course list endpoint
type CourseListResponse struct {
	Courses    []*models.Course `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}
