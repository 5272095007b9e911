package dto

import (
	"time"

	"github.com/baris/collegehub/internal/app/models"
)

// CreateFacultyRequest carries a new faculty member. The facultyId business
// identifier is generated server-side and never accepted from the caller.
type CreateFacultyRequest struct {
	FirstName      string          `json:"firstName" binding:"required,max=50"`
	LastName       string          `json:"lastName" binding:"required,max=50"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required,min=6"`
	Phone          string          `json:"phone" binding:"required,len=10,numeric"`
	DateOfBirth    time.Time       `json:"dateOfBirth" binding:"required"`
	Gender         string          `json:"gender" binding:"required,oneof=Male Female Other"`
	Address        *AddressRequest `json:"address" binding:"omitempty"`
	Department     string          `json:"department" binding:"required"`
	Qualification  string          `json:"qualification" binding:"required,oneof=PhD Masters Bachelors Diploma"`
	Specialization string          `json:"specialization" binding:"required"`
	Experience     *int            `json:"experience" binding:"required,min=0"`
	Designation    string          `json:"designation" binding:"required,oneof=Professor 'Associate Professor' 'Assistant Professor' Lecturer HOD"`
	Salary         *float64        `json:"salary" binding:"required,min=0"`
	JoiningDate    *time.Time      `json:"joiningDate" binding:"omitempty"`
	Status         string          `json:"status" binding:"omitempty,oneof=Active Inactive 'On Leave' Retired"`
	Courses        []string        `json:"courses" binding:"omitempty"`
	ProfileImage   string          `json:"profileImage" binding:"omitempty"`
}

// UpdateFacultyRequest is a partial patch. Email, password and facultyId are
// stripped by construction.
type UpdateFacultyRequest struct {
	FirstName      *string         `json:"firstName" binding:"omitempty,max=50"`
	LastName       *string         `json:"lastName" binding:"omitempty,max=50"`
	Phone          *string         `json:"phone" binding:"omitempty,len=10,numeric"`
	DateOfBirth    *time.Time      `json:"dateOfBirth" binding:"omitempty"`
	Gender         *string         `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address        *AddressRequest `json:"address" binding:"omitempty"`
	Department     *string         `json:"department" binding:"omitempty"`
	Qualification  *string         `json:"qualification" binding:"omitempty,oneof=PhD Masters Bachelors Diploma"`
	Specialization *string         `json:"specialization" binding:"omitempty"`
	Experience     *int            `json:"experience" binding:"omitempty,min=0"`
	Designation    *string         `json:"designation" binding:"omitempty,oneof=Professor 'Associate Professor' 'Assistant Professor' Lecturer HOD"`
	Salary         *float64        `json:"salary" binding:"omitempty,min=0"`
	Status         *string         `json:"status" binding:"omitempty,oneof=Active Inactive 'On Leave' Retired"`
	Courses        []string        `json:"courses" binding:"omitempty"`
	ProfileImage   *string         `json:"profileImage" binding:"omitempty"`
}

// FacultyListResponse is the data payload of the faculty list endpoint
type FacultyListResponse struct {
	Faculty    []*models.Faculty `json:"faculty"`
	Pagination PaginationInfo    `json:"pagination"`
}
