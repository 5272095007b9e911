package dto

import (
	"time"

	"github.com/baris/collegehub/internal/app/models"
)

// CreateStudentRequest carries a new student registration. The studentId is
// never accepted from the client; it is generated server side.
type CreateStudentRequest struct {
	FirstName     string           `json:"firstName" binding:"required,max=50"`
	LastName      string           `json:"lastName" binding:"required,max=50"`
	Email         string           `json:"email" binding:"required,email"`
	Password      string           `json:"password" binding:"required,min=6"`
	Phone         string           `json:"phone" binding:"required,len=10,numeric"`
	DateOfBirth   time.Time        `json:"dateOfBirth" binding:"required"`
	Gender        string           `json:"gender" binding:"required,oneof=Male Female Other"`
	Address       *AddressRequest  `json:"address" binding:"omitempty"`
	Guardian      *GuardianRequest `json:"guardian" binding:"omitempty"`
	Course        string           `json:"course" binding:"required"`
	Department    string           `json:"department" binding:"required"`
	Semester      *int             `json:"semester" binding:"required,min=1,max=8"`
	Status        string           `json:"status" binding:"omitempty,oneof=Active Inactive Graduated Dropped"`
	AdmissionDate *time.Time       `json:"admissionDate" binding:"omitempty"`
}

// UpdateStudentRequest is a partial patch. Email, password and studentId are
// stripped by construction.
type UpdateStudentRequest struct {
	FirstName     *string          `json:"firstName" binding:"omitempty,max=50"`
	LastName      *string          `json:"lastName" binding:"omitempty,max=50"`
	Phone         *string          `json:"phone" binding:"omitempty,len=10,numeric"`
	DateOfBirth   *time.Time       `json:"dateOfBirth" binding:"omitempty"`
	Gender        *string          `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address       *AddressRequest  `json:"address" binding:"omitempty"`
	Guardian      *GuardianRequest `json:"guardian" binding:"omitempty"`
	Course        *string          `json:"course" binding:"omitempty"`
	Department    *string          `json:"department" binding:"omitempty"`
	Semester      *int             `json:"semester" binding:"omitempty,min=1,max=8"`
	Status        *string          `json:"status" binding:"omitempty,oneof=Active Inactive Graduated Dropped"`
	AdmissionDate *time.Time       `json:"admissionDate" binding:"omitempty"`
}

// StudentListResponse is the data payload of the student list endpoint
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
