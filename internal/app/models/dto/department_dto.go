package dto

import (
	"time"

	"github.com/baris/collegehub/internal/app/models"
)

// CreateDepartmentRequest carries a new department. Head is a faculty id in
// hex form; Established defaults to now when omitted.
type CreateDepartmentRequest struct {
	Name        string     `json:"name" binding:"required"`
	Code        string     `json:"code" binding:"required,max=10"`
	Description string     `json:"description" binding:"omitempty"`
	Head        string     `json:"head" binding:"omitempty"`
	Established *time.Time `json:"established" binding:"omitempty"`
}

// UpdateDepartmentRequest is a partial patch; nil fields are left untouched
type UpdateDepartmentRequest struct {
	Name        *string    `json:"name" binding:"omitempty"`
	Code        *string    `json:"code" binding:"omitempty,max=10"`
	Description *string    `json:"description" binding:"omitempty"`
	Head        *string    `json:"head" binding:"omitempty"`
	Established *time.Time `json:"established" binding:"omitempty"`
	IsActive    *bool      `json:"isActive" binding:"omitempty"`
}

// DepartmentListResponse is the data payload of the department list endpoint
type DepartmentListResponse struct {
	Departments []*models.Department `json:"departments"`
	Pagination  PaginationInfo       `json:"pagination"`
}
