package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department represents an academic department document.
// HeadID stores the raw reference; Head carries the resolved summary on read
// paths and is never persisted.
type Department struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Code        string              `bson:"code" json:"code"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	HeadID      *primitive.ObjectID `bson:"head,omitempty" json:"-"`
	Head        *FacultySummary     `bson:"-" json:"head,omitempty"`
	Established time.Time           `bson:"established" json:"established"`
	IsActive    bool                `bson:"isActive" json:"isActive"`

	// Derived counts, computed by counting referencing documents
	FacultyCount int64 `bson:"-" json:"facultyCount"`
	StudentCount int64 `bson:"-" json:"studentCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Summary returns the embedded shape other documents resolve this department to
func (d *Department) Summary() *DepartmentSummary {
	return &DepartmentSummary{
		ID:   d.ID,
		Name: d.Name,
		Code: d.Code,
	}
}

// DepartmentStats aggregates per-department counts
type DepartmentStats struct {
	Department           string       `json:"department"`
	TotalFaculty         int64        `json:"totalFaculty"`
	TotalStudents        int64        `json:"totalStudents"`
	ActiveCourses        int64        `json:"activeCourses"`
	FacultyByDesignation []GroupCount `json:"facultyByDesignation"`
	StudentsBySemester   []GroupCount `json:"studentsBySemester"`
}

// GroupCount is a single bucket of an aggregation grouping
type GroupCount struct {
	Group interface{} `bson:"_id" json:"group"`
	Count int64       `bson:"count" json:"count"`
}
