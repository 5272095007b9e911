package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseType enumeration
type CourseType string

const (
	CourseTypeUndergraduate CourseType = "Undergraduate"
	CourseTypePostgraduate  CourseType = "Postgraduate"
	CourseTypeDiploma       CourseType = "Diploma"
	CourseTypeCertificate   CourseType = "Certificate"
)

// Enrollment status buckets derived from current enrollment vs capacity
const (
	EnrollmentFull       = "Full"
	EnrollmentAlmostFull = "Almost Full"
	EnrollmentHalfFull   = "Half Full"
	EnrollmentAvailable  = "Available"
)

// Course represents a course document
type Course struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CourseCode        string               `bson:"courseCode" json:"courseCode"`
	CourseName        string               `bson:"courseName" json:"courseName"`
	Description       string               `bson:"description,omitempty" json:"description,omitempty"`
	DepartmentID      primitive.ObjectID   `bson:"department" json:"-"`
	Department        *DepartmentSummary   `bson:"-" json:"department,omitempty"`
	Credits           int                  `bson:"credits" json:"credits"`
	Duration          int                  `bson:"duration" json:"duration"`
	Type              CourseType           `bson:"type" json:"type"`
	FacultyIDs        []primitive.ObjectID `bson:"faculty,omitempty" json:"-"`
	Faculty           []FacultySummary     `bson:"-" json:"faculty,omitempty"`
	Prerequisites     []string             `bson:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Semester          int                  `bson:"semester" json:"semester"`
	MaxStudents       int                  `bson:"maxStudents" json:"maxStudents"`
	CurrentEnrollment int                  `bson:"currentEnrollment" json:"currentEnrollment"`
	Fee               float64              `bson:"fee" json:"fee"`
	IsActive          bool                 `bson:"isActive" json:"isActive"`
	StartDate         time.Time            `bson:"startDate" json:"startDate"`
	EndDate           time.Time            `bson:"endDate,omitempty" json:"endDate,omitempty"`

	// Reverse lookup of enrolled students, filled on detail reads only
	Students []StudentSummary `bson:"-" json:"students,omitempty"`

	// Derived, filled by ComputeDerived
	EnrollmentStatus string `bson:"-" json:"enrollmentStatus,omitempty"`
	AvailableSeats   int    `bson:"-" json:"availableSeats"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ComputeDerived fills the virtual fields derived from stored ones
func (c *Course) ComputeDerived() {
	c.AvailableSeats = c.MaxStudents - c.CurrentEnrollment
	c.EnrollmentStatus = enrollmentBucket(c.CurrentEnrollment, c.MaxStudents)
}

// enrollmentBucket maps an enrollment ratio to its status bucket
func enrollmentBucket(current, max int) string {
	if max <= 0 {
		return EnrollmentAvailable
	}

	percentage := float64(current) / float64(max) * 100
	switch {
	case percentage >= 100:
		return EnrollmentFull
	case percentage >= 80:
		return EnrollmentAlmostFull
	case percentage >= 50:
		return EnrollmentHalfFull
	default:
		return EnrollmentAvailable
	}
}

// Summary returns the embedded shape other documents resolve this course to
func (c *Course) Summary() *CourseSummary {
	return &CourseSummary{
		ID:         c.ID,
		CourseName: c.CourseName,
		CourseCode: c.CourseCode,
	}
}
