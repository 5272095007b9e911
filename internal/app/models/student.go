package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentStatus enumeration
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "Active"
	StudentStatusInactive  StudentStatus = "Inactive"
	StudentStatusGraduated StudentStatus = "Graduated"
	StudentStatusDropped   StudentStatus = "Dropped"
)

// Student represents a student document. Password is write-only; department
// and course references resolve to summaries on read paths.
type Student struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID     string             `bson:"studentId" json:"studentId"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	Phone         string             `bson:"phone" json:"phone"`
	DateOfBirth   time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender        Gender             `bson:"gender" json:"gender"`
	Address       Address            `bson:"address,omitempty" json:"address,omitempty"`
	DepartmentID  primitive.ObjectID `bson:"department" json:"-"`
	Department    *DepartmentSummary `bson:"-" json:"department,omitempty"`
	CourseID      primitive.ObjectID `bson:"course" json:"-"`
	Course        *CourseSummary     `bson:"-" json:"course,omitempty"`
	Semester      int                `bson:"semester" json:"semester"`
	Guardian      Guardian           `bson:"guardian,omitempty" json:"guardian,omitempty"`
	Status        StudentStatus      `bson:"status" json:"status"`
	AdmissionDate time.Time          `bson:"admissionDate" json:"admissionDate"`

	// Derived, filled by ComputeDerived
	FullName string `bson:"-" json:"fullName,omitempty"`
	Age      int    `bson:"-" json:"age,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ComputeDerived fills the virtual fields derived from stored ones
func (s *Student) ComputeDerived() {
	s.FullName = s.FirstName + " " + s.LastName
	if !s.DateOfBirth.IsZero() {
		s.Age = int(time.Since(s.DateOfBirth).Hours() / (365.25 * 24))
	}
}

// Summary returns the embedded shape a course's student reverse lookup uses
func (s *Student) Summary() *StudentSummary {
	return &StudentSummary{
		ID:        s.ID,
		StudentID: s.StudentID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Semester:  s.Semester,
	}
}
