package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Qualification enumeration for faculty members
type Qualification string

const (
	QualificationPhD       Qualification = "PhD"
	QualificationMasters   Qualification = "Masters"
	QualificationBachelors Qualification = "Bachelors"
	QualificationDiploma   Qualification = "Diploma"
)

// Designation enumeration; DesignationHOD marks a head of department
type Designation string

const (
	DesignationProfessor          Designation = "Professor"
	DesignationAssociateProfessor Designation = "Associate Professor"
	DesignationAssistantProfessor Designation = "Assistant Professor"
	DesignationLecturer           Designation = "Lecturer"
	DesignationHOD                Designation = "HOD"
)

// FacultyStatus enumeration
type FacultyStatus string

const (
	FacultyStatusActive   FacultyStatus = "Active"
	FacultyStatusInactive FacultyStatus = "Inactive"
	FacultyStatusOnLeave  FacultyStatus = "On Leave"
	FacultyStatusRetired  FacultyStatus = "Retired"
)

// Faculty represents a faculty member document. The password digest never
// serializes to JSON; DepartmentID/CourseIDs store raw references and the
// matching summary fields carry the resolved documents on read paths.
type Faculty struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FacultyID      string               `bson:"facultyId" json:"facultyId"`
	FirstName      string               `bson:"firstName" json:"firstName"`
	LastName       string               `bson:"lastName" json:"lastName"`
	Email          string               `bson:"email" json:"email"`
	Password       string               `bson:"password" json:"-"`
	Phone          string               `bson:"phone" json:"phone"`
	DateOfBirth    time.Time            `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender         Gender               `bson:"gender" json:"gender"`
	Address        Address              `bson:"address,omitempty" json:"address,omitempty"`
	DepartmentID   primitive.ObjectID   `bson:"department" json:"-"`
	Department     *DepartmentSummary   `bson:"-" json:"department,omitempty"`
	Qualification  Qualification        `bson:"qualification" json:"qualification"`
	Specialization string               `bson:"specialization" json:"specialization"`
	Experience     int                  `bson:"experience" json:"experience"`
	Designation    Designation          `bson:"designation" json:"designation"`
	JoiningDate    time.Time            `bson:"joiningDate" json:"joiningDate"`
	Salary         float64              `bson:"salary" json:"salary"`
	Status         FacultyStatus        `bson:"status" json:"status"`
	CourseIDs      []primitive.ObjectID `bson:"courses,omitempty" json:"-"`
	Courses        []CourseSummary      `bson:"-" json:"courses,omitempty"`
	ProfileImage   string               `bson:"profileImage" json:"profileImage"`

	// Derived, filled by ComputeDerived
	FullName string `bson:"-" json:"fullName,omitempty"`
	Age      int    `bson:"-" json:"age,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ComputeDerived fills the virtual fields derived from stored ones
func (f *Faculty) ComputeDerived() {
	f.FullName = f.FirstName + " " + f.LastName
	if !f.DateOfBirth.IsZero() {
		f.Age = int(time.Since(f.DateOfBirth).Hours() / (365.25 * 24))
	}
}

// Summary returns the embedded shape other documents resolve this faculty to
func (f *Faculty) Summary() *FacultySummary {
	return &FacultySummary{
		ID:          f.ID,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Designation: string(f.Designation),
	}
}
