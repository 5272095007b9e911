// Package models defines the documents persisted in MongoDB and the summary
// shapes used when references are resolved at read time.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserType identifies the role a principal authenticates as
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeFaculty UserType = "faculty"
)

// Gender enumeration shared by Faculty and Student
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Address is an embedded sub-document
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

// Guardian is the student's guardian sub-document
type Guardian struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
}

// DepartmentSummary is the embedded shape a department reference resolves to
type DepartmentSummary struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
	Code string             `bson:"code" json:"code"`
}

// CourseSummary is the embedded shape a course reference resolves to
type CourseSummary struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	CourseName string             `bson:"courseName" json:"courseName"`
	CourseCode string             `bson:"courseCode" json:"courseCode"`
}

// FacultySummary is the embedded shape a faculty reference resolves to
type FacultySummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email" json:"email"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
}

// StudentSummary is the embedded shape used when a course's enrolled students
// are reverse-looked-up
type StudentSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	StudentID string             `bson:"studentId" json:"studentId"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Semester  int                `bson:"semester" json:"semester"`
}
