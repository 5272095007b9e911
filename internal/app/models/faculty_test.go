package models

import (
	"testing"
	"time"
)

func TestFacultyComputeDerived(t *testing.T) {
	faculty := &Faculty{
		FirstName:   "Priya",
		LastName:    "Sharma",
		DateOfBirth: time.Now().AddDate(-35, -2, 0),
	}
	faculty.ComputeDerived()

	if faculty.FullName != "Priya Sharma" {
		t.Errorf("FullName = %q, want %q", faculty.FullName, "Priya Sharma")
	}
	if faculty.Age != 35 {
		t.Errorf("Age = %d, want 35", faculty.Age)
	}
}

func TestFacultyComputeDerivedZeroDateOfBirth(t *testing.T) {
	faculty := &Faculty{FirstName: "Ram", LastName: "Kumar"}
	faculty.ComputeDerived()

	if faculty.Age != 0 {
		t.Errorf("Age = %d, want 0 for zero date of birth", faculty.Age)
	}
}

func TestStudentComputeDerived(t *testing.T) {
	student := &Student{
		FirstName:   "Arjun",
		LastName:    "Patel",
		DateOfBirth: time.Now().AddDate(-20, -6, 0),
	}
	student.ComputeDerived()

	if student.FullName != "Arjun Patel" {
		t.Errorf("FullName = %q, want %q", student.FullName, "Arjun Patel")
	}
	if student.Age != 20 {
		t.Errorf("Age = %d, want 20", student.Age)
	}
}

func TestSummaries(t *testing.T) {
	department := &Department{Name: "Computer Science", Code: "CS"}
	if got := department.Summary(); got.Name != "Computer Science" || got.Code != "CS" {
		t.Errorf("Department.Summary() = %+v", got)
	}

	course := &Course{CourseName: "Data Structures", CourseCode: "CSDS42"}
	if got := course.Summary(); got.CourseName != "Data Structures" || got.CourseCode != "CSDS42" {
		t.Errorf("Course.Summary() = %+v", got)
	}

	student := &Student{StudentID: "STU20261234", FirstName: "Arjun", Semester: 3}
	if got := student.Summary(); got.StudentID != "STU20261234" || got.Semester != 3 {
		t.Errorf("Student.Summary() = %+v", got)
	}
}
