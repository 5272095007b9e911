package models

import "testing"

func TestCourseComputeDerived(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		max        int
		wantStatus string
		wantSeats  int
	}{
		{"empty course", 0, 60, EnrollmentAvailable, 60},
		{"below half", 29, 60, EnrollmentAvailable, 31},
		{"exactly half", 30, 60, EnrollmentHalfFull, 30},
		{"above half", 45, 60, EnrollmentHalfFull, 15},
		{"exactly eighty percent", 48, 60, EnrollmentAlmostFull, 12},
		{"almost full", 59, 60, EnrollmentAlmostFull, 1},
		{"full", 60, 60, EnrollmentFull, 0},
		{"overbooked", 65, 60, EnrollmentFull, -5},
		{"zero capacity", 0, 0, EnrollmentAvailable, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &Course{CurrentEnrollment: tt.current, MaxStudents: tt.max}
			course.ComputeDerived()

			if course.EnrollmentStatus != tt.wantStatus {
				t.Errorf("EnrollmentStatus = %q, want %q", course.EnrollmentStatus, tt.wantStatus)
			}
			if course.AvailableSeats != tt.wantSeats {
				t.Errorf("AvailableSeats = %d, want %d", course.AvailableSeats, tt.wantSeats)
			}
		})
	}
}
