package identifier

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestStudentID(t *testing.T) {
	pattern := regexp.MustCompile(fmt.Sprintf(`^STU%d\d{4}$`, time.Now().Year()))
	for i := 0; i < 50; i++ {
		id := StudentID()
		if !pattern.MatchString(id) {
			t.Fatalf("StudentID() = %q, want match for %q", id, pattern)
		}
	}
}

func TestFacultyID(t *testing.T) {
	pattern := regexp.MustCompile(fmt.Sprintf(`^FAC%d\d{3}$`, time.Now().Year()))
	for i := 0; i < 50; i++ {
		id := FacultyID()
		if !pattern.MatchString(id) {
			t.Fatalf("FacultyID() = %q, want match for %q", id, pattern)
		}
	}
}

func TestCourseCode(t *testing.T) {
	tests := []struct {
		name           string
		departmentCode string
		courseName     string
		wantPrefix     string
	}{
		{
			name:           "short name",
			departmentCode: "CS",
			courseName:     "Data Structures",
			wantPrefix:     "CSDS",
		},
		{
			name:           "single word",
			departmentCode: "EC",
			courseName:     "Electronics",
			wantPrefix:     "ECE",
		},
		{
			name:           "lowercase input upper-cased",
			departmentCode: "me",
			courseName:     "fluid mechanics",
			wantPrefix:     "MEFM",
		},
		{
			name:           "long name clamped",
			departmentCode: "CS",
			courseName:     "Advanced Topics In Distributed Systems And Networks",
			wantPrefix:     "CSATIDSA",
		},
	}

	suffix := regexp.MustCompile(`\d{2}$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := CourseCode(tt.departmentCode, tt.courseName)

			if len(code) > MaxCourseCodeLen {
				t.Errorf("CourseCode() = %q, length %d exceeds %d", code, len(code), MaxCourseCodeLen)
			}
			if !strings.HasPrefix(code, tt.wantPrefix) {
				t.Errorf("CourseCode() = %q, want prefix %q", code, tt.wantPrefix)
			}
			if !suffix.MatchString(code) {
				t.Errorf("CourseCode() = %q, want 2-digit suffix", code)
			}
			if code != strings.ToUpper(code) {
				t.Errorf("CourseCode() = %q, want upper case", code)
			}
		})
	}
}
