// Package identifier generates the human-readable business identifiers used
// alongside storage ids: student ids, faculty ids and course codes.
package identifier

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MaxCourseCodeLen bounds generated course codes
const MaxCourseCodeLen = 10

// StudentID produces an identifier of the form STU<year><4 digits>
func StudentID() string {
	year := time.Now().Year()
	return fmt.Sprintf("STU%d%04d", year, rand.Intn(10000))
}

// FacultyID produces an identifier of the form FAC<year><3 digits>
func FacultyID() string {
	year := time.Now().Year()
	return fmt.Sprintf("FAC%d%03d", year, rand.Intn(1000))
}

// CourseCode derives a course code from the department code and the course
// name's initials, with a 2-digit random suffix. The result is upper-cased
// and clamped to MaxCourseCodeLen.
func CourseCode(departmentCode, courseName string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(courseName) {
		initials.WriteByte(word[0])
	}

	code := strings.ToUpper(departmentCode + initials.String())
	if len(code) > MaxCourseCodeLen-2 {
		code = code[:MaxCourseCodeLen-2]
	}

	return fmt.Sprintf("%s%02d", code, rand.Intn(100))
}
