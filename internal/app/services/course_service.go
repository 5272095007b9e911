package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/pkg/apperrors"
	"github.com/baris/collegehub/internal/pkg/identifier"
)

// codeGenerationAttempts bounds how often a colliding generated course code
// is retried before giving up.
const codeGenerationAttempts = 5

// CourseService handles course-related operations
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
	studentRepo    *repositories.StudentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	departmentRepo *repositories.DepartmentRepository,
	facultyRepo *repositories.FacultyRepository,
	studentRepo *repositories.StudentRepository,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
		studentRepo:    studentRepo,
	}
}

// Create inserts a new course. When no code is supplied one is derived from
// the department code and the course name.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	departmentID, err := parseObjectID(req.Department, "department")
	if err != nil {
		return nil, err
	}
	department, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	facultyIDs, err := parseObjectIDs(req.Faculty, "faculty")
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.CourseCode))
	if code == "" {
		code, err = s.generateCode(ctx, department.Code, req.CourseName)
		if err != nil {
			return nil, err
		}
	}

	course := &models.Course{
		CourseCode:    code,
		CourseName:    strings.TrimSpace(req.CourseName),
		Description:   req.Description,
		DepartmentID:  departmentID,
		Credits:       *req.Credits,
		Duration:      *req.Duration,
		Type:          models.CourseType(req.Type),
		FacultyIDs:    facultyIDs,
		Prerequisites: req.Prerequisites,
		Semester:      *req.Semester,
		MaxStudents:   *req.MaxStudents,
		Fee:           *req.Fee,
		IsActive:      true,
		StartDate:     req.StartDate,
	}
	if req.EndDate != nil {
		course.EndDate = *req.EndDate
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, course.ID.Hex())
}

// generateCode derives a unique course code, retrying on collisions
func (s *CourseService) generateCode(ctx context.Context, departmentCode, courseName string) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := identifier.CourseCode(departmentCode, courseName)
		exists, err := s.courseRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperrors.ErrCourseAlreadyExists
}

// GetByID returns a course with its department, faculty and enrolled
// students resolved.
func (s *CourseService) GetByID(ctx context.Context, hexID string) (*models.Course, error) {
	id, err := parseObjectID(hexID, "course")
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, []*models.Course{course}); err != nil {
		return nil, err
	}

	// Reverse lookup, detail reads only
	students, err := s.studentRepo.ListByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Students = make([]models.StudentSummary, 0, len(students))
	for _, student := range students {
		course.Students = append(course.Students, *student.Summary())
	}

	return course, nil
}

// List returns a page of courses with references resolved. Callers default
// the IsActive constraint to true unless the client asked otherwise.
func (s *CourseService) List(ctx context.Context, filter repositories.CourseListFilter, skip, limit int64) ([]*models.Course, int64, error) {
	courses, total, err := s.courseRepo.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.populate(ctx, courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// ListByDepartment returns a department's active courses
func (s *CourseService) ListByDepartment(ctx context.Context, departmentHexID string, skip, limit int64) ([]*models.Course, int64, error) {
	departmentID, err := parseObjectID(departmentHexID, "department")
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, 0, err
	}

	courses, total, err := s.courseRepo.ListByDepartment(ctx, departmentID, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.populate(ctx, courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// Update applies a partial patch. The course code never changes through this
// path.
func (s *CourseService) Update(ctx context.Context, hexID string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	id, err := parseObjectID(hexID, "course")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.CourseName != nil {
		set["courseName"] = strings.TrimSpace(*req.CourseName)
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Credits != nil {
		set["credits"] = *req.Credits
	}
	if req.Duration != nil {
		set["duration"] = *req.Duration
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Semester != nil {
		set["semester"] = *req.Semester
	}
	if req.MaxStudents != nil {
		set["maxStudents"] = *req.MaxStudents
	}
	if req.Fee != nil {
		set["fee"] = *req.Fee
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if req.StartDate != nil {
		set["startDate"] = *req.StartDate
	}
	if req.EndDate != nil {
		set["endDate"] = *req.EndDate
	}
	if req.Prerequisites != nil {
		set["prerequisites"] = req.Prerequisites
	}
	if req.Department != nil {
		departmentID, err := parseObjectID(*req.Department, "department")
		if err != nil {
			return nil, err
		}
		if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
			return nil, err
		}
		set["department"] = departmentID
	}
	if req.Faculty != nil {
		facultyIDs, err := parseObjectIDs(req.Faculty, "faculty")
		if err != nil {
			return nil, err
		}
		set["faculty"] = facultyIDs
	}

	if _, err := s.courseRepo.Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, hexID)
}

// Delete deactivates a course. Enrollment references survive.
func (s *CourseService) Delete(ctx context.Context, hexID string) error {
	id, err := parseObjectID(hexID, "course")
	if err != nil {
		return err
	}
	return s.courseRepo.SoftDelete(ctx, id)
}

// populate batch-resolves department and faculty references across a page
func (s *CourseService) populate(ctx context.Context, courses []*models.Course) error {
	departmentIDs := make([]primitive.ObjectID, 0, len(courses))
	var facultyIDs []primitive.ObjectID
	for _, course := range courses {
		departmentIDs = append(departmentIDs, course.DepartmentID)
		facultyIDs = append(facultyIDs, course.FacultyIDs...)
	}

	departments, err := s.departmentRepo.SummariesByIDs(ctx, departmentIDs)
	if err != nil {
		return err
	}
	faculty, err := s.facultyRepo.SummariesByIDs(ctx, facultyIDs)
	if err != nil {
		return err
	}

	for _, course := range courses {
		course.Department = departments[course.DepartmentID]
		course.Faculty = make([]models.FacultySummary, 0, len(course.FacultyIDs))
		for _, facultyID := range course.FacultyIDs {
			if summary, ok := faculty[facultyID]; ok {
				course.Faculty = append(course.Faculty, *summary)
			}
		}
		course.ComputeDerived()
	}
	return nil
}
