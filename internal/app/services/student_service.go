package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/pkg/auth"
	"github.com/baris/collegehub/internal/pkg/identifier"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	departmentRepo *repositories.DepartmentRepository
	courseRepo     *repositories.CourseRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	departmentRepo *repositories.DepartmentRepository,
	courseRepo *repositories.CourseRepository,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
	}
}

// Create registers a new student. The password is hashed and the studentId
// generated before insert; the referenced course and department must exist.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	departmentID, err := parseObjectID(req.Department, "department")
	if err != nil {
		return nil, err
	}
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	courseID, err := parseObjectID(req.Course, "course")
	if err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:     identifier.StudentID(),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Password:      hashed,
		Phone:         req.Phone,
		DateOfBirth:   req.DateOfBirth,
		Gender:        models.Gender(req.Gender),
		DepartmentID:  departmentID,
		CourseID:      courseID,
		Semester:      *req.Semester,
		Status:        models.StudentStatusActive,
		AdmissionDate: time.Now().UTC(),
	}
	if req.Address != nil {
		student.Address = addressFromRequest(req.Address)
	}
	if req.Guardian != nil {
		student.Guardian = guardianFromRequest(req.Guardian)
	}
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}
	if req.AdmissionDate != nil {
		student.AdmissionDate = *req.AdmissionDate
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, student.ID.Hex())
}

// GetByID returns a student with references resolved
func (s *StudentService) GetByID(ctx context.Context, hexID string) (*models.Student, error) {
	id, err := parseObjectID(hexID, "student")
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, []*models.Student{student}); err != nil {
		return nil, err
	}
	return student, nil
}

// List returns a page of students with references resolved
func (s *StudentService) List(ctx context.Context, filter repositories.StudentListFilter, skip, limit int64) ([]*models.Student, int64, error) {
	students, total, err := s.studentRepo.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.populate(ctx, students); err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// ListByDepartment returns a department's students in first-name order
func (s *StudentService) ListByDepartment(ctx context.Context, departmentHexID string, skip, limit int64) ([]*models.Student, int64, error) {
	departmentID, err := parseObjectID(departmentHexID, "department")
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, 0, err
	}

	students, total, err := s.studentRepo.ListByDepartment(ctx, departmentID, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.populate(ctx, students); err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// Update applies a partial patch. Email, password and studentId cannot
// change through this path.
func (s *StudentService) Update(ctx context.Context, hexID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	id, err := parseObjectID(hexID, "student")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.FirstName != nil {
		set["firstName"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		set["lastName"] = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.DateOfBirth != nil {
		set["dateOfBirth"] = *req.DateOfBirth
	}
	if req.Gender != nil {
		set["gender"] = *req.Gender
	}
	if req.Address != nil {
		set["address"] = addressFromRequest(req.Address)
	}
	if req.Guardian != nil {
		set["guardian"] = guardianFromRequest(req.Guardian)
	}
	if req.Semester != nil {
		set["semester"] = *req.Semester
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.AdmissionDate != nil {
		set["admissionDate"] = *req.AdmissionDate
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
	if req.Course != nil {
		courseID, err := parseObjectID(*req.Course, "course")
		if err != nil {
			return nil, err
		}
		if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
			return nil, err
		}
		set["course"] = courseID
	}

	if _, err := s.studentRepo.Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, hexID)
}

// Delete removes a student permanently
func (s *StudentService) Delete(ctx context.Context, hexID string) error {
	id, err := parseObjectID(hexID, "student")
	if err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}

// populate batch-resolves department and course references across a page
func (s *StudentService) populate(ctx context.Context, students []*models.Student) error {
	departmentIDs := make([]primitive.ObjectID, 0, len(students))
	courseIDs := make([]primitive.ObjectID, 0, len(students))
	for _, student := range students {
		departmentIDs = append(departmentIDs, student.DepartmentID)
		courseIDs = append(courseIDs, student.CourseID)
	}

	departments, err := s.departmentRepo.SummariesByIDs(ctx, departmentIDs)
	if err != nil {
		return err
	}
	courses, err := s.courseRepo.SummariesByIDs(ctx, courseIDs)
	if err != nil {
		return err
	}

	for _, student := range students {
		student.Department = departments[student.DepartmentID]
		student.Course = courses[student.CourseID]
		student.ComputeDerived()
	}
	return nil
}
