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

// FacultyService handles faculty-related operations
type FacultyService struct {
	facultyRepo    *repositories.FacultyRepository
	departmentRepo *repositories.DepartmentRepository
	courseRepo     *repositories.CourseRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(
	facultyRepo *repositories.FacultyRepository,
	departmentRepo *repositories.DepartmentRepository,
	courseRepo *repositories.CourseRepository,
) *FacultyService {
	return &FacultyService{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
	}
}

// Create registers a new faculty member. The password is hashed and the
// facultyId generated before insert.
func (s *FacultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	departmentID, err := parseObjectID(req.Department, "department")
	if err != nil {
		return nil, err
	}
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	courseIDs, err := parseObjectIDs(req.Courses, "course")
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		FacultyID:      identifier.FacultyID(),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Password:       hashed,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         models.Gender(req.Gender),
		DepartmentID:   departmentID,
		Qualification:  models.Qualification(req.Qualification),
		Specialization: req.Specialization,
		Experience:     *req.Experience,
		Designation:    models.Designation(req.Designation),
		Salary:         *req.Salary,
		Status:         models.FacultyStatusActive,
		CourseIDs:      courseIDs,
		ProfileImage:   req.ProfileImage,
		JoiningDate:    time.Now().UTC(),
	}
	if req.Address != nil {
		faculty.Address = addressFromRequest(req.Address)
	}
	if req.JoiningDate != nil {
		faculty.JoiningDate = *req.JoiningDate
	}
	if req.Status != "" {
		faculty.Status = models.FacultyStatus(req.Status)
	}

	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, faculty.ID.Hex())
}

// GetByID returns a faculty member with references resolved
func (s *FacultyService) GetByID(ctx context.Context, hexID string) (*models.Faculty, error) {
	id, err := parseObjectID(hexID, "faculty")
	if err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, []*models.Faculty{faculty}); err != nil {
		return nil, err
	}
	return faculty, nil
}

// List returns a page of faculty with references resolved
func (s *FacultyService) List(ctx context.Context, filter repositories.FacultyListFilter, skip, limit int64) ([]*models.Faculty, int64, error) {
	faculty, total, err := s.facultyRepo.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.populate(ctx, faculty); err != nil {
		return nil, 0, err
	}
	return faculty, total, nil
}

// ListByDepartment returns a department's faculty in first-name order
func (s *FacultyService) ListByDepartment(ctx context.Context, departmentHexID string, skip, limit int64) ([]*models.Faculty, int64, error) {
	departmentID, err := parseObjectID(departmentHexID, "department")
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, 0, err
	}

	faculty, total, err := s.facultyRepo.ListByDepartment(ctx, departmentID, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.populate(ctx, faculty); err != nil {
		return nil, 0, err
	}
	return faculty, total, nil
}

// Update applies a partial patch. Email, password and facultyId cannot change
// through this path.
func (s *FacultyService) Update(ctx context.Context, hexID string, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	id, err := parseObjectID(hexID, "faculty")
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
	if req.Qualification != nil {
		set["qualification"] = *req.Qualification
	}
	if req.Specialization != nil {
		set["specialization"] = *req.Specialization
	}
	if req.Experience != nil {
		set["experience"] = *req.Experience
	}
	if req.Designation != nil {
		set["designation"] = *req.Designation
	}
	if req.Salary != nil {
		set["salary"] = *req.Salary
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.ProfileImage != nil {
		set["profileImage"] = *req.ProfileImage
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
	if req.Courses != nil {
		courseIDs, err := parseObjectIDs(req.Courses, "course")
		if err != nil {
			return nil, err
		}
		set["courses"] = courseIDs
	}

	if _, err := s.facultyRepo.Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, hexID)
}

// Delete removes a faculty member permanently
func (s *FacultyService) Delete(ctx context.Context, hexID string) error {
	id, err := parseObjectID(hexID, "faculty")
	if err != nil {
		return err
	}
	return s.facultyRepo.Delete(ctx, id)
}

// populate batch-resolves department and course references across a page
func (s *FacultyService) populate(ctx context.Context, faculty []*models.Faculty) error {
	departmentIDs := make([]primitive.ObjectID, 0, len(faculty))
	var courseIDs []primitive.ObjectID
	for _, member := range faculty {
		departmentIDs = append(departmentIDs, member.DepartmentID)
		courseIDs = append(courseIDs, member.CourseIDs...)
	}

	departments, err := s.departmentRepo.SummariesByIDs(ctx, departmentIDs)
	if err != nil {
		return err
	}
	courses, err := s.courseRepo.SummariesByIDs(ctx, courseIDs)
	if err != nil {
		return err
	}

	for _, member := range faculty {
		member.Department = departments[member.DepartmentID]
		member.Courses = make([]models.CourseSummary, 0, len(member.CourseIDs))
		for _, courseID := range member.CourseIDs {
			if summary, ok := courses[courseID]; ok {
				member.Courses = append(member.Courses, *summary)
			}
		}
		member.ComputeDerived()
	}
	return nil
}

// parseObjectIDs converts a list of hex ids, failing on the first bad one
func parseObjectIDs(hexIDs []string, label string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		id, err := parseObjectID(hex, label)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
