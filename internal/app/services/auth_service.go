package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/pkg/apperrors"
	"github.com/baris/collegehub/internal/pkg/auth"
	"github.com/baris/collegehub/internal/pkg/logger"
)

// Persistence surfaces the auth service depends on. The concrete
// repositories satisfy these; tests substitute in-memory fakes.
type facultyStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Faculty, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Faculty, error)
}

type studentStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Student, error)
}

type departmentSummaryStore interface {
	SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.DepartmentSummary, error)
}

type courseSummaryStore interface {
	SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.CourseSummary, error)
}

// AuthService handles login, profile reads and self-service profile updates
// for both principal roles.
type AuthService struct {
	facultyRepo    facultyStore
	studentRepo    studentStore
	departmentRepo departmentSummaryStore
	courseRepo     courseSummaryStore
	jwtService     *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	facultyRepo facultyStore,
	studentRepo studentStore,
	departmentRepo departmentSummaryStore,
	courseRepo courseSummaryStore,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		facultyRepo:    facultyRepo,
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
		jwtService:     jwtService,
	}
}

// Login authenticates a principal of the given role. Unknown email and wrong
// password both map to ErrInvalidCredentials so the response never reveals
// which part failed.
func (s *AuthService) Login(ctx context.Context, userType models.UserType, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	switch userType {
	case models.UserTypeFaculty:
		return s.loginFaculty(ctx, req)
	case models.UserTypeStudent:
		return s.loginStudent(ctx, req)
	default:
		return nil, apperrors.NewBadRequestError("Unknown user type")
	}
}

func (s *AuthService) loginFaculty(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	faculty, err := s.facultyRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(faculty.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if faculty.Status != models.FacultyStatusActive {
		return nil, apperrors.ErrAccountInactive
	}

	token, err := s.jwtService.GenerateToken(faculty.ID.Hex(), string(models.UserTypeFaculty))
	if err != nil {
		return nil, err
	}

	if err := s.populateFaculty(ctx, faculty); err != nil {
		logger.Warn().Err(err).Str("facultyId", faculty.FacultyID).Msg("Failed to resolve faculty references on login")
	}

	return &dto.LoginResponse{
		User:     faculty,
		Token:    token,
		UserType: string(models.UserTypeFaculty),
	}, nil
}

func (s *AuthService) loginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if student.Status != models.StudentStatusActive {
		return nil, apperrors.ErrAccountInactive
	}

	token, err := s.jwtService.GenerateToken(student.ID.Hex(), string(models.UserTypeStudent))
	if err != nil {
		return nil, err
	}

	if err := s.populateStudent(ctx, student); err != nil {
		logger.Warn().Err(err).Str("studentId", student.StudentID).Msg("Failed to resolve student references on login")
	}

	return &dto.LoginResponse{
		User:     student,
		Token:    token,
		UserType: string(models.UserTypeStudent),
	}, nil
}

// LoadPrincipal resolves a token subject into the backing document. Used by
// the authentication middleware on every request.
func (s *AuthService) LoadPrincipal(ctx context.Context, userType models.UserType, hexID string) (interface{}, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	switch userType {
	case models.UserTypeFaculty:
		return s.facultyRepo.GetByID(ctx, id)
	case models.UserTypeStudent:
		return s.studentRepo.GetByID(ctx, id)
	default:
		return nil, apperrors.ErrTokenInvalid
	}
}

// Profile returns the authenticated principal with references resolved
func (s *AuthService) Profile(ctx context.Context, userType models.UserType, hexID string) (*dto.ProfileResponse, error) {
	id, err := parseObjectID(hexID, "user")
	if err != nil {
		return nil, err
	}

	switch userType {
	case models.UserTypeFaculty:
		faculty, err := s.facultyRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.populateFaculty(ctx, faculty); err != nil {
			return nil, err
		}
		return &dto.ProfileResponse{User: faculty, UserType: string(userType)}, nil

	case models.UserTypeStudent:
		student, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.populateStudent(ctx, student); err != nil {
			return nil, err
		}
		return &dto.ProfileResponse{User: student, UserType: string(userType)}, nil

	default:
		return nil, apperrors.NewBadRequestError("Unknown user type")
	}
}

// UpdateProfile applies the self-service patch. The request shape carries no
// credential or identifier fields, so nothing needs stripping here.
func (s *AuthService) UpdateProfile(ctx context.Context, userType models.UserType, hexID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	id, err := parseObjectID(hexID, "user")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.FirstName != nil {
		set["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		set["lastName"] = *req.LastName
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Address != nil {
		set["address"] = addressFromRequest(req.Address)
	}
	if len(set) == 0 {
		return s.Profile(ctx, userType, hexID)
	}

	switch userType {
	case models.UserTypeFaculty:
		if _, err := s.facultyRepo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	case models.UserTypeStudent:
		if _, err := s.studentRepo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.NewBadRequestError("Unknown user type")
	}

	return s.Profile(ctx, userType, hexID)
}

func (s *AuthService) populateFaculty(ctx context.Context, faculty *models.Faculty) error {
	departments, err := s.departmentRepo.SummariesByIDs(ctx, []primitive.ObjectID{faculty.DepartmentID})
	if err != nil {
		return err
	}
	faculty.Department = departments[faculty.DepartmentID]

	courses, err := s.courseRepo.SummariesByIDs(ctx, faculty.CourseIDs)
	if err != nil {
		return err
	}
	faculty.Courses = make([]models.CourseSummary, 0, len(faculty.CourseIDs))
	for _, courseID := range faculty.CourseIDs {
		if summary, ok := courses[courseID]; ok {
			faculty.Courses = append(faculty.Courses, *summary)
		}
	}

	faculty.ComputeDerived()
	return nil
}

func (s *AuthService) populateStudent(ctx context.Context, student *models.Student) error {
	departments, err := s.departmentRepo.SummariesByIDs(ctx, []primitive.ObjectID{student.DepartmentID})
	if err != nil {
		return err
	}
	student.Department = departments[student.DepartmentID]

	courses, err := s.courseRepo.SummariesByIDs(ctx, []primitive.ObjectID{student.CourseID})
	if err != nil {
		return err
	}
	student.Course = courses[student.CourseID]

	student.ComputeDerived()
	return nil
}

// addressFromRequest converts the write shape into the stored sub-document
func addressFromRequest(req *dto.AddressRequest) models.Address {
	return models.Address{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	}
}

// guardianFromRequest converts the write shape into the stored sub-document
func guardianFromRequest(req *dto.GuardianRequest) models.Guardian {
	return models.Guardian{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
	}
}
