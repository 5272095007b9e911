package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/pkg/apperrors"
	"github.com/baris/collegehub/internal/pkg/auth"
)

type stubFacultyStore struct {
	faculty *models.Faculty
}

func (s *stubFacultyStore) GetByEmail(_ context.Context, email string) (*models.Faculty, error) {
	if s.faculty != nil && s.faculty.Email == email {
		return s.faculty, nil
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (s *stubFacultyStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Faculty, error) {
	if s.faculty != nil && s.faculty.ID == id {
		return s.faculty, nil
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (s *stubFacultyStore) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (*models.Faculty, error) {
	return nil, apperrors.ErrFacultyNotFound
}

type stubStudentStore struct {
	student *models.Student
}

func (s *stubStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	if s.student != nil && s.student.Email == email {
		return s.student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	if s.student != nil && s.student.ID == id {
		return s.student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentStore) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

type stubDepartmentSummaries struct{}

func (stubDepartmentSummaries) SummariesByIDs(_ context.Context, _ []primitive.ObjectID) (map[primitive.ObjectID]*models.DepartmentSummary, error) {
	return map[primitive.ObjectID]*models.DepartmentSummary{}, nil
}

type stubCourseSummaries struct{}

func (stubCourseSummaries) SummariesByIDs(_ context.Context, _ []primitive.ObjectID) (map[primitive.ObjectID]*models.CourseSummary, error) {
	return map[primitive.ObjectID]*models.CourseSummary{}, nil
}

type authFixture struct {
	service    *AuthService
	jwtService *auth.JWTService
	faculty    *models.Faculty
	student    *models.Student
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	faculty := &models.Faculty{
		ID:        primitive.NewObjectID(),
		FacultyID: "FAC2026001",
		FirstName: "Jane",
		LastName:  "Mathews",
		Email:     "jane.mathews@college.edu",
		Password:  hash,
		Status:    models.FacultyStatusActive,
	}
	student := &models.Student{
		ID:        primitive.NewObjectID(),
		StudentID: "STU20260001",
		FirstName: "Ravi",
		LastName:  "Kumar",
		Email:     "ravi.kumar@college.edu",
		Password:  hash,
		Status:    models.StudentStatusActive,
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collegehub",
	})

	return &authFixture{
		service: NewAuthService(
			&stubFacultyStore{faculty: faculty},
			&stubStudentStore{student: student},
			stubDepartmentSummaries{},
			stubCourseSummaries{},
			jwtService,
		),
		jwtService: jwtService,
		faculty:    faculty,
		student:    student,
	}
}

func TestLoginTokenRoundTrip(t *testing.T) {
	fix := newAuthFixture(t)

	tests := []struct {
		name      string
		userType  models.UserType
		email     string
		wantSubID string
	}{
		{"faculty", models.UserTypeFaculty, fix.faculty.Email, fix.faculty.ID.Hex()},
		{"student", models.UserTypeStudent, fix.student.Email, fix.student.ID.Hex()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := fix.service.Login(context.Background(), tt.userType, &dto.LoginRequest{
				Email:    tt.email,
				Password: "secret123",
			})
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if resp.UserType != string(tt.userType) {
				t.Errorf("Login() userType = %q, want %q", resp.UserType, tt.userType)
			}

			claims, err := fix.jwtService.ValidateToken(resp.Token)
			if err != nil {
				t.Fatalf("ValidateToken() on issued token error = %v", err)
			}
			if claims.SubjectID != tt.wantSubID {
				t.Errorf("token subject = %q, want %q", claims.SubjectID, tt.wantSubID)
			}
			if claims.UserType != string(tt.userType) {
				t.Errorf("token userType = %q, want %q", claims.UserType, tt.userType)
			}
		})
	}
}

func TestLoginRejections(t *testing.T) {
	tests := []struct {
		name     string
		userType models.UserType
		email    string
		password string
		setup    func(fix *authFixture)
		wantErr  error
	}{
		{
			name:     "unknown faculty email",
			userType: models.UserTypeFaculty,
			email:    "nobody@college.edu",
			password: "secret123",
			wantErr:  apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong faculty password",
			userType: models.UserTypeFaculty,
			email:    "jane.mathews@college.edu",
			password: "not-the-password",
			wantErr:  apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown student email",
			userType: models.UserTypeStudent,
			email:    "nobody@college.edu",
			password: "secret123",
			wantErr:  apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong student password",
			userType: models.UserTypeStudent,
			email:    "ravi.kumar@college.edu",
			password: "not-the-password",
			wantErr:  apperrors.ErrInvalidCredentials,
		},
		{
			name:     "faculty on leave",
			userType: models.UserTypeFaculty,
			email:    "jane.mathews@college.edu",
			password: "secret123",
			setup:    func(fix *authFixture) { fix.faculty.Status = models.FacultyStatusOnLeave },
			wantErr:  apperrors.ErrAccountInactive,
		},
		{
			name:     "graduated student",
			userType: models.UserTypeStudent,
			email:    "ravi.kumar@college.edu",
			password: "secret123",
			setup:    func(fix *authFixture) { fix.student.Status = models.StudentStatusGraduated },
			wantErr:  apperrors.ErrAccountInactive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fix := newAuthFixture(t)
			if tt.setup != nil {
				tt.setup(fix)
			}

			resp, err := fix.service.Login(context.Background(), tt.userType, &dto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if resp != nil {
				t.Error("Login() returned a response alongside the error")
			}
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailureMessageUniform(t *testing.T) {
	fix := newAuthFixture(t)

	_, unknownErr := fix.service.Login(context.Background(), models.UserTypeFaculty, &dto.LoginRequest{
		Email:    "nobody@college.edu",
		Password: "secret123",
	})
	_, wrongErr := fix.service.Login(context.Background(), models.UserTypeFaculty, &dto.LoginRequest{
		Email:    fix.faculty.Email,
		Password: "not-the-password",
	})

	if unknownErr == nil || wrongErr == nil {
		t.Fatalf("expected both logins to fail, got %v and %v", unknownErr, wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("unknown email error %q differs from wrong password error %q", unknownErr, wrongErr)
	}
}

func TestLoginUnknownUserType(t *testing.T) {
	fix := newAuthFixture(t)

	_, err := fix.service.Login(context.Background(), models.UserType("admin"), &dto.LoginRequest{
		Email:    fix.faculty.Email,
		Password: "secret123",
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("Login() error = %v, want %v", err, apperrors.ErrBadRequest)
	}
}
