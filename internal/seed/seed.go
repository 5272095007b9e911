package seed

import (
	"context"
	"errors"
	"time"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/pkg/apperrors"
	"github.com/baris/collegehub/internal/pkg/auth"
	"github.com/baris/collegehub/internal/pkg/identifier"
	"github.com/baris/collegehub/internal/pkg/logger"
)

const (
	adminEmail    = "admin@collegehub.edu"
	adminPassword = "Admin@123"
)

// DefaultData creates the default departments and the bootstrap admin
// faculty account if they don't exist. Existing records are left alone;
// duplicate errors are expected on every start but the first.
func DefaultData(ctx context.Context, repos *repositories.Repositories) error {
	logger.Info().Msg("Checking/Creating default departments...")

	defaults := []*models.Department{
		{Name: "Computer Science", Code: "CS", Description: "Computer Science and Engineering", IsActive: true},
		{Name: "Electronics", Code: "EC", Description: "Electronics and Communication", IsActive: true},
		{Name: "Mechanical Engineering", Code: "ME", Description: "Mechanical Engineering", IsActive: true},
	}

	var finalErr error
	for _, department := range defaults {
		err := repos.DepartmentRepository.Create(ctx, department)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			logger.Error().Err(err).Str("code", department.Code).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := adminFaculty(ctx, repos); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

// adminFaculty creates the login used for first access. The password must be
// changed through the profile endpoint afterwards.
func adminFaculty(ctx context.Context, repos *repositories.Repositories) error {
	_, err := repos.FacultyRepository.GetByEmail(ctx, adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		return err
	}

	department, err := repos.DepartmentRepository.GetByCode(ctx, "CS")
	if err != nil {
		return err
	}
	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.Faculty{
		FacultyID:     identifier.FacultyID(),
		FirstName:     "System",
		LastName:      "Admin",
		Email:         adminEmail,
		Password:      hashed,
		DepartmentID:  department.ID,
		Qualification: models.QualificationMasters,
		Designation:   models.DesignationHOD,
		JoiningDate:   time.Now().UTC(),
		Status:        models.FacultyStatusActive,
	}
	if err := repos.FacultyRepository.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info().Str("email", adminEmail).Msg("Default admin faculty created")
	return nil
}

// SyncEnrollmentCounts reconciles each course's stored enrollment counter
// with the actual number of referencing students. This is the only writer of
// that counter.
func SyncEnrollmentCounts(ctx context.Context, repos *repositories.Repositories) error {
	courseIDs, err := repos.CourseRepository.IDs(ctx)
	if err != nil {
		return err
	}

	var finalErr error
	for _, courseID := range courseIDs {
		count, err := repos.StudentRepository.CountByCourse(ctx, courseID)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err := repos.CourseRepository.SetEnrollment(ctx, courseID, count); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}
	if finalErr == nil {
		logger.Debug().Int("courses", len(courseIDs)).Msg("Enrollment counters reconciled")
	}
	return finalErr
}
