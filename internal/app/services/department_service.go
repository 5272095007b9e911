package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/app/models/dto"
	"github.com/baris/collegehub/internal/app/repositories"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
	courseRepo     *repositories.CourseRepository
	studentRepo    *repositories.StudentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(
	departmentRepo *repositories.DepartmentRepository,
	facultyRepo *repositories.FacultyRepository,
	courseRepo *repositories.CourseRepository,
	studentRepo *repositories.StudentRepository,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
	}
}

// Create inserts a new department. The head reference, when present, must
// point at an existing faculty member.
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
		IsActive:    true,
		Established: time.Now().UTC(),
	}
	if req.Established != nil {
		department.Established = *req.Established
	}

	if req.Head != "" {
		headID, err := parseObjectID(req.Head, "faculty")
		if err != nil {
			return nil, err
		}
		if _, err := s.facultyRepo.GetByID(ctx, headID); err != nil {
			return nil, err
		}
		department.HeadID = &headID
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, department.ID.Hex())
}

// GetByID returns a department with its head resolved and referencing
// documents counted.
func (s *DepartmentService) GetByID(ctx context.Context, hexID string) (*models.Department, error) {
	id, err := parseObjectID(hexID, "department")
	if err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.facultyRepo.CountByDepartment(gctx, id)
		if err == nil {
			department.FacultyCount = count
		}
		return err
	})
	g.Go(func() error {
		count, err := s.studentRepo.CountByDepartment(gctx, id)
		if err == nil {
			department.StudentCount = count
		}
		return err
	})
	g.Go(func() error {
		return s.populateHeads(gctx, []*models.Department{department})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return department, nil
}

// List returns a page of departments with their heads resolved
func (s *DepartmentService) List(ctx context.Context, filter repositories.DepartmentListFilter, skip, limit int64) ([]*models.Department, int64, error) {
	departments, total, err := s.departmentRepo.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.populateHeads(ctx, departments); err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

// Update applies a partial patch
func (s *DepartmentService) Update(ctx context.Context, hexID string, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	id, err := parseObjectID(hexID, "department")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		set["code"] = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Established != nil {
		set["established"] = *req.Established
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if req.Head != nil {
		headID, err := parseObjectID(*req.Head, "faculty")
		if err != nil {
			return nil, err
		}
		if _, err := s.facultyRepo.GetByID(ctx, headID); err != nil {
			return nil, err
		}
		set["head"] = headID
	}

	if _, err := s.departmentRepo.Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, hexID)
}

// Delete deactivates a department. The document and its references survive.
func (s *DepartmentService) Delete(ctx context.Context, hexID string) error {
	id, err := parseObjectID(hexID, "department")
	if err != nil {
		return err
	}
	return s.departmentRepo.SoftDelete(ctx, id)
}

// Stats gathers the per-department aggregates concurrently
func (s *DepartmentService) Stats(ctx context.Context, hexID string) (*models.DepartmentStats, error) {
	id, err := parseObjectID(hexID, "department")
	if err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &models.DepartmentStats{Department: department.Name}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		groups, err := s.facultyRepo.GroupByDesignation(gctx, id)
		if err == nil {
			stats.FacultyByDesignation = groups
			for _, group := range groups {
				stats.TotalFaculty += group.Count
			}
		}
		return err
	})
	g.Go(func() error {
		groups, err := s.studentRepo.GroupBySemester(gctx, id)
		if err == nil {
			stats.StudentsBySemester = groups
			for _, group := range groups {
				stats.TotalStudents += group.Count
			}
		}
		return err
	})
	g.Go(func() error {
		count, err := s.courseRepo.CountActiveByDepartment(gctx, id)
		if err == nil {
			stats.ActiveCourses = count
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// populateHeads batch-resolves head references across a department page
func (s *DepartmentService) populateHeads(ctx context.Context, departments []*models.Department) error {
	ids := make([]primitive.ObjectID, 0, len(departments))
	for _, department := range departments {
		if department.HeadID != nil {
			ids = append(ids, *department.HeadID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	heads, err := s.facultyRepo.SummariesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, department := range departments {
		if department.HeadID != nil {
			department.Head = heads[*department.HeadID]
		}
	}
	return nil
}
