package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/db"
	"github.com/baris/collegehub/internal/pkg/apperrors"
)

// DepartmentListFilter carries the optional list constraints.
type DepartmentListFilter struct {
	IsActive *bool
	Search   string
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	collection *mongo.Collection
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(database *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{
		collection: database.Collection(db.CollectionDepartments),
	}
}

// buildDepartmentFilter translates the list constraints into a query document.
func buildDepartmentFilter(filter DepartmentListFilter) bson.M {
	exact := bson.M{}
	if filter.IsActive != nil {
		exact["isActive"] = *filter.IsActive
	}
	return MergeFilters(exact, SearchFilter(filter.Search, "name", "code", "description"))
}

// Create inserts a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	now := time.Now().UTC()
	department.CreatedAt = now
	department.UpdatedAt = now
	if department.ID.IsZero() {
		department.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, department)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetByID retrieves a department by its document ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	var department models.Department
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return &department, nil
}

// GetByCode retrieves a department by its short code
func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	var department models.Department
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return &department, nil
}

// List returns a page of departments ordered newest first, together with the
// total count under the same filter.
func (r *DepartmentRepository) List(ctx context.Context, filter DepartmentListFilter, skip, limit int64) ([]*models.Department, int64, error) {
	query := buildDepartmentFilter(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting departments: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, listOptions(skip, limit, "createdAt", false))
	if err != nil {
		return nil, 0, fmt.Errorf("error listing departments: %w", err)
	}
	defer cursor.Close(ctx)

	departments := make([]*models.Department, 0)
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, 0, fmt.Errorf("error decoding departments: %w", err)
	}
	return departments, total, nil
}

// Update applies a partial patch and returns the updated document
func (r *DepartmentRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Department, error) {
	set["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, fmt.Errorf("error updating department: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return r.GetByID(ctx, id)
}

// SoftDelete marks a department inactive instead of removing the document
func (r *DepartmentRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	set := bson.M{"isActive": false, "updatedAt": time.Now().UTC()}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error deactivating department: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// SummariesByIDs fetches lightweight summaries for reference population
func (r *DepartmentRepository) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.DepartmentSummary, error) {
	summaries := make(map[primitive.ObjectID]*models.DepartmentSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error loading department summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var department models.Department
		if err := cursor.Decode(&department); err != nil {
			return nil, fmt.Errorf("error decoding department summary: %w", err)
		}
		summaries[department.ID] = department.Summary()
	}
	return summaries, cursor.Err()
}
