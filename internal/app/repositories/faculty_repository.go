package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baris/collegehub/internal/app/models"
	"github.com/baris/collegehub/internal/db"
	"github.com/baris/collegehub/internal/pkg/apperrors"
)

// FacultyListFilter carries the optional list constraints.
type FacultyListFilter struct {
	DepartmentID *primitive.ObjectID
	Designation  string
	Status       string
	Search       string
}

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	collection *mongo.Collection
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(database *mongo.Database) *FacultyRepository {
	return &FacultyRepository{
		collection: database.Collection(db.CollectionFaculty),
	}
}

// buildFacultyFilter translates the list constraints into a query document.
func buildFacultyFilter(filter FacultyListFilter) bson.M {
	exact := bson.M{}
	if filter.DepartmentID != nil {
		exact["department"] = *filter.DepartmentID
	}
	if filter.Designation != "" {
		exact["designation"] = filter.Designation
	}
	if filter.Status != "" {
		exact["status"] = filter.Status
	}
	return MergeFilters(exact, SearchFilter(filter.Search, "firstName", "lastName", "email", "facultyId"))
}

// Create inserts a new faculty member
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	now := time.Now().UTC()
	faculty.CreatedAt = now
	faculty.UpdatedAt = now
	if faculty.ID.IsZero() {
		faculty.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, faculty)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrFacultyAlreadyExists
		}
		return fmt.Errorf("error creating faculty: %w", err)
	}
	return nil
}

// GetByID retrieves a faculty member by document ID
func (r *FacultyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&faculty)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return &faculty, nil
}

// GetByEmail retrieves a faculty member for credential checks
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&faculty)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty by email: %w", err)
	}
	return &faculty, nil
}

// List returns a page of faculty ordered newest first
func (r *FacultyRepository) List(ctx context.Context, filter FacultyListFilter, skip, limit int64) ([]*models.Faculty, int64, error) {
	return r.list(ctx, buildFacultyFilter(filter), listOptions(skip, limit, "createdAt", false))
}

// ListByDepartment returns a department's faculty ordered by first name
func (r *FacultyRepository) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID, skip, limit int64) ([]*models.Faculty, int64, error) {
	return r.list(ctx, bson.M{"department": departmentID}, listOptions(skip, limit, "firstName", true))
}

func (r *FacultyRepository) list(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*models.Faculty, int64, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting faculty: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing faculty: %w", err)
	}
	defer cursor.Close(ctx)

	faculty := make([]*models.Faculty, 0)
	if err := cursor.All(ctx, &faculty); err != nil {
		return nil, 0, fmt.Errorf("error decoding faculty: %w", err)
	}
	return faculty, total, nil
}

// Update applies a partial patch and returns the updated document
func (r *FacultyRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Faculty, error) {
	set["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrFacultyAlreadyExists
		}
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrFacultyNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the faculty document permanently
func (r *FacultyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// CountByDepartment counts faculty assigned to a department
func (r *FacultyRepository) CountByDepartment(ctx context.Context, departmentID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"department": departmentID})
	if err != nil {
		return 0, fmt.Errorf("error counting department faculty: %w", err)
	}
	return count, nil
}

// GroupByDesignation aggregates a department's faculty counts per designation
func (r *FacultyRepository) GroupByDesignation(ctx context.Context, departmentID primitive.ObjectID) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"department": departmentID}}},
		{{Key: "$group", Value: bson.M{"_id": "$designation", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating faculty designations: %w", err)
	}
	defer cursor.Close(ctx)

	groups := make([]models.GroupCount, 0)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding designation groups: %w", err)
	}
	return groups, nil
}

// SummariesByIDs fetches lightweight summaries for reference population
func (r *FacultyRepository) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.FacultySummary, error) {
	summaries := make(map[primitive.ObjectID]*models.FacultySummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error loading faculty summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var faculty models.Faculty
		if err := cursor.Decode(&faculty); err != nil {
			return nil, fmt.Errorf("error decoding faculty summary: %w", err)
		}
		summaries[faculty.ID] = faculty.Summary()
	}
	return summaries, cursor.Err()
}
