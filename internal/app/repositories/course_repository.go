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

// CourseListFilter carries the optional list constraints. IsActive defaults
// to true at the service layer; nil here means no constraint.
type CourseListFilter struct {
	DepartmentID *primitive.ObjectID
	Type         string
	Semester     *int
	IsActive     *bool
	Search       string
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *mongo.Database) *CourseRepository {
	return &CourseRepository{
		collection: database.Collection(db.CollectionCourses),
	}
}

// buildCourseFilter translates the list constraints into a query document.
func buildCourseFilter(filter CourseListFilter) bson.M {
	exact := bson.M{}
	if filter.DepartmentID != nil {
		exact["department"] = *filter.DepartmentID
	}
	if filter.Type != "" {
		exact["type"] = filter.Type
	}
	if filter.Semester != nil {
		exact["semester"] = *filter.Semester
	}
	if filter.IsActive != nil {
		exact["isActive"] = *filter.IsActive
	}
	return MergeFilters(exact, SearchFilter(filter.Search, "courseName", "courseCode", "description"))
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by document ID
func (r *CourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// ExistsByCode reports whether a course already uses the given code
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"courseCode": code})
	if err != nil {
		return false, fmt.Errorf("error checking course code: %w", err)
	}
	return count > 0, nil
}

// List returns a page of courses ordered newest first
func (r *CourseRepository) List(ctx context.Context, filter CourseListFilter, skip, limit int64) ([]*models.Course, int64, error) {
	return r.list(ctx, buildCourseFilter(filter), listOptions(skip, limit, "createdAt", false))
}

// ListByDepartment returns a department's active courses ordered newest first
func (r *CourseRepository) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID, skip, limit int64) ([]*models.Course, int64, error) {
	query := bson.M{"department": departmentID, "isActive": true}
	return r.list(ctx, query, listOptions(skip, limit, "createdAt", false))
}

func (r *CourseRepository) list(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*models.Course, int64, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := make([]*models.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, total, nil
}

// Update applies a partial patch and returns the updated document
func (r *CourseRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Course, error) {
	set["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return r.GetByID(ctx, id)
}

// SoftDelete marks a course inactive instead of removing the document
func (r *CourseRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	set := bson.M{"isActive": false, "updatedAt": time.Now().UTC()}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error deactivating course: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// SetEnrollment stores a recomputed enrollment counter
func (r *CourseRepository) SetEnrollment(ctx context.Context, id primitive.ObjectID, enrollment int64) error {
	set := bson.M{"currentEnrollment": enrollment, "updatedAt": time.Now().UTC()}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating course enrollment: %w", err)
	}
	return nil
}

// IDs returns the document IDs of every course
func (r *CourseRepository) IDs(ctx context.Context) ([]primitive.ObjectID, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("error listing course ids: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding course id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

// CountActiveByDepartment counts a department's active courses
func (r *CourseRepository) CountActiveByDepartment(ctx context.Context, departmentID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"department": departmentID, "isActive": true})
	if err != nil {
		return 0, fmt.Errorf("error counting department courses: %w", err)
	}
	return count, nil
}

// SummariesByIDs fetches lightweight summaries for reference population
func (r *CourseRepository) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.CourseSummary, error) {
	summaries := make(map[primitive.ObjectID]*models.CourseSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error loading course summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var course models.Course
		if err := cursor.Decode(&course); err != nil {
			return nil, fmt.Errorf("error decoding course summary: %w", err)
		}
		summaries[course.ID] = course.Summary()
	}
	return summaries, cursor.Err()
}
