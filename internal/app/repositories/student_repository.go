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

// StudentListFilter carries the optional list constraints.
type StudentListFilter struct {
	DepartmentID *primitive.ObjectID
	CourseID     *primitive.ObjectID
	Semester     *int
	Status       string
	Search       string
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{
		collection: database.Collection(db.CollectionStudents),
	}
}

// buildStudentFilter translates the list constraints into a query document.
func buildStudentFilter(filter StudentListFilter) bson.M {
	exact := bson.M{}
	if filter.DepartmentID != nil {
		exact["department"] = *filter.DepartmentID
	}
	if filter.CourseID != nil {
		exact["course"] = *filter.CourseID
	}
	if filter.Semester != nil {
		exact["semester"] = *filter.Semester
	}
	if filter.Status != "" {
		exact["status"] = filter.Status
	}
	return MergeFilters(exact, SearchFilter(filter.Search, "firstName", "lastName", "email", "studentId"))
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by document ID
func (r *StudentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetByEmail retrieves a student for credential checks
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}
	return &student, nil
}

// List returns a page of students ordered newest first
func (r *StudentRepository) List(ctx context.Context, filter StudentListFilter, skip, limit int64) ([]*models.Student, int64, error) {
	return r.list(ctx, buildStudentFilter(filter), listOptions(skip, limit, "createdAt", false))
}

// ListByDepartment returns a department's students ordered by first name
func (r *StudentRepository) ListByDepartment(ctx context.Context, departmentID primitive.ObjectID, skip, limit int64) ([]*models.Student, int64, error) {
	return r.list(ctx, bson.M{"department": departmentID}, listOptions(skip, limit, "firstName", true))
}

// ListByCourse returns the students enrolled in a course, first name order
func (r *StudentRepository) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]*models.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"course": courseID},
		options.Find().SetSort(bson.D{{Key: "firstName", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing course students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]*models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding course students: %w", err)
	}
	return students, nil
}

func (r *StudentRepository) list(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*models.Student, int64, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]*models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, 0, fmt.Errorf("error decoding students: %w", err)
	}
	return students, total, nil
}

// Update applies a partial patch and returns the updated document
func (r *StudentRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Student, error) {
	set["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrStudentAlreadyExists
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the student document permanently
func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// CountByDepartment counts students assigned to a department
func (r *StudentRepository) CountByDepartment(ctx context.Context, departmentID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"department": departmentID})
	if err != nil {
		return 0, fmt.Errorf("error counting department students: %w", err)
	}
	return count, nil
}

// CountByCourse counts students enrolled in a course
func (r *StudentRepository) CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"course": courseID})
	if err != nil {
		return 0, fmt.Errorf("error counting course students: %w", err)
	}
	return count, nil
}

// GroupBySemester aggregates a department's student counts per semester
func (r *StudentRepository) GroupBySemester(ctx context.Context, departmentID primitive.ObjectID) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"department": departmentID}}},
		{{Key: "$group", Value: bson.M{"_id": "$semester", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating student semesters: %w", err)
	}
	defer cursor.Close(ctx)

	groups := make([]models.GroupCount, 0)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding semester groups: %w", err)
	}
	return groups, nil
}
