package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/baris/collegehub/internal/config"
	"github.com/baris/collegehub/internal/pkg/logger"
)

// Collection names used across the repositories.
const (
	CollectionDepartments = "departments"
	CollectionFaculty     = "faculties"
	CollectionCourses     = "courses"
	CollectionStudents    = "students"
)

// MongoDB database connection structure
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB creates a new MongoDB client and verifies connectivity with a ping
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	connectTimeout := cfg.MongoConnectTimeout()
	socketTimeout := cfg.MongoSocketTimeout()

	clientOpts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return &MongoDB{Client: client, Database: client.Database(cfg.Mongo.Database)},
			fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &MongoDB{Client: client, Database: client.Database(cfg.Mongo.Database)}, nil
}

// EnsureIndexes creates the unique indexes the application relies on for
// duplicate-key detection. Safe to call on every startup.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		CollectionDepartments: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: unique},
		},
		CollectionFaculty: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "facultyId", Value: 1}}, Options: unique},
		},
		CollectionStudents: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "studentId", Value: 1}}, Options: unique},
		},
		CollectionCourses: {
			{Keys: bson.D{{Key: "courseCode", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range specs {
		if _, err := db.Database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}

	logger.Debug().Msg("Database indexes ensured")
	return nil
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) {
	if db.Client != nil {
		if err := db.Client.Disconnect(ctx); err != nil {
			logger.Warn().Err(err).Msg("Error while disconnecting from database")
		}
	}
}
