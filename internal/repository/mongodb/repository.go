package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// ErrScheduleNotFound is returned when no schedule exists for a week.
var ErrScheduleNotFound = errors.New("schedule not found")

// Repository defines the schedule persistence operations.
type Repository interface {
	SaveSchedule(ctx context.Context, schedule models.Schedule) error
	ScheduleForWeek(ctx context.Context, weekStartDate string) (models.Schedule, error)
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "schedules",
	}, nil
}

// SaveSchedule stores a schedule, replacing any prior schedule for the same
// week. Regeneration fully replaces, never merges.
func (r *MongoDBRepository) SaveSchedule(ctx context.Context, schedule models.Schedule) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	filter := bson.M{"week_start_date": schedule.WeekStartDate}
	opts := options.Replace().SetUpsert(true)

	if _, err := collection.ReplaceOne(ctx, filter, schedule, opts); err != nil {
		return fmt.Errorf("failed to save schedule for week %s: %w", schedule.WeekStartDate, err)
	}
	return nil
}

// ScheduleForWeek loads the schedule stored for the given Monday.
func (r *MongoDBRepository) ScheduleForWeek(ctx context.Context, weekStartDate string) (models.Schedule, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	var schedule models.Schedule
	err := collection.FindOne(ctx, bson.M{"week_start_date": weekStartDate}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Schedule{}, ErrScheduleNotFound
	}
	if err != nil {
		return models.Schedule{}, fmt.Errorf("failed to load schedule for week %s: %w", weekStartDate, err)
	}
	return schedule, nil
}

// ListSchedules returns every stored schedule, most recent week first.
func (r *MongoDBRepository) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"week_start_date": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
