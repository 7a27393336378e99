package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository serves the event catalog and keeps the attendee count
// bounded by capacity.
type EventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection: db.Collection("events"),
	}
}

// Seed inserts the catalog when the collection is empty.
func (r *EventRepository) Seed(ctx context.Context, events []models.Event) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count events: %v", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(events))
	for i, event := range events {
		docs[i] = event
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed events: %v", err)
	}
	logrus.WithField("count", len(events)).Info("Seeded event catalog")
	return nil
}

// GetEvent fetches a single event.
func (r *EventRepository) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %v", err)
	}
	return &event, nil
}

// GetAllEvents returns the catalog ordered by date ascending.
func (r *EventRepository) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %v", err)
	}
	return events, nil
}

// IncrementAttendees bumps the attendee count, guarded so the count never
// exceeds capacity.
func (r *EventRepository) IncrementAttendees(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "$expr": bson.M{"$lt": bson.A{"$attendees", "$max_attendees"}}},
		bson.M{"$inc": bson.M{"attendees": 1}},
	)
	if err != nil {
		logrus.WithField("eventID", id).WithError(err).Error("Failed to increment attendees")
		return fmt.Errorf("failed to increment attendees: %v", err)
	}
	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("failed to look up event: %v", err)
		}
		if count == 0 {
			return apperrors.NotFound("event not found")
		}
		return apperrors.Validation("event is full")
	}
	return nil
}
