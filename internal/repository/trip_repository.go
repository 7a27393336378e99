package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TripRepository stores the trip log.
type TripRepository struct {
	collection *mongo.Collection
}

func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{
		collection: db.Collection("trips"),
	}
}

// InsertTrip records a logged trip.
func (r *TripRepository) InsertTrip(ctx context.Context, trip *models.Trip) error {
	trip.LoggedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %v", err)
	}
	return nil
}

// GetUserTrips lists a user's trips, newest first.
func (r *TripRepository) GetUserTrips(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Trip, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "logged_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %v", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %v", err)
	}
	return trips, nil
}
