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

// ChallengeRepository serves the immutable challenge catalog.
type ChallengeRepository struct {
	collection *mongo.Collection
}

// NewChallengeRepository creates a new instance of ChallengeRepository.
func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{
		collection: db.Collection("challenges"),
	}
}

// Seed inserts the catalog when the collection is empty.
func (r *ChallengeRepository) Seed(ctx context.Context, challenges []models.Challenge) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count challenges: %v", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(challenges))
	for i, challenge := range challenges {
		docs[i] = challenge
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed challenges: %v", err)
	}
	logrus.WithField("count", len(challenges)).Info("Seeded challenge catalog")
	return nil
}

// GetChallenge fetches a single catalog entry.
func (r *ChallengeRepository) GetChallenge(ctx context.Context, id string) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&challenge)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("challenge not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find challenge: %v", err)
	}
	return &challenge, nil
}

// GetAllChallenges returns the catalog ordered by point value ascending.
func (r *ChallengeRepository) GetAllChallenges(ctx context.Context) ([]models.Challenge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "points", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %v", err)
	}
	defer cursor.Close(ctx)

	var challenges []models.Challenge
	if err := cursor.All(ctx, &challenges); err != nil {
		return nil, fmt.Errorf("failed to decode challenges: %v", err)
	}
	return challenges, nil
}
