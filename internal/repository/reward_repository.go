package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RewardRepository serves the immutable reward catalog and the redemption
// ledger.
type RewardRepository struct {
	rewards     *mongo.Collection
	redemptions *mongo.Collection
}

// NewRewardRepository creates a new instance of RewardRepository.
func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{
		rewards:     db.Collection("rewards"),
		redemptions: db.Collection("redemptions"),
	}
}

// Seed inserts the catalog when the collection is empty.
func (r *RewardRepository) Seed(ctx context.Context, rewards []models.Reward) error {
	count, err := r.rewards.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count rewards: %v", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(rewards))
	for i, reward := range rewards {
		docs[i] = reward
	}
	if _, err := r.rewards.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed rewards: %v", err)
	}
	logrus.WithField("count", len(rewards)).Info("Seeded reward catalog")
	return nil
}

// GetReward fetches a single catalog entry.
func (r *RewardRepository) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	var reward models.Reward
	err := r.rewards.FindOne(ctx, bson.M{"_id": id}).Decode(&reward)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("reward not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find reward: %v", err)
	}
	return &reward, nil
}

// GetAllRewards returns the catalog ordered by cost ascending.
func (r *RewardRepository) GetAllRewards(ctx context.Context) ([]models.Reward, error) {
	opts := options.Find().SetSort(bson.D{{Key: "points_cost", Value: 1}})
	cursor, err := r.rewards.Find(ctx, bson.M{"available": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rewards: %v", err)
	}
	defer cursor.Close(ctx)

	var rewards []models.Reward
	if err := cursor.All(ctx, &rewards); err != nil {
		return nil, fmt.Errorf("failed to decode rewards: %v", err)
	}
	return rewards, nil
}

// InsertRedemption records a completed purchase.
func (r *RewardRepository) InsertRedemption(ctx context.Context, redemption *models.Redemption) error {
	redemption.RedeemedAt = time.Now()
	if _, err := r.redemptions.InsertOne(ctx, redemption); err != nil {
		logrus.WithError(err).Error("Failed to insert redemption")
		return fmt.Errorf("failed to record redemption: %v", err)
	}
	return nil
}

// GetUserRedemptions lists a user's purchases, newest first.
func (r *RewardRepository) GetUserRedemptions(ctx context.Context, userID primitive.ObjectID) ([]models.Redemption, error) {
	opts := options.Find().SetSort(bson.D{{Key: "redeemed_at", Value: -1}})
	cursor, err := r.redemptions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch redemptions: %v", err)
	}
	defer cursor.Close(ctx)

	var redemptions []models.Redemption
	if err := cursor.All(ctx, &redemptions); err != nil {
		return nil, fmt.Errorf("failed to decode redemptions: %v", err)
	}
	return redemptions, nil
}
