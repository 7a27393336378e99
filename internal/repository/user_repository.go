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

// UserRepository handles database operations related to users. The economy
// mutations (redeem, complete, register) are single conditional updates so
// the balance guard and set semantics hold under concurrent requests.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// CreateUser inserts a new user into the database.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert user into database")
		return nil, fmt.Errorf("failed to insert user: %v", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logrus.Error("Failed to cast inserted ID to ObjectID")
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	user.ID = insertedID

	logrus.WithField("userID", user.ID.Hex()).Info("User inserted successfully")
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %v", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %v", err)
	}
	return &user, nil
}

// UpdateProfile applies a whitelisted set of fields to the user document.
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	fields["updated_at"] = time.Now()

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		logrus.WithField("userID", id.Hex()).WithError(err).Error("Failed to update user")
		return nil, fmt.Errorf("failed to update user: %v", err)
	}

	logrus.WithField("userID", id.Hex()).Info("User updated successfully")
	return &user, nil
}

// CreditPoints adds pts to the balance. Negative deltas are rejected here;
// the only deduction path is RedeemReward with its balance guard.
func (r *UserRepository) CreditPoints(ctx context.Context, id primitive.ObjectID, pts int) (*models.User, error) {
	if pts < 0 {
		return nil, fmt.Errorf("point credit must not be negative")
	}

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"eco_points": pts},
			"$set": bson.M{"last_earned_at": time.Now(), "updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to credit points: %v", err)
	}
	return &user, nil
}

// RedeemReward deducts cost and records the reward id in one conditional
// update. The eco_points >= cost filter is what keeps the balance from ever
// going negative.
func (r *UserRepository) RedeemReward(ctx context.Context, id primitive.ObjectID, rewardID string, cost int) (*models.User, error) {
	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "eco_points": bson.M{"$gte": cost}},
		bson.M{
			"$inc":      bson.M{"eco_points": -cost},
			"$addToSet": bson.M{"redeemed_rewards": rewardID},
			"$set":      bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.classifyGuardMiss(ctx, id, apperrors.InsufficientPoints("not enough eco points"))
	}
	if err != nil {
		logrus.WithField("userID", id.Hex()).WithError(err).Error("Failed to redeem reward")
		return nil, fmt.Errorf("failed to redeem reward: %v", err)
	}
	return &user, nil
}

// CompleteChallenge credits points and bumps the streak, guarded by the
// completed_challenges set so a challenge is credited at most once.
func (r *UserRepository) CompleteChallenge(ctx context.Context, id primitive.ObjectID, challengeID string, pts int) (*models.User, error) {
	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "completed_challenges": bson.M{"$ne": challengeID}},
		bson.M{
			"$inc":      bson.M{"eco_points": pts, "streak": 1},
			"$addToSet": bson.M{"completed_challenges": challengeID},
			"$set":      bson.M{"last_earned_at": time.Now(), "updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.classifyGuardMiss(ctx, id, apperrors.AlreadyCompleted("challenge already completed"))
	}
	if err != nil {
		logrus.WithField("userID", id.Hex()).WithError(err).Error("Failed to complete challenge")
		return nil, fmt.Errorf("failed to complete challenge: %v", err)
	}
	return &user, nil
}

// RegisterEvent records the event on the user, crediting its points reward.
func (r *UserRepository) RegisterEvent(ctx context.Context, id primitive.ObjectID, eventID string, pts int) (*models.User, error) {
	update := bson.M{
		"$addToSet": bson.M{"registered_events": eventID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	if pts > 0 {
		update["$inc"] = bson.M{"eco_points": pts}
		update["$set"] = bson.M{"last_earned_at": time.Now(), "updated_at": time.Now()}
	}

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "registered_events": bson.M{"$ne": eventID}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.classifyGuardMiss(ctx, id, apperrors.AlreadyRegistered("already registered for event"))
	}
	if err != nil {
		logrus.WithField("userID", id.Hex()).WithError(err).Error("Failed to register event")
		return nil, fmt.Errorf("failed to register for event: %v", err)
	}
	return &user, nil
}

// UnregisterEvent pulls an event id back off the user. Compensation path
// for a registration whose capacity claim failed.
func (r *UserRepository) UnregisterEvent(ctx context.Context, id primitive.ObjectID, eventID string, pts int) error {
	update := bson.M{"$pull": bson.M{"registered_events": eventID}}
	if pts > 0 {
		update["$inc"] = bson.M{"eco_points": -pts}
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "registered_events": eventID}, update)
	if err != nil {
		return fmt.Errorf("failed to unregister event: %v", err)
	}
	return nil
}

// AddAchievement attaches the achievement unless one with the same id is
// already present. Reports whether it was newly added.
func (r *UserRepository) AddAchievement(ctx context.Context, id primitive.ObjectID, achievement models.Achievement) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "achievements.id": bson.M{"$ne": achievement.ID}},
		bson.M{"$push": bson.M{"achievements": achievement}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to add achievement: %v", err)
	}
	return result.ModifiedCount > 0, nil
}

// TopUsers returns the n users with the highest balances.
func (r *UserRepository) TopUsers(ctx context.Context, n int64) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "eco_points", Value: -1}}).
		SetLimit(n)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top users: %v", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode top users: %v", err)
	}
	return users, nil
}

// ResetLapsedStreaks zeroes the streak of every user who has not earned
// points since the cutoff. Returns the number of users reset.
func (r *UserRepository) ResetLapsedStreaks(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"streak": bson.M{"$gt": 0}, "last_earned_at": bson.M{"$lt": cutoff}},
		bson.M{"$set": bson.M{"streak": 0, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reset lapsed streaks: %v", err)
	}
	return result.ModifiedCount, nil
}

// classifyGuardMiss distinguishes a failed conditional update caused by the
// guard from one caused by a missing user.
func (r *UserRepository) classifyGuardMiss(ctx context.Context, id primitive.ObjectID, guardErr error) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to look up user: %v", err)
	}
	if count == 0 {
		return apperrors.NotFound("user not found")
	}
	return guardErr
}
