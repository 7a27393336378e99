package services

import (
	"context"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces consumed by the service layer. The Mongo repositories in
// internal/repository implement them for production; the in-memory store
// implements them for tests. Every state-mutating method is atomic per
// affected record, which is what carries the non-negative-balance and
// at-most-once invariants under concurrent requests.

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error)

	// CreditPoints adds a non-negative delta to the balance and stamps the
	// earning time used by the streak lapse scan.
	CreditPoints(ctx context.Context, id primitive.ObjectID, pts int) (*models.User, error)

	// RedeemReward deducts cost only when the balance covers it and appends
	// the reward id to the redeemed list in the same update.
	RedeemReward(ctx context.Context, id primitive.ObjectID, rewardID string, cost int) (*models.User, error)

	// CompleteChallenge credits points and bumps the streak only when the
	// challenge id is not already in the completed set.
	CompleteChallenge(ctx context.Context, id primitive.ObjectID, challengeID string, pts int) (*models.User, error)

	// RegisterEvent appends the event id to the registered list only when it
	// is not already present, crediting pts alongside.
	RegisterEvent(ctx context.Context, id primitive.ObjectID, eventID string, pts int) (*models.User, error)

	// UnregisterEvent removes the event id and reclaims pts, compensating a
	// failed capacity claim.
	UnregisterEvent(ctx context.Context, id primitive.ObjectID, eventID string, pts int) error

	// AddAchievement attaches the achievement unless it is already present.
	// Reports whether it was newly added.
	AddAchievement(ctx context.Context, id primitive.ObjectID, achievement models.Achievement) (bool, error)

	TopUsers(ctx context.Context, n int64) ([]models.User, error)
	ResetLapsedStreaks(ctx context.Context, cutoff time.Time) (int64, error)
}

type RewardStore interface {
	GetReward(ctx context.Context, id string) (*models.Reward, error)
	GetAllRewards(ctx context.Context) ([]models.Reward, error)
	InsertRedemption(ctx context.Context, redemption *models.Redemption) error
	GetUserRedemptions(ctx context.Context, userID primitive.ObjectID) ([]models.Redemption, error)
}

type ChallengeStore interface {
	GetChallenge(ctx context.Context, id string) (*models.Challenge, error)
	GetAllChallenges(ctx context.Context) ([]models.Challenge, error)
}

type EventStore interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)

	// IncrementAttendees bumps the attendee count only while below capacity.
	IncrementAttendees(ctx context.Context, id string) error
}

type NotificationStore interface {
	InsertNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, userID string, limit int64, read *bool) ([]models.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string, ids []string) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
	CountNotifications(ctx context.Context, userID string, read *bool) (int64, error)
	DeleteExpiredNotifications(ctx context.Context) (int64, error)
}

type TripStore interface {
	InsertTrip(ctx context.Context, trip *models.Trip) error
	GetUserTrips(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Trip, error)
}
