package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/pkg/email"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardService owns the reward catalog and the redemption flow.
type RewardService struct {
	rewards       RewardStore
	users         UserStore
	notifications *NotificationService
	leaderboard   *LeaderboardService
}

func NewRewardService(rewards RewardStore, users UserStore, notifications *NotificationService, leaderboard *LeaderboardService) *RewardService {
	return &RewardService{
		rewards:       rewards,
		users:         users,
		notifications: notifications,
		leaderboard:   leaderboard,
	}
}

// CanAfford reports whether the user's balance covers the reward's cost.
func CanAfford(user *models.User, reward *models.Reward) bool {
	if user == nil || reward == nil {
		return false
	}
	return user.EcoPoints >= reward.PointsCost
}

// ListRewards returns the catalog. When a user is given, rewards they can
// afford sort first, each group ordered by cost ascending.
func (s *RewardService) ListRewards(ctx context.Context, user *models.User) ([]models.Reward, error) {
	rewards, err := s.rewards.GetAllRewards(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch reward catalog")
		return nil, fmt.Errorf("failed to fetch rewards: %v", err)
	}

	if user != nil {
		sort.SliceStable(rewards, func(i, j int) bool {
			affordI := user.EcoPoints >= rewards[i].PointsCost
			affordJ := user.EcoPoints >= rewards[j].PointsCost
			if affordI != affordJ {
				return affordI
			}
			return rewards[i].PointsCost < rewards[j].PointsCost
		})
	}
	return rewards, nil
}

// RedemptionResult is returned by a successful redemption.
type RedemptionResult struct {
	Reward        *models.Reward     `json:"reward"`
	Redemption    *models.Redemption `json:"redemption"`
	UpdatedPoints int                `json:"updatedPoints"`
}

// Redeem deducts the reward's cost from the user's balance and records the
// purchase. The balance check and the deduction happen in one atomic store
// update, so the balance can never go negative here.
func (s *RewardService) Redeem(ctx context.Context, userID primitive.ObjectID, rewardID string) (*RedemptionResult, error) {
	reward, err := s.rewards.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.RedeemReward(ctx, userID, rewardID, reward.PointsCost)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"userID":   userID.Hex(),
			"rewardID": rewardID,
		}).WithError(err).Warn("Redemption denied")
		return nil, err
	}

	redemption := &models.Redemption{
		UserID:      userID,
		RewardID:    reward.ID,
		PointsSpent: reward.PointsCost,
		VoucherCode: uuid.NewString(),
	}
	if reward.ExpiryDays != nil {
		expires := time.Now().AddDate(0, 0, *reward.ExpiryDays)
		redemption.ExpiresAt = &expires
	}
	if err := s.rewards.InsertRedemption(ctx, redemption); err != nil {
		// The deduction already happened; the voucher record is what failed.
		logrus.WithError(err).Error("Failed to record redemption")
		return nil, fmt.Errorf("failed to record redemption: %v", err)
	}

	if s.notifications != nil {
		if err := s.notifications.Create(ctx, userID.Hex(), models.NotificationTypeReward,
			"Reward Claimed",
			fmt.Sprintf("You have successfully claimed the %q reward.", reward.Title),
			"/rewards",
		); err != nil {
			logrus.WithError(err).Warn("Failed to create redemption notification")
		}
	}

	if user.Preferences.EmailNotifications {
		go func(to, title, code string) {
			body := fmt.Sprintf("You redeemed %q.\n\nYour voucher code: %s", title, code)
			if err := email.SendEmail(to, "Your EcoSphere reward voucher", body); err != nil {
				logrus.WithError(err).Warn("Failed to send voucher email")
			}
		}(user.Email, reward.Title, redemption.VoucherCode)
	}

	if s.leaderboard != nil {
		go s.leaderboard.PublishTop(context.Background())
	}

	logrus.WithFields(logrus.Fields{
		"userID":   userID.Hex(),
		"rewardID": rewardID,
		"balance":  user.EcoPoints,
	}).Info("Reward redeemed")

	return &RedemptionResult{
		Reward:        reward,
		Redemption:    redemption,
		UpdatedPoints: user.EcoPoints,
	}, nil
}

// Redemptions lists a user's past redemptions.
func (s *RewardService) Redemptions(ctx context.Context, userID primitive.ObjectID) ([]models.Redemption, error) {
	return s.rewards.GetUserRedemptions(ctx, userID)
}

// RemainingDays returns how many whole days remain before a redeemed reward
// expires, clamped at zero, or nil when the reward never expires.
func RemainingDays(reward *models.Reward, redeemedAt time.Time) *int {
	if reward == nil || reward.ExpiryDays == nil {
		return nil
	}
	expiry := redeemedAt.AddDate(0, 0, *reward.ExpiryDays)
	days := int(math.Ceil(time.Until(expiry).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return &days
}
