package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/internal/repository"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(n int) *int { return &n }

func testRewards() []models.Reward {
	return []models.Reward{
		{ID: "reward-tree", Title: "Plant a Tree", PointsCost: 1850, Available: true, ExpiryDays: days(30)},
		{ID: "reward-bike", Title: "Bike Tune-Up", PointsCost: 3000, Available: true},
		{ID: "reward-cup", Title: "Reusable Cup", PointsCost: 500, Available: true},
	}
}

func newRewardFixture(t *testing.T, balance int) (*services.RewardService, *services.NotificationService, *repository.MemoryStore, *models.User) {
	t.Helper()

	store := repository.NewMemoryStore()
	store.SeedCatalog(testRewards(), nil, nil)

	user, err := store.CreateUser(context.Background(), &models.User{
		Name:      "Aruzhan",
		Email:     "aruzhan@example.com",
		EcoPoints: balance,
	})
	require.NoError(t, err)

	notifications := services.NewNotificationService(store)
	rewards := services.NewRewardService(store, store, notifications, nil)
	return rewards, notifications, store, user
}

func TestRedeemDeductsCost(t *testing.T) {
	rewards, notifications, _, user := newRewardFixture(t, 2350)
	ctx := context.Background()

	result, err := rewards.Redeem(ctx, user.ID, "reward-tree")
	require.NoError(t, err)

	assert.Equal(t, 500, result.UpdatedPoints)
	assert.Equal(t, "reward-tree", result.Reward.ID)
	require.NotNil(t, result.Redemption)
	assert.NotEmpty(t, result.Redemption.VoucherCode)
	assert.Equal(t, 1850, result.Redemption.PointsSpent)
	require.NotNil(t, result.Redemption.ExpiresAt)

	// A "reward" notification is emitted for the buyer.
	feed, err := notifications.List(ctx, user.ID.Hex(), 0, nil)
	require.NoError(t, err)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, models.NotificationTypeReward, feed.Notifications[0].Type)
}

func TestRedeemInsufficientPointsLeavesBalance(t *testing.T) {
	rewards, _, store, user := newRewardFixture(t, 2350)
	ctx := context.Background()

	_, err := rewards.Redeem(ctx, user.ID, "reward-bike")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInsufficientPoints))

	got, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2350, got.EcoPoints, "failed redemption must not touch the balance")
}

func TestRedeemNeverGoesNegative(t *testing.T) {
	rewards, _, store, user := newRewardFixture(t, 2350)
	ctx := context.Background()

	// Spend down the balance until every further attempt is denied.
	for i := 0; i < 10; i++ {
		if _, err := rewards.Redeem(ctx, user.ID, "reward-cup"); err != nil {
			assert.True(t, apperrors.IsCode(err, apperrors.CodeInsufficientPoints))
			break
		}
	}

	got, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.EcoPoints, 0)
	assert.Equal(t, 2350%500, got.EcoPoints)
}

func TestRedeemUnknownReward(t *testing.T) {
	rewards, _, _, user := newRewardFixture(t, 2350)

	_, err := rewards.Redeem(context.Background(), user.ID, "no-such-reward")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestListRewardsAffordableFirst(t *testing.T) {
	rewards, _, _, user := newRewardFixture(t, 600)

	list, err := rewards.ListRewards(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Affordable rewards come first, each group ordered by cost.
	assert.Equal(t, "reward-cup", list[0].ID)
	assert.Equal(t, "reward-tree", list[1].ID)
	assert.Equal(t, "reward-bike", list[2].ID)
}

func TestCanAfford(t *testing.T) {
	user := &models.User{EcoPoints: 500}

	assert.True(t, services.CanAfford(user, &models.Reward{PointsCost: 500}))
	assert.True(t, services.CanAfford(user, &models.Reward{PointsCost: 499}))
	assert.False(t, services.CanAfford(user, &models.Reward{PointsCost: 501}))
}

func TestRemainingDays(t *testing.T) {
	redeemedAt := time.Now().Add(-10 * 24 * time.Hour)

	got := services.RemainingDays(&models.Reward{ExpiryDays: days(30)}, redeemedAt)
	require.NotNil(t, got)
	assert.Equal(t, 20, *got)

	expired := services.RemainingDays(&models.Reward{ExpiryDays: days(5)}, redeemedAt)
	require.NotNil(t, expired)
	assert.Equal(t, 0, *expired, "expiry is clamped at zero")

	assert.Nil(t, services.RemainingDays(&models.Reward{}, redeemedAt))
}
