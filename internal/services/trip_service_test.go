package services_test

import (
	"context"
	"testing"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/internal/points"
	"github.com/ecosphere/ecosphere-api/internal/repository"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTripFixture(t *testing.T, balance int) (*services.TripService, *services.NotificationService, *models.User) {
	t.Helper()

	store := repository.NewMemoryStore()
	user, err := store.CreateUser(context.Background(), &models.User{
		Name:      "Saniya",
		Email:     "saniya@example.com",
		EcoPoints: balance,
	})
	require.NoError(t, err)

	notifications := services.NewNotificationService(store)
	trips := services.NewTripService(store, store, notifications, nil)
	return trips, notifications, user
}

func TestLogTripCreditsPoints(t *testing.T) {
	trips, _, user := newTripFixture(t, 0)

	// 6km by bicycle: 6*5 = 30 plus the active-mode bonus int(6/3)*2 = 4.
	result, err := trips.LogTrip(context.Background(), user.ID, points.ModeBicycle, 6)
	require.NoError(t, err)

	assert.Equal(t, 34, result.PointsEarned)
	assert.Equal(t, 34, result.UpdatedPoints)
	assert.False(t, result.LeveledUp)
	require.NotNil(t, result.Trip)
	assert.Equal(t, 6.0, result.Trip.DistanceKM)
}

func TestLogTripLevelUpNotification(t *testing.T) {
	trips, notifications, user := newTripFixture(t, 95)
	ctx := context.Background()

	// 95 + 34 crosses the 100-point threshold into level 1.
	result, err := trips.LogTrip(ctx, user.ID, points.ModeBicycle, 6)
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)

	feed, err := notifications.List(ctx, user.ID.Hex(), 0, nil)
	require.NoError(t, err)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, models.NotificationTypeSystem, feed.Notifications[0].Type)
	assert.Equal(t, "Level Up", feed.Notifications[0].Title)
}

func TestLogTripValidation(t *testing.T) {
	trips, _, user := newTripFixture(t, 0)
	ctx := context.Background()

	tests := []struct {
		name     string
		mode     points.TransportMode
		distance float64
	}{
		{"unknown mode", "hoverboard", 5},
		{"zero distance", points.ModeBus, 0},
		{"negative distance", points.ModeBus, -2},
		{"implausible distance", points.ModeBus, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trips.LogTrip(ctx, user.ID, tt.mode, tt.distance)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		})
	}
}

func TestLogTripZeroPointModes(t *testing.T) {
	trips, _, user := newTripFixture(t, 0)

	result, err := trips.LogTrip(context.Background(), user.ID, points.ModeCar, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PointsEarned)
	assert.Equal(t, 0, result.UpdatedPoints)
}

func TestTripsNewestFirst(t *testing.T) {
	trips, _, user := newTripFixture(t, 0)
	ctx := context.Background()

	for _, km := range []float64{1, 2, 3} {
		_, err := trips.LogTrip(ctx, user.ID, points.ModeWalking, km)
		require.NoError(t, err)
	}

	list, err := trips.Trips(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3.0, list[0].DistanceKM)
	assert.Equal(t, 2.0, list[1].DistanceKM)
}
