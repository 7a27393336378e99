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

func testEvents() []models.Event {
	return []models.Event{
		{
			ID:                   "event-cleanup",
			Title:                "River Cleanup",
			Date:                 time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
			MaxAttendees:         2,
			PointsReward:         75,
			RegistrationRequired: true,
		},
		{
			ID:                   "event-external",
			Title:                "City Bike Festival",
			Date:                 time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC),
			MaxAttendees:         500,
			RegistrationRequired: false,
			RegistrationURL:      "https://example.com/bike-festival",
		},
	}
}

func newEventFixture(t *testing.T) (*services.EventService, *repository.MemoryStore, *models.User) {
	t.Helper()

	store := repository.NewMemoryStore()
	store.SeedCatalog(nil, nil, testEvents())

	user, err := store.CreateUser(context.Background(), &models.User{
		Name:  "Marat",
		Email: "marat@example.com",
	})
	require.NoError(t, err)

	events := services.NewEventService(store, store, services.NewNotificationService(store), nil)
	return events, store, user
}

func TestRegisterForEvent(t *testing.T) {
	events, store, user := newEventFixture(t)
	ctx := context.Background()

	result, err := events.Register(ctx, user.ID, "event-cleanup")
	require.NoError(t, err)

	assert.Equal(t, 75, result.PointsGained)
	assert.Equal(t, 75, result.UpdatedPoints)
	assert.Equal(t, 1, result.Event.Attendees)

	got, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"event-cleanup"}, got.RegisteredEvents)
}

func TestRegisterTwiceRejected(t *testing.T) {
	events, _, user := newEventFixture(t)
	ctx := context.Background()

	_, err := events.Register(ctx, user.ID, "event-cleanup")
	require.NoError(t, err)

	_, err = events.Register(ctx, user.ID, "event-cleanup")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyRegistered))
}

func TestRegisterFullEventRolledBack(t *testing.T) {
	events, store, user := newEventFixture(t)
	ctx := context.Background()

	// Fill the two available spots with other users.
	for _, email := range []string{"a@example.com", "b@example.com"} {
		other, err := store.CreateUser(ctx, &models.User{Name: "Other", Email: email})
		require.NoError(t, err)
		_, err = events.Register(ctx, other.ID, "event-cleanup")
		require.NoError(t, err)
	}

	_, err := events.Register(ctx, user.ID, "event-cleanup")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	// The user record must not keep the failed registration or its points.
	got, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RegisteredEvents)
	assert.Equal(t, 0, got.EcoPoints)
}

func TestRegisterExternalEventRejected(t *testing.T) {
	events, _, user := newEventFixture(t)

	_, err := events.Register(context.Background(), user.ID, "event-external")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestRegisterUnknownEvent(t *testing.T) {
	events, _, user := newEventFixture(t)

	_, err := events.Register(context.Background(), user.ID, "no-such-event")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}
