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

func newNotificationFixture(t *testing.T) (*services.NotificationService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return services.NewNotificationService(store), store
}

// seedNotifications creates n notifications for the user, one minute apart,
// oldest first.
func seedNotifications(t *testing.T, svc *services.NotificationService, store *repository.MemoryStore, userID string, n int) {
	t.Helper()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		tick := base.Add(time.Duration(i) * time.Minute)
		store.Now = func() time.Time { return tick }
		require.NoError(t, svc.Create(context.Background(), userID, models.NotificationTypeSystem,
			"Update", "Something happened", "/"))
	}
	store.Now = time.Now
}

func TestListNewestFirstWithLimit(t *testing.T) {
	svc, store := newNotificationFixture(t)
	ctx := context.Background()

	seedNotifications(t, svc, store, "user-1", 5)

	feed, err := svc.List(ctx, "user-1", 2, nil)
	require.NoError(t, err)

	require.Len(t, feed.Notifications, 2)
	assert.Equal(t, int64(5), feed.Total)
	assert.Equal(t, int64(5), feed.UnreadCount)
	assert.True(t, feed.Notifications[0].Date.After(feed.Notifications[1].Date),
		"newest notification must come first")
}

func TestListDefaultLimit(t *testing.T) {
	svc, store := newNotificationFixture(t)

	seedNotifications(t, svc, store, "user-1", 15)

	feed, err := svc.List(context.Background(), "user-1", 0, nil)
	require.NoError(t, err)
	assert.Len(t, feed.Notifications, 10)
	assert.Equal(t, int64(15), feed.Total)
}

func TestListRequiresUserID(t *testing.T) {
	svc, _ := newNotificationFixture(t)

	_, err := svc.List(context.Background(), "", 0, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestMarkAllReadIdempotent(t *testing.T) {
	svc, store := newNotificationFixture(t)
	ctx := context.Background()

	seedNotifications(t, svc, store, "user-1", 3)

	updated, err := svc.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	unread, err := svc.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// A second sweep has nothing left to flip.
	updated, err = svc.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestMarkReadSpecificIDs(t *testing.T) {
	svc, store := newNotificationFixture(t)
	ctx := context.Background()

	seedNotifications(t, svc, store, "user-1", 3)

	feed, err := svc.List(ctx, "user-1", 0, nil)
	require.NoError(t, err)
	target := feed.Notifications[0].ID

	updated, err := svc.MarkRead(ctx, "user-1", []string{target, "no-such-id"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	unread, err := svc.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	// Marking the same id again flips nothing.
	updated, err = svc.MarkRead(ctx, "user-1", []string{target})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	svc, store := newNotificationFixture(t)
	ctx := context.Background()

	seedNotifications(t, svc, store, "user-1", 1)
	seedNotifications(t, svc, store, "user-2", 1)

	feed, err := svc.List(ctx, "user-1", 0, nil)
	require.NoError(t, err)
	target := feed.Notifications[0].ID

	// user-2 cannot flip user-1's notification.
	updated, err := svc.MarkRead(ctx, "user-2", []string{target})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	unread, err := svc.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestListReadFilter(t *testing.T) {
	svc, store := newNotificationFixture(t)
	ctx := context.Background()

	seedNotifications(t, svc, store, "user-1", 4)

	feed, err := svc.List(ctx, "user-1", 0, nil)
	require.NoError(t, err)
	_, err = svc.MarkRead(ctx, "user-1", []string{feed.Notifications[0].ID})
	require.NoError(t, err)

	read := true
	feed, err = svc.List(ctx, "user-1", 0, &read)
	require.NoError(t, err)
	assert.Len(t, feed.Notifications, 1)

	read = false
	feed, err = svc.List(ctx, "user-1", 0, &read)
	require.NoError(t, err)
	assert.Len(t, feed.Notifications, 3)
}

func TestCleanupExpired(t *testing.T) {
	svc, store := newNotificationFixture(t)
	ctx := context.Background()

	// One notification created 40 days ago, past the 30-day TTL.
	old := time.Now().Add(-40 * 24 * time.Hour)
	store.Now = func() time.Time { return old }
	require.NoError(t, svc.Create(ctx, "user-1", models.NotificationTypeSystem, "Old", "stale", "/"))

	store.Now = time.Now
	require.NoError(t, svc.Create(ctx, "user-1", models.NotificationTypeSystem, "New", "fresh", "/"))

	require.NoError(t, svc.CleanupExpired(ctx))

	feed, err := svc.List(ctx, "user-1", 0, nil)
	require.NoError(t, err)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "New", feed.Notifications[0].Title)
}
