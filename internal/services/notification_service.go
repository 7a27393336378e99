package services

import (
	"context"
	"fmt"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// defaultNotificationLimit caps a feed query when the caller does not give
// an explicit limit.
const defaultNotificationLimit = 10

// NotificationService owns the per-user notification feed.
type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// Create appends an unread notification to a user's feed.
func (s *NotificationService) Create(ctx context.Context, userID, notifType, title, message, link string) error {
	if userID == "" {
		return apperrors.Validation("userId is required")
	}

	n := &models.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Read:    false,
		Link:    link,
	}
	if err := s.store.InsertNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %v", err)
	}
	return nil
}

// Feed is the response shape of a notification list query.
type Feed struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
	Total         int64                 `json:"total"`
}

// List returns a user's notifications newest first, truncated to limit
// (default 10), optionally filtered by read state, along with the user's
// unread and total counts.
func (s *NotificationService) List(ctx context.Context, userID string, limit int64, read *bool) (*Feed, error) {
	if userID == "" {
		return nil, apperrors.Validation("userId is required")
	}
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, err := s.store.ListNotifications(ctx, userID, limit, read)
	if err != nil {
		logrus.WithField("userID", userID).WithError(err).Error("Failed to list notifications")
		return nil, fmt.Errorf("failed to list notifications: %v", err)
	}

	unread, err := s.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, err := s.store.CountNotifications(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %v", err)
	}

	return &Feed{Notifications: notifications, UnreadCount: unread, Total: total}, nil
}

// MarkRead flips the read flag on the given notification ids owned by the
// user and returns the count actually flipped. Marking an already-read
// notification is a no-op, so repeated calls are idempotent.
func (s *NotificationService) MarkRead(ctx context.Context, userID string, ids []string) (int64, error) {
	if userID == "" {
		return 0, apperrors.Validation("userId is required")
	}

	updated, err := s.store.MarkNotificationsRead(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %v", err)
	}
	return updated, nil
}

// MarkAllRead flips every unread notification of the user.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, apperrors.Validation("userId is required")
	}

	updated, err := s.store.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %v", err)
	}
	return updated, nil
}

// UnreadCount counts the user's unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, apperrors.Validation("userId is required")
	}

	unread := false
	count, err := s.store.CountNotifications(ctx, userID, &unread)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %v", err)
	}
	return count, nil
}

// CleanupExpired removes notifications past their TTL. Run periodically by
// the scheduler.
func (s *NotificationService) CleanupExpired(ctx context.Context) error {
	if _, err := s.store.DeleteExpiredNotifications(ctx); err != nil {
		return fmt.Errorf("failed to clean up notifications: %v", err)
	}
	return nil
}
