package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notificationTTL is how long a notification stays queryable before the
// cleanup job removes it.
const notificationTTL = 30 * 24 * time.Hour

// NotificationRepository stores per-user notifications. The read flag only
// ever flips from false to true.
type NotificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		collection: db.Collection("notifications"),
	}
}

// InsertNotification inserts a new notification.
func (r *NotificationRepository) InsertNotification(ctx context.Context, n *models.Notification) error {
	n.Date = time.Now()
	n.ExpiresAt = n.Date.Add(notificationTTL)

	if _, err := r.collection.InsertOne(ctx, n); err != nil {
		logrus.WithError(err).Error("Failed to insert notification")
		return fmt.Errorf("failed to create notification: %v", err)
	}
	return nil
}

// ListNotifications returns a user's notifications newest first, optionally
// filtered by read state and truncated to limit.
func (r *NotificationRepository) ListNotifications(ctx context.Context, userID string, limit int64, read *bool) ([]models.Notification, error) {
	filter := bson.M{"user_id": userID}
	if read != nil {
		filter["read"] = *read
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %v", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %v", err)
	}
	return notifications, nil
}

// MarkNotificationsRead flips the read flag on the given ids owned by the
// user. Already-read notifications are not counted, which makes the call
// idempotent.
func (r *NotificationRepository) MarkNotificationsRead(ctx context.Context, userID string, ids []string) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"user_id": userID, "_id": bson.M{"$in": ids}, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %v", err)
	}
	return result.ModifiedCount, nil
}

// MarkAllNotificationsRead flips every unread notification of the user.
func (r *NotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %v", err)
	}
	return result.ModifiedCount, nil
}

// CountNotifications counts a user's notifications, optionally by read state.
func (r *NotificationRepository) CountNotifications(ctx context.Context, userID string, read *bool) (int64, error) {
	filter := bson.M{"user_id": userID}
	if read != nil {
		filter["read"] = *read
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %v", err)
	}
	return count, nil
}

// DeleteExpiredNotifications removes notifications past their TTL.
func (r *NotificationRepository) DeleteExpiredNotifications(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": time.Now()}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired notifications: %v", err)
	}
	if result.DeletedCount > 0 {
		logrus.Infof("Deleted %d expired notifications", result.DeletedCount)
	}
	return result.DeletedCount, nil
}
