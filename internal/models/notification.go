package models

import "time"

// Notification types. The producing side tags each notification with the
// feature area it links into.
const (
	NotificationTypeChallenge   = "challenge"
	NotificationTypeReward      = "reward"
	NotificationTypeAchievement = "achievement"
	NotificationTypeEvent       = "event"
	NotificationTypeSystem      = "system"
)

// Notification is a per-user message with a one-way unread -> read state
// machine. Notifications are never deleted through the API; an expiry sweep
// removes them after 30 days.
type Notification struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Date      time.Time `bson:"date" json:"date"`
	Read      bool      `bson:"read" json:"read"`
	Link      string    `bson:"link" json:"link"`
	ExpiresAt time.Time `bson:"expires_at" json:"-"`
}
