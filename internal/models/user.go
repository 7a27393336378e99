package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Preferences holds a user's notification settings.
type Preferences struct {
	EmailNotifications bool   `bson:"email_notifications" json:"emailNotifications"`
	PushNotifications  bool   `bson:"push_notifications" json:"pushNotifications"`
	ReminderFrequency  string `bson:"reminder_frequency" json:"reminderFrequency"` // daily | weekly | never
}

// Achievement is a milestone unlocked on a user's profile.
type Achievement struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
}

// User represents an EcoSphere account. EcoPoints is the spendable balance
// and is never negative; CompletedChallenges has set semantics.
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email"`
	HashedPassword      string             `bson:"hashed_password" json:"-"`
	Bio                 string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Location            string             `bson:"location,omitempty" json:"location,omitempty"`
	Role                string             `bson:"role" json:"role"`
	EcoPoints           int                `bson:"eco_points" json:"ecoPoints"`
	Streak              int                `bson:"streak" json:"streak"`
	CompletedChallenges []string           `bson:"completed_challenges" json:"completedChallenges"`
	RegisteredEvents    []string           `bson:"registered_events" json:"registeredEvents"`
	RedeemedRewards     []string           `bson:"redeemed_rewards" json:"redeemedRewards"`
	Preferences         Preferences        `bson:"preferences" json:"preferences"`
	Achievements        []Achievement      `bson:"achievements,omitempty" json:"achievements,omitempty"`
	LastEarnedAt        time.Time          `bson:"last_earned_at,omitempty" json:"-"`
	CreatedAt           time.Time          `bson:"created_at" json:"joinDate"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"-"`
}

// PublicUser is the projection exposed on leaderboards and community pages.
type PublicUser struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	EcoPoints int                `json:"ecoPoints"`
	Streak    int                `json:"streak"`
}

// Public strips everything not meant for other users' eyes.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		EcoPoints: u.EcoPoints,
		Streak:    u.Streak,
	}
}
