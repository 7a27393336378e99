package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a logged journey that earned eco points.
type Trip struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"userId"`
	Mode         string             `bson:"mode" json:"mode"`
	DistanceKM   float64            `bson:"distance_km" json:"distanceKm"`
	PointsEarned int                `bson:"points_earned" json:"pointsEarned"`
	LoggedAt     time.Time          `bson:"logged_at" json:"loggedAt"`
}
