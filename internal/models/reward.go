package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reward is an immutable catalog entry redeemable for eco points.
// ExpiryDays of nil means the reward never expires once redeemed.
type Reward struct {
	ID                string `bson:"_id" json:"id"`
	Title             string `bson:"title" json:"title"`
	Description       string `bson:"description" json:"description"`
	PointsCost        int    `bson:"points_cost" json:"pointsCost"`
	Category          string `bson:"category" json:"category"`
	Provider          string `bson:"provider" json:"provider"`
	ExpiryDays        *int   `bson:"expiry_days,omitempty" json:"expiryDays"`
	RedemptionDetails string `bson:"redemption_details" json:"redemptionDetails"`
	Image             string `bson:"image" json:"image"`
	Available         bool   `bson:"available" json:"available"`
}

// Redemption records a completed reward purchase.
type Redemption struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	RewardID    string             `bson:"reward_id" json:"rewardId"`
	PointsSpent int                `bson:"points_spent" json:"pointsSpent"`
	VoucherCode string             `bson:"voucher_code" json:"voucherCode"`
	RedeemedAt  time.Time          `bson:"redeemed_at" json:"redeemedAt"`
	ExpiresAt   *time.Time         `bson:"expires_at,omitempty" json:"expiresAt,omitempty"`
}
