package services

import (
	"context"
	"fmt"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/internal/points"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxTripDistanceKM rejects obviously bogus trip logs.
const maxTripDistanceKM = 500

// TripService logs journeys and credits the eco points they earn.
type TripService struct {
	trips         TripStore
	users         UserStore
	notifications *NotificationService
	leaderboard   *LeaderboardService
}

func NewTripService(trips TripStore, users UserStore, notifications *NotificationService, leaderboard *LeaderboardService) *TripService {
	return &TripService{
		trips:         trips,
		users:         users,
		notifications: notifications,
		leaderboard:   leaderboard,
	}
}

// TripResult is returned by a successful trip log.
type TripResult struct {
	Trip          *models.Trip `json:"trip"`
	PointsEarned  int          `json:"pointsEarned"`
	UpdatedPoints int          `json:"updatedPoints"`
	LeveledUp     bool         `json:"leveledUp"`
}

// LogTrip records a trip and credits the points it earns. A level-up
// produces a system notification.
func (s *TripService) LogTrip(ctx context.Context, userID primitive.ObjectID, mode points.TransportMode, distanceKM float64) (*TripResult, error) {
	if !points.ValidMode(mode) {
		return nil, apperrors.Validation("unknown transport mode")
	}
	if distanceKM <= 0 {
		return nil, apperrors.Validation("distance must be positive")
	}
	if distanceKM > maxTripDistanceKM {
		return nil, apperrors.Validation("distance is implausibly large")
	}

	earned := points.ForTrip(mode, distanceKM)

	user, err := s.users.CreditPoints(ctx, userID, earned)
	if err != nil {
		return nil, err
	}

	trip := &models.Trip{
		UserID:       userID,
		Mode:         string(mode),
		DistanceKM:   distanceKM,
		PointsEarned: earned,
	}
	if err := s.trips.InsertTrip(ctx, trip); err != nil {
		logrus.WithError(err).Error("Failed to record trip")
		return nil, fmt.Errorf("failed to record trip: %v", err)
	}

	before := points.Level(user.EcoPoints - earned)
	after := points.Level(user.EcoPoints)
	leveledUp := after.Level > before.Level

	if leveledUp && s.notifications != nil {
		if err := s.notifications.Create(ctx, userID.Hex(), models.NotificationTypeSystem,
			"Level Up",
			fmt.Sprintf("You've reached level %d: %s!", after.Level, points.Badge(after.Level)),
			"/profile",
		); err != nil {
			logrus.WithError(err).Warn("Failed to create level-up notification")
		}
	}

	if earned > 0 && s.leaderboard != nil {
		go s.leaderboard.PublishTop(context.Background())
	}

	logrus.WithFields(logrus.Fields{
		"userID": userID.Hex(),
		"mode":   mode,
		"km":     distanceKM,
		"points": earned,
	}).Info("Trip logged")

	return &TripResult{
		Trip:          trip,
		PointsEarned:  earned,
		UpdatedPoints: user.EcoPoints,
		LeveledUp:     leveledUp,
	}, nil
}

// Trips lists a user's logged trips, newest first.
func (s *TripService) Trips(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Trip, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.trips.GetUserTrips(ctx, userID, limit)
}
