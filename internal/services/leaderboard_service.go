package services

import (
	"context"
	"fmt"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/internal/points"
	"github.com/sirupsen/logrus"
)

// Broadcaster pushes updates to connected live-feed clients. The websocket
// hub implements it; a nil Broadcaster disables the feed.
type Broadcaster interface {
	Broadcast(event string, data interface{})
}

// LeaderboardService ranks users by eco-point balance.
type LeaderboardService struct {
	users       UserStore
	broadcaster Broadcaster
}

func NewLeaderboardService(users UserStore, broadcaster Broadcaster) *LeaderboardService {
	return &LeaderboardService{users: users, broadcaster: broadcaster}
}

// Top returns the n highest-ranked users with their derived level and badge.
func (s *LeaderboardService) Top(ctx context.Context, n int64) ([]models.LeaderboardEntry, error) {
	users, err := s.users.TopUsers(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %v", err)
	}

	entries := make([]models.LeaderboardEntry, len(users))
	for i, user := range users {
		info := points.Level(user.EcoPoints)
		entries[i] = models.LeaderboardEntry{
			Rank:   i + 1,
			UserID: user.ID.Hex(),
			Name:   user.Name,
			Points: user.EcoPoints,
			Level:  info.Level,
			Badge:  points.Badge(info.Level),
			Streak: user.Streak,
		}
	}
	return entries, nil
}

// PublishTop pushes a fresh top-10 snapshot to live-feed clients. Called
// after any point-changing operation; failures are logged, never surfaced.
func (s *LeaderboardService) PublishTop(ctx context.Context) {
	if s.broadcaster == nil {
		return
	}

	entries, err := s.Top(ctx, 10)
	if err != nil {
		logrus.WithError(err).Warn("Failed to publish leaderboard snapshot")
		return
	}
	s.broadcaster.Broadcast("leaderboard", entries)
}
