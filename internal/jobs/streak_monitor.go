package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/sirupsen/logrus"
)

// streakGraceWindow is how long a user may go without earning points
// before their daily streak resets.
const streakGraceWindow = 48 * time.Hour

// StreakMonitor resets the streak of users who stopped earning points.
type StreakMonitor struct {
	Users services.UserStore
}

// NewStreakMonitor creates a new instance of StreakMonitor
func NewStreakMonitor(users services.UserStore) *StreakMonitor {
	return &StreakMonitor{Users: users}
}

// RunDailyScan zeroes the streak of every user whose last point credit is
// older than the grace window.
func (m *StreakMonitor) RunDailyScan(ctx context.Context) error {
	cutoff := time.Now().Add(-streakGraceWindow)

	reset, err := m.Users.ResetLapsedStreaks(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to reset lapsed streaks: %v", err)
	}

	logrus.WithField("reset", reset).Info("Streak scan completed")
	return nil
}
