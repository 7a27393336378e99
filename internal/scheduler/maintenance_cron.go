package cron

import (
	"context"

	"github.com/ecosphere/ecosphere-api/internal/jobs"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartMaintenanceJobs wires the recurring background jobs and starts the
// cron runner. Returns the runner so the caller can Stop it on shutdown.
func StartMaintenanceJobs(streakMonitor *jobs.StreakMonitor, notificationService *services.NotificationService) *cron.Cron {
	c := cron.New()

	// Reset lapsed streaks once a day
	c.AddFunc("0 0 * * *", func() {
		err := streakMonitor.RunDailyScan(context.Background())
		if err != nil {
			logrus.WithError(err).Error("Streak scan failed")
		}
	})

	// Drop notifications past their TTL
	c.AddFunc("@hourly", func() {
		err := notificationService.CleanupExpired(context.Background())
		if err != nil {
			logrus.WithError(err).Error("Notification cleanup failed")
		}
	})

	c.Start()
	return c
}
