package handlers

import (
	"net/http"

	"github.com/ecosphere/ecosphere-api/internal/jobs"
	"github.com/ecosphere/ecosphere-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// AdminHandler exposes the maintenance jobs for on-demand runs. Mounted
// behind the admin role check; the cron scheduler runs the same jobs on its
// own cadence.
type AdminHandler struct {
	StreakMonitor *jobs.StreakMonitor
	Notifications *services.NotificationService
}

func NewAdminHandler(streakMonitor *jobs.StreakMonitor, notifications *services.NotificationService) *AdminHandler {
	return &AdminHandler{StreakMonitor: streakMonitor, Notifications: notifications}
}

// RunStreakScanHandler triggers the streak-lapse scan immediately.
func (h *AdminHandler) RunStreakScanHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.StreakMonitor.RunDailyScan(r.Context()); err != nil {
		log.WithError(err).Error("On-demand streak scan failed")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "streak scan completed"})
}

// RunNotificationCleanupHandler drops expired notifications immediately.
func (h *AdminHandler) RunNotificationCleanupHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.CleanupExpired(r.Context()); err != nil {
		log.WithError(err).Error("On-demand notification cleanup failed")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification cleanup completed"})
}
