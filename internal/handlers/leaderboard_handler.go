package handlers

import (
	"net/http"
	"strconv"

	"github.com/ecosphere/ecosphere-api/internal/services"
	log "github.com/sirupsen/logrus"
)

const defaultLeaderboardSize = 10

// LeaderboardHandler serves the public points leaderboard.
type LeaderboardHandler struct {
	Leaderboard *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Leaderboard: leaderboard}
}

// GetLeaderboardHandler returns the top users ordered by points.
func (h *LeaderboardHandler) GetLeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultLeaderboardSize)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeValidation(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.Leaderboard.Top(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to build leaderboard")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
