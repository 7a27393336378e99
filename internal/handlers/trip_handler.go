package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecosphere/ecosphere-api/internal/points"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/middleware"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripHandler handles trip logging and history.
type TripHandler struct {
	Trips *services.TripService
}

func NewTripHandler(trips *services.TripService) *TripHandler {
	return &TripHandler{Trips: trips}
}

// LogTripHandler records a trip and credits eco points for it.
func (h *TripHandler) LogTripHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		writeValidation(w, "invalid user ID")
		return
	}

	var req struct {
		Mode       string  `json:"mode"`
		DistanceKM float64 `json:"distanceKm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode trip request")
		writeValidation(w, "invalid request payload")
		return
	}

	result, err := h.Trips.LogTrip(r.Context(), userID, points.TransportMode(req.Mode), req.DistanceKM)
	if err != nil {
		log.WithFields(log.Fields{
			"userID": claims.UserID,
			"mode":   req.Mode,
			"error":  err,
		}).Warn("Trip logging failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetTripsHandler lists the caller's recent trips.
func (h *TripHandler) GetTripsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		writeValidation(w, "invalid user ID")
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeValidation(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	trips, err := h.Trips.Trips(r.Context(), userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list trips")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trips)
}
