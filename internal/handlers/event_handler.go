package handlers

import (
	"net/http"

	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventHandler handles the community event endpoints.
type EventHandler struct {
	Events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{Events: events}
}

// GetEventsHandler lists upcoming events.
func (h *EventHandler) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.ListEvents(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list events")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// RegisterEventHandler signs the caller up for an event.
func (h *EventHandler) RegisterEventHandler(w http.ResponseWriter, r *http.Request) {
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

	eventID := mux.Vars(r)["id"]
	result, err := h.Events.Register(r.Context(), userID, eventID)
	if err != nil {
		log.WithFields(log.Fields{
			"userID":  claims.UserID,
			"eventID": eventID,
			"error":   err,
		}).Warn("Event registration failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
