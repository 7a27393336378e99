package handlers

import (
	"net/http"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeHandler handles the challenge catalog and completion endpoints.
type ChallengeHandler struct {
	Challenges *services.ChallengeService
	Users      *services.UserService
}

func NewChallengeHandler(challenges *services.ChallengeService, users *services.UserService) *ChallengeHandler {
	return &ChallengeHandler{Challenges: challenges, Users: users}
}

// GetChallengesHandler lists the catalog, with per-user completion flags for
// authenticated callers.
func (h *ChallengeHandler) GetChallengesHandler(w http.ResponseWriter, r *http.Request) {
	var user *models.User
	if claims := middleware.GetUserFromContext(r.Context()); claims != nil {
		u, err := h.Users.GetUser(r.Context(), claims.UserID)
		if err == nil {
			user = u
		}
	}

	challenges, err := h.Challenges.ListChallenges(r.Context(), user)
	if err != nil {
		log.WithError(err).Error("Failed to list challenges")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, challenges)
}

// CompleteChallengeHandler credits the caller for a finished challenge.
func (h *ChallengeHandler) CompleteChallengeHandler(w http.ResponseWriter, r *http.Request) {
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

	challengeID := mux.Vars(r)["id"]
	result, err := h.Challenges.Complete(r.Context(), userID, challengeID)
	if err != nil {
		log.WithFields(log.Fields{
			"userID":      claims.UserID,
			"challengeID": challengeID,
			"error":       err,
		}).Warn("Challenge completion failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
