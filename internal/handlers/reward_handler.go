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

// RewardHandler handles the reward catalog and redemption endpoints.
type RewardHandler struct {
	Rewards *services.RewardService
	Users   *services.UserService
}

func NewRewardHandler(rewards *services.RewardService, users *services.UserService) *RewardHandler {
	return &RewardHandler{Rewards: rewards, Users: users}
}

// GetRewardsHandler lists the catalog. Authenticated callers get it sorted
// affordable-first for their balance.
func (h *RewardHandler) GetRewardsHandler(w http.ResponseWriter, r *http.Request) {
	var user *models.User
	if claims := middleware.GetUserFromContext(r.Context()); claims != nil {
		u, err := h.Users.GetUser(r.Context(), claims.UserID)
		if err == nil {
			user = u
		}
	}

	rewards, err := h.Rewards.ListRewards(r.Context(), user)
	if err != nil {
		log.WithError(err).Error("Failed to list rewards")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rewards)
}

// RedeemRewardHandler spends the caller's points on a reward.
func (h *RewardHandler) RedeemRewardHandler(w http.ResponseWriter, r *http.Request) {
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

	rewardID := mux.Vars(r)["id"]
	result, err := h.Rewards.Redeem(r.Context(), userID, rewardID)
	if err != nil {
		log.WithFields(log.Fields{
			"userID":   claims.UserID,
			"rewardID": rewardID,
			"error":    err,
		}).Warn("Redemption failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetRedemptionsHandler lists the caller's past redemptions.
func (h *RewardHandler) GetRedemptionsHandler(w http.ResponseWriter, r *http.Request) {
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

	redemptions, err := h.Rewards.Redemptions(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list redemptions")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, redemptions)
}
