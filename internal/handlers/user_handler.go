package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecosphere/ecosphere-api/internal/config"
	"github.com/ecosphere/ecosphere-api/internal/services"
	jwtutil "github.com/ecosphere/ecosphere-api/pkg/jwt"
	"github.com/ecosphere/ecosphere-api/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests related to user accounts.
type UserHandler struct {
	Service *services.UserService
	Config  *config.Config
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		Service: service,
		Config:  cfg,
	}
}

// RegisterUserHandler handles user registration.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode registration request")
		writeValidation(w, "invalid request payload")
		return
	}

	user, err := h.Service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.WithError(err).Warn("Failed to register user")
		writeError(w, err)
		return
	}

	log.WithField("userID", user.ID.Hex()).Info("User registered successfully")
	writeJSON(w, http.StatusCreated, user)
}

// LoginUserHandler handles user login.
func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		writeValidation(w, "invalid request payload")
		return
	}

	user, err := h.Service.Authenticate(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		log.WithFields(log.Fields{
			"email": credentials.Email,
			"error": err,
		}).Warn("Authentication failed")
		writeError(w, err)
		return
	}

	token, err := jwtutil.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		writeError(w, err)
		return
	}

	log.WithField("userID", user.ID.Hex()).Info("User logged in successfully")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GetUserHandler returns a user's profile with their level standing.
// Users may only fetch their own profile unless they are an admin.
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	requestedID := mux.Vars(r)["id"]

	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.UserID != requestedID && claims.Role != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	user, err := h.Service.GetUser(r.Context(), requestedID)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Service.ProfileFor(user))
}

// UpdateUserHandler applies a partial update to the caller's own profile.
func (h *UserHandler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	requestedID := mux.Vars(r)["id"]

	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.UserID != requestedID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.WithError(err).Warn("Failed to decode profile update")
		writeValidation(w, "invalid request payload")
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), requestedID, update)
	if err != nil {
		log.WithError(err).Warn("Failed to update profile")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
