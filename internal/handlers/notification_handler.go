package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// NotificationHandler serves the notification feed consumed by the web and
// mobile clients. Both endpoints identify the user by an explicit userId
// field rather than by path, which the clients rely on.
type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// ownsNotifications rejects authenticated callers touching someone else's
// feed. Unauthenticated requests pass through; the userId parameter is the
// contract on this boundary.
func ownsNotifications(r *http.Request, userID string) bool {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		return true
	}
	return claims.UserID == userID || claims.Role == "admin"
}

// GetNotificationsHandler handles GET /notifications?userId=&limit=&read=.
func (h *NotificationHandler) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID := query.Get("userId")
	if userID == "" {
		writeValidation(w, "userId is required")
		return
	}
	if !ownsNotifications(r, userID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var limit int64
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeValidation(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	var read *bool
	if raw := query.Get("read"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeValidation(w, "read must be true or false")
			return
		}
		read = &parsed
	}

	feed, err := h.Service.List(r.Context(), userID, limit, read)
	if err != nil {
		log.WithField("userID", userID).WithError(err).Error("Failed to fetch notifications")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

// markReadRequest is the POST /notifications body. NotificationIds is either
// a JSON array of ids or the literal string "all".
type markReadRequest struct {
	UserID          string          `json:"userId"`
	NotificationIDs json.RawMessage `json:"notificationIds"`
}

// MarkReadHandler handles POST /notifications.
func (h *NotificationHandler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode mark-read request")
		writeValidation(w, "invalid request payload")
		return
	}

	if req.UserID == "" {
		writeValidation(w, "userId is required")
		return
	}
	if len(req.NotificationIDs) == 0 {
		writeValidation(w, "notificationIds is required")
		return
	}
	if !ownsNotifications(r, req.UserID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var (
		updated int64
		err     error
	)

	var all string
	if jsonErr := json.Unmarshal(req.NotificationIDs, &all); jsonErr == nil {
		if all != "all" {
			writeValidation(w, `notificationIds must be an array of ids or "all"`)
			return
		}
		updated, err = h.Service.MarkAllRead(r.Context(), req.UserID)
	} else {
		var ids []string
		if jsonErr := json.Unmarshal(req.NotificationIDs, &ids); jsonErr != nil {
			writeValidation(w, `notificationIds must be an array of ids or "all"`)
			return
		}
		updated, err = h.Service.MarkRead(r.Context(), req.UserID, ids)
	}
	if err != nil {
		log.WithField("userID", req.UserID).WithError(err).Error("Failed to mark notifications read")
		writeError(w, err)
		return
	}

	unread, err := h.Service.UnreadCount(r.Context(), req.UserID)
	if err != nil {
		log.WithField("userID", req.UserID).WithError(err).Error("Failed to count unread notifications")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"updatedCount": updated,
		"unreadCount":  unread,
	})
}
