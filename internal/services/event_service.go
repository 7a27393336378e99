package services

import (
	"context"
	"fmt"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventService owns the community event catalog and registrations.
type EventService struct {
	events        EventStore
	users         UserStore
	notifications *NotificationService
	leaderboard   *LeaderboardService
}

func NewEventService(events EventStore, users UserStore, notifications *NotificationService, leaderboard *LeaderboardService) *EventService {
	return &EventService{
		events:        events,
		users:         users,
		notifications: notifications,
		leaderboard:   leaderboard,
	}
}

// ListEvents returns the catalog ordered by date.
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.GetAllEvents(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch event catalog")
		return nil, fmt.Errorf("failed to fetch events: %v", err)
	}
	return events, nil
}

// RegistrationResult is returned by a successful event registration.
type RegistrationResult struct {
	Event         *models.Event `json:"event"`
	PointsGained  int           `json:"pointsGained"`
	UpdatedPoints int           `json:"updatedPoints"`
}

// Register signs the user up for an event, crediting its points reward.
// Registering twice for the same event is rejected; the attendee count
// never exceeds capacity.
func (s *EventService) Register(ctx context.Context, userID primitive.ObjectID, eventID string) (*RegistrationResult, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.RegistrationRequired {
		return nil, apperrors.Validation("event uses external registration")
	}

	user, err := s.users.RegisterEvent(ctx, userID, eventID, event.PointsReward)
	if err != nil {
		return nil, err
	}

	if err := s.events.IncrementAttendees(ctx, eventID); err != nil {
		// Capacity claim failed after the user record was updated; undo it.
		if undoErr := s.users.UnregisterEvent(ctx, userID, eventID, event.PointsReward); undoErr != nil {
			logrus.WithError(undoErr).Error("Failed to roll back event registration")
		}
		return nil, err
	}
	event.Attendees++

	if s.notifications != nil {
		if err := s.notifications.Create(ctx, userID.Hex(), models.NotificationTypeEvent,
			"Event Registration Confirmed",
			fmt.Sprintf("You're registered for %q on %s.", event.Title, event.Date.Format("Jan 2 at 3:04 PM")),
			"/events",
		); err != nil {
			logrus.WithError(err).Warn("Failed to create event notification")
		}
	}

	if event.PointsReward > 0 && s.leaderboard != nil {
		go s.leaderboard.PublishTop(context.Background())
	}

	logrus.WithFields(logrus.Fields{
		"userID":  userID.Hex(),
		"eventID": eventID,
	}).Info("User registered for event")

	return &RegistrationResult{
		Event:         event,
		PointsGained:  event.PointsReward,
		UpdatedPoints: user.EcoPoints,
	}, nil
}
