package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory implementation of every store interface the
// service layer consumes. It exists so services can be constructed with an
// explicit, isolated store per test (and for demo runs without MongoDB).
// A single mutex makes each operation atomic, mirroring the per-record
// guarantees of the Mongo repositories.
type MemoryStore struct {
	mu            sync.Mutex
	users         map[primitive.ObjectID]*models.User
	rewards       []models.Reward
	challenges    []models.Challenge
	events        []models.Event
	notifications []*models.Notification
	redemptions   []models.Redemption
	trips         []models.Trip

	// Now is the clock used for timestamps; tests may replace it.
	Now func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[primitive.ObjectID]*models.User),
		Now:   time.Now,
	}
}

// SeedCatalog loads the given catalog fixtures.
func (s *MemoryStore) SeedCatalog(rewards []models.Reward, challenges []models.Challenge, events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewards = append([]models.Reward(nil), rewards...)
	s.challenges = append([]models.Challenge(nil), challenges...)
	s.events = append([]models.Event(nil), events...)
}

// --- UserStore ---

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = s.Now()
	user.UpdatedAt = s.Now()

	clone := *user
	s.users[user.ID] = &clone
	return user, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	clone := *user
	return &clone, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (s *MemoryStore) UpdateProfile(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}

	for key, value := range fields {
		switch key {
		case "name":
			user.Name, _ = value.(string)
		case "bio":
			user.Bio, _ = value.(string)
		case "location":
			user.Location, _ = value.(string)
		case "preferences":
			if prefs, ok := value.(models.Preferences); ok {
				user.Preferences = prefs
			}
		}
	}
	user.UpdatedAt = s.Now()

	clone := *user
	return &clone, nil
}

func (s *MemoryStore) CreditPoints(_ context.Context, id primitive.ObjectID, pts int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	if pts < 0 {
		pts = 0
	}
	user.EcoPoints += pts
	user.LastEarnedAt = s.Now()
	user.UpdatedAt = s.Now()

	clone := *user
	return &clone, nil
}

func (s *MemoryStore) RedeemReward(_ context.Context, id primitive.ObjectID, rewardID string, cost int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	if user.EcoPoints < cost {
		return nil, apperrors.InsufficientPoints("not enough eco points")
	}

	user.EcoPoints -= cost
	if !contains(user.RedeemedRewards, rewardID) {
		user.RedeemedRewards = append(user.RedeemedRewards, rewardID)
	}
	user.UpdatedAt = s.Now()

	clone := *user
	return &clone, nil
}

func (s *MemoryStore) CompleteChallenge(_ context.Context, id primitive.ObjectID, challengeID string, pts int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	if contains(user.CompletedChallenges, challengeID) {
		return nil, apperrors.AlreadyCompleted("challenge already completed")
	}

	user.CompletedChallenges = append(user.CompletedChallenges, challengeID)
	user.EcoPoints += pts
	user.Streak++
	user.LastEarnedAt = s.Now()
	user.UpdatedAt = s.Now()

	clone := *user
	return &clone, nil
}

func (s *MemoryStore) RegisterEvent(_ context.Context, id primitive.ObjectID, eventID string, pts int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	if contains(user.RegisteredEvents, eventID) {
		return nil, apperrors.AlreadyRegistered("already registered for event")
	}

	user.RegisteredEvents = append(user.RegisteredEvents, eventID)
	if pts > 0 {
		user.EcoPoints += pts
		user.LastEarnedAt = s.Now()
	}
	user.UpdatedAt = s.Now()

	clone := *user
	return &clone, nil
}

func (s *MemoryStore) UnregisterEvent(_ context.Context, id primitive.ObjectID, eventID string, pts int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return apperrors.NotFound("user not found")
	}
	if !contains(user.RegisteredEvents, eventID) {
		return nil
	}
	kept := user.RegisteredEvents[:0]
	for _, v := range user.RegisteredEvents {
		if v != eventID {
			kept = append(kept, v)
		}
	}
	user.RegisteredEvents = kept
	if pts > 0 {
		user.EcoPoints -= pts
		if user.EcoPoints < 0 {
			user.EcoPoints = 0
		}
	}
	return nil
}

func (s *MemoryStore) AddAchievement(_ context.Context, id primitive.ObjectID, achievement models.Achievement) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return false, apperrors.NotFound("user not found")
	}
	for _, existing := range user.Achievements {
		if existing.ID == achievement.ID {
			return false, nil
		}
	}
	user.Achievements = append(user.Achievements, achievement)
	return true, nil
}

func (s *MemoryStore) TopUsers(_ context.Context, n int64) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].EcoPoints > users[j].EcoPoints })
	if int64(len(users)) > n {
		users = users[:n]
	}
	return users, nil
}

func (s *MemoryStore) ResetLapsedStreaks(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reset int64
	for _, user := range s.users {
		if user.Streak > 0 && user.LastEarnedAt.Before(cutoff) {
			user.Streak = 0
			reset++
		}
	}
	return reset, nil
}

// --- RewardStore ---

func (s *MemoryStore) GetReward(_ context.Context, id string) (*models.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rewards {
		if s.rewards[i].ID == id {
			reward := s.rewards[i]
			return &reward, nil
		}
	}
	return nil, apperrors.NotFound("reward not found")
}

func (s *MemoryStore) GetAllRewards(_ context.Context) ([]models.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rewards := append([]models.Reward(nil), s.rewards...)
	sort.Slice(rewards, func(i, j int) bool { return rewards[i].PointsCost < rewards[j].PointsCost })
	return rewards, nil
}

func (s *MemoryStore) InsertRedemption(_ context.Context, redemption *models.Redemption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	redemption.RedeemedAt = s.Now()
	s.redemptions = append(s.redemptions, *redemption)
	return nil
}

func (s *MemoryStore) GetUserRedemptions(_ context.Context, userID primitive.ObjectID) ([]models.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Redemption
	for _, redemption := range s.redemptions {
		if redemption.UserID == userID {
			out = append(out, redemption)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RedeemedAt.After(out[j].RedeemedAt) })
	return out, nil
}

// --- ChallengeStore ---

func (s *MemoryStore) GetChallenge(_ context.Context, id string) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.challenges {
		if s.challenges[i].ID == id {
			challenge := s.challenges[i]
			return &challenge, nil
		}
	}
	return nil, apperrors.NotFound("challenge not found")
}

func (s *MemoryStore) GetAllChallenges(_ context.Context) ([]models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges := append([]models.Challenge(nil), s.challenges...)
	sort.Slice(challenges, func(i, j int) bool { return challenges[i].Points < challenges[j].Points })
	return challenges, nil
}

// --- EventStore ---

func (s *MemoryStore) GetEvent(_ context.Context, id string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			event := s.events[i]
			return &event, nil
		}
	}
	return nil, apperrors.NotFound("event not found")
}

func (s *MemoryStore) GetAllEvents(_ context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := append([]models.Event(nil), s.events...)
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

func (s *MemoryStore) IncrementAttendees(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			if s.events[i].Attendees >= s.events[i].MaxAttendees {
				return apperrors.Validation("event is full")
			}
			s.events[i].Attendees++
			return nil
		}
	}
	return apperrors.NotFound("event not found")
}

// --- NotificationStore ---

func (s *MemoryStore) InsertNotification(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.Date.IsZero() {
		n.Date = s.Now()
	}
	n.ExpiresAt = n.Date.Add(notificationTTL)
	clone := *n
	s.notifications = append(s.notifications, &clone)
	return nil
}

func (s *MemoryStore) ListNotifications(_ context.Context, userID string, limit int64, read *bool) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Notification{}
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if read != nil && n.Read != *read {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) MarkNotificationsRead(_ context.Context, userID string, ids []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read && contains(ids, n.ID) {
			n.Read = true
			updated++
		}
	}
	return updated, nil
}

func (s *MemoryStore) MarkAllNotificationsRead(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			updated++
		}
	}
	return updated, nil
}

func (s *MemoryStore) CountNotifications(_ context.Context, userID string, read *bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if read != nil && n.Read != *read {
			continue
		}
		count++
	}
	return count, nil
}

func (s *MemoryStore) DeleteExpiredNotifications(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	kept := s.notifications[:0]
	var deleted int64
	for _, n := range s.notifications {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		} else {
			deleted++
		}
	}
	s.notifications = kept
	return deleted, nil
}

// --- TripStore ---

func (s *MemoryStore) InsertTrip(_ context.Context, trip *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip.LoggedAt = s.Now()
	s.trips = append(s.trips, *trip)
	return nil
}

func (s *MemoryStore) GetUserTrips(_ context.Context, userID primitive.ObjectID, limit int64) ([]models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Trip
	for _, trip := range s.trips {
		if trip.UserID == userID {
			out = append(out, trip)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.After(out[j].LoggedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
