package services

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/internal/points"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var validReminderFrequencies = map[string]bool{
	"daily":  true,
	"weekly": true,
	"never":  true,
}

// UserService encapsulates the business logic for accounts and profiles.
type UserService struct {
	store UserStore
}

// NewUserService creates a new instance of UserService.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Register creates a new account with a hashed password, zero points and an
// empty progress record.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	logrus.Info("Registering new user")

	if name == "" || email == "" || password == "" {
		logrus.Warn("Missing required fields during registration")
		return nil, apperrors.Validation("name, email and password are required")
	}
	if !emailRegex.MatchString(email) {
		logrus.WithField("email", email).Warn("Invalid email format during registration")
		return nil, apperrors.Validation("invalid email format")
	}
	if len(password) < 6 {
		return nil, apperrors.Validation("password must be at least 6 characters")
	}

	if existing, _ := s.store.GetUserByEmail(ctx, email); existing != nil {
		logrus.WithField("email", email).Warn("Email already in use")
		return nil, apperrors.Validation("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:                name,
		Email:               email,
		HashedPassword:      string(hashed),
		Role:                "user",
		EcoPoints:           0,
		Streak:              0,
		CompletedChallenges: []string{},
		RegisteredEvents:    []string{},
		RedeemedRewards:     []string{},
		Preferences: models.Preferences{
			EmailNotifications: true,
			PushNotifications:  true,
			ReminderFrequency:  "daily",
		},
	}

	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	logrus.WithField("userID", created.ID.Hex()).Info("User registered successfully")
	return created, nil
}

// Authenticate verifies the credentials and returns the user when valid.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	logrus.WithField("email", email).Info("Authenticating user")

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithField("email", email).Warn("Login attempt for unknown email")
		return nil, apperrors.Authentication("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("email", email).Warn("Invalid credentials")
		return nil, apperrors.Authentication("invalid credentials")
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User authenticated successfully")
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid user ID")
	}
	return s.store.GetUserByID(ctx, objID)
}

// ProfileUpdate is the set of fields a user may change on their own profile.
type ProfileUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Bio         *string             `json:"bio,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Preferences *models.Preferences `json:"preferences,omitempty"`
}

// UpdateProfile applies a partial profile update.
func (s *UserService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid user ID")
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		if *update.Name == "" {
			return nil, apperrors.Validation("name must not be empty")
		}
		fields["name"] = *update.Name
	}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.Preferences != nil {
		if !validReminderFrequencies[update.Preferences.ReminderFrequency] {
			return nil, apperrors.Validation("invalid reminder frequency")
		}
		fields["preferences"] = *update.Preferences
	}
	if len(fields) == 0 {
		return nil, apperrors.Validation("no updatable fields provided")
	}

	user, err := s.store.UpdateProfile(ctx, objID, fields)
	if err != nil {
		return nil, err
	}

	logrus.WithField("userID", id).Info("User profile updated")
	return user, nil
}

// Profile is a user together with their derived level standing.
type Profile struct {
	User       *models.User     `json:"user"`
	Level      points.LevelInfo `json:"levelInfo"`
	Badge      string           `json:"badge"`
	Difficulty string           `json:"difficulty"`
}

// ProfileFor decorates a user with level, badge and difficulty labels.
func (s *UserService) ProfileFor(user *models.User) *Profile {
	info := points.Level(user.EcoPoints)
	return &Profile{
		User:       user,
		Level:      info,
		Badge:      points.Badge(info.Level),
		Difficulty: points.Difficulty(info.Level),
	}
}
