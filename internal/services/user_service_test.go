package services_test

import (
	"context"
	"testing"

	"github.com/ecosphere/ecosphere-api/internal/repository"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture(t *testing.T) *services.UserService {
	t.Helper()
	return services.NewUserService(repository.NewMemoryStore())
}

func TestRegisterDefaults(t *testing.T) {
	svc := newUserFixture(t)

	user, err := svc.Register(context.Background(), "Aigerim", "aigerim@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "user", user.Role)
	assert.Equal(t, 0, user.EcoPoints)
	assert.Equal(t, 0, user.Streak)
	assert.NotNil(t, user.CompletedChallenges)
	assert.Equal(t, "daily", user.Preferences.ReminderFrequency)
	assert.True(t, user.Preferences.EmailNotifications)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newUserFixture(t)

	user, err := svc.Register(context.Background(), "Aigerim", "aigerim@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("s3cret-pass")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Aigerim", "aigerim@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "aigerim@example.com", "other-pass")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"missing name", "", "a@example.com", "s3cret-pass"},
		{"missing email", "Aigerim", "", "s3cret-pass"},
		{"bad email", "Aigerim", "not-an-email", "s3cret-pass"},
		{"short password", "Aigerim", "a@example.com", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Aigerim", "aigerim@example.com", "s3cret-pass")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "aigerim@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Wrong password and unknown email fail identically.
	_, err = svc.Authenticate(ctx, "aigerim@example.com", "wrong-pass")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAuthentication))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret-pass")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAuthentication))
}

func TestUpdateProfile(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Aigerim", "aigerim@example.com", "s3cret-pass")
	require.NoError(t, err)

	bio := "Cycling everywhere since 2020"
	updated, err := svc.UpdateProfile(ctx, user.ID.Hex(), services.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Aigerim", updated.Name)

	empty := ""
	_, err = svc.UpdateProfile(ctx, user.ID.Hex(), services.ProfileUpdate{Name: &empty})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = svc.UpdateProfile(ctx, user.ID.Hex(), services.ProfileUpdate{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestProfileForDerivesLevel(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Aigerim", "aigerim@example.com", "s3cret-pass")
	require.NoError(t, err)
	user.EcoPoints = 2350

	profile := svc.ProfileFor(user)
	assert.Equal(t, 5, profile.Level.Level)
	assert.Equal(t, "Eco Enthusiast", profile.Badge)
}
