package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scorer decides how many points a completed challenge awards. Verification
// of the underlying activity is out of scope; the seam exists so a real
// verifier can replace the award computation without touching the flow.
type Scorer interface {
	Score(challenge *models.Challenge) int
}

// CatalogScorer awards the challenge's catalog point value.
type CatalogScorer struct{}

func (CatalogScorer) Score(challenge *models.Challenge) int {
	return challenge.Points
}

// RandomScorer awards 50-149 points regardless of the challenge, matching
// the demo behavior of the original platform.
type RandomScorer struct {
	Rand *rand.Rand
}

func (s RandomScorer) Score(*models.Challenge) int {
	return s.Rand.Intn(100) + 50
}

// ChallengeService owns the challenge catalog and the completion flow.
type ChallengeService struct {
	challenges    ChallengeStore
	users         UserStore
	notifications *NotificationService
	leaderboard   *LeaderboardService
	scorer        Scorer
	now           func() time.Time
}

func NewChallengeService(challenges ChallengeStore, users UserStore, notifications *NotificationService, leaderboard *LeaderboardService, scorer Scorer) *ChallengeService {
	if scorer == nil {
		scorer = CatalogScorer{}
	}
	return &ChallengeService{
		challenges:    challenges,
		users:         users,
		notifications: notifications,
		leaderboard:   leaderboard,
		scorer:        scorer,
		now:           time.Now,
	}
}

// ListChallenges returns the catalog. When a user is given, each entry is
// flagged with whether that user already completed it.
func (s *ChallengeService) ListChallenges(ctx context.Context, user *models.User) ([]models.ChallengeWithStatus, error) {
	challenges, err := s.challenges.GetAllChallenges(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch challenge catalog")
		return nil, fmt.Errorf("failed to fetch challenges: %v", err)
	}

	completed := map[string]bool{}
	if user != nil {
		for _, id := range user.CompletedChallenges {
			completed[id] = true
		}
	}

	out := make([]models.ChallengeWithStatus, len(challenges))
	for i, challenge := range challenges {
		out[i] = models.ChallengeWithStatus{
			Challenge: challenge,
			Completed: completed[challenge.ID],
		}
	}
	return out, nil
}

// CompletionResult is returned by a successful challenge completion.
type CompletionResult struct {
	PointsGained  int `json:"pointsGained"`
	UpdatedPoints int `json:"updatedPoints"`
	UpdatedStreak int `json:"updatedStreak"`
}

// Complete credits the challenge's points and bumps the streak, at most once
// per (user, challenge) pair. The duplicate check and the credit are one
// atomic store update.
func (s *ChallengeService) Complete(ctx context.Context, userID primitive.ObjectID, challengeID string) (*CompletionResult, error) {
	challenge, err := s.challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if !challenge.ActiveAt(s.now()) {
		return nil, apperrors.Validation("challenge is not currently active")
	}

	pts := s.scorer.Score(challenge)
	if pts < 0 {
		pts = 0
	}

	user, err := s.users.CompleteChallenge(ctx, userID, challengeID, pts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"userID":      userID.Hex(),
			"challengeID": challengeID,
		}).WithError(err).Warn("Challenge completion rejected")
		return nil, err
	}

	if s.notifications != nil {
		if err := s.notifications.Create(ctx, userID.Hex(), models.NotificationTypeChallenge,
			"Challenge Completed",
			fmt.Sprintf("Great job! You've completed the %q challenge and earned %d points.", challenge.Title, pts),
			"/challenges",
		); err != nil {
			logrus.WithError(err).Warn("Failed to create completion notification")
		}
	}

	s.grantMilestones(ctx, user)

	if s.leaderboard != nil {
		go s.leaderboard.PublishTop(context.Background())
	}

	logrus.WithFields(logrus.Fields{
		"userID":      userID.Hex(),
		"challengeID": challengeID,
		"points":      pts,
		"streak":      user.Streak,
	}).Info("Challenge completed")

	return &CompletionResult{
		PointsGained:  pts,
		UpdatedPoints: user.EcoPoints,
		UpdatedStreak: user.Streak,
	}, nil
}

// grantMilestones awards profile achievements crossed by this completion.
func (s *ChallengeService) grantMilestones(ctx context.Context, user *models.User) {
	type milestone struct {
		reached     bool
		achievement models.Achievement
	}

	milestones := []milestone{
		{
			reached: user.Streak >= 5,
			achievement: models.Achievement{
				ID:          "streak-5",
				Name:        "5-Day Streak",
				Description: "Completed eco-friendly actions for 5 days in a row",
			},
		},
		{
			reached: len(user.CompletedChallenges) >= 3,
			achievement: models.Achievement{
				ID:          "challenge-champion",
				Name:        "Challenge Champion",
				Description: "Completed 3 eco challenges",
			},
		},
	}

	for _, m := range milestones {
		if !m.reached {
			continue
		}
		m.achievement.Date = s.now()
		added, err := s.users.AddAchievement(ctx, user.ID, m.achievement)
		if err != nil {
			logrus.WithError(err).Warn("Failed to grant achievement")
			continue
		}
		if added && s.notifications != nil {
			if err := s.notifications.Create(ctx, user.ID.Hex(), models.NotificationTypeAchievement,
				"Achievement Unlocked",
				fmt.Sprintf("Congratulations! You've earned the %q achievement.", m.achievement.Name),
				"/profile",
			); err != nil {
				logrus.WithError(err).Warn("Failed to create achievement notification")
			}
		}
	}
}
