package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ecosphere/ecosphere-api/internal/models"
	"github.com/ecosphere/ecosphere-api/internal/repository"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureBroadcaster struct {
	mu     sync.Mutex
	events []string
	data   []interface{}
}

func (b *captureBroadcaster) Broadcast(event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	b.data = append(b.data, data)
}

func TestLeaderboardTop(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	for _, u := range []struct {
		name string
		pts  int
	}{
		{"Low", 50},
		{"High", 2600},
		{"Mid", 300},
	} {
		_, err := store.CreateUser(ctx, &models.User{Name: u.name, Email: u.name + "@example.com", EcoPoints: u.pts})
		require.NoError(t, err)
	}

	leaderboard := services.NewLeaderboardService(store, nil)
	entries, err := leaderboard.Top(ctx, 2)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "High", entries[0].Name)
	assert.Equal(t, 6, entries[0].Level)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Mid", entries[1].Name)
}

func TestPublishTopBroadcasts(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &models.User{Name: "Solo", Email: "solo@example.com", EcoPoints: 120})
	require.NoError(t, err)

	broadcaster := &captureBroadcaster{}
	leaderboard := services.NewLeaderboardService(store, broadcaster)

	leaderboard.PublishTop(ctx)

	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, "leaderboard", broadcaster.events[0])
}
