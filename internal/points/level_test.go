package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelKnownValues(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		wantLevel  int
		wantMax    bool
		wantToNext int
	}{
		{"zero points", 0, 0, false, 100},
		{"just below first threshold", 99, 0, false, 1},
		{"exactly first threshold", 100, 1, false, 150},
		{"between thresholds", 2350, 5, false, 150},
		{"exactly max threshold", 10000, 10, true, 0},
		{"beyond max threshold", 25000, 10, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Level(tt.points)
			assert.Equal(t, tt.wantLevel, info.Level)
			assert.Equal(t, tt.wantMax, info.IsMaxLevel)
			assert.Equal(t, tt.wantToNext, info.PointsToNextLevel)
		})
	}
}

func TestLevelProgressAtExactThreshold(t *testing.T) {
	for _, pts := range []int{0, 100, 250, 500, 1000, 1750, 2500, 3500, 5000, 7000} {
		info := Level(pts)
		assert.Equalf(t, 0, info.Progress, "progress at threshold %d", pts)
	}
}

func TestLevelMaxProgress(t *testing.T) {
	info := Level(10000)
	assert.Equal(t, 100, info.Progress)
	assert.True(t, info.IsMaxLevel)
}

func TestLevelMonotonicAndBounded(t *testing.T) {
	prev := Level(0)
	for p := 1; p <= 12000; p++ {
		info := Level(p)
		require.GreaterOrEqualf(t, info.Level, prev.Level, "level dropped at %d points", p)
		require.GreaterOrEqual(t, info.Progress, 0)
		require.LessOrEqual(t, info.Progress, 100)
		prev = info
	}
}

func TestLevelNegativeTreatedAsZero(t *testing.T) {
	assert.Equal(t, Level(0), Level(-50))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "Eco Novice", Badge(0))
	assert.Equal(t, "Eco Enthusiast", Badge(5))
	assert.Equal(t, "Earth Hero", Badge(10))
	assert.Equal(t, "Earth Hero", Badge(42))
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, "Beginner", Difficulty(1))
	assert.Equal(t, "Intermediate", Difficulty(4))
	assert.Equal(t, "Advanced", Difficulty(7))
	assert.Equal(t, "Expert", Difficulty(10))
}
