// Package points holds the pure arithmetic of the eco-point economy:
// level thresholds and per-trip point awards.
package points

import "math"

// levelThresholds maps a level index to the minimum point total required to
// reach it. The highest index whose threshold is <= the balance is the
// user's level.
var levelThresholds = []int{
	0,     // level 0
	100,   // level 1
	250,   // level 2
	500,   // level 3
	1000,  // level 4
	1750,  // level 5
	2500,  // level 6
	3500,  // level 7
	5000,  // level 8
	7000,  // level 9
	10000, // level 10
}

var levelBadges = []string{
	"Eco Novice",
	"Eco Starter",
	"Green Beginner",
	"Sustainability Scout",
	"Carbon Cutter",
	"Eco Enthusiast",
	"Green Guardian",
	"Sustainability Steward",
	"Planet Protector",
	"Climate Champion",
	"Earth Hero",
}

// MaxLevel is the highest defined level.
const MaxLevel = 10

// LevelInfo describes where a point balance sits in the level table.
type LevelInfo struct {
	Level             int  `json:"level"`
	NextLevel         int  `json:"nextLevel"`
	Progress          int  `json:"progress"`
	PointsToNextLevel int  `json:"pointsToNextLevel"`
	IsMaxLevel        bool `json:"isMaxLevel"`
}

// Level computes the level reached by a point balance. Total over all
// non-negative inputs; negative inputs are treated as zero. Progress is the
// rounded percentage toward the next threshold, 100 at the maximum level.
func Level(pts int) LevelInfo {
	if pts < 0 {
		pts = 0
	}

	level := 0
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if pts >= levelThresholds[i] {
			level = i
			break
		}
	}

	info := LevelInfo{
		Level:     level,
		NextLevel: level + 1,
	}

	if level+1 >= len(levelThresholds) {
		info.Progress = 100
		info.IsMaxLevel = true
		return info
	}

	current := levelThresholds[level]
	next := levelThresholds[level+1]
	info.Progress = int(math.Round(float64(pts-current) / float64(next-current) * 100))
	info.PointsToNextLevel = next - pts
	return info
}

// Badge returns the badge title for a level. Levels beyond the table get the
// highest badge.
func Badge(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(levelBadges) {
		level = len(levelBadges) - 1
	}
	return levelBadges[level]
}

// Difficulty labels how hard a level is to reach.
func Difficulty(level int) string {
	switch {
	case level <= 2:
		return "Beginner"
	case level <= 5:
		return "Intermediate"
	case level <= 8:
		return "Advanced"
	default:
		return "Expert"
	}
}
