package models

// LeaderboardEntry is one ranked row of the community leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
	Badge  string `json:"badge"`
	Streak int    `json:"streak"`
}
