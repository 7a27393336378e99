package models

import "time"

// Challenge is an immutable catalog entry worth a fixed number of points.
// A zero StartDate/EndDate pair means the challenge is always open.
type Challenge struct {
	ID                 string    `bson:"_id" json:"id"`
	Title              string    `bson:"title" json:"title"`
	Description        string    `bson:"description" json:"description"`
	Points             int       `bson:"points" json:"points"`
	Difficulty         string    `bson:"difficulty" json:"difficulty"` // easy | medium | hard
	Type               string    `bson:"type" json:"type"`             // daily | weekly | monthly
	Duration           int       `bson:"duration" json:"duration"`     // days
	Tips               []string  `bson:"tips,omitempty" json:"tips,omitempty"`
	Impact             string    `bson:"impact,omitempty" json:"impact,omitempty"`
	CompletionCriteria string    `bson:"completion_criteria,omitempty" json:"completionCriteria,omitempty"`
	StartDate          time.Time `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate            time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
}

// ActiveAt reports whether the challenge window is open at the given time.
func (c *Challenge) ActiveAt(t time.Time) bool {
	if !c.StartDate.IsZero() && t.Before(c.StartDate) {
		return false
	}
	if !c.EndDate.IsZero() && t.After(c.EndDate) {
		return false
	}
	return true
}

// ChallengeWithStatus decorates a catalog entry with the caller's progress.
type ChallengeWithStatus struct {
	Challenge
	Completed bool `json:"completed"`
}
