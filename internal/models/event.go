package models

import "time"

// Event is a community event users can register for. Attendees is bounded by
// MaxAttendees; registration through the API keeps the count consistent.
type Event struct {
	ID                   string    `bson:"_id" json:"id"`
	Title                string    `bson:"title" json:"title"`
	Description          string    `bson:"description" json:"description"`
	Date                 time.Time `bson:"date" json:"date"`
	EndTime              time.Time `bson:"end_time" json:"endTime"`
	Location             string    `bson:"location" json:"location"`
	Type                 string    `bson:"type" json:"type"` // cleanup | workshop | tour | activity | educational
	Organizer            string    `bson:"organizer" json:"organizer"`
	Attendees            int       `bson:"attendees" json:"attendees"`
	MaxAttendees         int       `bson:"max_attendees" json:"maxAttendees"`
	PointsReward         int       `bson:"points_reward" json:"pointsReward"`
	Image                string    `bson:"image" json:"image"`
	RegistrationRequired bool      `bson:"registration_required" json:"registrationRequired"`
	RegistrationURL      string    `bson:"registration_url,omitempty" json:"registrationUrl,omitempty"`
	Details              []string  `bson:"details,omitempty" json:"details,omitempty"`
}
