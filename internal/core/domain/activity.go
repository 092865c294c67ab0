package domain

import "time"

// Activity actions recorded in the audit trail.
const (
	ActionUserRegistered = "user_registered"
	ActionFilmCreated    = "film_created"
	ActionFilmUpdated    = "film_updated"
	ActionFilmDeleted    = "film_deleted"
	ActionActorCreated   = "actor_created"
	ActionActorUpdated   = "actor_updated"
	ActionActorDeleted   = "actor_deleted"
	ActionReviewCreated  = "review_created"
	ActionReviewUpdated  = "review_updated"
	ActionReviewDeleted  = "review_deleted"
)

// Activity records a single mutation performed through the API.
type Activity struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ActorID     string    `json:"actor_id" bson:"actor_id"`
	Action      string    `json:"action" bson:"action"`
	SubjectType string    `json:"subject_type" bson:"subject_type"`
	SubjectID   string    `json:"subject_id" bson:"subject_id"`
	At          time.Time `json:"at" bson:"at"`
}
