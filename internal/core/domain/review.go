package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrReviewExists = errors.New("review already exists for this user and film")

// Review is a user-submitted rating of a film. UserID is the owning user;
// ownership checks compare exactly this field.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	FilmID    string    `json:"film_id" bson:"film_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Reviewer is the slim user projection attached to review reads.
type Reviewer struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
