package domain

import (
	"errors"
	"time"
)

var ErrActorNotFound = errors.New("actor not found")

// Actor is a cast member referenced by films.
type Actor struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Born        string    `json:"born,omitempty" bson:"born,omitempty"`
	Height      int       `json:"height,omitempty" bson:"height,omitempty"`
	Nationality string    `json:"nationality,omitempty" bson:"nationality,omitempty"`
	Photo       string    `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
