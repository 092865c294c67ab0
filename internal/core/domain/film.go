package domain

import (
	"errors"
	"time"
)

var ErrFilmNotFound = errors.New("film not found")
var ErrFilmExists = errors.New("film title already exists")
var ErrInvalidReference = errors.New("referenced entity does not exist")

// Film is a catalog entry. ActorIDs holds the cast as a set of actor ids;
// the resolved Actor records are attached by the service on reads.
type Film struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Year      string    `json:"year" bson:"year"`
	Director  string    `json:"director" bson:"director"`
	Genre     string    `json:"genre" bson:"genre"`
	ActorIDs  []string  `json:"-" bson:"actor_ids,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
