package handler

import (
	"time"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

type createActorRequest struct {
	Name        string `json:"name"        validate:"required"`
	Born        string `json:"born"        validate:"omitempty"`
	Height      int    `json:"height"      validate:"omitempty,gt=0"`
	Nationality string `json:"nationality" validate:"omitempty"`
	Photo       string `json:"photo"       validate:"omitempty"`
}

type updateActorRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Born        *string `json:"born"        validate:"omitempty"`
	Height      *int    `json:"height"      validate:"omitempty,gt=0"`
	Nationality *string `json:"nationality" validate:"omitempty"`
	Photo       *string `json:"photo"       validate:"omitempty"`
}

type actorResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Born        string     `json:"born,omitempty"`
	Height      int        `json:"height,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
	Photo       string     `json:"photo,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toActorResponse(a *domain.Actor) actorResponse {
	resp := actorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Born:        a.Born,
		Height:      a.Height,
		Nationality: a.Nationality,
		Photo:       a.Photo,
		CreatedAt:   a.CreatedAt.UTC(),
	}
	if !a.UpdatedAt.IsZero() {
		updated := a.UpdatedAt.UTC()
		resp.UpdatedAt = &updated
	}
	return resp
}
