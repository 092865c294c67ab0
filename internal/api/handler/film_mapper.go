package handler

import (
	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

func toFilmResponse(f domain.Film) filmResponse {
	resp := filmResponse{
		ID:        f.ID,
		Title:     f.Title,
		Year:      f.Year,
		Director:  f.Director,
		Genre:     f.Genre,
		CreatedAt: f.CreatedAt.UTC(),
	}
	if !f.UpdatedAt.IsZero() {
		updated := f.UpdatedAt.UTC()
		resp.UpdatedAt = &updated
	}
	return resp
}

func toFilmDetailResponse(d *ports.FilmDetail) filmDetailResponse {
	actors := make([]castMemberResponse, len(d.Cast))
	for i, a := range d.Cast {
		actors[i] = castMemberResponse{
			ID:          a.ID,
			Name:        a.Name,
			Born:        a.Born,
			Height:      a.Height,
			Nationality: a.Nationality,
			Photo:       a.Photo,
		}
	}
	return filmDetailResponse{
		filmResponse: toFilmResponse(d.Film),
		Actors:       actors,
	}
}
