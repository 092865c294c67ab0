package handler

import "time"

type createFilmRequest struct {
	Title    string   `json:"title"    validate:"required"`
	Year     string   `json:"year"     validate:"required"`
	Director string   `json:"director" validate:"required"`
	Genre    string   `json:"genre"    validate:"required"`
	Actors   []string `json:"actors"`
}

type updateFilmRequest struct {
	Title    *string   `json:"title"    validate:"omitempty,min=1"`
	Year     *string   `json:"year"     validate:"omitempty,min=1"`
	Director *string   `json:"director" validate:"omitempty,min=1"`
	Genre    *string   `json:"genre"    validate:"omitempty,min=1"`
	Actors   *[]string `json:"actors"`
}

type filmResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Year      string     `json:"year"`
	Director  string     `json:"director"`
	Genre     string     `json:"genre"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type castMemberResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Born        string `json:"born,omitempty"`
	Height      int    `json:"height,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

type filmDetailResponse struct {
	filmResponse
	Actors []castMemberResponse `json:"actors"`
}
