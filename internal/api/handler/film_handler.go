package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// FilmHandler handles HTTP requests for the film catalog.
type FilmHandler struct {
	filmService ports.FilmService
	activity    ports.ActivityRecorder
}

func NewFilmHandler(filmService ports.FilmService, activity ports.ActivityRecorder) *FilmHandler {
	return &FilmHandler{filmService: filmService, activity: activity}
}

// Create adds a film to the catalog. Admin only.
//
// @Summary      Create a film
// @Tags         films
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFilmRequest  true  "Film details"
// @Success      201   {object}  filmDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /films [post]
func (h *FilmHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createFilmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.filmService.Create(c.Request().Context(), ports.CreateFilmInput{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Genre:    req.Genre,
		ActorIDs: req.Actors,
	})
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionFilmCreated, detail.Film.ID)
	return c.JSON(http.StatusCreated, toFilmDetailResponse(detail))
}

// List returns the catalog, optionally filtered by a title keyword.
//
// @Summary      List films
// @Tags         films
// @Produce      json
// @Param        keyword  query     string  false  "Keyword to search in titles"
// @Success      200      {array}   filmResponse
// @Router       /films [get]
func (h *FilmHandler) List(c echo.Context) error {
	films, err := h.filmService.List(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}

	out := make([]filmResponse, len(films))
	for i, f := range films {
		out[i] = toFilmResponse(f)
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a film with its cast resolved.
//
// @Summary      Get a film by id
// @Tags         films
// @Produce      json
// @Param        id   path      string  true  "Film id"
// @Success      200  {object}  filmDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /films/{id} [get]
func (h *FilmHandler) Get(c echo.Context) error {
	detail, err := h.filmService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFilmDetailResponse(detail))
}

// Update patches a film. Admin only. The actors field, when present,
// replaces the whole cast.
//
// @Summary      Update a film
// @Tags         films
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Film id"
// @Param        body  body      updateFilmRequest  true  "Fields to update"
// @Success      200   {object}  filmDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /films/{id} [patch]
func (h *FilmHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateFilmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.filmService.Update(c.Request().Context(), c.Param("id"), ports.UpdateFilmInput{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Genre:    req.Genre,
		ActorIDs: req.Actors,
	})
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionFilmUpdated, detail.Film.ID)
	return c.JSON(http.StatusOK, toFilmDetailResponse(detail))
}

// Delete removes a film. Admin only.
//
// @Summary      Delete a film
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Film id"
// @Success      200  {object}  filmResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /films/{id} [delete]
func (h *FilmHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	film, err := h.filmService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionFilmDeleted, film.ID)
	return c.JSON(http.StatusOK, toFilmResponse(*film))
}

func (h *FilmHandler) recordActivity(caller domain.Identity, action, subjectID string) {
	h.activity.Enqueue(ports.ActivityInput{
		ActorID:     caller.ID,
		Action:      action,
		SubjectType: "film",
		SubjectID:   subjectID,
		At:          time.Now().UTC(),
	})
}
