package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// ActorHandler handles HTTP requests for cast members. All routes are admin
// only, mirroring the catalog management policy.
type ActorHandler struct {
	actorService ports.ActorService
	activity     ports.ActivityRecorder
}

func NewActorHandler(actorService ports.ActorService, activity ports.ActivityRecorder) *ActorHandler {
	return &ActorHandler{actorService: actorService, activity: activity}
}

// Create adds a cast member.
//
// @Summary      Create an actor
// @Tags         actors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActorRequest  true  "Actor details"
// @Success      201   {object}  actorResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /actors [post]
func (h *ActorHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := h.actorService.Create(c.Request().Context(), ports.CreateActorInput{
		Name:        req.Name,
		Born:        req.Born,
		Height:      req.Height,
		Nationality: req.Nationality,
		Photo:       req.Photo,
	})
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionActorCreated, actor.ID)
	return c.JSON(http.StatusCreated, toActorResponse(actor))
}

// List returns cast members, optionally filtered by a name keyword.
//
// @Summary      List actors
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  false  "Keyword to search in names"
// @Success      200      {array}   actorResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /actors [get]
func (h *ActorHandler) List(c echo.Context) error {
	actors, err := h.actorService.List(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}

	out := make([]actorResponse, len(actors))
	for i := range actors {
		out[i] = toActorResponse(&actors[i])
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single cast member.
//
// @Summary      Get an actor by id
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Actor id"
// @Success      200  {object}  actorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /actors/{id} [get]
func (h *ActorHandler) Get(c echo.Context) error {
	actor, err := h.actorService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActorResponse(actor))
}

// Update patches a cast member.
//
// @Summary      Update an actor
// @Tags         actors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Actor id"
// @Param        body  body      updateActorRequest  true  "Fields to update"
// @Success      200   {object}  actorResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /actors/{id} [patch]
func (h *ActorHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := h.actorService.Update(c.Request().Context(), c.Param("id"), ports.UpdateActorInput{
		Name:        req.Name,
		Born:        req.Born,
		Height:      req.Height,
		Nationality: req.Nationality,
		Photo:       req.Photo,
	})
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionActorUpdated, actor.ID)
	return c.JSON(http.StatusOK, toActorResponse(actor))
}

// Delete removes a cast member.
//
// @Summary      Delete an actor
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Actor id"
// @Success      200  {object}  actorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /actors/{id} [delete]
func (h *ActorHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	actor, err := h.actorService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionActorDeleted, actor.ID)
	return c.JSON(http.StatusOK, toActorResponse(actor))
}

func (h *ActorHandler) recordActivity(caller domain.Identity, action, subjectID string) {
	h.activity.Enqueue(ports.ActivityInput{
		ActorID:     caller.ID,
		Action:      action,
		SubjectType: "actor",
		SubjectID:   subjectID,
		At:          time.Now().UTC(),
	})
}
