package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmotheque/catalog-api/internal/api/metrics"
	"github.com/filmotheque/catalog-api/internal/core/domain"
	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for user-submitted reviews.
type ReviewHandler struct {
	reviewService ports.ReviewService
	activity      ports.ActivityRecorder
}

func NewReviewHandler(reviewService ports.ReviewService, activity ports.ActivityRecorder) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, activity: activity}
}

// Create submits a review owned by the caller.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewService.Create(c.Request().Context(), ports.CreateReviewInput{
		FilmID:  req.FilmID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}, caller)
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()
	h.recordActivity(caller, domain.ActionReviewCreated, review.ID)
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// ListByFilm returns all reviews of a film with their reviewers.
//
// @Summary      List reviews for a film
// @Tags         reviews
// @Produce      json
// @Param        filmId  path      string  true  "Film id"
// @Success      200     {array}   reviewWithUserResponse
// @Router       /reviews/film/{filmId} [get]
func (h *ReviewHandler) ListByFilm(c echo.Context) error {
	reviews, err := h.reviewService.ListByFilm(c.Request().Context(), c.Param("filmId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewWithUserResponses(reviews))
}

// ListByUser returns all reviews written by a user.
//
// @Summary      List reviews by a user
// @Tags         reviews
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   reviewWithUserResponse
// @Router       /reviews/user/{userId} [get]
func (h *ReviewHandler) ListByUser(c echo.Context) error {
	reviews, err := h.reviewService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewWithUserResponses(reviews))
}

// Update patches a review. Owners and admins only.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Review id"
// @Param        body  body      updateReviewRequest  true  "Fields to update"
// @Success      200   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /reviews/{id} [patch]
func (h *ReviewHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewService.Update(c.Request().Context(), c.Param("id"), ports.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	}, caller)
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionReviewUpdated, review.ID)
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// Delete removes a review. Owners and admins only.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  reviewResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	review, err := h.reviewService.Delete(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return err
	}

	h.recordActivity(caller, domain.ActionReviewDeleted, review.ID)
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

func (h *ReviewHandler) recordActivity(caller domain.Identity, action, subjectID string) {
	h.activity.Enqueue(ports.ActivityInput{
		ActorID:     caller.ID,
		Action:      action,
		SubjectType: "review",
		SubjectID:   subjectID,
		At:          time.Now().UTC(),
	})
}
