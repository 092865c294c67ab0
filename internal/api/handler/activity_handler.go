package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/filmotheque/catalog-api/internal/core/ports"
)

// ActivityHandler serves the audit trail. Admin only.
type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns recent audit entries, newest first.
//
// @Summary      List recent activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries to return (default 50, cap 100)"
// @Success      200    {array}   domain.Activity
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.activityService.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
