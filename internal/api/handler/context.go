package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmotheque/catalog-api/internal/api/middleware"
	"github.com/filmotheque/catalog-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing id or role
// proves the guard did not run (or the token carried no usable identity),
// so the request is rejected rather than handed to a service.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if id == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get(middleware.CtxUsername).(string)
	return domain.Identity{ID: id, Username: username, Role: role}, nil
}
