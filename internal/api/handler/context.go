package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
	"github.com/naratornb/leave-and-shift-project/internal/core/ports"
)

// ctxActor extracts the actor injected by the Auth middleware and performs a
// fast-fail check before any service call: both the role and the account id
// must be present (presence proves the middleware ran and the token carried
// a full identity).
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	accountID, _ := c.Get("account_id").(string)
	if role == "" || accountID == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return ports.Actor{ID: accountID, Role: domain.Role(role)}, nil
}
