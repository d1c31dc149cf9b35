package http

import (
	"net/http"
	"strconv"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Context keys for the resolved caller. Authentication itself happens
// upstream; requests arrive carrying the authenticated user id in the
// X-User-ID header.
const (
	contextKeyUser = "littlelemon.user"
	contextKeyRole = "littlelemon.role"
)

// IdentityMiddleware resolves the caller and their role once per request.
// Requests without a resolvable caller are rejected with 401.
func IdentityMiddleware(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("X-User-ID")
			userID, err := strconv.ParseUint(header, 10, 64)
			if err != nil || userID == 0 {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
			}

			user, err := users.Get(c.Request().Context(), uint(userID))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
			}

			role, err := users.RoleOf(c.Request().Context(), user.ID)
			if err != nil {
				return err
			}

			c.Set(contextKeyUser, user)
			c.Set(contextKeyRole, role)
			return next(c)
		}
	}
}

// currentUser returns the caller resolved by IdentityMiddleware.
func currentUser(c echo.Context) *identity.User {
	user, _ := c.Get(contextKeyUser).(*identity.User)
	return user
}

// currentRole returns the caller's role resolved by IdentityMiddleware.
func currentRole(c echo.Context) kernel.Role {
	role, ok := c.Get(contextKeyRole).(kernel.Role)
	if !ok {
		return kernel.RoleUnknown
	}
	return role
}
