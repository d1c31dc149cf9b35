package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetCurrentUser handles GET /api/users/me.
func (s *Server) GetCurrentUser(c echo.Context) error {
	return c.JSON(http.StatusOK, toUserMeView(currentUser(c), currentRole(c).String()))
}
