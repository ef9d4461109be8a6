package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetShows handles GET /v1/shows and lists every show platform-wide with
// the venue and artist names resolved.
func (h *PublicHandler) GetShows(c echo.Context) error {
	rows, err := h.ShowRepo.ListAllWithNames(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": rows})
}
