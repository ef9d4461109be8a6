package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/svlesiv/fyyur/internal/flash"
)

// homeRecentLimit is how many of the newest venues and artists the home
// page shows.
const homeRecentLimit = 10

// GetHome handles GET /v1/home. It returns the ten most recently created
// venues and artists, newest first, along with any flash messages left by
// the write that redirected here.
func (h *PublicHandler) GetHome(c echo.Context) error {
	ctx := c.Request().Context()

	venues, err := h.VenueRepo.ListRecent(ctx, homeRecentLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	artists, err := h.ArtistRepo.ListRecent(ctx, homeRecentLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	recentVenues := make([]nameRef, 0, len(venues))
	for _, v := range venues {
		recentVenues = append(recentVenues, nameRef{ID: v.ID, Name: v.Name})
	}
	recentArtists := make([]nameRef, 0, len(artists))
	for _, a := range artists {
		recentArtists = append(recentArtists, nameRef{ID: a.ID, Name: a.Name})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"venues":  recentVenues,
		"artists": recentArtists,
		"flash":   flash.Pop(c, h.Secret),
	})
}
