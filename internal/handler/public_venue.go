package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/svlesiv/fyyur/internal/flash"
	"github.com/svlesiv/fyyur/internal/repository"
	"github.com/svlesiv/fyyur/internal/view"
)

// GetVenues handles GET /v1/venues. Venues are grouped by (city, state)
// with each venue carrying its count of shows starting at or after the
// moment the request is served.
func (h *PublicHandler) GetVenues(c echo.Context) error {
	ctx := c.Request().Context()

	venues, err := h.VenueRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	shows, err := h.ShowRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"areas": view.VenuesByArea(venues, shows, time.Now()),
	})
}

// venuePage is the venue detail view-model: the venue profile plus its
// shows split into past and upcoming buckets.
type venuePage struct {
	venueProfile
	PastShows          []repository.VenueShowRow `json:"past_shows"`
	PastShowsCount     int                       `json:"past_shows_count"`
	UpcomingShows      []repository.VenueShowRow `json:"upcoming_shows"`
	UpcomingShowsCount int                       `json:"upcoming_shows_count"`
	Flash              []string                  `json:"flash,omitempty"`
}

// GetVenue handles GET /v1/venues/:id. Shows whose start time has passed
// land in past_shows, everything else in upcoming_shows; each entry carries
// the artist side of the booking.
func (h *PublicHandler) GetVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rows, err := h.ShowRepo.ListByVenueWithArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	past, upcoming := view.SplitShows(rows, time.Now())

	return c.JSON(http.StatusOK, venuePage{
		venueProfile:       toVenueProfile(v),
		PastShows:          past,
		PastShowsCount:     len(past),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
		Flash:              flash.Pop(c, h.Secret),
	})
}
