package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/svlesiv/fyyur/internal/form"
	"github.com/svlesiv/fyyur/internal/queue"
	"github.com/svlesiv/fyyur/internal/repository"
)

// CreateShow handles POST /v1/shows. The referenced artist and venue must
// exist — their absence is a lookup failure, reported separately from a
// booking conflict — and the proposed time must clear the conflict check
// before anything is persisted.
func (h *BookingHandler) CreateShow(c echo.Context) error {
	var p form.ShowPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := form.Check(p); errs != nil {
		return fieldErrors(c, errs)
	}
	startTime, err := time.Parse(time.RFC3339, p.StartTime)
	if err != nil {
		return fieldErrors(c, form.Errors{"start_time": {"must be a valid RFC3339 timestamp"}})
	}

	ctx := c.Request().Context()
	if _, err := h.ArtistRepo.GetByID(ctx, p.ArtistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Artist does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	venue, err := h.VenueRepo.GetByID(ctx, p.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Venue does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	conflict, err := h.Checker.Check(ctx, p.ArtistID, venue, startTime)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check existing shows"})
	}
	if conflict != nil {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Artist is busy at that time. Select a different time or artist.",
			"conflict": echo.Map{
				"venue_name": conflict.VenueName,
				"start_time": conflict.Show.StartTime,
				"same_area":  conflict.SameArea,
			},
		})
	}

	show := repository.Show{VenueID: p.VenueID, ArtistID: p.ArtistID, StartTime: startTime}
	if err := h.ShowRepo.Create(ctx, &show); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "An error occurred. Show could not be listed.",
		})
	}
	_ = h.Events.Publish(ctx, queue.KindShowBooked, show.ID, venue.Name)

	return flashRedirect(c, h.Secret, http.StatusCreated, "/",
		"Show was successfully listed!",
		echo.Map{"id": show.ID})
}
