// This file defines the write-side handler. Every write walks the same
// states: bind the submitted fields, validate them, persist or roll back,
// respond. Validation or conflict failures abort before any store
// mutation; a store failure rolls back and surfaces a generic message
// naming the entity, so a record is never left half-written.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/svlesiv/fyyur/internal/booking"
	"github.com/svlesiv/fyyur/internal/flash"
	"github.com/svlesiv/fyyur/internal/form"
	"github.com/svlesiv/fyyur/internal/queue"
	"github.com/svlesiv/fyyur/internal/repository"
)

// BookingHandler aggregates everything the write endpoints need: the
// repositories, the conflict checker, the event publisher and the secret
// used to sign flash messages.
type BookingHandler struct {
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
	AlbumRepo  *repository.AlbumRepo
	SongRepo   *repository.SongRepo
	Checker    *booking.Checker
	Events     *queue.Publisher
	Secret     string
}

// fieldErrors responds with every accumulated field-level message so the
// client can re-render the form with all of them at once.
func fieldErrors(c echo.Context, errs form.Errors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
}

// flashRedirect sets the flash cookie and tells the client where the
// confirmation view lives. It stands in for the redirect-after-post of a
// server-rendered app.
func flashRedirect(c echo.Context, secret string, status int, location, message string, extra echo.Map) error {
	_ = flash.Set(c, secret, message)
	body := echo.Map{"message": message, "redirect": location}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(status, body)
}
