package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/svlesiv/fyyur/internal/form"
	"github.com/svlesiv/fyyur/internal/queue"
	"github.com/svlesiv/fyyur/internal/repository"
)

// CreateVenue handles POST /v1/venues. A valid submission is persisted and
// confirmed with a flash naming the venue; an invalid one reports every
// field error without touching the store.
func (h *BookingHandler) CreateVenue(c echo.Context) error {
	var p form.VenuePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := form.Check(p); errs != nil {
		return fieldErrors(c, errs)
	}

	var v repository.Venue
	p.Venue(&v)
	if err := h.VenueRepo.Create(c.Request().Context(), &v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be listed.", p.Name),
		})
	}
	_ = h.Events.Publish(c.Request().Context(), queue.KindVenueCreated, v.ID, v.Name)

	return flashRedirect(c, h.Secret, http.StatusCreated, "/",
		fmt.Sprintf("Venue %s was successfully listed!", v.Name),
		echo.Map{"id": v.ID})
}

// UpdateVenue handles PUT /v1/venues/:id. The edit is a full-record
// overwrite of every editable field.
func (h *BookingHandler) UpdateVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var p form.VenuePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := form.Check(p); errs != nil {
		return fieldErrors(c, errs)
	}

	ctx := c.Request().Context()
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	p.Venue(v)
	if err := h.VenueRepo.Update(ctx, v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be updated.", p.Name),
		})
	}
	_ = h.Events.Publish(ctx, queue.KindVenueUpdated, v.ID, v.Name)

	return flashRedirect(c, h.Secret, http.StatusOK, fmt.Sprintf("/venues/%d", v.ID),
		fmt.Sprintf("Venue %s was successfully updated!", v.Name), nil)
}

// DeleteVenue handles DELETE /v1/venues/:id. The venue and all shows that
// reference it go in one transaction; a mid-cascade failure rolls back and
// is never reported as success.
func (h *BookingHandler) DeleteVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx := c.Request().Context()
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.VenueRepo.DeleteWithShows(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be deleted.", v.Name),
		})
	}
	_ = h.Events.Publish(ctx, queue.KindVenueDeleted, id, v.Name)

	return flashRedirect(c, h.Secret, http.StatusOK, "/", "The venue has been deleted.", nil)
}
