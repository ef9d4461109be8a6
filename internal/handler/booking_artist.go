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

// CreateArtist handles POST /v1/artists.
func (h *BookingHandler) CreateArtist(c echo.Context) error {
	var p form.ArtistPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := form.Check(p); errs != nil {
		return fieldErrors(c, errs)
	}

	var a repository.Artist
	p.Artist(&a)
	if err := h.ArtistRepo.Create(c.Request().Context(), &a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be listed.", p.Name),
		})
	}
	_ = h.Events.Publish(c.Request().Context(), queue.KindArtistCreated, a.ID, a.Name)

	return flashRedirect(c, h.Secret, http.StatusCreated, "/",
		fmt.Sprintf("Artist %s was successfully listed!", a.Name),
		echo.Map{"id": a.ID})
}

// UpdateArtist handles PUT /v1/artists/:id as a full-record overwrite.
func (h *BookingHandler) UpdateArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var p form.ArtistPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := form.Check(p); errs != nil {
		return fieldErrors(c, errs)
	}

	ctx := c.Request().Context()
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	p.Artist(a)
	if err := h.ArtistRepo.Update(ctx, a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be updated.", p.Name),
		})
	}
	_ = h.Events.Publish(ctx, queue.KindArtistUpdated, a.ID, a.Name)

	return flashRedirect(c, h.Secret, http.StatusOK, fmt.Sprintf("/artists/%d", a.ID),
		fmt.Sprintf("Artist %s was successfully updated!", a.Name), nil)
}

// CreateAlbum handles POST /v1/artists/:id/albums.
func (h *BookingHandler) CreateAlbum(c echo.Context) error {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var p form.AlbumPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := form.Check(p); errs != nil {
		return fieldErrors(c, errs)
	}

	ctx := c.Request().Context()
	if _, err := h.ArtistRepo.GetByID(ctx, artistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	album := repository.Album{ArtistID: artistID, Title: p.Title}
	if err := h.AlbumRepo.Create(ctx, &album); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Album %s could not be added.", p.Title),
		})
	}

	return flashRedirect(c, h.Secret, http.StatusCreated, fmt.Sprintf("/artists/%d", artistID),
		fmt.Sprintf("Album %s was successfully added!", album.Title),
		echo.Map{"id": album.ID})
}

// CreateSong handles POST /v1/artists/:id/songs. A song naming an album
// must name one owned by the same artist; the pairing is checked here
// because the schema does not enforce it.
func (h *BookingHandler) CreateSong(c echo.Context) error {
	artistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var p form.SongPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := form.Check(p); errs != nil {
		return fieldErrors(c, errs)
	}

	ctx := c.Request().Context()
	if _, err := h.ArtistRepo.GetByID(ctx, artistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	song := repository.Song{Title: p.Title, ArtistID: artistID, AlbumID: p.AlbumID}
	if err := h.SongRepo.Create(ctx, &song); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlbumNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "album not found"})
		case errors.Is(err, repository.ErrAlbumArtistMismatch):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "album belongs to a different artist"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": fmt.Sprintf("An error occurred. Song %s could not be added.", p.Title),
			})
		}
	}

	return flashRedirect(c, h.Secret, http.StatusCreated, fmt.Sprintf("/artists/%d", artistID),
		fmt.Sprintf("Song %s was successfully added!", song.Title),
		echo.Map{"id": song.ID})
}
