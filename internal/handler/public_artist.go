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

// GetArtists handles GET /v1/artists and returns every artist as an
// id/name pair in storage order.
func (h *PublicHandler) GetArtists(c echo.Context) error {
	artists, err := h.ArtistRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]nameRef, 0, len(artists))
	for _, a := range artists {
		out = append(out, nameRef{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": out})
}

// artistPage is the artist detail view-model: profile, shows split into
// past and upcoming, albums with their songs, and loose songs that belong
// to no album.
type artistPage struct {
	artistProfile
	PastShows          []repository.ArtistShowRow `json:"past_shows"`
	PastShowsCount     int                        `json:"past_shows_count"`
	UpcomingShows      []repository.ArtistShowRow `json:"upcoming_shows"`
	UpcomingShowsCount int                        `json:"upcoming_shows_count"`
	Albums             []view.AlbumView           `json:"albums"`
	Songs              []view.SongTitle           `json:"songs"`
	Flash              []string                   `json:"flash,omitempty"`
}

// GetArtist handles GET /v1/artists/:id. Each show entry carries the venue
// side of the booking; the discography groups the artist's songs by album.
func (h *PublicHandler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rows, err := h.ShowRepo.ListByArtistWithVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	albums, err := h.AlbumRepo.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	songs, err := h.SongRepo.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	past, upcoming := view.SplitShows(rows, time.Now())
	albumViews, loose := view.Discography(albums, songs)

	return c.JSON(http.StatusOK, artistPage{
		artistProfile:      toArtistProfile(a),
		PastShows:          past,
		PastShowsCount:     len(past),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
		Albums:             albumViews,
		Songs:              loose,
		Flash:              flash.Pop(c, h.Secret),
	})
}

// GetAlbum handles GET /v1/artists/:artist_id/albums/:album_id and returns
// one album's songs together with the owning artist's name.
func (h *PublicHandler) GetAlbum(c echo.Context) error {
	ctx := c.Request().Context()
	artistID, err := strconv.ParseUint(c.Param("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist_id"})
	}
	albumID, err := strconv.ParseUint(c.Param("album_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid album_id"})
	}

	artist, err := h.ArtistRepo.GetByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	album, err := h.AlbumRepo.GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "album not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	songs, err := h.SongRepo.ListByAlbum(ctx, albumID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	titles := make([]view.SongTitle, 0, len(songs))
	for _, s := range songs {
		titles = append(titles, view.SongTitle{Title: s.Title})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"title":       album.Title,
		"songs":       titles,
		"artist_id":   artist.ID,
		"artist_name": artist.Name,
	})
}
