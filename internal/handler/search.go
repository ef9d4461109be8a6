package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SearchVenues handles GET /v1/search/venues?term=. The match is a case
// insensitive substring test against the venue name; every match comes
// back with the total count, unranked and unpaginated.
func (h *PublicHandler) SearchVenues(c echo.Context) error {
	term := c.QueryParam("term")
	venues, err := h.VenueRepo.SearchByName(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	results := make([]nameRef, 0, len(venues))
	for _, v := range venues {
		results = append(results, nameRef{ID: v.ID, Name: v.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(results),
		"results":     results,
		"search_term": term,
	})
}

// SearchArtists handles GET /v1/search/artists?term= with the same
// contract as the venue search.
func (h *PublicHandler) SearchArtists(c echo.Context) error {
	term := c.QueryParam("term")
	artists, err := h.ArtistRepo.SearchByName(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	results := make([]nameRef, 0, len(artists))
	for _, a := range artists {
		results = append(results, nameRef{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(results),
		"results":     results,
		"search_term": term,
	})
}
