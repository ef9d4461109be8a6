package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/svlesiv/fyyur/internal/handler"
)

// RegisterPublic registers the browse and search endpoints. All of them
// are idempotent reads open to everyone.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/home", p.GetHome)
	e.GET("/v1/venues", p.GetVenues)
	e.GET("/v1/venues/:id", p.GetVenue)
	e.GET("/v1/artists", p.GetArtists)
	e.GET("/v1/artists/:id", p.GetArtist)
	e.GET("/v1/artists/:artist_id/albums/:album_id", p.GetAlbum)
	e.GET("/v1/shows", p.GetShows)
	e.GET("/v1/search/venues", p.SearchVenues)
	e.GET("/v1/search/artists", p.SearchArtists)
}

// RegisterBooking registers the write endpoints. The surface is
// deliberately asymmetric: venues can be deleted, artists cannot, and
// shows can only be created.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler) {
	e.POST("/v1/venues", b.CreateVenue)
	e.PUT("/v1/venues/:id", b.UpdateVenue)
	e.DELETE("/v1/venues/:id", b.DeleteVenue)
	e.POST("/v1/artists", b.CreateArtist)
	e.PUT("/v1/artists/:id", b.UpdateArtist)
	e.POST("/v1/artists/:id/albums", b.CreateAlbum)
	e.POST("/v1/artists/:id/songs", b.CreateSong)
	e.POST("/v1/shows", b.CreateShow)
}
