// Package handler exposes the HTTP surface of the booking directory. This
// file defines the read-side handler and the sanitized record shapes shared
// by listing, detail and search responses. Genres always go out as a list
// of strings, never as the stored text blob.
package handler

import (
	"github.com/svlesiv/fyyur/internal/repository"
)

// PublicHandler aggregates the repositories needed for browsing and search.
// Every endpoint it serves is idempotent and side-effect free, apart from
// clearing a flash cookie left by a preceding write.
type PublicHandler struct {
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
	AlbumRepo  *repository.AlbumRepo
	SongRepo   *repository.SongRepo
	Secret     string // verifies flash cookies
}

// venueProfile is a venue shaped for API responses.
type venueProfile struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	WebsiteLink        string   `json:"website_link"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

func toVenueProfile(v *repository.Venue) venueProfile {
	return venueProfile{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		WebsiteLink:        v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
	}
}

// artistProfile is an artist shaped for API responses.
type artistProfile struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	WebsiteLink        string   `json:"website_link"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

func toArtistProfile(a *repository.Artist) artistProfile {
	return artistProfile{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		WebsiteLink:        a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
	}
}

// nameRef is the minimal id/name pair used by index-style listings.
type nameRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
