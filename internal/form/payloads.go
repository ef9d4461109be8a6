package form

import "github.com/svlesiv/fyyur/internal/repository"

// VenuePayload is the field set for creating or editing a venue. Edits are
// full-record overwrites, so the same payload serves both.
type VenuePayload struct {
	Name               string   `json:"name" validate:"required,max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,required"`
	Address            string   `json:"address" validate:"required,max=120"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,len=2"`
	Phone              string   `json:"phone" validate:"omitempty,max=120"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url,max=120"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"omitempty,max=120"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
}

// Venue copies the payload onto a venue record, overwriting every editable
// field.
func (p VenuePayload) Venue(v *repository.Venue) {
	v.Name = p.Name
	v.Genres = repository.GenreList(p.Genres)
	v.Address = p.Address
	v.City = p.City
	v.State = p.State
	v.Phone = p.Phone
	v.WebsiteLink = p.WebsiteLink
	v.FacebookLink = p.FacebookLink
	v.SeekingTalent = p.SeekingTalent
	v.SeekingDescription = p.SeekingDescription
	v.ImageLink = p.ImageLink
}

// ArtistPayload is the field set for creating or editing an artist.
type ArtistPayload struct {
	Name               string   `json:"name" validate:"required,max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,required"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,len=2"`
	Phone              string   `json:"phone" validate:"omitempty,max=120"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url,max=120"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"omitempty,max=120"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
}

// Artist copies the payload onto an artist record.
func (p ArtistPayload) Artist(a *repository.Artist) {
	a.Name = p.Name
	a.Genres = repository.GenreList(p.Genres)
	a.City = p.City
	a.State = p.State
	a.Phone = p.Phone
	a.WebsiteLink = p.WebsiteLink
	a.FacebookLink = p.FacebookLink
	a.SeekingVenue = p.SeekingVenue
	a.SeekingDescription = p.SeekingDescription
	a.ImageLink = p.ImageLink
}

// ShowPayload is the field set for booking a show. StartTime is RFC3339;
// the handler parses it after validation.
type ShowPayload struct {
	ArtistID  uint64 `json:"artist_id" validate:"required,gt=0"`
	VenueID   uint64 `json:"venue_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"required"`
}

// AlbumPayload is the field set for adding an album to an artist.
type AlbumPayload struct {
	Title string `json:"title" validate:"required,max=120"`
}

// SongPayload is the field set for adding a song to an artist. AlbumID is
// optional; nil keeps the song loose.
type SongPayload struct {
	Title   string  `json:"title" validate:"required,max=120"`
	AlbumID *uint64 `json:"album_id" validate:"omitempty,gt=0"`
}
