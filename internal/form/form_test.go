package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svlesiv/fyyur/internal/repository"
)

func validVenue() VenuePayload {
	return VenuePayload{
		Name:    "The Mohawk",
		Genres:  []string{"rock", "indie"},
		Address: "912 Red River St",
		City:    "Austin",
		State:   "TX",
	}
}

func TestCheckValidVenue(t *testing.T) {
	assert.Nil(t, Check(validVenue()))
}

func TestCheckCollectsAllFieldErrors(t *testing.T) {
	p := VenuePayload{
		State:       "Texas",          // not a 2-letter code
		WebsiteLink: "not-a-url",      // invalid URL
		Genres:      nil,              // required
	}

	errs := Check(p)

	require.NotNil(t, errs)
	// Every failing field is reported, keyed by its JSON name.
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "city")
	assert.Contains(t, errs, "genres")
	assert.Equal(t, []string{"must be exactly 2 characters"}, errs["state"])
	assert.Equal(t, []string{"must be a valid URL"}, errs["website_link"])
}

func TestCheckOptionalFieldsMayBeEmpty(t *testing.T) {
	p := validVenue()
	p.Phone = ""
	p.WebsiteLink = ""
	p.FacebookLink = ""
	p.ImageLink = ""
	p.SeekingDescription = ""

	assert.Nil(t, Check(p))
}

func TestCheckShowPayloadRequiresReferences(t *testing.T) {
	errs := Check(ShowPayload{})

	require.NotNil(t, errs)
	assert.Contains(t, errs, "artist_id")
	assert.Contains(t, errs, "venue_id")
	assert.Contains(t, errs, "start_time")
}

func TestVenuePayloadOverwritesRecord(t *testing.T) {
	v := repository.Venue{
		ID:    4,
		Name:  "Old Name",
		Phone: "555-0100",
	}
	p := validVenue()
	p.Venue(&v)

	assert.Equal(t, uint64(4), v.ID) // identity untouched
	assert.Equal(t, "The Mohawk", v.Name)
	assert.Equal(t, repository.GenreList{"rock", "indie"}, v.Genres)
	assert.Empty(t, v.Phone) // full overwrite clears omitted optional fields
}

func TestArtistPayloadGenresRoundTrip(t *testing.T) {
	var a repository.Artist
	ArtistPayload{
		Name:   "Guided By Voices",
		Genres: []string{"rock", "lo-fi"},
		City:   "Dayton",
		State:  "OH",
	}.Artist(&a)

	val, err := a.Genres.Value()
	require.NoError(t, err)
	assert.Equal(t, "{rock,lo-fi}", val)
}
