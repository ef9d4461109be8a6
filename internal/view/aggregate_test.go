package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svlesiv/fyyur/internal/repository"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestVenuesByAreaGroupsInFirstSeenOrder(t *testing.T) {
	venues := []repository.Venue{
		{ID: 1, Name: "The Mohawk", City: "Austin", State: "TX"},
		{ID: 2, Name: "Granada Theater", City: "Dallas", State: "TX"},
		{ID: 3, Name: "Stubb's", City: "Austin", State: "TX"},
	}
	shows := []repository.Show{
		{ID: 1, VenueID: 1, StartTime: now.Add(time.Hour)},       // upcoming
		{ID: 2, VenueID: 1, StartTime: now.Add(-time.Hour)},      // past
		{ID: 3, VenueID: 3, StartTime: now},                      // boundary counts as upcoming
		{ID: 4, VenueID: 2, StartTime: now.Add(48 * time.Hour)},  // upcoming
		{ID: 5, VenueID: 2, StartTime: now.Add(-48 * time.Hour)}, // past
	}

	areas := VenuesByArea(venues, shows, now)

	require.Len(t, areas, 2)
	assert.Equal(t, "Austin", areas[0].City)
	assert.Equal(t, []AreaVenue{
		{ID: 1, Name: "The Mohawk", NumUpcomingShows: 1},
		{ID: 3, Name: "Stubb's", NumUpcomingShows: 1},
	}, areas[0].Venues)
	assert.Equal(t, "Dallas", areas[1].City)
	assert.Equal(t, []AreaVenue{
		{ID: 2, Name: "Granada Theater", NumUpcomingShows: 1},
	}, areas[1].Venues)
}

func TestVenuesByAreaIsAPartition(t *testing.T) {
	venues := []repository.Venue{
		{ID: 1, City: "Austin", State: "TX"},
		{ID: 2, City: "Austin", State: "MN"}, // same city name, different state
		{ID: 3, City: "Dallas", State: "TX"},
		{ID: 4, City: "Austin", State: "TX"},
	}

	areas := VenuesByArea(venues, nil, now)

	seen := make(map[uint64]int)
	for _, area := range areas {
		for _, v := range area.Venues {
			seen[v.ID]++
			assert.Zero(t, v.NumUpcomingShows)
		}
	}
	require.Len(t, seen, len(venues))
	for id, n := range seen {
		assert.Equalf(t, 1, n, "venue %d appeared %d times", id, n)
	}
}

func TestSplitShowsTotalPartition(t *testing.T) {
	rows := []repository.ArtistShowRow{
		{VenueID: 1, VenueName: "The Mohawk", StartTime: now.Add(-time.Minute)},
		{VenueID: 2, VenueName: "Stubb's", StartTime: now}, // start == now is upcoming
		{VenueID: 3, VenueName: "Granada Theater", StartTime: now.Add(time.Minute)},
	}

	past, upcoming := SplitShows(rows, now)

	require.Len(t, past, 1)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "The Mohawk", past[0].VenueName)
	assert.Equal(t, "Stubb's", upcoming[0].VenueName)
	assert.Equal(t, "Granada Theater", upcoming[1].VenueName)
}

func TestSplitShowsEmpty(t *testing.T) {
	past, upcoming := SplitShows([]repository.VenueShowRow{}, now)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
}

func TestDiscography(t *testing.T) {
	five := uint64(5)
	six := uint64(6)
	albums := []repository.Album{
		{ID: 5, ArtistID: 3, Title: "First Light"},
		{ID: 6, ArtistID: 3, Title: "Afterglow"},
	}
	songs := []repository.Song{
		{ID: 1, Title: "Opener", ArtistID: 3, AlbumID: &five},
		{ID: 2, Title: "Single", ArtistID: 3, AlbumID: nil},
		{ID: 3, Title: "Closer", ArtistID: 3, AlbumID: &five},
		{ID: 4, Title: "B-Side", ArtistID: 3, AlbumID: &six},
	}

	out, loose := Discography(albums, songs)

	require.Len(t, out, 2)
	assert.Equal(t, "First Light", out[0].Title)
	assert.Equal(t, []SongTitle{{Title: "Opener"}, {Title: "Closer"}}, out[0].Songs)
	assert.Equal(t, []SongTitle{{Title: "B-Side"}}, out[1].Songs)
	assert.Equal(t, []SongTitle{{Title: "Single"}}, loose)
}

func TestDiscographyLooseOnly(t *testing.T) {
	songs := []repository.Song{
		{ID: 1, Title: "Demo", ArtistID: 3},
	}

	out, loose := Discography(nil, songs)

	assert.Empty(t, out)
	assert.Equal(t, []SongTitle{{Title: "Demo"}}, loose)
}

func TestDiscographyDropsUnknownAlbumReference(t *testing.T) {
	nine := uint64(9)
	songs := []repository.Song{
		{ID: 1, Title: "Stray", ArtistID: 3, AlbumID: &nine},
	}

	out, loose := Discography([]repository.Album{{ID: 5, ArtistID: 3, Title: "First Light"}}, songs)

	require.Len(t, out, 1)
	assert.Empty(t, out[0].Songs)
	assert.Empty(t, loose)
}
