package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/svlesiv/fyyur/internal/repository"
)

type fakeShows struct {
	byArtist map[uint64][]repository.Show
}

func (f *fakeShows) ListByArtist(_ context.Context, artistID uint64) ([]repository.Show, error) {
	return f.byArtist[artistID], nil
}

type fakeVenues struct {
	byID map[uint64]*repository.Venue
}

func (f *fakeVenues) GetByID(_ context.Context, id uint64) (*repository.Venue, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	return v, nil
}

func newChecker(shows map[uint64][]repository.Show, venues map[uint64]*repository.Venue) *Checker {
	return NewChecker(&fakeShows{byArtist: shows}, &fakeVenues{byID: venues})
}

var (
	austin1 = &repository.Venue{ID: 1, Name: "The Mohawk", City: "Austin", State: "TX"}
	austin2 = &repository.Venue{ID: 2, Name: "Stubb's", City: "Austin", State: "TX"}
	dallas  = &repository.Venue{ID: 3, Name: "Granada Theater", City: "Dallas", State: "TX"}
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCheckSameAreaWithinThreeHours(t *testing.T) {
	c := newChecker(
		map[uint64][]repository.Show{7: {{ID: 10, VenueID: 1, ArtistID: 7, StartTime: at("2024-01-01T20:00:00Z")}}},
		map[uint64]*repository.Venue{1: austin1, 2: austin2, 3: dallas},
	)

	// One hour apart in the same city: blocked.
	conflict, err := c.Check(context.Background(), 7, austin2, at("2024-01-01T21:00:00Z"))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	require.True(t, conflict.SameArea)
	require.Equal(t, uint64(10), conflict.Show.ID)
	require.Equal(t, "The Mohawk", conflict.VenueName)
}

func TestCheckSameAreaExactlyThreeHours(t *testing.T) {
	c := newChecker(
		map[uint64][]repository.Show{7: {{ID: 10, VenueID: 1, ArtistID: 7, StartTime: at("2024-01-01T20:00:00Z")}}},
		map[uint64]*repository.Venue{1: austin1, 2: austin2},
	)

	// The comparison is strict: exactly three hours is allowed.
	conflict, err := c.Check(context.Background(), 7, austin2, at("2024-01-01T23:00:00Z"))
	require.NoError(t, err)
	require.Nil(t, conflict)
}

func TestCheckDifferentAreaWithinDay(t *testing.T) {
	c := newChecker(
		map[uint64][]repository.Show{7: {{ID: 10, VenueID: 1, ArtistID: 7, StartTime: at("2024-01-01T20:00:00Z")}}},
		map[uint64]*repository.Venue{1: austin1, 3: dallas},
	)

	// 23 hours apart in a different city: not enough travel buffer.
	conflict, err := c.Check(context.Background(), 7, dallas, at("2024-01-02T19:00:00Z"))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	require.False(t, conflict.SameArea)
}

func TestCheckDifferentAreaExactlyDay(t *testing.T) {
	c := newChecker(
		map[uint64][]repository.Show{7: {{ID: 10, VenueID: 1, ArtistID: 7, StartTime: at("2024-01-01T20:00:00Z")}}},
		map[uint64]*repository.Venue{1: austin1, 3: dallas},
	)

	conflict, err := c.Check(context.Background(), 7, dallas, at("2024-01-02T20:00:00Z"))
	require.NoError(t, err)
	require.Nil(t, conflict)
}

func TestCheckEarlierProposedStart(t *testing.T) {
	c := newChecker(
		map[uint64][]repository.Show{7: {{ID: 10, VenueID: 1, ArtistID: 7, StartTime: at("2024-01-01T20:00:00Z")}}},
		map[uint64]*repository.Venue{1: austin1, 2: austin2},
	)

	// Separation is absolute; booking before the existing show also clashes.
	conflict, err := c.Check(context.Background(), 7, austin2, at("2024-01-01T18:30:00Z"))
	require.NoError(t, err)
	require.NotNil(t, conflict)
}

func TestCheckReportsFirstHitInStorageOrder(t *testing.T) {
	c := newChecker(
		map[uint64][]repository.Show{7: {
			{ID: 10, VenueID: 1, ArtistID: 7, StartTime: at("2024-01-01T20:00:00Z")},
			{ID: 11, VenueID: 2, ArtistID: 7, StartTime: at("2024-01-01T21:00:00Z")},
		}},
		map[uint64]*repository.Venue{1: austin1, 2: austin2},
	)

	conflict, err := c.Check(context.Background(), 7, austin2, at("2024-01-01T21:30:00Z"))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	require.Equal(t, uint64(10), conflict.Show.ID)
}

func TestCheckNoExistingShows(t *testing.T) {
	c := newChecker(map[uint64][]repository.Show{}, map[uint64]*repository.Venue{})

	conflict, err := c.Check(context.Background(), 7, austin1, at("2024-01-01T20:00:00Z"))
	require.NoError(t, err)
	require.Nil(t, conflict)
}

func TestCheckSkipsOrphanedShow(t *testing.T) {
	c := newChecker(
		map[uint64][]repository.Show{7: {{ID: 10, VenueID: 99, ArtistID: 7, StartTime: at("2024-01-01T20:00:00Z")}}},
		map[uint64]*repository.Venue{1: austin1},
	)

	// A show whose venue vanished cannot be placed in an area and is skipped.
	conflict, err := c.Check(context.Background(), 7, austin1, at("2024-01-01T20:30:00Z"))
	require.NoError(t, err)
	require.Nil(t, conflict)
}
