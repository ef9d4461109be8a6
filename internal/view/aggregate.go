// Package view shapes raw records into the nested structures each page
// needs: the venue listing grouped by area, past/upcoming show splits for
// detail pages, and an artist's discography. All functions are pure over
// already-loaded records; "now" is passed in by the caller so results are
// tied to the instant they were computed and nothing is cached.
package view

import (
	"time"

	"github.com/svlesiv/fyyur/internal/repository"
)

// AreaVenue is one venue entry inside an area group.
type AreaVenue struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues of one (city, state) pair.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []AreaVenue `json:"venues"`
}

// VenuesByArea partitions the full venue set into (city, state) groups.
// Groups appear in the order their first venue appears, and venues keep
// storage order within each group, so no venue is omitted or duplicated.
// A venue's upcoming count is the number of its shows starting at or
// after now.
func VenuesByArea(venues []repository.Venue, shows []repository.Show, now time.Time) []Area {
	upcoming := make(map[uint64]int)
	for _, s := range shows {
		if !s.StartTime.Before(now) {
			upcoming[s.VenueID]++
		}
	}

	type key struct{ city, state string }
	index := make(map[key]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, AreaVenue{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return areas
}

// Timed is any show row that knows its start time.
type Timed interface {
	Start() time.Time
}

// SplitShows partitions shows into past and upcoming buckets. The split is
// total: a show starting before now is past, everything else upcoming, so
// every show lands in exactly one bucket. Order within each bucket follows
// the input.
func SplitShows[T Timed](shows []T, now time.Time) (past, upcoming []T) {
	past = make([]T, 0)
	upcoming = make([]T, 0)
	for _, s := range shows {
		if s.Start().Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// SongTitle is a single song entry in a discography.
type SongTitle struct {
	Title string `json:"title"`
}

// AlbumView is one album with its songs.
type AlbumView struct {
	ID    uint64      `json:"id"`
	Title string      `json:"title"`
	Songs []SongTitle `json:"songs"`
}

// Discography groups an artist's songs by album. Songs with no album form
// the loose list; every song appears exactly once. Albums keep their input
// order and songs keep storage order within each album. Songs pointing at
// an album that is not in the input are dropped rather than misfiled.
func Discography(albums []repository.Album, songs []repository.Song) (out []AlbumView, loose []SongTitle) {
	index := make(map[uint64]int, len(albums))
	out = make([]AlbumView, 0, len(albums))
	for _, a := range albums {
		index[a.ID] = len(out)
		out = append(out, AlbumView{ID: a.ID, Title: a.Title, Songs: make([]SongTitle, 0)})
	}

	loose = make([]SongTitle, 0)
	for _, s := range songs {
		if s.AlbumID == nil {
			loose = append(loose, SongTitle{Title: s.Title})
			continue
		}
		if i, ok := index[*s.AlbumID]; ok {
			out[i].Songs = append(out[i].Songs, SongTitle{Title: s.Title})
		}
	}
	return out, loose
}
