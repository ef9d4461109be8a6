// Package booking decides whether a proposed show clashes with an artist's
// existing bookings. Touring artists need travel buffer between shows, so
// the required separation depends on whether the two venues share a city
// and state.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/svlesiv/fyyur/internal/repository"
)

// Required separation between two shows by the same artist. Within one
// (city, state) area back-to-back sets are fine as long as they are at
// least three hours apart; between different areas a full day is required.
const (
	SameAreaWindow = 3 * time.Hour
	TravelWindow   = 24 * time.Hour
)

// ShowSource lists an artist's existing shows in storage order.
type ShowSource interface {
	ListByArtist(ctx context.Context, artistID uint64) ([]repository.Show, error)
}

// VenueSource resolves the venue a show is booked at.
type VenueSource interface {
	GetByID(ctx context.Context, id uint64) (*repository.Venue, error)
}

// Conflict describes the first existing show that blocks a proposed
// booking.
type Conflict struct {
	Show      repository.Show // the existing booking that clashes
	VenueName string          // where that booking takes place
	SameArea  bool            // whether both venues share (city, state)
}

// Checker evaluates proposed bookings against an artist's schedule.
type Checker struct {
	shows  ShowSource
	venues VenueSource
}

// NewChecker constructs a Checker over the given sources.
func NewChecker(shows ShowSource, venues VenueSource) *Checker {
	return &Checker{shows: shows, venues: venues}
}

// Check walks the artist's shows in storage order and returns the first one
// whose start time is too close to the proposed start: strictly less than
// three hours apart when the existing show's venue shares the proposed
// venue's (city, state), strictly less than 24 hours apart otherwise.
// Exactly three (or 24) hours apart is allowed. A nil Conflict means the
// booking may proceed. The caller must have resolved the venue already;
// a missing artist or venue is a lookup failure, not a conflict.
func (c *Checker) Check(ctx context.Context, artistID uint64, venue *repository.Venue, start time.Time) (*Conflict, error) {
	shows, err := c.shows.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	for _, s := range shows {
		at, err := c.venues.GetByID(ctx, s.VenueID)
		if err != nil {
			if errors.Is(err, repository.ErrVenueNotFound) {
				// Venue deletion cascades to its shows, so this only happens
				// on a race; the orphaned row cannot be placed in an area.
				continue
			}
			return nil, err
		}
		sameArea := at.City == venue.City && at.State == venue.State
		window := TravelWindow
		if sameArea {
			window = SameAreaWindow
		}
		if gap(start, s.StartTime) < window {
			return &Conflict{Show: s, VenueName: at.Name, SameArea: sameArea}, nil
		}
	}
	return nil, nil
}

// gap returns the absolute separation between two instants.
func gap(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d
}
