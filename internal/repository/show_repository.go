// This file defines the Show model and its repository. A show links one
// artist to one venue at a start time; both references are required at
// write time and a venue deletion removes its shows first.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Show represents a show row. Relationships are expressed as plain foreign
// keys; callers resolve the referenced artist or venue explicitly.
type Show struct {
	ID        uint64
	VenueID   uint64
	ArtistID  uint64
	StartTime time.Time
}

// VenueShowRow is a show joined with its artist, shaped for a venue detail
// page where each show carries the artist side.
type VenueShowRow struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Start returns the show's start time. Used by the past/upcoming split.
func (r VenueShowRow) Start() time.Time { return r.StartTime }

// ArtistShowRow is a show joined with its venue, shaped for an artist
// detail page where each show carries the venue side.
type ArtistShowRow struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// Start returns the show's start time. Used by the past/upcoming split.
func (r ArtistShowRow) Start() time.Time { return r.StartTime }

// ShowListRow is a show joined with both sides for the platform-wide
// show listing.
type ShowListRow struct {
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the show
// struct. The caller is responsible for verifying that both referenced
// records exist and that the booking passes the conflict check.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a show by its ID, returning ErrShowNotFound when absent.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*Show, error) {
	const q = `SELECT id, venue_id, artist_id, start_time FROM shows WHERE id = ?`
	var s Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListAll returns every show in storage order. The venue listing derives
// per-venue upcoming counts from this set in memory.
func (r *ShowRepo) ListAll(ctx context.Context) ([]Show, error) {
	const q = `SELECT id, venue_id, artist_id, start_time FROM shows ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Show, 0)
	for rows.Next() {
		var s Show
		if err := rows.Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArtist returns an artist's shows in storage order. The conflict
// checker walks this order and reports the first hit, so the order decides
// which conflict surfaces when there are several.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]Show, error) {
	const q = `SELECT id, venue_id, artist_id, start_time FROM shows WHERE artist_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Show, 0)
	for rows.Next() {
		var s Show
		if err := rows.Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByVenueWithArtist returns a venue's shows joined with the artist side.
func (r *ShowRepo) ListByVenueWithArtist(ctx context.Context, venueID uint64) ([]VenueShowRow, error) {
	const q = `SELECT a.id, a.name, COALESCE(a.image_link, ''), s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ? ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]VenueShowRow, 0)
	for rows.Next() {
		var row VenueShowRow
		if err := rows.Scan(&row.ArtistID, &row.ArtistName, &row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArtistWithVenue returns an artist's shows joined with the venue side.
func (r *ShowRepo) ListByArtistWithVenue(ctx context.Context, artistID uint64) ([]ArtistShowRow, error) {
	const q = `SELECT v.id, v.name, COALESCE(v.image_link, ''), s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ? ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ArtistShowRow, 0)
	for rows.Next() {
		var row ArtistShowRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.VenueImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllWithNames returns every show joined with venue and artist names
// for the platform-wide listing.
func (r *ShowRepo) ListAllWithNames(ctx context.Context) ([]ShowListRow, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, COALESCE(a.image_link, ''), s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ShowListRow, 0)
	for rows.Next() {
		var row ShowListRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.ArtistID, &row.ArtistName,
			&row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
