// This file defines the Artist model and its repository. Artists own shows,
// albums and songs through artist_id foreign keys; there is no delete here
// because the booking surface never exposed artist deletion.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Artist represents an artist row. Shape mirrors Venue except that artists
// have no street address and seek venues rather than talent.
type Artist struct {
	ID                 uint64
	CreatedAt          time.Time
	Name               string
	Genres             GenreList
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
}

const artistCols = `id, created_at, name, genres, city, state,
	COALESCE(phone, ''), COALESCE(website_link, ''), COALESCE(facebook_link, ''),
	seeking_venue, COALESCE(seeking_description, ''), COALESCE(image_link, '')`

func scanArtist(row interface{ Scan(...any) error }, a *Artist) error {
	return row.Scan(&a.ID, &a.CreatedAt, &a.Name, &a.Genres, &a.City, &a.State,
		&a.Phone, &a.WebsiteLink, &a.FacebookLink,
		&a.SeekingVenue, &a.SeekingDescription, &a.ImageLink)
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and populates ID and CreatedAt by re-reading
// the inserted row.
func (r *ArtistRepo) Create(ctx context.Context, a *Artist) error {
	const qInsert = `INSERT INTO artists
		(name, genres, city, state, phone, website_link, facebook_link,
		 seeking_venue, seeking_description, image_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		a.Name, a.Genres, a.City, a.State, a.Phone, a.WebsiteLink,
		a.FacebookLink, a.SeekingVenue, a.SeekingDescription, a.ImageLink)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = `SELECT ` + artistCols + ` FROM artists WHERE id = ?`
	return scanArtist(r.db.QueryRowContext(ctx, qSelect, a.ID), a)
}

// GetByID fetches an artist by ID, returning ErrArtistNotFound when absent.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE id = ?`
	var a Artist
	if err := scanArtist(r.db.QueryRowContext(ctx, q, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns every artist in storage order.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists ORDER BY id`
	return r.list(ctx, q)
}

// ListRecent returns the most recently created artists, newest first.
func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists ORDER BY created_at DESC LIMIT ?`
	return r.list(ctx, q, limit)
}

// SearchByName returns artists whose name contains the term, matched case
// insensitively.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE LOWER(name) LIKE ? ORDER BY id`
	return r.list(ctx, q, likePattern(term))
}

func (r *ArtistRepo) list(ctx context.Context, q string, args ...any) ([]Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Artist, 0)
	for rows.Next() {
		var a Artist
		if err := scanArtist(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable column of the artist identified by a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *Artist) error {
	const q = `UPDATE artists
		SET name = ?, genres = ?, city = ?, state = ?, phone = ?,
		    website_link = ?, facebook_link = ?, seeking_venue = ?,
		    seeking_description = ?, image_link = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		a.Name, a.Genres, a.City, a.State, a.Phone, a.WebsiteLink,
		a.FacebookLink, a.SeekingVenue, a.SeekingDescription, a.ImageLink, a.ID)
	return err
}
