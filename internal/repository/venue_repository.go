// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Venue model and repository methods for CRUD, search
// and cascade deletion. A Venue is a physical location that hosts shows;
// shows reference it by venue_id and must be removed together with it.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Venue represents a venue row. Optional text columns are read back as
// empty strings via COALESCE so the model stays free of sql.Null wrappers.
type Venue struct {
	ID                 uint64
	CreatedAt          time.Time
	Name               string
	Genres             GenreList
	Address            string
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
}

// venueCols is the column list shared by every venue SELECT so that scans
// stay in one shape.
const venueCols = `id, created_at, name, genres, address, city, state,
	COALESCE(phone, ''), COALESCE(website_link, ''), COALESCE(facebook_link, ''),
	seeking_talent, COALESCE(seeking_description, ''), COALESCE(image_link, '')`

func scanVenue(row interface{ Scan(...any) error }, v *Venue) error {
	return row.Scan(&v.ID, &v.CreatedAt, &v.Name, &v.Genres, &v.Address, &v.City, &v.State,
		&v.Phone, &v.WebsiteLink, &v.FacebookLink,
		&v.SeekingTalent, &v.SeekingDescription, &v.ImageLink)
}

// VenueRepo encapsulates all database queries related to venues. It depends
// on a sql.DB connection which is injected at startup and in tests.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue. On success the venue's ID and CreatedAt are
// populated by re-reading the inserted row, so callers receive a fully
// populated record.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) error {
	const qInsert = `INSERT INTO venues
		(name, genres, address, city, state, phone, website_link, facebook_link,
		 seeking_talent, seeking_description, image_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		v.Name, v.Genres, v.Address, v.City, v.State, v.Phone, v.WebsiteLink,
		v.FacebookLink, v.SeekingTalent, v.SeekingDescription, v.ImageLink)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	const qSelect = `SELECT ` + venueCols + ` FROM venues WHERE id = ?`
	return scanVenue(r.db.QueryRowContext(ctx, qSelect, v.ID), v)
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound if no row
// is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE id = ?`
	var v Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListAll returns every venue in storage order. The venue listing page
// groups the result by (city, state) in memory.
func (r *VenueRepo) ListAll(ctx context.Context) ([]Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues ORDER BY id`
	return r.list(ctx, q)
}

// ListRecent returns the most recently created venues, newest first. The
// home page shows the latest ten.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues ORDER BY created_at DESC LIMIT ?`
	return r.list(ctx, q, limit)
}

// SearchByName returns venues whose name contains the term, matched case
// insensitively. No ranking and no pagination: every match is returned.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE LOWER(name) LIKE ? ORDER BY id`
	return r.list(ctx, q, likePattern(term))
}

func (r *VenueRepo) list(ctx context.Context, q string, args ...any) ([]Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Venue, 0)
	for rows.Next() {
		var v Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable column of the venue identified by v.ID.
// Edits are full-record overwrites, not partial patches; callers load the
// record first, so a vanished row surfaces as ErrVenueNotFound there.
func (r *VenueRepo) Update(ctx context.Context, v *Venue) error {
	const q = `UPDATE venues
		SET name = ?, genres = ?, address = ?, city = ?, state = ?, phone = ?,
		    website_link = ?, facebook_link = ?, seeking_talent = ?,
		    seeking_description = ?, image_link = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		v.Name, v.Genres, v.Address, v.City, v.State, v.Phone, v.WebsiteLink,
		v.FacebookLink, v.SeekingTalent, v.SeekingDescription, v.ImageLink, v.ID)
	return err
}

// DeleteWithShows removes a venue and all shows that reference it as one
// transaction, so a failure midway never leaves a half-deleted venue
// visible. ErrVenueNotFound is returned when the venue does not exist.
func (r *VenueRepo) DeleteWithShows(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var exists uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	return err
}
