// This file defines the Album model and its repository. Albums belong to an
// artist and group that artist's songs; songs without an album stay loose.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Album represents an album row.
type Album struct {
	ID       uint64
	ArtistID uint64
	Title    string
}

// AlbumRepo encapsulates database queries related to albums.
type AlbumRepo struct {
	db *sql.DB
}

// NewAlbumRepo constructs an AlbumRepo with the given DB handle.
func NewAlbumRepo(db *sql.DB) *AlbumRepo {
	return &AlbumRepo{db: db}
}

// Create inserts a new album for an artist and assigns the generated ID.
func (r *AlbumRepo) Create(ctx context.Context, a *Album) error {
	const q = `INSERT INTO albums (artist_id, title) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.ArtistID, a.Title)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an album by ID, returning ErrAlbumNotFound when absent.
func (r *AlbumRepo) GetByID(ctx context.Context, id uint64) (*Album, error) {
	const q = `SELECT id, artist_id, title FROM albums WHERE id = ?`
	var a Album
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.ArtistID, &a.Title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByArtist returns an artist's albums in storage order.
func (r *AlbumRepo) ListByArtist(ctx context.Context, artistID uint64) ([]Album, error) {
	const q = `SELECT id, artist_id, title FROM albums WHERE artist_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Album, 0)
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.ArtistID, &a.Title); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
