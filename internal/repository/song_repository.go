// This file defines the Song model and its repository. A song always
// references an artist; the album reference is optional and a NULL album_id
// marks a loose track. The schema does not tie album_id to the song's
// artist, so Create enforces that pairing here.
package repository

import (
	"context"
	"database/sql"
)

// Song represents a song row. AlbumID is nil for loose tracks.
type Song struct {
	ID       uint64
	Title    string
	ArtistID uint64
	AlbumID  *uint64
}

// SongRepo encapsulates database queries related to songs.
type SongRepo struct {
	db *sql.DB
}

// NewSongRepo constructs a SongRepo with the given DB handle.
func NewSongRepo(db *sql.DB) *SongRepo {
	return &SongRepo{db: db}
}

// Create inserts a new song. When the song names an album, the album must
// exist and belong to the same artist; ErrAlbumNotFound and
// ErrAlbumArtistMismatch report the two ways that can fail.
func (r *SongRepo) Create(ctx context.Context, s *Song) error {
	if s.AlbumID != nil {
		var albumArtist uint64
		err := r.db.QueryRowContext(ctx,
			`SELECT artist_id FROM albums WHERE id = ?`, *s.AlbumID).Scan(&albumArtist)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrAlbumNotFound
			}
			return err
		}
		if albumArtist != s.ArtistID {
			return ErrAlbumArtistMismatch
		}
	}

	const q = `INSERT INTO songs (title, artist_id, album_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Title, s.ArtistID, nullableID(s.AlbumID))
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

// ListByArtist returns an artist's songs in storage order, album-bound and
// loose alike. The discography view groups them by album in memory.
func (r *SongRepo) ListByArtist(ctx context.Context, artistID uint64) ([]Song, error) {
	const q = `SELECT id, title, artist_id, album_id FROM songs WHERE artist_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Song, 0)
	for rows.Next() {
		var s Song
		var albumID sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Title, &s.ArtistID, &albumID); err != nil {
			return nil, err
		}
		if albumID.Valid {
			v := uint64(albumID.Int64)
			s.AlbumID = &v
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByAlbum returns the songs of one album in storage order.
func (r *SongRepo) ListByAlbum(ctx context.Context, albumID uint64) ([]Song, error) {
	const q = `SELECT id, title, artist_id, album_id FROM songs WHERE album_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Song, 0)
	for rows.Next() {
		var s Song
		var aid sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Title, &s.ArtistID, &aid); err != nil {
			return nil, err
		}
		if aid.Valid {
			v := uint64(aid.Int64)
			s.AlbumID = &v
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// nullableID converts an optional foreign key into a driver-friendly value.
func nullableID(id *uint64) any {
	if id == nil {
		return nil
	}
	return *id
}
