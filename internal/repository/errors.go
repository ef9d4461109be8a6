// Package repository defines error values that are reused across multiple
// repositories. These sentinel values let handlers distinguish failure
// scenarios without inspecting driver-specific errors: a missing record
// maps to HTTP 404, while anything else is treated as a store failure
// and surfaced as a generic message after the transaction is rolled back.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue lookup matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist lookup matches no row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show lookup matches no row.
var ErrShowNotFound = errors.New("show not found")

// ErrAlbumNotFound is returned when an album lookup matches no row.
var ErrAlbumNotFound = errors.New("album not found")

// ErrAlbumArtistMismatch is returned when a song references an album that
// belongs to a different artist. The schema does not enforce this pairing,
// so the song write path checks it before inserting.
var ErrAlbumArtistMismatch = errors.New("album belongs to a different artist")
