// Package queue defines message payloads exchanged over the message broker
// and the publisher that emits them. Directory changes are announced so
// downstream consumers can notify, index or audit without querying the
// primary database.
package queue

import "time"

// Event kinds emitted by the directory.
const (
	KindVenueCreated  = "venue.created"
	KindVenueUpdated  = "venue.updated"
	KindVenueDeleted  = "venue.deleted"
	KindArtistCreated = "artist.created"
	KindArtistUpdated = "artist.updated"
	KindShowBooked    = "show.booked"
)

// Event is published when a record in the directory changes. It carries
// enough for consumers to act without a follow-up lookup.
type Event struct {
	ID         string    `json:"id"`          // unique message id
	Kind       string    `json:"kind"`        // one of the Kind constants
	EntityID   uint64    `json:"entity_id"`   // id of the affected record
	Name       string    `json:"name"`        // display name, when the entity has one
	OccurredAt time.Time `json:"occurred_at"` // when the change happened
}
