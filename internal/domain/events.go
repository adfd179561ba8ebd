package domain

import (
	"context"
	"time"
)

// Directory event types published after a mutation commits.
const (
	EventVenueCreated  = "venue.created"
	EventVenueUpdated  = "venue.updated"
	EventVenueDeleted  = "venue.deleted"
	EventArtistCreated = "artist.created"
	EventArtistUpdated = "artist.updated"
	EventArtistDeleted = "artist.deleted"
	EventShowCreated   = "show.created"
)

// DirectoryEvent describes a committed change to the directory.
type DirectoryEvent struct {
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers directory events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event DirectoryEvent) error
}
