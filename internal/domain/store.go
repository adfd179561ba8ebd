package domain

import "context"

// Unit groups the repositories that share one storage scope. Repositories
// obtained from a Unit handed to Store.Atomic all run inside the same transaction.
type Unit interface {
	Venues() VenueRepository
	Artists() ArtistRepository
	Shows() ShowRepository
}

// Store is the entity store. Its own repositories run outside any
// transaction and are meant for reads.
type Store interface {
	Unit
	// Atomic runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back on error, panic or context cancellation, so a
	// failed mutation leaves no partial writes behind.
	Atomic(ctx context.Context, fn func(u Unit) error) error
	// Ping checks connectivity to the underlying storage.
	Ping(ctx context.Context) error
}
