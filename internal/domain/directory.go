package domain

import "context"

// SearchItem is a single search hit.
type SearchItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the count and list of entities whose name matched a term.
// swagger:model SearchResult
type SearchResult struct {
	Count int          `json:"count"`
	Data  []SearchItem `json:"data"`
}

// DirectoryService defines the read side of the directory.
type DirectoryService interface {
	ListVenuesByLocation(ctx context.Context) ([]LocationGroup, error)
	GetVenueWithShows(ctx context.Context, id int64) (*VenueDetail, error)
	SearchVenues(ctx context.Context, term string) (*SearchResult, error)
	ListArtists(ctx context.Context) ([]ArtistSummary, error)
	GetArtistWithShows(ctx context.Context, id int64) (*ArtistDetail, error)
	SearchArtists(ctx context.Context, term string) (*SearchResult, error)
	ListShows(ctx context.Context) ([]*ShowListing, error)
}

// BookingService defines the mutation side of the directory. Every operation
// is all-or-nothing against the store.
type BookingService interface {
	CreateVenue(ctx context.Context, in CreateVenueInput) (*Venue, error)
	UpdateVenue(ctx context.Context, id int64, in UpdateVenueInput) (*Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	CreateArtist(ctx context.Context, in CreateArtistInput) (*Artist, error)
	UpdateArtist(ctx context.Context, id int64, in UpdateArtistInput) (*Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
	CreateShow(ctx context.Context, in CreateShowInput) (*Show, error)
}
