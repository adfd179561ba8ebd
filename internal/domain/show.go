package domain

import (
	"context"
	"time"
)

// Show is a booking of one artist at one venue. Shows are never edited after creation.
// swagger:model Show
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// NewShow returns a Show with the start time normalised to UTC. ID is set by the repository on create.
func NewShow(venueID, artistID int64, startTime time.Time) *Show {
	return &Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime.UTC(),
	}
}

// CreateShowInput is the input of the create show operation.
type CreateShowInput struct {
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// Validate returns a message per missing field; nil means valid.
func (in CreateShowInput) Validate() []string {
	var errs []string
	if in.VenueID <= 0 {
		errs = append(errs, "venue_id is required")
	}
	if in.ArtistID <= 0 {
		errs = append(errs, "artist_id is required")
	}
	if in.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	return errs
}

// ShowListing is a show joined with both of its parties.
// swagger:model ShowListing
type ShowListing struct {
	ShowID          int64     `json:"show_id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShow is a show seen from its venue: the counterpart is the artist.
type VenueShow struct {
	ShowID          int64     `json:"show_id"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShow is a show seen from its artist: the counterpart is the venue.
type ArtistShow struct {
	ShowID         int64     `json:"show_id"`
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ForVenue projects the listing from the venue's perspective.
func (l *ShowListing) ForVenue() VenueShow {
	return VenueShow{
		ShowID:          l.ShowID,
		ArtistID:        l.ArtistID,
		ArtistName:      l.ArtistName,
		ArtistImageLink: l.ArtistImageLink,
		StartTime:       l.StartTime,
	}
}

// ForArtist projects the listing from the artist's perspective.
func (l *ShowListing) ForArtist() ArtistShow {
	return ArtistShow{
		ShowID:         l.ShowID,
		VenueID:        l.VenueID,
		VenueName:      l.VenueName,
		VenueImageLink: l.VenueImageLink,
		StartTime:      l.StartTime,
	}
}

// ShowRepository defines the interface for show storage
type ShowRepository interface {
	Create(ctx context.Context, s *Show) error
	GetByID(ctx context.Context, id int64) (*Show, error)
	// DeleteByVenueID removes every show at the venue and returns how many were removed.
	DeleteByVenueID(ctx context.Context, venueID int64) (int64, error)
	// DeleteByArtistID removes every show of the artist and returns how many were removed.
	DeleteByArtistID(ctx context.Context, artistID int64) (int64, error)
	// List returns every show ordered by start time, then id.
	List(ctx context.Context) ([]*ShowListing, error)
	ListByVenueID(ctx context.Context, venueID int64) ([]*ShowListing, error)
	ListByArtistID(ctx context.Context, artistID int64) ([]*ShowListing, error)
}
