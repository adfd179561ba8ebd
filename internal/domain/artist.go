package domain

import (
	"context"
	"strings"
)

// Artist represents a performer listed in the directory.
// swagger:model Artist
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	ImageLink          string   `json:"image_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription *string  `json:"seeking_description"`
}

// ArtistInput holds the writable fields of an artist.
type ArtistInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	ImageLink          string   `json:"image_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription *string  `json:"seeking_description"`
}

// CreateArtistInput is the input of the create artist operation.
type CreateArtistInput = ArtistInput

// UpdateArtistInput is the input of the update artist operation.
type UpdateArtistInput = ArtistInput

// Validate returns a message per missing or malformed field; nil means valid.
func (in ArtistInput) Validate() []string {
	var errs []string
	errs = requireField(errs, "name", in.Name)
	errs = requireField(errs, "city", in.City)
	errs = requireField(errs, "state", in.State)
	errs = requireField(errs, "phone", in.Phone)
	return append(errs, validateGenres(in.Genres)...)
}

// Apply copies the input onto a, leaving the id untouched.
func (in ArtistInput) Apply(a *Artist) {
	a.Name = strings.TrimSpace(in.Name)
	a.City = strings.TrimSpace(in.City)
	a.State = strings.TrimSpace(in.State)
	a.Phone = strings.TrimSpace(in.Phone)
	a.Genres = normalizeGenres(in.Genres)
	a.FacebookLink = strings.TrimSpace(in.FacebookLink)
	a.WebsiteLink = strings.TrimSpace(in.WebsiteLink)
	a.ImageLink = strings.TrimSpace(in.ImageLink)
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ArtistSummary is the short artist form used by listings.
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistDetail is an artist with its shows split around a single reference instant.
type ArtistDetail struct {
	*Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ArtistRepository defines the interface for artist storage
type ArtistRepository interface {
	Create(ctx context.Context, a *Artist) error
	Update(ctx context.Context, a *Artist) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Artist, error)
	// List returns every artist ordered by id.
	List(ctx context.Context) ([]*Artist, error)
}
