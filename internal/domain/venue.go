package domain

import (
	"context"
	"strings"
)

// Venue represents a performance venue listed in the directory.
// swagger:model Venue
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	ImageLink          string   `json:"image_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription *string  `json:"seeking_description"`
}

// VenueInput holds the writable fields of a venue. Create and update share it
// since an update replaces every field.
type VenueInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	ImageLink          string   `json:"image_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription *string  `json:"seeking_description"`
}

// CreateVenueInput is the input of the create venue operation.
type CreateVenueInput = VenueInput

// UpdateVenueInput is the input of the update venue operation.
type UpdateVenueInput = VenueInput

// Validate returns a message per missing or malformed field; nil means valid.
func (in VenueInput) Validate() []string {
	var errs []string
	errs = requireField(errs, "name", in.Name)
	errs = requireField(errs, "city", in.City)
	errs = requireField(errs, "state", in.State)
	errs = requireField(errs, "address", in.Address)
	errs = requireField(errs, "phone", in.Phone)
	return append(errs, validateGenres(in.Genres)...)
}

// Apply copies the input onto v, leaving the id untouched.
func (in VenueInput) Apply(v *Venue) {
	v.Name = strings.TrimSpace(in.Name)
	v.City = strings.TrimSpace(in.City)
	v.State = strings.TrimSpace(in.State)
	v.Address = strings.TrimSpace(in.Address)
	v.Phone = strings.TrimSpace(in.Phone)
	v.Genres = normalizeGenres(in.Genres)
	v.FacebookLink = strings.TrimSpace(in.FacebookLink)
	v.WebsiteLink = strings.TrimSpace(in.WebsiteLink)
	v.ImageLink = strings.TrimSpace(in.ImageLink)
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// VenueSummary is a venue entry inside a LocationGroup.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocationGroup is a (city, state) pair plus the venues situated there.
// swagger:model LocationGroup
type LocationGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetail is a venue with its shows split around a single reference instant.
type VenueDetail struct {
	*Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// VenueRepository defines the interface for venue storage
type VenueRepository interface {
	Create(ctx context.Context, v *Venue) error
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Venue, error)
	// List returns every venue ordered by id.
	List(ctx context.Context) ([]*Venue, error)
}
