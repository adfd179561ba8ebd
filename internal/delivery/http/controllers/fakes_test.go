package controllers

import (
	"context"
	"io"
	"log/slog"

	"fyyur/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeDirectoryService implements domain.DirectoryService for handler tests.
type fakeDirectoryService struct {
	groups       []domain.LocationGroup
	venueDetail  *domain.VenueDetail
	artists      []domain.ArtistSummary
	artistDetail *domain.ArtistDetail
	shows        []*domain.ShowListing
	search       *domain.SearchResult
	err          error

	lastID   int64
	lastTerm string
}

func (f *fakeDirectoryService) ListVenuesByLocation(ctx context.Context) ([]domain.LocationGroup, error) {
	return f.groups, f.err
}

func (f *fakeDirectoryService) GetVenueWithShows(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.venueDetail, nil
}

func (f *fakeDirectoryService) SearchVenues(ctx context.Context, term string) (*domain.SearchResult, error) {
	f.lastTerm = term
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

func (f *fakeDirectoryService) ListArtists(ctx context.Context) ([]domain.ArtistSummary, error) {
	return f.artists, f.err
}

func (f *fakeDirectoryService) GetArtistWithShows(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.artistDetail, nil
}

func (f *fakeDirectoryService) SearchArtists(ctx context.Context, term string) (*domain.SearchResult, error) {
	f.lastTerm = term
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

func (f *fakeDirectoryService) ListShows(ctx context.Context) ([]*domain.ShowListing, error) {
	return f.shows, f.err
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	err error

	lastID          int64
	lastVenueInput  *domain.VenueInput
	lastArtistInput *domain.ArtistInput
	lastShowInput   *domain.CreateShowInput
	deleted         []int64
}

func (f *fakeBookingService) CreateVenue(ctx context.Context, in domain.CreateVenueInput) (*domain.Venue, error) {
	f.lastVenueInput = &in
	if f.err != nil {
		return nil, f.err
	}
	v := &domain.Venue{ID: 7}
	in.Apply(v)
	return v, nil
}

func (f *fakeBookingService) UpdateVenue(ctx context.Context, id int64, in domain.UpdateVenueInput) (*domain.Venue, error) {
	f.lastID = id
	f.lastVenueInput = &in
	if f.err != nil {
		return nil, f.err
	}
	v := &domain.Venue{ID: id}
	in.Apply(v)
	return v, nil
}

func (f *fakeBookingService) DeleteVenue(ctx context.Context, id int64) error {
	f.lastID = id
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookingService) CreateArtist(ctx context.Context, in domain.CreateArtistInput) (*domain.Artist, error) {
	f.lastArtistInput = &in
	if f.err != nil {
		return nil, f.err
	}
	a := &domain.Artist{ID: 11}
	in.Apply(a)
	return a, nil
}

func (f *fakeBookingService) UpdateArtist(ctx context.Context, id int64, in domain.UpdateArtistInput) (*domain.Artist, error) {
	f.lastID = id
	f.lastArtistInput = &in
	if f.err != nil {
		return nil, f.err
	}
	a := &domain.Artist{ID: id}
	in.Apply(a)
	return a, nil
}

func (f *fakeBookingService) DeleteArtist(ctx context.Context, id int64) error {
	f.lastID = id
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookingService) CreateShow(ctx context.Context, in domain.CreateShowInput) (*domain.Show, error) {
	f.lastShowInput = &in
	if f.err != nil {
		return nil, f.err
	}
	s := domain.NewShow(in.VenueID, in.ArtistID, in.StartTime)
	s.ID = 3
	return s, nil
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token *domain.AuthToken
	err   error

	lastEmail    string
	lastPassword string
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	f.lastEmail = email
	f.lastPassword = password
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }
