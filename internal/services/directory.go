package services

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/domain"
)

type directoryService struct {
	store          domain.Store
	clock          func() time.Time
	contextTimeout time.Duration
}

// NewDirectoryService returns the read side of the directory. clock is read
// once per call; every partition computed by that call uses the same instant.
func NewDirectoryService(store domain.Store, clock func() time.Time, timeout time.Duration) domain.DirectoryService {
	if clock == nil {
		clock = time.Now
	}
	return &directoryService{store: store, clock: clock, contextTimeout: timeout}
}

func (s *directoryService) now() time.Time { return s.clock().UTC() }

func (s *directoryService) ListVenuesByLocation(ctx context.Context) ([]domain.LocationGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	venues, err := s.store.Venues().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	shows, err := s.store.Shows().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return AggregateByLocation(venues, shows, now)
}

func (s *directoryService) GetVenueWithShows(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	venue, err := s.store.Venues().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	shows, err := s.store.Shows().ListByVenueID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list venue shows: %w", err)
	}
	past, upcoming := Partition(shows, showStart, now)
	return &domain.VenueDetail{
		Venue:              venue,
		PastShows:          project(past, (*domain.ShowListing).ForVenue),
		UpcomingShows:      project(upcoming, (*domain.ShowListing).ForVenue),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *directoryService) SearchVenues(ctx context.Context, term string) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	venues, err := s.store.Venues().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	matched := MatchName(venues, func(v *domain.Venue) string { return v.Name }, term)
	upcoming, err := s.upcomingCounts(ctx, len(matched), venueOf, now)
	if err != nil {
		return nil, err
	}
	items := make([]domain.SearchItem, len(matched))
	for i, v := range matched {
		items[i] = domain.SearchItem{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]}
	}
	return &domain.SearchResult{Count: len(items), Data: items}, nil
}

func (s *directoryService) ListArtists(ctx context.Context) ([]domain.ArtistSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, err := s.store.Artists().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	out := make([]domain.ArtistSummary, len(artists))
	for i, a := range artists {
		out[i] = domain.ArtistSummary{ID: a.ID, Name: a.Name}
	}
	return out, nil
}

func (s *directoryService) GetArtistWithShows(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	artist, err := s.store.Artists().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	shows, err := s.store.Shows().ListByArtistID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list artist shows: %w", err)
	}
	past, upcoming := Partition(shows, showStart, now)
	return &domain.ArtistDetail{
		Artist:             artist,
		PastShows:          project(past, (*domain.ShowListing).ForArtist),
		UpcomingShows:      project(upcoming, (*domain.ShowListing).ForArtist),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *directoryService) SearchArtists(ctx context.Context, term string) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	artists, err := s.store.Artists().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	matched := MatchName(artists, func(a *domain.Artist) string { return a.Name }, term)
	upcoming, err := s.upcomingCounts(ctx, len(matched), artistOf, now)
	if err != nil {
		return nil, err
	}
	items := make([]domain.SearchItem, len(matched))
	for i, a := range matched {
		items[i] = domain.SearchItem{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]}
	}
	return &domain.SearchResult{Count: len(items), Data: items}, nil
}

func (s *directoryService) ListShows(ctx context.Context) ([]*domain.ShowListing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	shows, err := s.store.Shows().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return shows, nil
}

// upcomingCounts skips the show scan when nothing matched.
func (s *directoryService) upcomingCounts(ctx context.Context, matched int, ownerOf func(*domain.ShowListing) int64, now time.Time) (map[int64]int, error) {
	if matched == 0 {
		return map[int64]int{}, nil
	}
	shows, err := s.store.Shows().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return countUpcoming(shows, ownerOf, now), nil
}

func project[T any](shows []*domain.ShowListing, fn func(*domain.ShowListing) T) []T {
	out := make([]T, len(shows))
	for i, l := range shows {
		out[i] = fn(l)
	}
	return out
}
