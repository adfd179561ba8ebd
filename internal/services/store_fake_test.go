package services

import (
	"cmp"
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"fyyur/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var errStoreDown = errors.New("store down")

// memState is the data a memStore snapshots on Atomic.
type memState struct {
	venues  map[int64]domain.Venue
	artists map[int64]domain.Artist
	shows   map[int64]domain.Show
	nextID  int64
}

func (s memState) clone() memState {
	return memState{
		venues:  maps.Clone(s.venues),
		artists: maps.Clone(s.artists),
		shows:   maps.Clone(s.shows),
		nextID:  s.nextID,
	}
}

// memStore is an in-memory domain.Store. Atomic snapshots the state and
// restores it when fn fails, like a rolled back transaction.
type memStore struct {
	state     memState
	failOn    map[string]error // operation name -> error, e.g. "shows.create"
	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		state: memState{
			venues:  make(map[int64]domain.Venue),
			artists: make(map[int64]domain.Artist),
			shows:   make(map[int64]domain.Show),
			nextID:  1,
		},
		failOn: make(map[string]error),
	}
}

func (m *memStore) Venues() domain.VenueRepository   { return memVenues{m} }
func (m *memStore) Artists() domain.ArtistRepository { return memArtists{m} }
func (m *memStore) Shows() domain.ShowRepository     { return memShows{m} }
func (m *memStore) Ping(context.Context) error       { return m.failOn["ping"] }

func (m *memStore) Atomic(ctx context.Context, fn func(u domain.Unit) error) error {
	if err := m.failOn["begin"]; err != nil {
		return err
	}
	snapshot := m.state.clone()
	if err := fn(m); err != nil {
		m.state = snapshot
		m.rollbacks++
		return err
	}
	if err := ctx.Err(); err != nil {
		m.state = snapshot
		m.rollbacks++
		return err
	}
	m.commits++
	return nil
}

func (m *memStore) id() int64 {
	id := m.state.nextID
	m.state.nextID++
	return id
}

func (m *memStore) fail(op string) error { return m.failOn[op] }

func (m *memStore) listing(s domain.Show) *domain.ShowListing {
	v := m.state.venues[s.VenueID]
	a := m.state.artists[s.ArtistID]
	return &domain.ShowListing{
		ShowID:          s.ID,
		VenueID:         s.VenueID,
		VenueName:       v.Name,
		VenueImageLink:  v.ImageLink,
		ArtistID:        s.ArtistID,
		ArtistName:      a.Name,
		ArtistImageLink: a.ImageLink,
		StartTime:       s.StartTime,
	}
}

func (m *memStore) listings(keep func(domain.Show) bool) []*domain.ShowListing {
	out := make([]*domain.ShowListing, 0)
	for _, s := range m.state.shows {
		if keep(s) {
			out = append(out, m.listing(s))
		}
	}
	slices.SortFunc(out, func(a, b *domain.ShowListing) int {
		return cmp.Or(a.StartTime.Compare(b.StartTime), cmp.Compare(a.ShowID, b.ShowID))
	})
	return out
}

// seedVenue stores v directly, bypassing the service.
func (m *memStore) seedVenue(name, city, state string) int64 {
	id := m.id()
	m.state.venues[id] = domain.Venue{ID: id, Name: name, City: city, State: state, Genres: []string{"Jazz"}}
	return id
}

func (m *memStore) seedArtist(name string) int64 {
	id := m.id()
	m.state.artists[id] = domain.Artist{ID: id, Name: name, City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}
	return id
}

func (m *memStore) seedShow(venueID, artistID int64, start time.Time) int64 {
	id := m.id()
	m.state.shows[id] = domain.Show{ID: id, VenueID: venueID, ArtistID: artistID, StartTime: start}
	return id
}

type memVenues struct{ m *memStore }

func (r memVenues) Create(_ context.Context, v *domain.Venue) error {
	if err := r.m.fail("venues.create"); err != nil {
		return err
	}
	v.ID = r.m.id()
	r.m.state.venues[v.ID] = cloneVenue(*v)
	return nil
}

func (r memVenues) Update(_ context.Context, v *domain.Venue) error {
	if err := r.m.fail("venues.update"); err != nil {
		return err
	}
	if _, ok := r.m.state.venues[v.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m.state.venues[v.ID] = cloneVenue(*v)
	return nil
}

func (r memVenues) Delete(_ context.Context, id int64) error {
	if err := r.m.fail("venues.delete"); err != nil {
		return err
	}
	if _, ok := r.m.state.venues[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.state.venues, id)
	return nil
}

func (r memVenues) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := r.m.state.venues[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneVenue(v)
	return &c, nil
}

func (r memVenues) List(context.Context) ([]*domain.Venue, error) {
	if err := r.m.fail("venues.list"); err != nil {
		return nil, err
	}
	out := make([]*domain.Venue, 0, len(r.m.state.venues))
	for _, id := range slices.Sorted(maps.Keys(r.m.state.venues)) {
		c := cloneVenue(r.m.state.venues[id])
		out = append(out, &c)
	}
	return out, nil
}

type memArtists struct{ m *memStore }

func (r memArtists) Create(_ context.Context, a *domain.Artist) error {
	if err := r.m.fail("artists.create"); err != nil {
		return err
	}
	a.ID = r.m.id()
	r.m.state.artists[a.ID] = cloneArtist(*a)
	return nil
}

func (r memArtists) Update(_ context.Context, a *domain.Artist) error {
	if _, ok := r.m.state.artists[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.m.state.artists[a.ID] = cloneArtist(*a)
	return nil
}

func (r memArtists) Delete(_ context.Context, id int64) error {
	if err := r.m.fail("artists.delete"); err != nil {
		return err
	}
	if _, ok := r.m.state.artists[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.state.artists, id)
	return nil
}

func (r memArtists) GetByID(_ context.Context, id int64) (*domain.Artist, error) {
	a, ok := r.m.state.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneArtist(a)
	return &c, nil
}

func (r memArtists) List(context.Context) ([]*domain.Artist, error) {
	if err := r.m.fail("artists.list"); err != nil {
		return nil, err
	}
	out := make([]*domain.Artist, 0, len(r.m.state.artists))
	for _, id := range slices.Sorted(maps.Keys(r.m.state.artists)) {
		c := cloneArtist(r.m.state.artists[id])
		out = append(out, &c)
	}
	return out, nil
}

type memShows struct{ m *memStore }

func (r memShows) Create(_ context.Context, s *domain.Show) error {
	if err := r.m.fail("shows.create"); err != nil {
		return err
	}
	_, venueOK := r.m.state.venues[s.VenueID]
	_, artistOK := r.m.state.artists[s.ArtistID]
	if !venueOK || !artistOK {
		return domain.ErrReferenceNotFound
	}
	s.ID = r.m.id()
	r.m.state.shows[s.ID] = *s
	return nil
}

func (r memShows) GetByID(_ context.Context, id int64) (*domain.Show, error) {
	s, ok := r.m.state.shows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r memShows) DeleteByVenueID(_ context.Context, venueID int64) (int64, error) {
	return r.deleteWhere(func(s domain.Show) bool { return s.VenueID == venueID }), nil
}

func (r memShows) DeleteByArtistID(_ context.Context, artistID int64) (int64, error) {
	return r.deleteWhere(func(s domain.Show) bool { return s.ArtistID == artistID }), nil
}

func (r memShows) deleteWhere(match func(domain.Show) bool) int64 {
	var n int64
	for id, s := range r.m.state.shows {
		if match(s) {
			delete(r.m.state.shows, id)
			n++
		}
	}
	return n
}

func (r memShows) List(context.Context) ([]*domain.ShowListing, error) {
	if err := r.m.fail("shows.list"); err != nil {
		return nil, err
	}
	return r.m.listings(func(domain.Show) bool { return true }), nil
}

func (r memShows) ListByVenueID(_ context.Context, venueID int64) ([]*domain.ShowListing, error) {
	return r.m.listings(func(s domain.Show) bool { return s.VenueID == venueID }), nil
}

func (r memShows) ListByArtistID(_ context.Context, artistID int64) ([]*domain.ShowListing, error) {
	return r.m.listings(func(s domain.Show) bool { return s.ArtistID == artistID }), nil
}

func cloneVenue(v domain.Venue) domain.Venue {
	v.Genres = slices.Clone(v.Genres)
	return v
}

func cloneArtist(a domain.Artist) domain.Artist {
	a.Genres = slices.Clone(a.Genres)
	return a
}
