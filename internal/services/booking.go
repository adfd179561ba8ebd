package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fyyur/internal/domain"
)

type bookingService struct {
	store          domain.Store
	publisher      domain.EventPublisher
	emailService   domain.EmailService
	notifyAddress  string
	logger         *slog.Logger
	clock          func() time.Time
	contextTimeout time.Duration
}

// NewBookingService returns the mutation side of the directory. Every write
// runs inside one store.Atomic call. publisher and emailService are invoked
// only after a commit; their failures are logged and never fail the call.
// An empty notifyAddress disables booking e-mails.
func NewBookingService(store domain.Store,
	publisher domain.EventPublisher,
	emailService domain.EmailService,
	notifyAddress string,
	logger *slog.Logger,
	clock func() time.Time,
	timeout time.Duration,
) domain.BookingService {
	if clock == nil {
		clock = time.Now
	}
	return &bookingService{
		store:          store,
		publisher:      publisher,
		emailService:   emailService,
		notifyAddress:  notifyAddress,
		logger:         logger,
		clock:          clock,
		contextTimeout: timeout,
	}
}

func (s *bookingService) CreateVenue(ctx context.Context, in domain.CreateVenueInput) (*domain.Venue, error) {
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue := &domain.Venue{}
	in.Apply(venue)
	err := s.store.Atomic(ctx, func(u domain.Unit) error {
		return u.Venues().Create(ctx, venue)
	})
	if err != nil {
		return nil, mutationError("create venue", err)
	}
	s.publish(ctx, domain.EventVenueCreated, venue.ID, venue.Name)
	return venue, nil
}

func (s *bookingService) UpdateVenue(ctx context.Context, id int64, in domain.UpdateVenueInput) (*domain.Venue, error) {
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var venue *domain.Venue
	err := s.store.Atomic(ctx, func(u domain.Unit) error {
		v, err := u.Venues().GetByID(ctx, id)
		if err != nil {
			return err
		}
		in.Apply(v)
		if err := u.Venues().Update(ctx, v); err != nil {
			return err
		}
		venue = v
		return nil
	})
	if err != nil {
		return nil, mutationError("update venue", err)
	}
	s.publish(ctx, domain.EventVenueUpdated, venue.ID, venue.Name)
	return venue, nil
}

func (s *bookingService) DeleteVenue(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var removed int64
	err := s.store.Atomic(ctx, func(u domain.Unit) error {
		n, err := u.Shows().DeleteByVenueID(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return u.Venues().Delete(ctx, id)
	})
	if err != nil {
		return mutationError("delete venue", err)
	}
	s.logger.DebugContext(ctx, "venue deleted", "venue_id", id, "shows_removed", removed)
	s.publish(ctx, domain.EventVenueDeleted, id, "")
	return nil
}

func (s *bookingService) CreateArtist(ctx context.Context, in domain.CreateArtistInput) (*domain.Artist, error) {
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artist := &domain.Artist{}
	in.Apply(artist)
	err := s.store.Atomic(ctx, func(u domain.Unit) error {
		return u.Artists().Create(ctx, artist)
	})
	if err != nil {
		return nil, mutationError("create artist", err)
	}
	s.publish(ctx, domain.EventArtistCreated, artist.ID, artist.Name)
	return artist, nil
}

func (s *bookingService) UpdateArtist(ctx context.Context, id int64, in domain.UpdateArtistInput) (*domain.Artist, error) {
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var artist *domain.Artist
	err := s.store.Atomic(ctx, func(u domain.Unit) error {
		a, err := u.Artists().GetByID(ctx, id)
		if err != nil {
			return err
		}
		in.Apply(a)
		if err := u.Artists().Update(ctx, a); err != nil {
			return err
		}
		artist = a
		return nil
	})
	if err != nil {
		return nil, mutationError("update artist", err)
	}
	s.publish(ctx, domain.EventArtistUpdated, artist.ID, artist.Name)
	return artist, nil
}

func (s *bookingService) DeleteArtist(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var removed int64
	err := s.store.Atomic(ctx, func(u domain.Unit) error {
		n, err := u.Shows().DeleteByArtistID(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return u.Artists().Delete(ctx, id)
	})
	if err != nil {
		return mutationError("delete artist", err)
	}
	s.logger.DebugContext(ctx, "artist deleted", "artist_id", id, "shows_removed", removed)
	s.publish(ctx, domain.EventArtistDeleted, id, "")
	return nil
}

func (s *bookingService) CreateShow(ctx context.Context, in domain.CreateShowInput) (*domain.Show, error) {
	if err := domain.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	show := domain.NewShow(in.VenueID, in.ArtistID, in.StartTime)
	var venue *domain.Venue
	var artist *domain.Artist
	err := s.store.Atomic(ctx, func(u domain.Unit) error {
		var err error
		if venue, err = u.Venues().GetByID(ctx, in.VenueID); err != nil {
			return referenceError("venue", in.VenueID, err)
		}
		if artist, err = u.Artists().GetByID(ctx, in.ArtistID); err != nil {
			return referenceError("artist", in.ArtistID, err)
		}
		return u.Shows().Create(ctx, show)
	})
	if err != nil {
		return nil, mutationError("create show", err)
	}
	s.publish(ctx, domain.EventShowCreated, show.ID, "")
	s.notifyBooked(ctx, show, venue, artist)
	return show, nil
}

func (s *bookingService) publish(ctx context.Context, eventType string, id int64, name string) {
	if s.publisher == nil {
		return
	}
	event := domain.DirectoryEvent{Type: eventType, EntityID: id, Name: name, OccurredAt: s.clock().UTC()}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "publish directory event failed", "type", eventType, "entity_id", id, "err", err)
	}
}

func (s *bookingService) notifyBooked(ctx context.Context, show *domain.Show, venue *domain.Venue, artist *domain.Artist) {
	if s.emailService == nil || s.notifyAddress == "" {
		return
	}
	err := s.emailService.SendShowBooked(ctx, &domain.ShowBookedEmailData{
		Email:      s.notifyAddress,
		ShowID:     show.ID,
		VenueName:  venue.Name,
		ArtistName: artist.Name,
		StartTime:  show.StartTime,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "send booking email failed", "show_id", show.ID, "err", err)
	}
}

func referenceError(kind string, id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", domain.ErrReferenceNotFound, kind, id)
	}
	return err
}

// mutationError keeps domain errors matchable and tags anything else from
// the store as a persistence failure.
func mutationError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrReferenceNotFound),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrPersistence):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
	}
}
