package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fyyur/internal/domain"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same repository code runs inside or outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type unit struct {
	venues  domain.VenueRepository
	artists domain.ArtistRepository
	shows   domain.ShowRepository
}

func newUnit(db dbtx) *unit {
	return &unit{
		venues:  newVenueRepository(db),
		artists: newArtistRepository(db),
		shows:   newShowRepository(db),
	}
}

func (u *unit) Venues() domain.VenueRepository   { return u.venues }
func (u *unit) Artists() domain.ArtistRepository { return u.artists }
func (u *unit) Shows() domain.ShowRepository     { return u.shows }

type store struct {
	*unit
	DB *sql.DB
}

// NewStore returns a domain.Store backed by Postgres.
func NewStore(db *sql.DB) domain.Store {
	return &store{unit: newUnit(db), DB: db}
}

func (s *store) Atomic(ctx context.Context, fn func(u domain.Unit) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", domain.ErrPersistence, err)
	}
	committed := false
	// Runs on error returns and panics alike; a no-op after Commit.
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(newUnit(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %w", domain.ErrPersistence, err)
	}
	committed = true
	return nil
}

func (s *store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
