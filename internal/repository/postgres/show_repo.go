package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/domain"
)

const showListingQuery = `
	SELECT s.id, s.venue_id, v.name, v.image_link, s.artist_id, a.name, a.image_link, s.start_time
	FROM show s
	INNER JOIN venue v ON v.id = s.venue_id
	INNER JOIN artist a ON a.id = s.artist_id
`

type showRepository struct {
	DB dbtx
}

// newShowRepository binds the show queries to a connection or transaction.
func newShowRepository(db dbtx) domain.ShowRepository {
	return &showRepository{DB: db}
}

func (r *showRepository) Create(ctx context.Context, s *domain.Show) error {
	query := `
		INSERT INTO show (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.VenueID, s.ArtistID, s.StartTime).Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return err
	}
	return nil
}

func (r *showRepository) GetByID(ctx context.Context, id int64) (*domain.Show, error) {
	s := &domain.Show{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, venue_id, artist_id, start_time FROM show WHERE id = $1`, id).
		Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.StartTime = s.StartTime.UTC()
	return s, nil
}

func (r *showRepository) DeleteByVenueID(ctx context.Context, venueID int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM show WHERE venue_id = $1`, venueID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *showRepository) DeleteByArtistID(ctx context.Context, artistID int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM show WHERE artist_id = $1`, artistID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *showRepository) List(ctx context.Context) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingQuery+` ORDER BY s.start_time, s.id`)
}

func (r *showRepository) ListByVenueID(ctx context.Context, venueID int64) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingQuery+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *showRepository) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingQuery+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *showRepository) listings(ctx context.Context, query string, args ...any) ([]*domain.ShowListing, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shows := make([]*domain.ShowListing, 0)
	for rows.Next() {
		l := &domain.ShowListing{}
		if err := rows.Scan(&l.ShowID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		l.StartTime = l.StartTime.UTC()
		shows = append(shows, l)
	}
	return shows, rows.Err()
}
