package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/domain"

	"github.com/lib/pq"
)

const venueColumns = `id, name, city, state, address, phone, genres, facebook_link, website_link, image_link, seeking_talent, seeking_description`

type venueRepository struct {
	DB dbtx
}

// newVenueRepository binds the venue queries to a connection or transaction.
func newVenueRepository(db dbtx) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venue (name, city, state, address, phone, genres, facebook_link, website_link, image_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, pq.Array(v.Genres),
		v.FacebookLink, v.WebsiteLink, v.ImageLink, v.SeekingTalent, nullString(v.SeekingDescription),
	).Scan(&v.ID)
}

func (r *venueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE venue
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, genres = $7,
		    facebook_link = $8, website_link = $9, image_link = $10, seeking_talent = $11, seeking_description = $12
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		v.ID, v.Name, v.City, v.State, v.Address, v.Phone, pq.Array(v.Genres),
		v.FacebookLink, v.WebsiteLink, v.ImageLink, v.SeekingTalent, nullString(v.SeekingDescription),
	)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM venue WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venue WHERE id = $1`
	v, err := scanVenue(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+venueColumns+` FROM venue ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func scanVenue(row scanner) (*domain.Venue, error) {
	v := &domain.Venue{}
	var desc sql.NullString
	if err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, pq.Array(&v.Genres),
		&v.FacebookLink, &v.WebsiteLink, &v.ImageLink, &v.SeekingTalent, &desc,
	); err != nil {
		return nil, err
	}
	if v.Genres == nil {
		v.Genres = []string{}
	}
	if desc.Valid {
		v.SeekingDescription = &desc.String
	}
	return v, nil
}
