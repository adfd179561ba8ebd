package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/domain"

	"github.com/lib/pq"
)

const artistColumns = `id, name, city, state, phone, genres, facebook_link, website_link, image_link, seeking_venue, seeking_description`

type artistRepository struct {
	DB dbtx
}

// newArtistRepository binds the artist queries to a connection or transaction.
func newArtistRepository(db dbtx) domain.ArtistRepository {
	return &artistRepository{DB: db}
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artist (name, city, state, phone, genres, facebook_link, website_link, image_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, pq.Array(a.Genres),
		a.FacebookLink, a.WebsiteLink, a.ImageLink, a.SeekingVenue, nullString(a.SeekingDescription),
	).Scan(&a.ID)
}

func (r *artistRepository) Update(ctx context.Context, a *domain.Artist) error {
	query := `
		UPDATE artist
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6,
		    facebook_link = $7, website_link = $8, image_link = $9, seeking_venue = $10, seeking_description = $11
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Name, a.City, a.State, a.Phone, pq.Array(a.Genres),
		a.FacebookLink, a.WebsiteLink, a.ImageLink, a.SeekingVenue, nullString(a.SeekingDescription),
	)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM artist WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artist WHERE id = $1`
	a, err := scanArtist(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *artistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+artistColumns+` FROM artist ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func scanArtist(row scanner) (*domain.Artist, error) {
	a := &domain.Artist{}
	var desc sql.NullString
	if err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres),
		&a.FacebookLink, &a.WebsiteLink, &a.ImageLink, &a.SeekingVenue, &desc,
	); err != nil {
		return nil, err
	}
	if a.Genres == nil {
		a.Genres = []string{}
	}
	if desc.Valid {
		a.SeekingDescription = &desc.String
	}
	return a, nil
}
