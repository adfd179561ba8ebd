package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"fyyur/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var showListingColumns = []string{"id", "venue_id", "venue_name", "venue_image_link", "artist_id", "artist_name", "artist_image_link", "start_time"}

func TestShowRepository_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO show \(venue_id, artist_id, start_time\)`).
					WithArgs(int64(1), int64(4), start).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
			},
			wantID: 10,
		},
		{
			name: "foreign key violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO show`).
					WithArgs(int64(1), int64(4), start).
					WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})
			},
			wantErr: domain.ErrReferenceNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO show`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			s := domain.NewShow(1, 4, start)
			err = newShowRepository(db).Create(ctx, s)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, s.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestShowRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, venue_id, artist_id, start_time FROM show WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "venue_id", "artist_id", "start_time"}).
			AddRow(int64(1), int64(1), int64(4), start))
	mock.ExpectQuery(`SELECT id, venue_id, artist_id, start_time FROM show WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	repo := newShowRepository(db)
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, &domain.Show{ID: 1, VenueID: 1, ArtistID: 4, StartTime: start}, got)

	_, err = repo.GetByID(ctx, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepository_DeleteByOwner(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM show WHERE venue_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM show WHERE artist_id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := newShowRepository(db)
	n, err := repo.DeleteByVenueID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	n, err = repo.DeleteByArtistID(ctx, 4)
	require.NoError(t, err)
	require.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepository_Listings(t *testing.T) {
	ctx := context.Background()
	past := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	upcoming := time.Date(2035, 4, 1, 20, 0, 0, 0, time.FixedZone("PDT", -7*3600))

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows(showListingColumns).
			AddRow(int64(1), int64(1), "The Musical Hop", "hop.jpg", int64(4), "Guns N Petals", "gnp.jpg", past).
			AddRow(int64(2), int64(1), "The Musical Hop", "hop.jpg", int64(6), "The Wild Sax Band", "sax.jpg", upcoming)
	}

	tests := []struct {
		name  string
		query string
		args  []driver.Value
		call  func(r domain.ShowRepository) ([]*domain.ShowListing, error)
	}{
		{
			name:  "all",
			query: `FROM show s\s+INNER JOIN venue v .* ORDER BY s.start_time, s.id`,
			call: func(r domain.ShowRepository) ([]*domain.ShowListing, error) {
				return r.List(ctx)
			},
		},
		{
			name:  "by venue",
			query: `WHERE s.venue_id = \$1 ORDER BY s.start_time, s.id`,
			args:  []driver.Value{int64(1)},
			call: func(r domain.ShowRepository) ([]*domain.ShowListing, error) {
				return r.ListByVenueID(ctx, 1)
			},
		},
		{
			name:  "by artist",
			query: `WHERE s.artist_id = \$1 ORDER BY s.start_time, s.id`,
			args:  []driver.Value{int64(4)},
			call: func(r domain.ShowRepository) ([]*domain.ShowListing, error) {
				return r.ListByArtistID(ctx, 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			exp := mock.ExpectQuery(tt.query)
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}
			exp.WillReturnRows(rows())

			got, err := tt.call(newShowRepository(db))
			require.NoError(t, err)
			require.Len(t, got, 2)
			require.Equal(t, "Guns N Petals", got[0].ArtistName)
			require.Equal(t, "hop.jpg", got[1].VenueImageLink)
			require.Equal(t, time.UTC, got[1].StartTime.Location())
			require.True(t, got[1].StartTime.Equal(upcoming))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
