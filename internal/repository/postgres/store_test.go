package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"fyyur/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestStore_Atomic(t *testing.T) {
	ctx := context.Background()
	errAbort := errors.New("abort")

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		fn      func(u domain.Unit) error
		wantErr error
	}{
		{
			name: "commits on success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM show WHERE venue_id = \$1`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`DELETE FROM venue WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(u domain.Unit) error {
				if _, err := u.Shows().DeleteByVenueID(ctx, 1); err != nil {
					return err
				}
				return u.Venues().Delete(ctx, 1)
			},
		},
		{
			name: "rolls back when fn fails",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM show WHERE artist_id = \$1`).
					WithArgs(int64(9)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`DELETE FROM artist WHERE id = \$1`).
					WithArgs(int64(9)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			fn: func(u domain.Unit) error {
				if _, err := u.Shows().DeleteByArtistID(ctx, 9); err != nil {
					return err
				}
				return u.Artists().Delete(ctx, 9)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "rolls back plain error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:      func(u domain.Unit) error { return errAbort },
			wantErr: errAbort,
		},
		{
			name: "begin failure",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(sql.ErrConnDone)
			},
			fn:      func(u domain.Unit) error { return nil },
			wantErr: domain.ErrPersistence,
		},
		{
			name: "commit failure",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(sql.ErrConnDone)
			},
			fn:      func(u domain.Unit) error { return nil },
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewStore(db).Atomic(ctx, tt.fn)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_Atomic_rollsBackOnPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	require.Panics(t, func() {
		_ = NewStore(db).Atomic(context.Background(), func(u domain.Unit) error {
			panic("boom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	require.NoError(t, NewStore(db).Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
