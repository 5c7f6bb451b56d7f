package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"invitationtracker/internal/adapters/database"
	"invitationtracker/internal/domain"
)

var invitationCols = []string{"id", "name", "address", "area", "phone", "people", "created_at", "updated_at"}

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.InvitationFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter sorts desc by default",
			filter:    domain.InvitationFilter{},
			wantQuery: `SELECT ` + invitationColumns + ` FROM invitations ORDER BY people DESC, created_at DESC`,
			wantArgs:  nil,
		},
		{
			name:      "name filter escapes wildcards",
			filter:    domain.InvitationFilter{Name: `50%_off\`, Sort: domain.SortAsc},
			wantQuery: `SELECT ` + invitationColumns + ` FROM invitations WHERE name ILIKE '%' || $1 || '%' ORDER BY people ASC, created_at DESC`,
			wantArgs:  []any{`50\%\_off\\`},
		},
		{
			name:      "name and area combined with AND",
			filter:    domain.InvitationFilter{Name: "anan", Area: "Kolkata", Sort: domain.SortDesc},
			wantQuery: `SELECT ` + invitationColumns + ` FROM invitations WHERE name ILIKE '%' || $1 || '%' AND area = $2 ORDER BY people DESC, created_at DESC`,
			wantArgs:  []any{"anan", "Kolkata"},
		},
		{
			name:      "area only",
			filter:    domain.InvitationFilter{Area: "Salt Lake"},
			wantQuery: `SELECT ` + invitationColumns + ` FROM invitations WHERE area = $1 ORDER BY people DESC, created_at DESC`,
			wantArgs:  []any{"Salt Lake"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)
			require.Equal(t, tt.wantQuery, query)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestInvitationRepository_List(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("scans rows in query order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(`SELECT .* FROM invitations WHERE name ILIKE .* AND area = \$2 ORDER BY people DESC`).
			WithArgs("ra", "Salt Lake").
			WillReturnRows(sqlmock.NewRows(invitationCols).
				AddRow("inv-1", "Ravi", "", "Salt Lake", "555", 9, ts, ts).
				AddRow("inv-2", "Rahul", "12 Park St", "Salt Lake", "", 2, ts, ts))

		got, err := NewInvitationRepository(database.Ready(db)).List(ctx, domain.InvitationFilter{Name: "ra", Area: "Salt Lake"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, &domain.Invitation{ID: "inv-1", Name: "Ravi", Area: "Salt Lake", Phone: "555", People: 9, CreatedAt: ts, UpdatedAt: ts}, got[0])
		require.Equal(t, "12 Park St", got[1].Address)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(`SELECT .* FROM invitations ORDER BY people ASC`).
			WillReturnRows(sqlmock.NewRows(invitationCols))

		got, err := NewInvitationRepository(database.Ready(db)).List(ctx, domain.InvitationFilter{Sort: domain.SortAsc})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(`SELECT .* FROM invitations`).WillReturnError(sql.ErrConnDone)

		_, err = NewInvitationRepository(database.Ready(db)).List(ctx, domain.InvitationFilter{})
		require.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestInvitationRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO invitations \(name, address, area, phone, people, created_at, updated_at\)`).
					WithArgs("Ravi", "", "Salt Lake", "555", 4, ts, ts).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-uuid-1"))
			},
			wantID: "inv-uuid-1",
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO invitations`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			inv := domain.NewInvitation("Ravi", "", "Salt Lake", "555", 4, ts, ts)
			err = NewInvitationRepository(database.Ready(db)).Create(ctx, inv)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, inv.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	id := "0b0c6a8e-4a53-4a43-9a8e-0a7f3c9d1e21"
	people := 6

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Invitation
		errIs   error
		wantErr bool
	}{
		{
			name: "only listed fields are replaced",
			id:   id,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE invitations SET`).
					WithArgs(id, nil, nil, nil, nil, people, updated).
					WillReturnRows(sqlmock.NewRows(invitationCols).
						AddRow(id, "Ravi", "", "Salt Lake", "555", 6, created, updated))
			},
			want: &domain.Invitation{ID: id, Name: "Ravi", Area: "Salt Lake", Phone: "555", People: 6, CreatedAt: created, UpdatedAt: updated},
		},
		{
			name: "unknown id",
			id:   id,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE invitations SET`).
					WithArgs(id, nil, nil, nil, nil, people, updated).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name:    "malformed id never reaches the database",
			id:      "not-a-uuid",
			mock:    func(mock sqlmock.Sqlmock) {},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   id,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE invitations SET`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			got, err := NewInvitationRepository(database.Ready(db)).Update(ctx, tt.id, domain.InvitationPatch{People: &people}, updated)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := "0b0c6a8e-4a53-4a43-9a8e-0a7f3c9d1e21"

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success",
			id:   id,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM invitations WHERE id = \$1`).
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no rows affected still success",
			id:   id,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM invitations WHERE id = \$1`).
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "malformed id is a no-op",
			id:   "nope",
			mock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "db error",
			id:   id,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM invitations`).
					WithArgs(id).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			err = NewInvitationRepository(database.Ready(db)).Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
