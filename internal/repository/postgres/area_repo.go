package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"invitationtracker/internal/adapters/database"
	"invitationtracker/internal/domain"
)

type areaRepository struct {
	DB database.Acquirer[*sql.DB]
}

// NewAreaRepository returns a domain.AreaRepository implemented with Postgres.
func NewAreaRepository(db database.Acquirer[*sql.DB]) domain.AreaRepository {
	return &areaRepository{DB: db}
}

func (r *areaRepository) List(ctx context.Context) ([]*domain.Area, error) {
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM areas`)
	if err != nil {
		return nil, err
	}
	return scanAreas(rows)
}

func (r *areaRepository) Create(ctx context.Context, a *domain.Area) error {
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire database: %w", err)
	}
	return db.QueryRowContext(ctx, `INSERT INTO areas (name) VALUES ($1) RETURNING id`, a.Name).Scan(&a.ID)
}

func (r *areaRepository) CreateMany(ctx context.Context, names []string) ([]*domain.Area, error) {
	if len(names) == 0 {
		return []*domain.Area{}, nil
	}
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	rows, err := db.QueryContext(ctx,
		`INSERT INTO areas (name) SELECT unnest($1::text[]) RETURNING id, name`,
		pq.Array(names))
	if err != nil {
		return nil, err
	}
	return scanAreas(rows)
}

func scanAreas(rows *sql.Rows) ([]*domain.Area, error) {
	defer rows.Close()
	areas := make([]*domain.Area, 0)
	for rows.Next() {
		var a domain.Area
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		areas = append(areas, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return areas, nil
}
