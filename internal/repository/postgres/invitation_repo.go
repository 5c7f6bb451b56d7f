package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"invitationtracker/internal/adapters/database"
	"invitationtracker/internal/domain"
)

const invitationColumns = `id, name, address, area, phone, people, created_at, updated_at`

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type invitationRepository struct {
	DB database.Acquirer[*sql.DB]
}

// NewInvitationRepository returns a domain.InvitationRepository implemented with Postgres.
func NewInvitationRepository(db database.Acquirer[*sql.DB]) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	err := row.Scan(&inv.ID, &inv.Name, &inv.Address, &inv.Area, &inv.Phone, &inv.People, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// buildListQuery returns the SELECT for filter and its positional arguments.
func buildListQuery(filter domain.InvitationFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if filter.Name != "" {
		args = append(args, likeEscaper.Replace(filter.Name))
		where = append(where, fmt.Sprintf(`name ILIKE '%%' || $%d || '%%'`, len(args)))
	}
	if filter.Area != "" {
		args = append(args, filter.Area)
		where = append(where, fmt.Sprintf(`area = $%d`, len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + invitationColumns + ` FROM invitations`)
	if len(where) > 0 {
		b.WriteString(` WHERE ` + strings.Join(where, ` AND `))
	}
	if filter.Sort == domain.SortAsc {
		b.WriteString(` ORDER BY people ASC, created_at DESC`)
	} else {
		b.WriteString(` ORDER BY people DESC, created_at DESC`)
	}
	return b.String(), args
}

func (r *invitationRepository) List(ctx context.Context, filter domain.InvitationFilter) ([]*domain.Invitation, error) {
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	query, args := buildListQuery(filter)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invitations := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire database: %w", err)
	}
	query := `
		INSERT INTO invitations (name, address, area, phone, people, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return db.QueryRowContext(ctx, query,
		inv.Name, inv.Address, inv.Area, inv.Phone, inv.People, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
}

func (r *invitationRepository) Update(ctx context.Context, id string, patch domain.InvitationPatch, updatedAt time.Time) (*domain.Invitation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	query := `
		UPDATE invitations SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			area = COALESCE($4, area),
			phone = COALESCE($5, phone),
			people = COALESCE($6, people),
			updated_at = $7
		WHERE id = $1
		RETURNING ` + invitationColumns
	inv, err := scanInvitation(db.QueryRowContext(ctx, query,
		id, patch.Name, patch.Address, patch.Area, patch.Phone, patch.People, updatedAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire database: %w", err)
	}
	_, err = db.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	return err
}
