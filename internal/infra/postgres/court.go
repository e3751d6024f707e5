package postgres

import (
	"context"

	"reservatenis/internal/domain/court"
	"reservatenis/internal/infra"
	"reservatenis/internal/infra/db"
	"reservatenis/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CourtRepository struct {
	db db.DBTX
}

func NewCourtRepository(dbtx db.DBTX) *CourtRepository {
	return &CourtRepository{db: dbtx}
}

const courtColumns = "id, name, surface, is_active, created_at, updated_at"

func scanCourt(row interface{ Scan(dest ...any) error }) (*court.Court, error) {
	var (
		id        pgtype.UUID
		name      string
		surface   pgtype.Text
		isActive  bool
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &surface, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return court.ReconstructCourt(
		uuid.UUID(id.Bytes),
		name,
		pgconv.StringPtrFromPgtype(surface),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) error {
	const query = `
		INSERT INTO courts (id, name, surface, is_active)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		c.Name(),
		pgconv.StringPtrToPgtype(c.Surface()),
		c.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "court name already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create court", err)
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	const query = `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`

	c, err := scanCourt(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "court not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find court", err)
	}
	return c, nil
}

func (r *CourtRepository) List(ctx context.Context, includeInactive bool) ([]*court.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts ORDER BY name`
	if !includeInactive {
		query = `SELECT ` + courtColumns + ` FROM courts WHERE is_active ORDER BY name`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list courts", err)
	}
	defer rows.Close()

	courts := []*court.Court{}
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan court", err)
		}
		courts = append(courts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate courts", err)
	}
	return courts, nil
}

func (r *CourtRepository) Update(ctx context.Context, c *court.Court) error {
	const query = `
		UPDATE courts
		SET name = $2, surface = $3, is_active = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		c.Name(),
		pgconv.StringPtrToPgtype(c.Surface()),
		c.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "court name already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "court not found", nil)
	}
	return nil
}
