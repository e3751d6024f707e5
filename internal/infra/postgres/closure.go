package postgres

import (
	"context"
	"strconv"
	"time"

	"reservatenis/internal/domain/closure"
	"reservatenis/internal/infra"
	"reservatenis/internal/infra/db"
	"reservatenis/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClosureRepository struct {
	db db.DBTX
}

func NewClosureRepository(dbtx db.DBTX) *ClosureRepository {
	return &ClosureRepository{db: dbtx}
}

const closureColumns = "id, court_id, start_time, end_time, reason, created_at"

func scanClosure(row interface{ Scan(dest ...any) error }) (*closure.Closure, error) {
	var (
		id        pgtype.UUID
		courtID   pgtype.UUID
		startTime pgtype.Timestamptz
		endTime   pgtype.Timestamptz
		reason    pgtype.Text
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &courtID, &startTime, &endTime, &reason, &createdAt); err != nil {
		return nil, err
	}

	return closure.ReconstructClosure(
		uuid.UUID(id.Bytes),
		pgconv.UUIDPtrFromPgtype(courtID),
		pgconv.TimeFromPgtype(startTime),
		pgconv.TimeFromPgtype(endTime),
		pgconv.StringPtrFromPgtype(reason),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *ClosureRepository) Create(ctx context.Context, c *closure.Closure) error {
	const query = `
		INSERT INTO court_closures (id, court_id, start_time, end_time, reason)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDPtrToPgtype(c.CourtID()),
		pgconv.TimeToPgtype(c.StartTime()),
		pgconv.TimeToPgtype(c.EndTime()),
		pgconv.StringPtrToPgtype(c.Reason()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindNotFound, "court not found", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create closure", err)
	}
	return nil
}

func (r *ClosureRepository) FindByID(ctx context.Context, id uuid.UUID) (*closure.Closure, error) {
	const query = `SELECT ` + closureColumns + ` FROM court_closures WHERE id = $1`

	c, err := scanClosure(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "closure not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find closure", err)
	}
	return c, nil
}

func (r *ClosureRepository) List(ctx context.Context, from, to *time.Time) ([]*closure.Closure, error) {
	query := `SELECT ` + closureColumns + ` FROM court_closures WHERE 1=1`
	args := []any{}

	if from != nil {
		args = append(args, pgconv.TimeToPgtype(*from))
		query += ` AND end_time > $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, pgconv.TimeToPgtype(*to))
		query += ` AND start_time < $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY start_time`

	return r.queryClosures(ctx, query, args...)
}

func (r *ClosureRepository) ListBlocking(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*closure.Closure, error) {
	const query = `
		SELECT ` + closureColumns + `
		FROM court_closures
		WHERE (court_id IS NULL OR court_id = $1)
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time`

	return r.queryClosures(ctx, query,
		pgconv.UUIDToPgtype(courtID),
		pgconv.TimeToPgtype(from),
		pgconv.TimeToPgtype(to),
	)
}

func (r *ClosureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM court_closures WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete closure", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "closure not found", nil)
	}
	return nil
}

func (r *ClosureRepository) queryClosures(ctx context.Context, query string, args ...any) ([]*closure.Closure, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list closures", err)
	}
	defer rows.Close()

	closures := []*closure.Closure{}
	for rows.Next() {
		c, err := scanClosure(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan closure", err)
		}
		closures = append(closures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate closures", err)
	}
	return closures, nil
}
