package postgres

import (
	"context"
	"strconv"
	"time"

	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/infra"
	"reservatenis/internal/infra/db"
	"reservatenis/internal/pkg/pgconv"
	"reservatenis/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const reservationColumns = `id, court_id, user_id, customer_name, customer_phone,
	start_time, end_time, status, price_cents, expires_at, created_at, updated_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (*reservation.Reservation, error) {
	var (
		id            pgtype.UUID
		courtID       pgtype.UUID
		userID        pgtype.UUID
		customerName  string
		customerPhone pgtype.Text
		startTime     pgtype.Timestamptz
		endTime       pgtype.Timestamptz
		status        string
		priceCents    pgtype.Int8
		expiresAt     pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &courtID, &userID, &customerName, &customerPhone,
		&startTime, &endTime, &status, &priceCents, &expiresAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime))
	if err != nil {
		return nil, err
	}
	customer, err := reservation.NewCustomer(customerName, pgconv.StringPtrFromPgtype(customerPhone))
	if err != nil {
		return nil, err
	}
	resStatus, err := reservation.NewStatus(status)
	if err != nil {
		return nil, err
	}

	var price int64
	if priceCents.Valid {
		price = priceCents.Int64
	}

	return reservation.ReconstructReservation(
		uuid.UUID(id.Bytes),
		uuid.UUID(courtID.Bytes),
		pgconv.UUIDPtrFromPgtype(userID),
		customer,
		slot,
		resStatus,
		reservation.NewMoney(price),
		pgconv.TimePtrFromPgtype(expiresAt),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

// Create inserts the reservation only when no non-cancelled reservation
// overlaps it on the same court. The NOT EXISTS guard rejects conflicts
// already committed; overlapping inserts racing under READ COMMITTED both
// pass that subquery, so the excl_court_timeslot_overlap constraint
// settles the race and loses one of them.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations
			(id, court_id, user_id, customer_name, customer_phone,
			 start_time, end_time, status, price_cents, expires_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE court_id = $2
			  AND status <> 'cancelled'
			  AND start_time < $7
			  AND end_time > $6
		)`

	price := res.Price().Cents()
	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.CourtID()),
		pgconv.UUIDPtrToPgtype(res.UserID()),
		res.Customer().Name(),
		pgconv.StringPtrToPgtype(res.Customer().Phone()),
		pgconv.TimeToPgtype(res.TimeSlot().Start()),
		pgconv.TimeToPgtype(res.TimeSlot().End()),
		res.Status().String(),
		pgconv.Int64PtrToPgtype(&price),
		pgconv.TimePtrToPgtype(res.ExpiresAt()),
	)
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr(infra.KindConflict, "time slot already booked", err)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindNotFound, "court or user not found", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "time slot already booked", nil)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context, filter usecase.ReservationFilter) ([]*reservation.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := []any{}

	if filter.CourtID != nil {
		args = append(args, pgconv.UUIDToPgtype(*filter.CourtID))
		query += ` AND court_id = $` + strconv.Itoa(len(args))
	}
	if filter.UserID != nil {
		args = append(args, pgconv.UUIDToPgtype(*filter.UserID))
		query += ` AND user_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, pgconv.TimeToPgtype(*filter.From))
		query += ` AND start_time >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, pgconv.TimeToPgtype(*filter.To))
		query += ` AND end_time <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY start_time`

	return r.queryReservations(ctx, query, args...)
}

func (r *ReservationRepository) ListBlocking(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*reservation.Reservation, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE court_id = $1
		  AND status <> 'cancelled'
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time`

	return r.queryReservations(ctx, query,
		pgconv.UUIDToPgtype(courtID),
		pgconv.TimeToPgtype(from),
		pgconv.TimeToPgtype(to),
	)
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET status = $2, expires_at = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(res.ID()),
		res.Status().String(),
		pgconv.TimePtrToPgtype(res.ExpiresAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func (r *ReservationRepository) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE reservations
		SET status = 'cancelled', expires_at = NULL, updated_at = now()
		WHERE status = 'pending'
		  AND expires_at IS NOT NULL
		  AND expires_at < $1`

	tag, err := r.db.Exec(ctx, query, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to expire lapsed reservations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list reservations", err)
	}
	defer rows.Close()

	reservations := []*reservation.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate reservations", err)
	}
	return reservations, nil
}
