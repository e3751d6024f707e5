package postgres

import (
	"context"

	"reservatenis/internal/domain/notification"
	"reservatenis/internal/infra"
	"reservatenis/internal/infra/db"
	"reservatenis/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

const notificationColumns = `id, reservation_id, user_id, channel, event_type, recipient,
	payload, status, error_message, sent_at, created_at`

func scanNotification(row interface{ Scan(dest ...any) error }) (*notification.Notification, error) {
	var (
		id            pgtype.UUID
		reservationID pgtype.UUID
		userID        pgtype.UUID
		channel       string
		eventType     string
		recipient     string
		payload       []byte
		status        string
		errorMessage  pgtype.Text
		sentAt        pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &reservationID, &userID, &channel, &eventType, &recipient,
		&payload, &status, &errorMessage, &sentAt, &createdAt,
	); err != nil {
		return nil, err
	}

	return notification.ReconstructNotification(
		uuid.UUID(id.Bytes),
		pgconv.UUIDPtrFromPgtype(reservationID),
		pgconv.UUIDPtrFromPgtype(userID),
		channel,
		eventType,
		recipient,
		payload,
		notification.Status(status),
		pgconv.StringPtrFromPgtype(errorMessage),
		pgconv.TimePtrFromPgtype(sentAt),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	const query = `
		INSERT INTO notifications
			(id, reservation_id, user_id, channel, event_type, recipient, payload, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(n.ID()),
		pgconv.UUIDPtrToPgtype(n.ReservationID()),
		pgconv.UUIDPtrToPgtype(n.UserID()),
		n.Channel(),
		n.EventType(),
		n.Recipient(),
		n.Payload(),
		n.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	const query = `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	n, err := scanNotification(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "notification not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find notification", err)
	}
	return n, nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	const query = `
		UPDATE notifications
		SET status = $2, error_message = $3, sent_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(n.ID()),
		n.Status().String(),
		pgconv.StringPtrToPgtype(n.ErrorMessage()),
		pgconv.TimePtrToPgtype(n.SentAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	return nil
}

func (r *NotificationRepository) ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]*notification.Notification, error) {
	const query = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE reservation_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(reservationID))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications", err)
	}
	defer rows.Close()

	notifications := []*notification.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate notifications", err)
	}
	return notifications, nil
}
