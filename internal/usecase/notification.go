package usecase

import (
	"context"

	"reservatenis/internal/domain/notification"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/errs"

	"github.com/google/uuid"
)

type NotificationUseCase interface {
	ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]*notification.Notification, error)
	// Resend re-dispatches a stored notification regardless of its current
	// status and returns the record with the new outcome.
	Resend(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
}

type notificationUseCaseImpl struct {
	notificationRepo NotificationRepository
	notifier         *Notifier
}

func NewNotificationUseCase(notificationRepo NotificationRepository, notifier *Notifier) NotificationUseCase {
	return &notificationUseCaseImpl{
		notificationRepo: notificationRepo,
		notifier:         notifier,
	}
}

func (n *notificationUseCaseImpl) ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]*notification.Notification, error) {
	notifications, err := n.notificationRepo.ListForReservation(ctx, reservationID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list notifications")
	}
	return notifications, nil
}

func (n *notificationUseCaseImpl) Resend(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	record, err := n.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotificationNotFound
		}
		return nil, errs.Wrap(err, "failed to find notification")
	}

	n.notifier.Dispatch(ctx, record)
	return record, nil
}
