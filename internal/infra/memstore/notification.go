package memstore

import (
	"context"
	"sort"
	"sync"

	"reservatenis/internal/domain/notification"
	"reservatenis/internal/infra"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		byID: make(map[uuid.UUID]*notification.Notification),
	}
}

func (r *NotificationRepository) Create(_ context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[n.ID()] = n
	return nil
}

func (r *NotificationRepository) FindByID(_ context.Context, id uuid.UUID) (*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	return n, nil
}

func (r *NotificationRepository) Update(_ context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[n.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	r.byID[n.ID()] = n
	return nil
}

func (r *NotificationRepository) ListForReservation(_ context.Context, reservationID uuid.UUID) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := []*notification.Notification{}
	for _, n := range r.byID {
		if n.ReservationID() != nil && *n.ReservationID() == reservationID {
			notifications = append(notifications, n)
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt().Before(notifications[j].CreatedAt())
	})
	return notifications, nil
}
