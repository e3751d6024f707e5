//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/infra"
	"reservatenis/internal/infra/memstore"
	"reservatenis/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

func newReservation(t *testing.T, courtID uuid.UUID, start, end time.Time, holdMinutes int) *reservation.Reservation {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	customer, err := reservation.NewCustomer("鈴木一郎", nil)
	require.NoError(t, err)
	res, err := reservation.NewReservation(
		courtID, nil, customer, slot,
		reservation.NewMoney(2000), baseTime, holdMinutes,
	)
	require.NoError(t, err)
	return res
}

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("重複予約はCONFLICT", func(t *testing.T) {
		repo := memstore.NewReservationRepository()
		courtID := uuid.New()

		first := newReservation(t, courtID, baseTime, baseTime.Add(time.Hour), 15)
		require.NoError(t, repo.Create(ctx, first))

		overlapping := newReservation(t, courtID, baseTime.Add(30*time.Minute), baseTime.Add(90*time.Minute), 15)
		err := repo.Create(ctx, overlapping)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("隣接予約は作成できる", func(t *testing.T) {
		repo := memstore.NewReservationRepository()
		courtID := uuid.New()

		require.NoError(t, repo.Create(ctx, newReservation(t, courtID, baseTime, baseTime.Add(time.Hour), 15)))
		require.NoError(t, repo.Create(ctx, newReservation(t, courtID, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour), 15)))
	})

	t.Run("別コートなら重なっても作成できる", func(t *testing.T) {
		repo := memstore.NewReservationRepository()

		require.NoError(t, repo.Create(ctx, newReservation(t, uuid.New(), baseTime, baseTime.Add(time.Hour), 15)))
		require.NoError(t, repo.Create(ctx, newReservation(t, uuid.New(), baseTime, baseTime.Add(time.Hour), 15)))
	})

	t.Run("キャンセル済みと重なる枠は作成できる", func(t *testing.T) {
		repo := memstore.NewReservationRepository()
		courtID := uuid.New()

		first := newReservation(t, courtID, baseTime, baseTime.Add(time.Hour), 15)
		require.NoError(t, repo.Create(ctx, first))
		first.Cancel()
		require.NoError(t, repo.Update(ctx, first))

		second := newReservation(t, courtID, baseTime, baseTime.Add(time.Hour), 15)
		require.NoError(t, repo.Create(ctx, second))
	})

	t.Run("並行作成でも1件しか成功しない", func(t *testing.T) {
		repo := memstore.NewReservationRepository()
		courtID := uuid.New()

		const attempts = 10
		candidates := make([]*reservation.Reservation, attempts)
		for i := range candidates {
			candidates[i] = newReservation(t, courtID, baseTime, baseTime.Add(time.Hour), 15)
		}

		var wg sync.WaitGroup
		errCh := make(chan error, attempts)
		for _, candidate := range candidates {
			wg.Add(1)
			go func(res *reservation.Reservation) {
				defer wg.Done()
				errCh <- repo.Create(ctx, res)
			}(candidate)
		}
		wg.Wait()
		close(errCh)

		var succeeded int
		for err := range errCh {
			if err == nil {
				succeeded++
			} else {
				assert.True(t, infra.IsKind(err, infra.KindConflict))
			}
		}
		assert.Equal(t, 1, succeeded)
	})

	t.Run("期限切れpendingの一括キャンセル", func(t *testing.T) {
		repo := memstore.NewReservationRepository()
		courtID := uuid.New()

		lapsed := newReservation(t, courtID, baseTime.Add(2*time.Hour), baseTime.Add(3*time.Hour), 15)
		require.NoError(t, repo.Create(ctx, lapsed))

		confirmed := newReservation(t, courtID, baseTime.Add(4*time.Hour), baseTime.Add(5*time.Hour), 15)
		require.NoError(t, repo.Create(ctx, confirmed))
		require.NoError(t, confirmed.Confirm())

		count, err := repo.ExpireLapsed(ctx, baseTime.Add(20*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		got, err := repo.FindByID(ctx, lapsed.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, got.Status())

		got, err = repo.FindByID(ctx, confirmed.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, got.Status())
	})

	t.Run("ListBlockingは期間交差の非キャンセルのみ返す", func(t *testing.T) {
		repo := memstore.NewReservationRepository()
		courtID := uuid.New()

		inside := newReservation(t, courtID, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour), 15)
		require.NoError(t, repo.Create(ctx, inside))

		outside := newReservation(t, courtID, baseTime.Add(24*time.Hour), baseTime.Add(25*time.Hour), 15)
		require.NoError(t, repo.Create(ctx, outside))

		cancelled := newReservation(t, courtID, baseTime.Add(3*time.Hour), baseTime.Add(4*time.Hour), 15)
		require.NoError(t, repo.Create(ctx, cancelled))
		cancelled.Cancel()
		require.NoError(t, repo.Update(ctx, cancelled))

		got, err := repo.ListBlocking(ctx, courtID, baseTime, baseTime.Add(12*time.Hour))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, inside.ID(), got[0].ID())
	})

	t.Run("フィルタつきList", func(t *testing.T) {
		repo := memstore.NewReservationRepository()
		courtA := uuid.New()
		courtB := uuid.New()

		resA := newReservation(t, courtA, baseTime, baseTime.Add(time.Hour), 15)
		require.NoError(t, repo.Create(ctx, resA))
		resB := newReservation(t, courtB, baseTime, baseTime.Add(time.Hour), 15)
		require.NoError(t, repo.Create(ctx, resB))

		got, err := repo.List(ctx, usecase.ReservationFilter{CourtID: &courtA})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, resA.ID(), got[0].ID())
	})
}
