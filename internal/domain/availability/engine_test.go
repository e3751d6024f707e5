//go:build unit

package availability_test

import (
	"testing"
	"time"

	"reservatenis/internal/domain/availability"
	"reservatenis/internal/domain/closure"
	"reservatenis/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCourtID = uuid.New()
	testDay     = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, time.UTC)
}

func buildReservation(t *testing.T, start, end time.Time, status reservation.Status) *reservation.Reservation {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	customer, err := reservation.NewCustomer("山田太郎", nil)
	require.NoError(t, err)
	return reservation.ReconstructReservation(
		uuid.New(), testCourtID, nil, customer, slot, status,
		reservation.NewMoney(2000), nil, start, start,
	)
}

func buildClosure(t *testing.T, courtID *uuid.UUID, start, end time.Time) *closure.Closure {
	t.Helper()
	c, err := closure.NewClosure(courtID, start, end, nil)
	require.NoError(t, err)
	return c
}

func starts(slots []availability.Slot) []time.Time {
	result := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Start)
	}
	return result
}

func TestFreeSlots(t *testing.T) {
	params := func(slotMinutes, fromHour, toHour int) availability.Params {
		return availability.Params{SlotMinutes: slotMinutes, FromHour: fromHour, ToHour: toHour}
	}

	t.Run("予約なしなら全候補が空き", func(t *testing.T) {
		slots, err := availability.FreeSlots(testCourtID, testDay, nil, nil, params(60, 8, 11))
		require.NoError(t, err)

		assert.Equal(t, []time.Time{at(8, 0), at(9, 0), at(10, 0)}, starts(slots))
		for _, s := range slots {
			assert.Equal(t, testCourtID, s.CourtID)
			assert.Equal(t, time.Hour, s.End.Sub(s.Start))
		}
	})

	t.Run("重なる予約はスロットを除外する", func(t *testing.T) {
		reservations := []*reservation.Reservation{
			buildReservation(t, at(9, 0), at(10, 0), reservation.StatusConfirmed),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, reservations, nil, params(60, 8, 11))
		require.NoError(t, err)

		assert.Equal(t, []time.Time{at(8, 0), at(10, 0)}, starts(slots))
	})

	t.Run("90分スロットは分単位で刻む", func(t *testing.T) {
		slots, err := availability.FreeSlots(testCourtID, testDay, nil, nil, params(90, 8, 11))
		require.NoError(t, err)

		// 11:00 開始の候補は toHour 以降なので生成されない
		assert.Equal(t, []time.Time{at(8, 0), at(9, 30)}, starts(slots))
		// 最終スロットの終了は窓をはみ出してもよい
		assert.Equal(t, at(11, 0), slots[len(slots)-1].End)
	})

	t.Run("隣接する予約は除外しない", func(t *testing.T) {
		reservations := []*reservation.Reservation{
			buildReservation(t, at(7, 0), at(8, 0), reservation.StatusConfirmed),
			buildReservation(t, at(9, 0), at(10, 0), reservation.StatusConfirmed),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, reservations, nil, params(60, 8, 10))
		require.NoError(t, err)

		// 08:00 開始枠は 08:00 終了の予約とも 09:00 開始の予約とも衝突しない
		assert.Equal(t, []time.Time{at(8, 0)}, starts(slots))
	})

	t.Run("キャンセル済み予約は無視する", func(t *testing.T) {
		reservations := []*reservation.Reservation{
			buildReservation(t, at(9, 0), at(10, 0), reservation.StatusCancelled),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, reservations, nil, params(60, 8, 11))
		require.NoError(t, err)

		assert.Equal(t, []time.Time{at(8, 0), at(9, 0), at(10, 0)}, starts(slots))
	})

	t.Run("pending予約もスロットを塞ぐ", func(t *testing.T) {
		reservations := []*reservation.Reservation{
			buildReservation(t, at(8, 0), at(9, 0), reservation.StatusPending),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, reservations, nil, params(60, 8, 10))
		require.NoError(t, err)

		assert.Equal(t, []time.Time{at(9, 0)}, starts(slots))
	})

	t.Run("休業時間帯はスロットを塞ぐ", func(t *testing.T) {
		closures := []*closure.Closure{
			buildClosure(t, &testCourtID, at(10, 0), at(12, 0)),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, nil, closures, params(60, 8, 12))
		require.NoError(t, err)

		assert.Equal(t, []time.Time{at(8, 0), at(9, 0)}, starts(slots))
	})

	t.Run("全コート休業はどのコートにも適用される", func(t *testing.T) {
		closures := []*closure.Closure{
			buildClosure(t, nil, at(8, 0), at(23, 0)),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, nil, closures, params(60, 8, 11))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("他コートの休業は影響しない", func(t *testing.T) {
		otherCourt := uuid.New()
		closures := []*closure.Closure{
			buildClosure(t, &otherCourt, at(8, 0), at(23, 0)),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, nil, closures, params(60, 8, 11))
		require.NoError(t, err)
		assert.Len(t, slots, 3)
	})

	t.Run("fromHourがtoHour以上なら空列", func(t *testing.T) {
		slots, err := availability.FreeSlots(testCourtID, testDay, nil, nil, params(60, 9, 9))
		require.NoError(t, err)
		assert.Empty(t, slots)

		slots, err = availability.FreeSlots(testCourtID, testDay, nil, nil, params(60, 12, 9))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("スロット長0以下はInvalidInput", func(t *testing.T) {
		_, err := availability.FreeSlots(testCourtID, testDay, nil, nil, params(0, 8, 11))
		require.ErrorIs(t, err, availability.ErrInvalidSlotMinutes)

		_, err = availability.FreeSlots(testCourtID, testDay, nil, nil, params(-30, 8, 11))
		require.ErrorIs(t, err, availability.ErrInvalidSlotMinutes)
	})

	t.Run("決定性と昇順", func(t *testing.T) {
		reservations := []*reservation.Reservation{
			buildReservation(t, at(9, 0), at(10, 30), reservation.StatusConfirmed),
		}

		first, err := availability.FreeSlots(testCourtID, testDay, reservations, nil, params(45, 8, 13))
		require.NoError(t, err)
		second, err := availability.FreeSlots(testCourtID, testDay, reservations, nil, params(45, 8, 13))
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("FreeSlots mismatch (-want +got):\n%s", diff)
		}
		for i := 1; i < len(first); i++ {
			assert.True(t, first[i-1].Start.Before(first[i].Start))
		}
	})

	t.Run("除外の正しさ", func(t *testing.T) {
		reservations := []*reservation.Reservation{
			buildReservation(t, at(8, 30), at(9, 30), reservation.StatusConfirmed),
			buildReservation(t, at(11, 0), at(12, 0), reservation.StatusPending),
		}

		slots, err := availability.FreeSlots(testCourtID, testDay, reservations, nil, params(60, 8, 13))
		require.NoError(t, err)

		for _, s := range slots {
			for _, r := range reservations {
				overlap := r.TimeSlot().Start().Before(s.End) && r.TimeSlot().End().After(s.Start)
				assert.False(t, overlap)
			}
		}
	})
}
