//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func buildPending(t *testing.T, holdMinutes int) *reservation.Reservation {
	t.Helper()
	slot, err := reservation.NewTimeSlot(testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.NoError(t, err)
	customer, err := reservation.NewCustomer("佐藤花子", nil)
	require.NoError(t, err)
	r, err := reservation.NewReservation(
		uuid.New(), nil, customer, slot,
		reservation.NewMoney(2000), testNow, holdMinutes,
	)
	require.NoError(t, err)
	return r
}

func TestReservation(t *testing.T) {
	t.Run("新規予約はpendingで保持期限つき", func(t *testing.T) {
		r := buildPending(t, 15)

		assert.Equal(t, reservation.StatusPending, r.Status())
		require.NotNil(t, r.ExpiresAt())
		assert.Equal(t, testNow.Add(15*time.Minute), *r.ExpiresAt())
		assert.True(t, r.Blocks())
	})

	t.Run("保持時間0なら期限なし", func(t *testing.T) {
		r := buildPending(t, 0)
		assert.Nil(t, r.ExpiresAt())
	})

	t.Run("確定でconfirmedになり期限が消える", func(t *testing.T) {
		r := buildPending(t, 15)

		require.NoError(t, r.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Nil(t, r.ExpiresAt())
	})

	t.Run("確定済みの再確定はno-op", func(t *testing.T) {
		r := buildPending(t, 15)
		require.NoError(t, r.Confirm())

		require.NoError(t, r.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("キャンセル済みは確定できない", func(t *testing.T) {
		r := buildPending(t, 15)
		r.Cancel()

		err := r.Confirm()
		require.ErrorIs(t, err, reservation.ErrConfirmCancelled)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("キャンセルは冪等", func(t *testing.T) {
		r := buildPending(t, 15)

		r.Cancel()
		assert.True(t, r.IsCancelled())
		assert.False(t, r.Blocks())

		r.Cancel()
		assert.True(t, r.IsCancelled())
	})

	t.Run("確定済みもキャンセルできる", func(t *testing.T) {
		r := buildPending(t, 15)
		require.NoError(t, r.Confirm())

		r.Cancel()
		assert.True(t, r.IsCancelled())
	})

	t.Run("保持期限切れ判定", func(t *testing.T) {
		r := buildPending(t, 15)
		clk := clock.NewMockClock(testNow)

		assert.False(t, r.HoldLapsed(clk.Now()))

		clk.Add(16 * time.Minute)
		assert.True(t, r.HoldLapsed(clk.Now()))

		require.NoError(t, r.Confirm())
		assert.False(t, r.HoldLapsed(clk.Now()))
	})

	t.Run("空の顧客名NG", func(t *testing.T) {
		_, err := reservation.NewCustomer("  ", nil)
		require.ErrorIs(t, err, reservation.ErrEmptyCustomerName)
	})

	t.Run("終了が開始以前のスロットNG", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(testNow, testNow)
		require.Error(t, err)
	})

	t.Run("料金は時間比例", func(t *testing.T) {
		pc := reservation.NewHourlyPriceCalculator(2000)

		slot, err := reservation.NewTimeSlot(testNow, testNow.Add(90*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(3000), pc.CalculatePriceCents(slot))
	})
}
