//go:build unit

package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeed(t *testing.T) {
	t.Run("正常系_イベントなしでも有効なカレンダーを返す", func(t *testing.T) {
		feed := Feed("Court Central", nil)

		assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR\n"))
		assert.True(t, strings.HasSuffix(feed, "END:VCALENDAR\n"))
		assert.Contains(t, feed, "VERSION:2.0")
		assert.Contains(t, feed, "PRODID:-//ReservaTenis//EN")
		assert.Contains(t, feed, "X-WR-CALNAME:Court Central")
		assert.NotContains(t, feed, "BEGIN:VEVENT")
	})

	t.Run("正常系_イベントはUTCのタイムスタンプで描画される", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		feed := Feed("Reservas", []Event{
			{
				UID:         "reservation-abc@reservatenis",
				Stamp:       time.Date(2024, 6, 1, 13, 0, 0, 0, loc),
				Start:       time.Date(2024, 6, 10, 10, 0, 0, 0, loc),
				End:         time.Date(2024, 6, 10, 11, 0, 0, 0, loc),
				Summary:     "Court Central - Ana",
				Description: "Status: confirmed",
			},
		})

		assert.Contains(t, feed, "BEGIN:VEVENT")
		assert.Contains(t, feed, "UID:reservation-abc@reservatenis")
		assert.Contains(t, feed, "DTSTAMP:20240601T120000Z")
		assert.Contains(t, feed, "DTSTART:20240610T090000Z")
		assert.Contains(t, feed, "DTEND:20240610T100000Z")
		assert.Contains(t, feed, "SUMMARY:Court Central - Ana")
		assert.Contains(t, feed, "DESCRIPTION:Status: confirmed")
		assert.Contains(t, feed, "END:VEVENT")
	})

	t.Run("正常系_複数イベントは渡した順に並ぶ", func(t *testing.T) {
		feed := Feed("Reservas", []Event{
			{UID: "first", Summary: "a"},
			{UID: "second", Summary: "b"},
		})

		assert.Less(t, strings.Index(feed, "UID:first"), strings.Index(feed, "UID:second"))
	})
}
