// Package ics renders minimal iCalendar feeds for reservation exports.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const prodID = "-//ReservaTenis//EN"

type Event struct {
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func writeEvent(b *strings.Builder, e Event) {
	b.WriteString("BEGIN:VEVENT\n")
	fmt.Fprintf(b, "UID:%s\n", e.UID)
	fmt.Fprintf(b, "DTSTAMP:%s\n", formatDateTime(e.Stamp))
	fmt.Fprintf(b, "DTSTART:%s\n", formatDateTime(e.Start))
	fmt.Fprintf(b, "DTEND:%s\n", formatDateTime(e.End))
	fmt.Fprintf(b, "SUMMARY:%s\n", e.Summary)
	fmt.Fprintf(b, "DESCRIPTION:%s\n", e.Description)
	b.WriteString("END:VEVENT\n")
}

func Feed(calendarName string, events []Event) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	fmt.Fprintf(&b, "PRODID:%s\n", prodID)
	fmt.Fprintf(&b, "X-WR-CALNAME:%s\n", calendarName)
	for _, e := range events {
		writeEvent(&b, e)
	}
	b.WriteString("END:VCALENDAR\n")
	return b.String()
}
