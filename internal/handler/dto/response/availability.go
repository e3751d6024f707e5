package response

import (
	"time"

	"reservatenis/internal/domain/availability"

	"github.com/google/uuid"
)

type SlotResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type AvailabilityResponse struct {
	CourtID     uuid.UUID      `json:"court_id"`
	Date        string         `json:"date"`
	SlotMinutes int            `json:"slot_minutes"`
	Slots       []SlotResponse `json:"slots"`
}

func FromSlots(courtID uuid.UUID, date string, slotMinutes int, slots []availability.Slot) *AvailabilityResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{StartTime: s.Start, EndTime: s.End}
	}
	return &AvailabilityResponse{
		CourtID:     courtID,
		Date:        date,
		SlotMinutes: slotMinutes,
		Slots:       out,
	}
}
