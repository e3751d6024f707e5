package response

import (
	"reservatenis/internal/usecase"

	"github.com/google/uuid"
)

type OccupancyEntryResponse struct {
	CourtID       uuid.UUID `json:"court_id"`
	CourtName     string    `json:"court_name"`
	TotalSlots    int       `json:"total_slots"`
	BookedSlots   int       `json:"booked_slots"`
	OccupancyRate float64   `json:"occupancy_rate"`
}

type OccupancyReportResponse struct {
	DateFrom    string                   `json:"date_from"`
	DateTo      string                   `json:"date_to"`
	SlotMinutes int                      `json:"slot_minutes"`
	Courts      []OccupancyEntryResponse `json:"courts"`
}

type RevenueEntryResponse struct {
	CourtID           uuid.UUID `json:"court_id"`
	CourtName         string    `json:"court_name"`
	ReservationsCount int       `json:"reservations_count"`
	RevenueCents      int64     `json:"revenue_cents"`
}

type RevenueReportResponse struct {
	DateFrom string                 `json:"date_from"`
	DateTo   string                 `json:"date_to"`
	Courts   []RevenueEntryResponse `json:"courts"`
}

func FromOccupancyReport(r *usecase.OccupancyReport) *OccupancyReportResponse {
	courts := make([]OccupancyEntryResponse, len(r.Courts))
	for i, e := range r.Courts {
		courts[i] = OccupancyEntryResponse{
			CourtID:       e.CourtID,
			CourtName:     e.CourtName,
			TotalSlots:    e.TotalSlots,
			BookedSlots:   e.BookedSlots,
			OccupancyRate: e.OccupancyRate,
		}
	}
	return &OccupancyReportResponse{
		DateFrom:    r.DateFrom.Format("2006-01-02"),
		DateTo:      r.DateTo.Format("2006-01-02"),
		SlotMinutes: r.SlotMinutes,
		Courts:      courts,
	}
}

func FromRevenueReport(r *usecase.RevenueReport) *RevenueReportResponse {
	courts := make([]RevenueEntryResponse, len(r.Courts))
	for i, e := range r.Courts {
		courts[i] = RevenueEntryResponse{
			CourtID:           e.CourtID,
			CourtName:         e.CourtName,
			ReservationsCount: e.ReservationsCount,
			RevenueCents:      e.RevenueCents,
		}
	}
	return &RevenueReportResponse{
		DateFrom: r.DateFrom.Format("2006-01-02"),
		DateTo:   r.DateTo.Format("2006-01-02"),
		Courts:   courts,
	}
}
