package usecase

import (
	"context"
	"math"
	"time"

	"reservatenis/internal/domain/availability"
	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/pkg/clock"
	"reservatenis/internal/pkg/errs"

	"github.com/google/uuid"
)

type OccupancyEntry struct {
	CourtID       uuid.UUID
	CourtName     string
	TotalSlots    int
	BookedSlots   int
	OccupancyRate float64
}

type OccupancyReport struct {
	DateFrom    time.Time
	DateTo      time.Time
	SlotMinutes int
	Courts      []OccupancyEntry
}

type RevenueEntry struct {
	CourtID           uuid.UUID
	CourtName         string
	ReservationsCount int
	RevenueCents      int64
}

type RevenueReport struct {
	DateFrom time.Time
	DateTo   time.Time
	Courts   []RevenueEntry
}

type ReportUseCase interface {
	// Occupancy reports, per active court, how many slots the operating
	// window offered over the date range (closures subtracted) and how many
	// of them blocking reservations consumed. Lapsed holds are expired
	// first, so every counted pending reservation still blocks a slot and
	// the grid agrees with availability.
	Occupancy(ctx context.Context, dateFrom, dateTo time.Time, slotMinutes int) (*OccupancyReport, error)
	Revenue(ctx context.Context, dateFrom, dateTo time.Time) (*RevenueReport, error)
}

type reportUseCaseImpl struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	schedule        availability.Params
	clock           clock.Clock
}

func NewReportUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	schedule availability.Params,
	clk clock.Clock,
) ReportUseCase {
	return &reportUseCaseImpl{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		schedule:        schedule,
		clock:           clk,
	}
}

func (r *reportUseCaseImpl) Occupancy(ctx context.Context, dateFrom, dateTo time.Time, slotMinutes int) (*OccupancyReport, error) {
	if dateFrom.After(dateTo) {
		return nil, errs.ErrInvalidTimeRange
	}
	if slotMinutes <= 0 {
		return nil, errs.ErrInvalidSlotMinutes
	}

	if _, err := r.reservationRepo.ExpireLapsed(ctx, r.clock.Now()); err != nil {
		return nil, errs.Wrap(err, "failed to expire lapsed reservations")
	}

	courts, err := r.courtRepo.List(ctx, false)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list courts")
	}

	params := r.schedule
	params.SlotMinutes = slotMinutes
	rangeEnd := dateTo.AddDate(0, 0, 1)

	entries := make([]OccupancyEntry, 0, len(courts))
	for _, c := range courts {
		totalSlots := 0
		for day := dateFrom; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
			closures, err := r.closureRepo.ListBlocking(ctx, c.ID(), day, day.AddDate(0, 0, 1))
			if err != nil {
				return nil, errs.Wrap(err, "failed to list closures")
			}
			free, err := availability.FreeSlots(c.ID(), day, nil, closures, params)
			if err != nil {
				return nil, errs.Wrap(err, "failed to compute schedule slots")
			}
			totalSlots += len(free)
		}

		booked, err := r.bookedSlots(ctx, c.ID(), dateFrom, rangeEnd, slotMinutes)
		if err != nil {
			return nil, err
		}

		rate := 0.0
		if totalSlots > 0 {
			rate = math.Round(float64(booked)/float64(totalSlots)*100) / 100
		}
		entries = append(entries, OccupancyEntry{
			CourtID:       c.ID(),
			CourtName:     c.Name(),
			TotalSlots:    totalSlots,
			BookedSlots:   booked,
			OccupancyRate: rate,
		})
	}

	return &OccupancyReport{
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		SlotMinutes: slotMinutes,
		Courts:      entries,
	}, nil
}

func (r *reportUseCaseImpl) bookedSlots(ctx context.Context, courtID uuid.UUID, rangeStart, rangeEnd time.Time, slotMinutes int) (int, error) {
	reservations, err := r.reservationRepo.ListBlocking(ctx, courtID, rangeStart, rangeEnd)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list reservations")
	}

	// ListBlocking already excludes cancelled rows; pending holds block
	// slots just like confirmed bookings.
	booked := 0
	for _, res := range reservations {
		overlapStart := maxTime(res.TimeSlot().Start(), rangeStart)
		overlapEnd := minTime(res.TimeSlot().End(), rangeEnd)
		minutes := int(overlapEnd.Sub(overlapStart).Minutes())
		booked += minutes / slotMinutes
	}
	return booked, nil
}

func (r *reportUseCaseImpl) Revenue(ctx context.Context, dateFrom, dateTo time.Time) (*RevenueReport, error) {
	if dateFrom.After(dateTo) {
		return nil, errs.ErrInvalidTimeRange
	}

	rangeEnd := dateTo.AddDate(0, 0, 1)
	reservations, err := r.reservationRepo.List(ctx, ReservationFilter{From: &dateFrom, To: &rangeEnd})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}

	byCourt := map[uuid.UUID]*RevenueEntry{}
	order := []uuid.UUID{}
	for _, res := range reservations {
		if res.Status() != reservation.StatusConfirmed {
			continue
		}
		entry, ok := byCourt[res.CourtID()]
		if !ok {
			entry = &RevenueEntry{CourtID: res.CourtID()}
			byCourt[res.CourtID()] = entry
			order = append(order, res.CourtID())
		}
		entry.ReservationsCount++
		entry.RevenueCents += res.Price().Cents()
	}

	entries := make([]RevenueEntry, 0, len(order))
	for _, courtID := range order {
		entry := byCourt[courtID]
		if c, err := r.courtRepo.FindByID(ctx, courtID); err == nil {
			entry.CourtName = c.Name()
		}
		entries = append(entries, *entry)
	}

	return &RevenueReport{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Courts:   entries,
	}, nil
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
