package reservation

type PriceCalculator interface {
	CalculatePriceCents(slot TimeSlot) int64
}

// HourlyPriceCalculator charges a flat hourly rate pro-rated to the slot
// duration, so a 90-minute slot costs 1.5x the rate.
type HourlyPriceCalculator struct {
	HourlyRateCents int64
}

func NewHourlyPriceCalculator(hourlyRateCents int64) *HourlyPriceCalculator {
	return &HourlyPriceCalculator{HourlyRateCents: hourlyRateCents}
}

func (pc *HourlyPriceCalculator) CalculatePriceCents(slot TimeSlot) int64 {
	hours := slot.Duration().Hours()
	return int64(hours * float64(pc.HourlyRateCents))
}
