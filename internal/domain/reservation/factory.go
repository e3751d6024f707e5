package reservation

import (
	"reservatenis/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	HoldMinutes     int
}

func NewFactory(clk clock.Clock, priceCalculator PriceCalculator, holdMinutes int) *Factory {
	return &Factory{
		Clock:           clk,
		PriceCalculator: priceCalculator,
		HoldMinutes:     holdMinutes,
	}
}

func (f *Factory) CreateReservation(
	courtID uuid.UUID,
	userID *uuid.UUID,
	customer Customer,
	slot TimeSlot,
) (*Reservation, error) {
	priceCents := f.PriceCalculator.CalculatePriceCents(slot)
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return NewReservation(
		courtID,
		userID,
		customer,
		slot,
		NewMoney(priceCents),
		f.Clock.Now(),
		f.HoldMinutes,
	)
}
