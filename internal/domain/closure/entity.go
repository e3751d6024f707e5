package closure

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidClosureWindow = errors.New("closure end must be after start")

// Closure blocks a court for a time window. A nil court id blocks every court
// (facility-wide maintenance, holidays).
type Closure struct {
	id        uuid.UUID
	courtID   *uuid.UUID
	startTime time.Time
	endTime   time.Time
	reason    *string
	createdAt time.Time
}

func NewClosure(courtID *uuid.UUID, start, end time.Time, reason *string) (*Closure, error) {
	if !end.After(start) {
		return nil, ErrInvalidClosureWindow
	}

	return &Closure{
		id:        uuid.New(),
		courtID:   courtID,
		startTime: start,
		endTime:   end,
		reason:    reason,
	}, nil
}

func ReconstructClosure(
	id uuid.UUID,
	courtID *uuid.UUID,
	start, end time.Time,
	reason *string,
	createdAt time.Time,
) *Closure {
	return &Closure{
		id:        id,
		courtID:   courtID,
		startTime: start,
		endTime:   end,
		reason:    reason,
		createdAt: createdAt,
	}
}

// AppliesTo reports whether the closure affects the given court.
func (c *Closure) AppliesTo(courtID uuid.UUID) bool {
	return c.courtID == nil || *c.courtID == courtID
}

// Blocks uses half-open interval semantics, matching reservations.
func (c *Closure) Blocks(start, end time.Time) bool {
	return c.startTime.Before(end) && c.endTime.After(start)
}

func (c *Closure) ID() uuid.UUID        { return c.id }
func (c *Closure) CourtID() *uuid.UUID  { return c.courtID }
func (c *Closure) StartTime() time.Time { return c.startTime }
func (c *Closure) EndTime() time.Time   { return c.endTime }
func (c *Closure) Reason() *string      { return c.reason }
func (c *Closure) CreatedAt() time.Time { return c.createdAt }
