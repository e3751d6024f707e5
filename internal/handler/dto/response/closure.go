package response

import (
	"time"

	"reservatenis/internal/domain/closure"

	"github.com/google/uuid"
)

type ClosureResponse struct {
	ID        uuid.UUID  `json:"id"`
	CourtID   *uuid.UUID `json:"court_id,omitempty"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Reason    *string    `json:"reason,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromClosure(c *closure.Closure) *ClosureResponse {
	return &ClosureResponse{
		ID:        c.ID(),
		CourtID:   c.CourtID(),
		StartTime: c.StartTime(),
		EndTime:   c.EndTime(),
		Reason:    c.Reason(),
		CreatedAt: c.CreatedAt(),
	}
}

func FromClosures(closures []*closure.Closure) []*ClosureResponse {
	out := make([]*ClosureResponse, len(closures))
	for i, c := range closures {
		out[i] = FromClosure(c)
	}
	return out
}
