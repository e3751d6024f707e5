package response

import (
	"time"

	"reservatenis/internal/domain/court"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surface   *string   `json:"surface,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCourt(c *court.Court) *CourtResponse {
	return &CourtResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Surface:   c.Surface(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func FromCourts(courts []*court.Court) []*CourtResponse {
	out := make([]*CourtResponse, len(courts))
	for i, c := range courts {
		out[i] = FromCourt(c)
	}
	return out
}
