package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateClosureRequest struct {
	// CourtID left null closes every court for the window.
	CourtID   *uuid.UUID `json:"court_id,omitempty"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   time.Time  `json:"end_time" binding:"required"`
	Reason    *string    `json:"reason,omitempty"`
}
