package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CourtID       uuid.UUID `json:"court_id" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone *string   `json:"customer_phone,omitempty"`
	// UserID lets admins book on behalf of another user; ignored otherwise.
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

func (r CreateReservationRequest) GetCustomerPhone() *string {
	if r.CustomerPhone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CustomerPhone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
