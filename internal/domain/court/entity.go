package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourtName   = errors.New("court name cannot be empty")
	ErrCourtNameTooLong = errors.New("court name is too long (max 255 characters)")
)

const MaxCourtNameLength = 255

type Court struct {
	id        uuid.UUID
	name      string
	surface   *string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCourt(name string, surface *string) (*Court, error) {
	if err := validateCourtName(name); err != nil {
		return nil, err
	}

	return &Court{
		id:       uuid.New(),
		name:     strings.TrimSpace(name),
		surface:  surface,
		isActive: true,
	}, nil
}

func ReconstructCourt(
	id uuid.UUID,
	name string,
	surface *string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:        id,
		name:      name,
		surface:   surface,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Court) Rename(name string) error {
	if err := validateCourtName(name); err != nil {
		return err
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *Court) SetSurface(surface *string) {
	c.surface = surface
}

// Deactivate is the soft delete: inactive courts stay referenced by past
// reservations but take no new bookings.
func (c *Court) Deactivate() {
	c.isActive = false
}

func (c *Court) Activate() {
	c.isActive = true
}

func validateCourtName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return ErrCourtNameTooLong
	}
	return nil
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) Surface() *string     { return c.surface }
func (c *Court) IsActive() bool       { return c.isActive }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
