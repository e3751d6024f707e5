package errs

import "errors"

// Sentinel errors shared by the usecase layer and handlers.
var (
	// Input errors
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidSlotMinutes = errors.New("slot minutes must be positive")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrInvalidCustomer    = errors.New("customer name must not be empty")

	// Not-found errors
	ErrCourtNotFound        = errors.New("court not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrClosureNotFound      = errors.New("closure not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Reservation errors
	ErrSlotConflict      = errors.New("time slot already booked")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrSlotClosed        = errors.New("time slot falls within a closure")

	// Court errors
	ErrCourtNameTaken = errors.New("court name already exists")
	ErrCourtInactive  = errors.New("court is inactive")

	// User errors
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserInactive = errors.New("user is inactive")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
