package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers. The handler
// layer maps each kind to an HTTP status; nothing below is fatal.
var (
	// Lookup errors
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Booking creation errors
	ErrItemNotAvailable  = errors.New("item is not available for booking")
	ErrSelfBooking       = errors.New("owner cannot book own item")
	ErrInvalidTimeWindow = errors.New("invalid booking time window")

	// Booking decision / access errors
	ErrNotOwner       = errors.New("only the item owner may decide a booking")
	ErrNotAuthorized  = errors.New("access restricted to the booker or the item owner")
	ErrAlreadyDecided = errors.New("booking has already been decided")

	// Listing errors
	ErrUnsupportedState  = errors.New("unsupported state filter")
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// Comment errors
	ErrNotEndedBooking = errors.New("no ended approved booking for this item")
	ErrEmptyComment    = errors.New("comment text cannot be empty")

	// User errors
	ErrDuplicateEmail = errors.New("email is already registered")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
