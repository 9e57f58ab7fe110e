package commands

import "gearshare/internal/pkg/errs"

// Sentinel errors shared by the command services. Handlers translate them
// into the four public outcome kinds: not-found, invalid-request, forbidden
// and conflict.
var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrRequestNotFound = errs.New("item request not found")

	ErrMissingPeriod      = errs.New("start and end must be provided")
	ErrInvalidPeriod      = errs.New("end must be after start")
	ErrItemUnavailable    = errs.New("item is not available for booking")
	ErrOwnerBooking       = errs.New("owner cannot book own item")
	ErrAlreadyDecided     = errs.New("booking status is already decided")
	ErrBookingNotFinished = errs.New("author did not complete a booking of this item")
	ErrDomainValidation   = errs.New("domain validation error")

	ErrNotItemOwner = errs.New("only the item owner may decide")

	ErrEmailTaken = errs.New("this email is already in use")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
