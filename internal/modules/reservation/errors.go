package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("reservation not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrDiscountNotFound  = errors.New("discount code not found")
	ErrGuestCount        = errors.New("number of guests out of range for room type")
	ErrAlreadyCheckedIn  = errors.New("reservation is already checked in")
	ErrNotCheckedIn      = errors.New("reservation has not been checked in")
	ErrAlreadyCheckedOut = errors.New("reservation is already checked out")
	ErrAmountPaid        = errors.New("amount paid must be between zero and the reservation price")
	ErrCheckedIn         = errors.New("reservation cannot be deleted after check-in")
)

// ConflictError reports the existing stay that clashes with the candidate
// window, so the caller can show the offending dates.
type ConflictError struct {
	RoomNumber int
	Start      time.Time
	End        time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d is already reserved from %s to %s",
		e.RoomNumber, e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}
