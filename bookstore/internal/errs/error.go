package errs

import (
	"errors"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrNotAvailable        = errors.New("Book is not available for borrow")
	ErrNotAvailableForSale = errors.New("Book is not available for sale")
	ErrInsufficientBalance = errors.New("Insufficient account balance")
	ErrStaffNotAllowed     = errors.New("staff members cannot borrow or buy books")
	ErrNotStaff            = errors.New("operation requires a staff member")
)

// RejectionError carries every failed eligibility check of a borrow request, in evaluation order.
// The borrow stays persisted in its last rejected status.
type RejectionError struct {
	BorrowID int64
	Reasons  []string
}

func (e *RejectionError) Error() string {
	return "borrow request rejected: " + strings.Join(e.Reasons, "; ")
}

func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

type RejectionResponse struct {
	Message string   `json:"message"`
	Reasons []string `json:"reasons"`
}
