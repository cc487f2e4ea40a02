package pricing

import "time"

const (
	// DemandWindowDays is the trailing window in which committed borrows count as demand.
	DemandWindowDays     = 30
	MinLoanDays          = 3
	DefaultRequestedDays = 3
)

const day = 24 * time.Hour

// DemandWindowStart is the earliest start date still counted as recent demand at now.
func DemandWindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -DemandWindowDays)
}

// LoanDays grants the requested loan length up to a ceiling that shrinks as recent demand
// for the book grows relative to the copies on the shelf. The result is never below MinLoanDays.
func LoanDays(borrowQty, recentCommitments int, requestedDays *int) int {
	requested := DefaultRequestedDays
	if requestedDays != nil && *requestedDays > 0 {
		requested = *requestedDays
	}
	if borrowQty < 1 {
		return MinLoanDays
	}
	if recentCommitments < 0 {
		recentCommitments = 0
	}

	calculated := DemandWindowDays*borrowQty/(borrowQty+recentCommitments) + 1
	if calculated < MinLoanDays {
		return MinLoanDays
	}
	return min(requested, calculated)
}

// WholeDays truncates d to complete days.
func WholeDays(d time.Duration) int {
	return int(d / day)
}
