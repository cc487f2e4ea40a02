package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Money rounds an amount to cents, half away from zero.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

type Settlement struct {
	DaysBorrowed int
	PenaltyDays  int
	BorrowPrice  decimal.Decimal
	PenaltyPrice decimal.Decimal
	TotalPrice   decimal.Decimal
}

// Settle prices a loan returned at now. The regular price covers the granted loan length,
// every whole day past the due date is charged again at the same rate as a penalty.
func Settle(start, maxDelivery, now time.Time, pricePerDay decimal.Decimal) Settlement {
	s := Settlement{
		DaysBorrowed: WholeDays(maxDelivery.Sub(start)),
	}
	if now.After(maxDelivery) {
		s.PenaltyDays = WholeDays(now.Sub(maxDelivery))
	}
	if s.DaysBorrowed < 0 {
		s.DaysBorrowed = 0
	}

	s.BorrowPrice = Money(pricePerDay.Mul(decimal.NewFromInt(int64(s.DaysBorrowed))))
	s.PenaltyPrice = Money(pricePerDay.Mul(decimal.NewFromInt(int64(s.PenaltyDays))))
	s.TotalPrice = s.BorrowPrice.Add(s.PenaltyPrice)
	return s
}

// DailyCharge is what one day of an active loan costs.
func DailyCharge(pricePerDay decimal.Decimal) decimal.Decimal {
	return Money(pricePerDay)
}
