// Package eligibility decides whether a borrow request may proceed.
//
// All checks are always evaluated; a request is rejected with every failing check,
// in the fixed order category limit, pending return, balance.
package eligibility

import (
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/shopspring/decimal"
)

// AffordabilityDays is how many days of the category rate a member must be able to cover.
const AffordabilityDays = 3

// Facts is the member and category state the checks are evaluated against.
type Facts struct {
	// committed, undelivered borrows of the member in the book's category
	ActiveInCategory int
	BorrowLimit      int
	// the member holds a loan past its due date that was never returned
	HasOverdue  bool
	Balance     decimal.Decimal
	PricePerDay decimal.Decimal
}

type Check struct {
	Name   string
	Event  model.Event
	Failed func(Facts) bool
}

var checks = []Check{
	{
		Name:  "category limit",
		Event: model.EventRejectCategoryLimit,
		Failed: func(f Facts) bool {
			return CategoryLimitReached(f.ActiveInCategory, f.BorrowLimit)
		},
	},
	{
		Name:  "pending return",
		Event: model.EventRejectPendingReturn,
		Failed: func(f Facts) bool {
			return f.HasOverdue
		},
	},
	{
		Name:  "balance",
		Event: model.EventRejectInsufficientBalance,
		Failed: func(f Facts) bool {
			return InsufficientBalance(f.Balance, f.PricePerDay)
		},
	},
}

func Checks() []Check {
	out := make([]Check, len(checks))
	copy(out, checks)
	return out
}

type Rejection struct {
	Event  model.Event
	Status model.Status
	Reason string
}

// Evaluate returns the failing checks in evaluation order, nil when the request is eligible.
func Evaluate(f Facts) []Rejection {
	var out []Rejection
	for _, c := range checks {
		if !c.Failed(f) {
			continue
		}
		st, _ := model.Transition(model.StatusRequested, c.Event)
		out = append(out, Rejection{
			Event:  c.Event,
			Status: st,
			Reason: st.Title(),
		})
	}
	return out
}

func CategoryLimitReached(active, limit int) bool {
	return active >= limit
}

func InsufficientBalance(balance, pricePerDay decimal.Decimal) bool {
	return balance.LessThanOrEqual(pricePerDay.Mul(decimal.NewFromInt(AffordabilityDays)))
}
