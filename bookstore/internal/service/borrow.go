package service

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/eligibility"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/pricing"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SubmitBorrow records a borrow request and decides it in the same transaction.
//
// The request is always persisted as Requested first. Rejections are business outcomes:
// the transaction commits with the borrow in its last rejected status and a
// *errs.RejectionError listing every failed check is returned with it.
func (s *Service) SubmitBorrow(ctx context.Context, memberID int64, req model.BorrowRequest) (model.Borrow, error) {
	now := s.clock.Now()
	var (
		borrow  model.Borrow
		outcome error
		events  trail
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		events = nil
		outcome = nil

		member, err := tx.GetMember(ctx, memberID)
		if err != nil {
			return err
		}
		if member.IsStaff {
			return errs.ErrStaffNotAllowed
		}
		book, err := tx.GetBookForUpdate(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.IsDeleted {
			return errors.Wrap(errs.ErrNotFound, "book")
		}
		category, err := tx.GetCategory(ctx, book.CategoryID)
		if err != nil {
			return err
		}
		if category.IsDeleted {
			return errors.Wrap(errs.ErrNotFound, "category")
		}

		borrow, err = tx.CreateBorrow(ctx, model.Borrow{
			BookID:    book.ID,
			MemberID:  member.ID,
			StatusID:  model.StatusRequested,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		if err := tx.CreateActivityLog(ctx, borrow.ID, borrow.StatusID); err != nil {
			return err
		}
		events.record(borrow.ID, borrow.StatusID, now)

		// the Requested row is kept even when no copy is left
		if book.BorrowQty < 1 {
			outcome = errs.ErrNotAvailable
			return nil
		}

		facts, err := s.eligibilityFacts(ctx, tx, member, category, now)
		if err != nil {
			return err
		}
		if rejections := eligibility.Evaluate(facts); len(rejections) > 0 {
			reasons := make([]string, 0, len(rejections))
			for _, r := range rejections {
				if err := s.advance(ctx, tx, &borrow, r.Event, now, &events); err != nil {
					return err
				}
				reasons = append(reasons, r.Reason)
			}
			outcome = &errs.RejectionError{BorrowID: borrow.ID, Reasons: reasons}
			return nil
		}

		since := pricing.DemandWindowStart(now)
		recent, err := tx.CountBorrows(ctx, repository.BorrowFilter{
			BookID:       book.ID,
			Statuses:     model.CommittedStatuses,
			StartedSince: &since,
		})
		if err != nil {
			return err
		}
		days := pricing.LoanDays(book.BorrowQty, recent, req.RequestedDays)
		start, due := now, now.AddDate(0, 0, days)
		borrow.StartDate = &start
		borrow.MaxDeliveryDate = &due
		if err := s.advance(ctx, tx, &borrow, model.EventApprove, now, &events); err != nil {
			return err
		}
		return tx.UpdateBookBorrowQty(ctx, book.ID, -1)
	})
	if err != nil {
		return model.Borrow{}, err
	}
	s.publish(events)

	if outcome != nil {
		s.log.Debug("borrow request not approved",
			zap.Int64("borrow_id", borrow.ID),
			zap.Int64("member_id", memberID),
			zap.Error(outcome))
		return borrow, outcome
	}
	return borrow, nil
}

func (s *Service) eligibilityFacts(
	ctx context.Context, tx repository.Store, member model.Member, category model.Category, now time.Time,
) (eligibility.Facts, error) {
	active, err := tx.CountBorrows(ctx, repository.BorrowFilter{
		MemberID:    member.ID,
		CategoryID:  category.ID,
		Statuses:    model.CommittedStatuses,
		Undelivered: true,
	})
	if err != nil {
		return eligibility.Facts{}, err
	}
	overdue, err := tx.CountBorrows(ctx, repository.BorrowFilter{
		MemberID:    member.ID,
		Undelivered: true,
		DueBy:       &now,
	})
	if err != nil {
		return eligibility.Facts{}, err
	}
	return eligibility.Facts{
		ActiveInCategory: active,
		BorrowLimit:      category.BorrowLimit,
		HasOverdue:       overdue > 0,
		Balance:          member.Balance,
		PricePerDay:      category.BorrowPricePerDay,
	}, nil
}

// LendBorrow hands an approved borrow over to the member. Only a Pending borrow can be lent.
func (s *Service) LendBorrow(ctx context.Context, borrowID, staffID int64) (model.Borrow, error) {
	now := s.clock.Now()
	var (
		borrow model.Borrow
		events trail
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		events = nil
		if err := requireStaff(ctx, tx, staffID); err != nil {
			return err
		}
		var err error
		if borrow, err = lockBorrow(ctx, tx, borrowID); err != nil {
			return err
		}
		borrow.StaffID = &staffID
		return s.advance(ctx, tx, &borrow, model.EventLend, now, &events)
	})
	if err != nil {
		return model.Borrow{}, err
	}
	s.publish(events)
	return borrow, nil
}

// DeliverBorrow takes a book back and settles the loan: the borrow is priced, a penalty is
// recorded for late returns, the copy goes back on the shelf and the total is booked as a payment.
func (s *Service) DeliverBorrow(ctx context.Context, borrowID, staffID int64) (model.Borrow, error) {
	now := s.clock.Now()
	var (
		borrow model.Borrow
		events trail
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		events = nil
		if err := requireStaff(ctx, tx, staffID); err != nil {
			return err
		}
		var err error
		if borrow, err = lockBorrow(ctx, tx, borrowID); err != nil {
			return err
		}
		if _, ok := model.Transition(borrow.StatusID, model.EventDeliver); !ok {
			return illegalTransition(borrow.StatusID, model.EventDeliver)
		}
		if borrow.StartDate == nil || borrow.MaxDeliveryDate == nil {
			return errors.Wrap(errs.ErrPreconditionFailed, "borrow has no loan period")
		}

		book, err := tx.GetBookForUpdate(ctx, borrow.BookID)
		if err != nil {
			return err
		}
		category, err := tx.GetCategory(ctx, book.CategoryID)
		if err != nil {
			return err
		}

		st := pricing.Settle(*borrow.StartDate, *borrow.MaxDeliveryDate, now, category.BorrowPricePerDay)
		delivered := now
		borrow.StaffID = &staffID
		borrow.DeliveryDate = &delivered
		borrow.BorrowPrice = decimal.NewNullDecimal(st.BorrowPrice)
		borrow.BorrowPenaltyPrice = decimal.NewNullDecimal(st.PenaltyPrice)
		borrow.TotalPrice = decimal.NewNullDecimal(st.TotalPrice)
		if err := s.advance(ctx, tx, &borrow, model.EventDeliver, now, &events); err != nil {
			return err
		}

		if st.PenaltyDays > 0 {
			if err := tx.CreatePenalty(ctx, model.Penalty{
				MemberID:    borrow.MemberID,
				BorrowID:    borrow.ID,
				PenaltyDays: st.PenaltyDays,
			}); err != nil {
				return err
			}
		}
		if err := tx.UpdateBookBorrowQty(ctx, book.ID, 1); err != nil {
			return err
		}
		return tx.CreatePayment(ctx, model.Payment{
			Source:     model.BorrowSource(borrow.ID),
			BookID:     book.ID,
			CategoryID: book.CategoryID,
			MemberID:   borrow.MemberID,
			Price:      st.TotalPrice,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return model.Borrow{}, err
	}
	s.publish(events)
	return borrow, nil
}

// advance applies e to b, persists the new status and appends it to the activity log.
func (s *Service) advance(
	ctx context.Context, tx repository.Store, b *model.Borrow, e model.Event, now time.Time, events *trail,
) error {
	to, ok := model.Transition(b.StatusID, e)
	if !ok {
		return illegalTransition(b.StatusID, e)
	}
	b.StatusID = to
	if err := tx.UpdateBorrow(ctx, *b); err != nil {
		return err
	}
	if err := tx.CreateActivityLog(ctx, b.ID, to); err != nil {
		return err
	}
	events.record(b.ID, to, now)
	return nil
}

func illegalTransition(from model.Status, e model.Event) error {
	return errors.Wrapf(errs.ErrPreconditionFailed, "cannot %s a borrow in status %q", e, from.Title())
}

func requireStaff(ctx context.Context, tx repository.Store, staffID int64) error {
	staff, err := tx.GetMember(ctx, staffID)
	if err != nil {
		return err
	}
	if !staff.IsStaff {
		return errs.ErrNotStaff
	}
	return nil
}

func lockBorrow(ctx context.Context, tx repository.Store, borrowID int64) (model.Borrow, error) {
	borrow, err := tx.GetBorrowForUpdate(ctx, borrowID)
	if errors.Is(err, errs.ErrNotFound) {
		return model.Borrow{}, errors.Wrap(errs.ErrPreconditionFailed, "borrow record is not found")
	}
	return borrow, err
}
