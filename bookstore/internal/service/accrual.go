package service

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/pricing"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AccrueDailyCosts charges one day of every lent loan to its member.
//
// Each member is charged in its own transaction. A member that fails is logged and
// counted in the report, the sweep goes on with the others.
func (s *Service) AccrueDailyCosts(ctx context.Context) (model.AccrualReport, error) {
	report := model.AccrualReport{Total: decimal.Zero}
	ids, err := s.repo.ListMemberIDs(ctx)
	if err != nil {
		return report, err
	}
	now := s.clock.Now()

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			loans, charged, err := s.accrueMember(ctx, id, now)

			mu.Lock()
			defer mu.Unlock()
			report.Members++
			if err != nil {
				report.Failed++
				s.log.Error("accrue member", zap.Int64("member_id", id), zap.Error(err))
				return nil
			}
			report.Loans += loans
			report.Total = report.Total.Add(charged)
			return nil
		})
	}
	_ = g.Wait()

	s.log.Info("accrual finished",
		zap.Int("members", report.Members),
		zap.Int("loans", report.Loans),
		zap.Int("failed", report.Failed),
		zap.String("total", report.Total.StringFixed(2)))
	return report, ctx.Err()
}

func (s *Service) accrueMember(ctx context.Context, memberID int64, now time.Time) (int, decimal.Decimal, error) {
	var (
		loans   int
		charged = decimal.Zero
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		loans, charged = 0, decimal.Zero
		if _, err := tx.GetMemberForUpdate(ctx, memberID); err != nil {
			return err
		}
		active, err := tx.ListActiveLoans(ctx, memberID)
		if err != nil {
			return err
		}
		for _, loan := range active {
			charge := pricing.DailyCharge(loan.PricePerDay)
			if err := tx.AdjustMemberBalance(ctx, memberID, charge.Neg()); err != nil {
				return err
			}
			if err := tx.CreatePayment(ctx, model.Payment{
				Source:     model.BorrowSource(loan.BorrowID),
				BookID:     loan.BookID,
				CategoryID: loan.CategoryID,
				MemberID:   memberID,
				Price:      charge,
				CreatedAt:  now,
			}); err != nil {
				return err
			}
			loans++
			charged = charged.Add(charge)
		}
		return nil
	})
	if err != nil {
		return 0, decimal.Zero, err
	}
	return loans, charged, nil
}
