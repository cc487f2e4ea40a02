package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/pricing"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SellBook charges the member for qty copies and takes them off the sell shelf.
func (s *Service) SellBook(ctx context.Context, memberID, bookID int64, req model.SellRequest) (model.SellResponse, error) {
	now := s.clock.Now()
	var resp model.SellResponse
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		member, err := tx.GetMemberForUpdate(ctx, memberID)
		if err != nil {
			return err
		}
		if member.IsStaff {
			return errs.ErrStaffNotAllowed
		}
		book, err := tx.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if book.IsDeleted {
			return errors.Wrap(errs.ErrNotFound, "book")
		}
		if book.SellQty < req.Qty {
			return errs.ErrNotAvailableForSale
		}
		total := pricing.Money(book.SellPrice.Mul(decimal.NewFromInt(int64(req.Qty))))
		if member.Balance.LessThan(total) {
			return errs.ErrInsufficientBalance
		}

		if err := tx.AdjustMemberBalance(ctx, member.ID, total.Neg()); err != nil {
			return err
		}
		if err := tx.UpdateBookSellQty(ctx, book.ID, -req.Qty); err != nil {
			return err
		}
		sell, err := tx.CreateSell(ctx, model.Sell{
			BookID:    book.ID,
			MemberID:  member.ID,
			Qty:       req.Qty,
			Price:     total,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		if err := tx.CreatePayment(ctx, model.Payment{
			Source:     model.SellSource(sell.ID),
			BookID:     book.ID,
			CategoryID: book.CategoryID,
			MemberID:   member.ID,
			Price:      total,
			CreatedAt:  now,
		}); err != nil {
			return err
		}

		resp = model.SellResponse{
			BookName:   book.Title,
			Qty:        req.Qty,
			TotalPrice: total,
			Message:    sellMessage(req.Qty, book.Title),
		}
		return nil
	})
	if err != nil {
		return model.SellResponse{}, err
	}
	return resp, nil
}

func sellMessage(qty int, title string) string {
	if qty == 1 {
		return fmt.Sprintf("You have successfully bought 1 copy of '%s'", title)
	}
	return fmt.Sprintf("You have successfully bought %d copies of '%s'", qty, title)
}
