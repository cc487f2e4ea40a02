package repository

import (
	"context"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func (s *store) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	err := s.get(ctx, &book, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}), "GetBook")
	return book, err
}

func (s *store) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	err := s.get(ctx, &book, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"), "GetBookForUpdate")
	return book, err
}

// UpdateBookBorrowQty never lets borrow_qty go negative: a decrement past zero is ErrNotAvailable.
func (s *store) UpdateBookBorrowQty(ctx context.Context, id int64, delta int) error {
	n, err := s.exec(ctx, qb.Update(booksTableName).
		Set("borrow_qty", sq.Expr("borrow_qty + ?", delta)).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("borrow_qty + ? >= 0", delta)), "UpdateBookBorrowQty")
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotAvailable
	}
	return nil
}

func (s *store) UpdateBookSellQty(ctx context.Context, id int64, delta int) error {
	n, err := s.exec(ctx, qb.Update(booksTableName).
		Set("sell_qty", sq.Expr("sell_qty + ?", delta)).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("sell_qty + ? >= 0", delta)), "UpdateBookSellQty")
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotAvailableForSale
	}
	return nil
}

func (s *store) ListBooksLowSellStock(ctx context.Context, below int) ([]model.Book, error) {
	books := make([]model.Book, 0)
	err := s.selectAll(ctx, &books, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"is_deleted": false}).
		Where(sq.Lt{"sell_qty": below}).
		OrderBy("sell_qty", "id"), "ListBooksLowSellStock")
	return books, err
}

func (s *store) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := s.get(ctx, &c, qb.Select(categoryColumns...).
		From(categoriesTableName).
		Where(sq.Eq{"id": id}), "GetCategory")
	return c, err
}

func (s *store) ListStatuses(ctx context.Context) ([]model.StatusInfo, error) {
	items := make([]model.StatusInfo, 0, 7)
	err := s.selectAll(ctx, &items, qb.Select("id", "title").
		From(statusTableName).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("id"), "ListStatuses")
	return items, err
}
