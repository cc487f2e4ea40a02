package repository

import (
	"context"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func (s *store) CreateBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error) {
	var ret struct {
		ID int64 `db:"id"`
	}
	err := s.get(ctx, &ret, qb.Insert(borrowsTableName).
		Columns("book_id", "member_id", "status_id", "created_at").
		Values(b.BookID, b.MemberID, int(b.StatusID), b.CreatedAt).
		Suffix("RETURNING id"), "CreateBorrow")
	if err != nil {
		return model.Borrow{}, err
	}
	b.ID = ret.ID
	return b, nil
}

func (s *store) GetBorrow(ctx context.Context, id int64) (model.Borrow, error) {
	var b model.Borrow
	err := s.get(ctx, &b, qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}), "GetBorrow")
	return b, err
}

func (s *store) GetBorrowForUpdate(ctx context.Context, id int64) (model.Borrow, error) {
	var b model.Borrow
	err := s.get(ctx, &b, qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("FOR UPDATE"), "GetBorrowForUpdate")
	return b, err
}

func (s *store) UpdateBorrow(ctx context.Context, b model.Borrow) error {
	n, err := s.exec(ctx, qb.Update(borrowsTableName).
		SetMap(map[string]interface{}{
			"staff_id":             b.StaffID,
			"status_id":            int(b.StatusID),
			"start_date":           b.StartDate,
			"max_delivery_date":    b.MaxDeliveryDate,
			"delivery_date":        b.DeliveryDate,
			"borrow_price":         b.BorrowPrice,
			"borrow_penalty_price": b.BorrowPenaltyPrice,
			"total_price":          b.TotalPrice,
		}).
		Where(sq.Eq{"id": b.ID, "is_deleted": false}), "UpdateBorrow")
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *store) ListBorrowsByMember(ctx context.Context, memberID int64, q model.MemberBorrowsQuery) ([]model.Borrow, error) {
	cols := make([]string, 0, len(borrowColumns))
	for _, c := range borrowColumns {
		cols = append(cols, "b."+c)
	}
	b := qb.Select(cols...).
		From(borrowsTableName+" b").
		Where(sq.Eq{"b.member_id": memberID, "b.is_deleted": false})
	if q.BookName != "" || q.CategoryName != "" || q.BorrowQty != nil {
		b = b.Join(booksTableName + " bk ON bk.id = b.book_id")
	}
	if q.BookName != "" {
		b = b.Where(sq.ILike{"bk.title": "%" + q.BookName + "%"})
	}
	if q.CategoryName != "" {
		b = b.Join(categoriesTableName+" c ON c.id = bk.category_id").
			Where(sq.ILike{"c.title": "%" + q.CategoryName + "%"})
	}
	if q.BorrowCount != nil {
		b = b.Where(sq.Expr("(SELECT count(*) FROM "+borrowsTableName+" x "+
			"WHERE x.book_id = b.book_id AND x.member_id = b.member_id AND NOT x.is_deleted) = ?", *q.BorrowCount))
	}
	if q.BorrowQty != nil {
		b = b.Where(sq.Eq{"bk.borrow_qty": *q.BorrowQty})
	}

	borrows := make([]model.Borrow, 0)
	err := s.selectAll(ctx, &borrows, b.OrderBy("b.id DESC"), "ListBorrowsByMember")
	return borrows, err
}

func (s *store) CountBorrows(ctx context.Context, f BorrowFilter) (int, error) {
	b := qb.Select("count(*)").
		From(borrowsTableName + " b").
		Where(sq.Eq{"b.is_deleted": false})
	if f.MemberID != 0 {
		b = b.Where(sq.Eq{"b.member_id": f.MemberID})
	}
	if f.BookID != 0 {
		b = b.Where(sq.Eq{"b.book_id": f.BookID})
	}
	if f.CategoryID != 0 {
		b = b.Join(booksTableName + " bk ON bk.id = b.book_id").
			Where(sq.Eq{"bk.category_id": f.CategoryID})
	}
	if len(f.Statuses) > 0 {
		ids := make([]int, 0, len(f.Statuses))
		for _, st := range f.Statuses {
			ids = append(ids, int(st))
		}
		b = b.Where(sq.Eq{"b.status_id": ids})
	}
	if f.Undelivered {
		b = b.Where(sq.Eq{"b.delivery_date": nil})
	}
	if f.DueBy != nil {
		b = b.Where(sq.LtOrEq{"b.max_delivery_date": *f.DueBy})
	}
	if f.StartedSince != nil {
		b = b.Where(sq.GtOrEq{"b.start_date": *f.StartedSince})
	}

	var n int
	err := s.get(ctx, &n, b, "CountBorrows")
	return n, err
}

func (s *store) ListActiveLoans(ctx context.Context, memberID int64) ([]model.ActiveLoan, error) {
	loans := make([]model.ActiveLoan, 0)
	err := s.selectAll(ctx, &loans, qb.Select(
		"b.id AS borrow_id", "b.book_id", "bk.category_id", "c.borrow_price_per_day").
		From(borrowsTableName+" b").
		Join(booksTableName+" bk ON bk.id = b.book_id").
		Join(categoriesTableName+" c ON c.id = bk.category_id").
		Where(sq.Eq{
			"b.member_id":     memberID,
			"b.status_id":     int(model.StatusBorrowed),
			"b.is_deleted":    false,
			"b.delivery_date": nil,
		}).
		OrderBy("b.id"), "ListActiveLoans")
	return loans, err
}

func (s *store) CreateActivityLog(ctx context.Context, borrowID int64, status model.Status) error {
	_, err := s.exec(ctx, qb.Insert(activityLogTableName).
		Columns("borrow_id", "status_id").
		Values(borrowID, int(status)), "CreateActivityLog")
	return err
}

func (s *store) ListActivityLog(ctx context.Context, borrowID int64) ([]model.ActivityLog, error) {
	items := make([]model.ActivityLog, 0)
	err := s.selectAll(ctx, &items, qb.Select("id", "borrow_id", "status_id", "created_at").
		From(activityLogTableName).
		Where(sq.Eq{"borrow_id": borrowID}).
		OrderBy("id"), "ListActivityLog")
	return items, err
}
