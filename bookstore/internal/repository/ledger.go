package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func (s *store) CreatePenalty(ctx context.Context, p model.Penalty) error {
	_, err := s.exec(ctx, qb.Insert(penaltiesTableName).
		Columns("member_id", "borrow_id", "penalty_days").
		Values(p.MemberID, p.BorrowID, p.PenaltyDays), "CreatePenalty")
	return err
}

func (s *store) PenaltySummary(ctx context.Context, desc bool) ([]model.PenaltySummary, error) {
	order := "total_penalty_days ASC"
	if desc {
		order = "total_penalty_days DESC"
	}
	items := make([]model.PenaltySummary, 0)
	err := s.selectAll(ctx, &items, qb.Select(
		"member_id", "count(*) AS penalties", "sum(penalty_days) AS total_penalty_days").
		From(penaltiesTableName).
		GroupBy("member_id").
		OrderBy(order, "member_id"), "PenaltySummary")
	return items, err
}

func (s *store) CreateSell(ctx context.Context, sell model.Sell) (model.Sell, error) {
	var ret struct {
		ID int64 `db:"id"`
	}
	err := s.get(ctx, &ret, qb.Insert(sellsTableName).
		Columns("book_id", "member_id", "qty", "price", "created_at").
		Values(sell.BookID, sell.MemberID, sell.Qty, sell.Price, sell.CreatedAt).
		Suffix("RETURNING id"), "CreateSell")
	if err != nil {
		return model.Sell{}, err
	}
	sell.ID = ret.ID
	return sell, nil
}

// CreatePayment stores the source as its kind discriminant plus the id of the sell or borrow row.
func (s *store) CreatePayment(ctx context.Context, p model.Payment) error {
	_, err := s.exec(ctx, qb.Insert(paymentsTableName).
		Columns("source_kind", "source_id", "book_id", "category_id", "member_id", "price", "created_at").
		Values(string(p.Source.Kind()), p.Source.ID(), p.BookID, p.CategoryID, p.MemberID, p.Price, p.CreatedAt),
		"CreatePayment")
	return err
}

func (s *store) RevenueByCategory(ctx context.Context) ([]model.RevenueSummary, error) {
	items := make([]model.RevenueSummary, 0)
	err := s.selectAll(ctx, &items, qb.Select("category_id", "sum(price) AS total_price").
		From(paymentsTableName).
		GroupBy("category_id").
		OrderBy("category_id"), "RevenueByCategory")
	return items, err
}

type paymentRow struct {
	ID         int64           `db:"id"`
	SourceKind string          `db:"source_kind"`
	SourceID   int64           `db:"source_id"`
	BookID     int64           `db:"book_id"`
	CategoryID int64           `db:"category_id"`
	MemberID   int64           `db:"member_id"`
	Price      decimal.Decimal `db:"price"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (s *store) ListPaymentsByMember(ctx context.Context, memberID int64) ([]model.Payment, error) {
	rows := make([]paymentRow, 0)
	err := s.selectAll(ctx, &rows, qb.Select(
		"id", "source_kind", "source_id", "book_id", "category_id", "member_id", "price", "created_at").
		From(paymentsTableName).
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("id"), "ListPaymentsByMember")
	if err != nil {
		return nil, err
	}
	out := make([]model.Payment, 0, len(rows))
	for _, r := range rows {
		src, err := model.ParsePaymentSource(r.SourceKind, r.SourceID)
		if err != nil {
			return nil, errors.Wrapf(err, "payment %d", r.ID)
		}
		out = append(out, model.Payment{
			ID:         r.ID,
			Source:     src,
			BookID:     r.BookID,
			CategoryID: r.CategoryID,
			MemberID:   r.MemberID,
			Price:      r.Price,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}
