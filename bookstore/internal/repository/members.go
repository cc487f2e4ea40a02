package repository

import (
	"context"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

func (s *store) GetMember(ctx context.Context, id int64) (model.Member, error) {
	var m model.Member
	err := s.get(ctx, &m, qb.Select(memberColumns...).
		From(membersTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}), "GetMember")
	return m, err
}

func (s *store) GetMemberForUpdate(ctx context.Context, id int64) (model.Member, error) {
	var m model.Member
	err := s.get(ctx, &m, qb.Select(memberColumns...).
		From(membersTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("FOR UPDATE"), "GetMemberForUpdate")
	return m, err
}

// AdjustMemberBalance adds delta to the balance. The balance may go negative, callers guard sales.
func (s *store) AdjustMemberBalance(ctx context.Context, id int64, delta decimal.Decimal) error {
	n, err := s.exec(ctx, qb.Update(membersTableName).
		Set("balance", sq.Expr("balance + ?", delta)).
		Where(sq.Eq{"id": id, "is_deleted": false}), "AdjustMemberBalance")
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *store) ListMemberIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0)
	err := s.selectAll(ctx, &ids, qb.Select("id").
		From(membersTableName).
		Where(sq.Eq{"is_deleted": false, "is_staff": false}).
		OrderBy("id"), "ListMemberIDs")
	return ids, err
}
