package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewRepository(sqlx.NewDb(db, "sqlmock"), zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func TestRepository_GetBook(t *testing.T) {
	t.Parallel()
	query := regexp.QuoteMeta("SELECT id, title, category_id, borrow_qty, sell_qty, sell_price, is_deleted FROM books WHERE id = $1 AND is_deleted = $2")

	tests := []struct {
		name    string
		mock    func(m sqlmock.Sqlmock)
		want    model.Book
		wantErr error
	}{
		{
			name: "ok",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(int64(7), false).
					WillReturnRows(sqlmock.NewRows(bookColumns).
						AddRow(7, "Dune", 2, 3, 10, "15.50", false))
			},
			want: model.Book{
				ID: 7, Title: "Dune", CategoryID: 2, BorrowQty: 3, SellQty: 10,
				SellPrice: decimal.RequireFromString("15.50"),
			},
		},
		{
			name: "not found",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(int64(7), false).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.mock(mock)

			got, err := repo.GetBook(context.Background(), 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want.ID, got.ID)
				require.Equal(t, tt.want.Title, got.Title)
				require.Equal(t, tt.want.BorrowQty, got.BorrowQty)
				require.True(t, tt.want.SellPrice.Equal(got.SellPrice))
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetBookForUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(bookColumns).
			AddRow(3, "Old", 1, 1, 0, "0", true))

	got, err := repo.GetBookForUpdate(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, got.IsDeleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBookBorrowQty(t *testing.T) {
	t.Parallel()
	query := regexp.QuoteMeta("UPDATE books SET borrow_qty = borrow_qty + $1 WHERE id = $2 AND borrow_qty + $3 >= 0")

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "decremented", affected: 1},
		{name: "would go negative", affected: 0, wantErr: errs.ErrNotAvailable},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			mock.ExpectExec(query).
				WithArgs(-1, int64(5), -1).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdateBookBorrowQty(context.Background(), 5, -1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateBookSellQty_NotAvailable(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE books SET sell_qty = sell_qty + $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBookSellQty(context.Background(), 5, -2)
	require.ErrorIs(t, err, errs.ErrNotAvailableForSale)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountBorrows(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter BorrowFilter
		query  string
		args   []driver.Value
	}{
		{
			name: "member category committed",
			filter: BorrowFilter{
				MemberID:    4,
				CategoryID:  2,
				Statuses:    model.CommittedStatuses,
				Undelivered: true,
			},
			query: "SELECT count(*) FROM borrows b JOIN books bk ON bk.id = b.book_id " +
				"WHERE b.is_deleted = $1 AND b.member_id = $2 AND bk.category_id = $3 " +
				"AND b.status_id IN ($4,$5,$6) AND b.delivery_date IS NULL",
			args: []driver.Value{false, int64(4), int64(2), 5, 6, 7},
		},
		{
			name:   "overdue",
			filter: BorrowFilter{MemberID: 4, Undelivered: true, DueBy: &now},
			query: "SELECT count(*) FROM borrows b WHERE b.is_deleted = $1 AND b.member_id = $2 " +
				"AND b.delivery_date IS NULL AND b.max_delivery_date <= $3",
			args: []driver.Value{false, int64(4), now},
		},
		{
			name:   "recent demand",
			filter: BorrowFilter{BookID: 9, Statuses: model.CommittedStatuses, StartedSince: &now},
			query: "SELECT count(*) FROM borrows b WHERE b.is_deleted = $1 AND b.book_id = $2 " +
				"AND b.status_id IN ($3,$4,$5) AND b.start_date >= $6",
			args: []driver.Value{false, int64(9), 5, 6, 7, now},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

			n, err := repo.CountBorrows(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Equal(t, 2, n)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateBorrow(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO borrows (book_id,member_id,status_id,created_at) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs(int64(1), int64(2), 1, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	b, err := repo.CreateBorrow(context.Background(), model.Borrow{
		BookID: 1, MemberID: 2, StatusID: model.StatusRequested, CreatedAt: now,
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), b.ID)
	require.Equal(t, model.StatusRequested, b.StatusID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateBorrow_ForeignKey(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO borrows").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "borrows_book_id_fkey"})

	_, err := repo.CreateBorrow(context.Background(), model.Borrow{BookID: 1, MemberID: 2, StatusID: model.StatusRequested})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBorrowForUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	due := start.AddDate(0, 0, 14)
	mock.ExpectQuery(regexp.QuoteMeta("FROM borrows WHERE id = $1 AND is_deleted = $2 FOR UPDATE")).
		WithArgs(int64(3), false).
		WillReturnRows(sqlmock.NewRows(borrowColumns).
			AddRow(3, 1, 2, nil, 5, start, due, nil, nil, nil, nil, false, start))

	b, err := repo.GetBorrowForUpdate(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, b.StatusID)
	require.Nil(t, b.StaffID)
	require.False(t, b.TotalPrice.Valid)
	require.Equal(t, 14, b.LoanDays())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBorrow_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE borrows SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBorrow(context.Background(), model.Borrow{ID: 3, StatusID: model.StatusBorrowed})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListBorrowsByMember(t *testing.T) {
	t.Parallel()
	dune, two, five := "dune", 2, 5

	tests := []struct {
		name  string
		q     model.MemberBorrowsQuery
		query string
		args  []driver.Value
	}{
		{
			name:  "no filters",
			query: "FROM borrows b WHERE b.is_deleted = $1 AND b.member_id = $2 ORDER BY b.id DESC",
			args:  []driver.Value{false, int64(4)},
		},
		{
			name: "all filters",
			q: model.MemberBorrowsQuery{
				BookName:     dune,
				CategoryName: "sci",
				BorrowCount:  &two,
				BorrowQty:    &five,
			},
			query: "FROM borrows b JOIN books bk ON bk.id = b.book_id JOIN categories c ON c.id = bk.category_id " +
				"WHERE b.is_deleted = $1 AND b.member_id = $2 AND bk.title ILIKE $3 AND c.title ILIKE $4 " +
				"AND (SELECT count(*) FROM borrows x WHERE x.book_id = b.book_id AND x.member_id = b.member_id AND NOT x.is_deleted) = $5 " +
				"AND bk.borrow_qty = $6 ORDER BY b.id DESC",
			args: []driver.Value{false, int64(4), "%dune%", "%sci%", 2, 5},
		},
		{
			name:  "book quantity only",
			q:     model.MemberBorrowsQuery{BorrowQty: &five},
			query: "FROM borrows b JOIN books bk ON bk.id = b.book_id WHERE b.is_deleted = $1 AND b.member_id = $2 AND bk.borrow_qty = $3",
			args:  []driver.Value{false, int64(4), 5},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT b.id, b.book_id, b.member_id, ") + ".*" + regexp.QuoteMeta(tt.query)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(borrowColumns).
					AddRow(12, 1, 4, nil, 6, start, start.AddDate(0, 0, 7), nil, nil, nil, nil, false, start))

			borrows, err := repo.ListBorrowsByMember(context.Background(), 4, tt.q)
			require.NoError(t, err)
			require.Len(t, borrows, 1)
			require.Equal(t, int64(12), borrows[0].ID)
			require.Equal(t, model.StatusBorrowed, borrows[0].StatusID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListActiveLoans(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT b.id AS borrow_id, b.book_id, bk.category_id, c.borrow_price_per_day FROM borrows b " +
		"JOIN books bk ON bk.id = b.book_id JOIN categories c ON c.id = bk.category_id")).
		WillReturnRows(sqlmock.NewRows([]string{"borrow_id", "book_id", "category_id", "borrow_price_per_day"}).
			AddRow(1, 10, 2, "1.50").
			AddRow(4, 11, 3, "2.00"))

	loans, err := repo.ListActiveLoans(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	require.True(t, decimal.RequireFromString("1.50").Equal(loans[0].PricePerDay))
	require.Equal(t, int64(3), loans[1].CategoryID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreatePayment(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments (source_kind,source_id,book_id,category_id,member_id,price,created_at)")).
		WithArgs("Borrow", int64(12), int64(1), int64(2), int64(3), sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreatePayment(context.Background(), model.Payment{
		Source:     model.BorrowSource(12),
		BookID:     1,
		CategoryID: 2,
		MemberID:   3,
		Price:      decimal.RequireFromString("40.00"),
		CreatedAt:  now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListPaymentsByMember(t *testing.T) {
	t.Parallel()
	cols := []string{"id", "source_kind", "source_id", "book_id", "category_id", "member_id", "price", "created_at"}
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM payments WHERE member_id").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(1, "Sell", 5, 1, 2, 3, "30.00", now).
				AddRow(2, "Borrow", 9, 1, 2, 3, "4.00", now))

		got, err := repo.ListPaymentsByMember(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, model.SellSource(5), got[0].Source)
		require.Equal(t, model.BorrowSource(9), got[1].Source)
		require.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("unknown source", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM payments WHERE member_id").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "Gift", 5, 1, 2, 3, "30.00", now))

		_, err := repo.ListPaymentsByMember(context.Background(), 3)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_PenaltySummary_Order(t *testing.T) {
	t.Parallel()
	for _, desc := range []bool{true, false} {
		desc := desc
		order := "total_penalty_days ASC"
		if desc {
			order = "total_penalty_days DESC"
		}
		t.Run(order, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta("GROUP BY member_id ORDER BY " + order + ", member_id")).
				WillReturnRows(sqlmock.NewRows([]string{"member_id", "penalties", "total_penalty_days"}).
					AddRow(1, 2, 9))

			got, err := repo.PenaltySummary(context.Background(), desc)
			require.NoError(t, err)
			require.Equal(t, []model.PenaltySummary{{MemberID: 1, Penalties: 2, TotalPenaltyDays: 9}}, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_WithTx(t *testing.T) {
	t.Parallel()

	t.Run("commit", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO borrow_activity_log").
			WithArgs(int64(3), 5).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.WithTx(context.Background(), func(ctx context.Context, tx Store) error {
			return tx.CreateActivityLog(ctx, 3, model.StatusPending)
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on store failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO borrow_activity_log").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.WithTx(context.Background(), func(ctx context.Context, tx Store) error {
			return tx.CreateActivityLog(ctx, 3, model.StatusPending)
		})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock not available", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM borrows").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.LockNotAvailable})
		mock.ExpectRollback()

		err := repo.WithTx(context.Background(), func(ctx context.Context, tx Store) error {
			_, err := tx.GetBorrowForUpdate(ctx, 3)
			return err
		})
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
