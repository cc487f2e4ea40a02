package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Store is the ledger every borrow, sale and accrual operation reads and writes.
type Store interface {
	GetBook(ctx context.Context, id int64) (model.Book, error)
	// GetBookForUpdate locks the book row, soft deleted rows included.
	GetBookForUpdate(ctx context.Context, id int64) (model.Book, error)
	UpdateBookBorrowQty(ctx context.Context, id int64, delta int) error
	UpdateBookSellQty(ctx context.Context, id int64, delta int) error
	ListBooksLowSellStock(ctx context.Context, below int) ([]model.Book, error)

	// GetCategory returns soft deleted rows too, active loans keep their category price.
	GetCategory(ctx context.Context, id int64) (model.Category, error)

	GetMember(ctx context.Context, id int64) (model.Member, error)
	GetMemberForUpdate(ctx context.Context, id int64) (model.Member, error)
	AdjustMemberBalance(ctx context.Context, id int64, delta decimal.Decimal) error
	ListMemberIDs(ctx context.Context) ([]int64, error)

	CreateBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error)
	GetBorrow(ctx context.Context, id int64) (model.Borrow, error)
	GetBorrowForUpdate(ctx context.Context, id int64) (model.Borrow, error)
	UpdateBorrow(ctx context.Context, b model.Borrow) error
	ListBorrowsByMember(ctx context.Context, memberID int64, q model.MemberBorrowsQuery) ([]model.Borrow, error)
	CountBorrows(ctx context.Context, f BorrowFilter) (int, error)
	ListActiveLoans(ctx context.Context, memberID int64) ([]model.ActiveLoan, error)

	CreateActivityLog(ctx context.Context, borrowID int64, status model.Status) error
	ListActivityLog(ctx context.Context, borrowID int64) ([]model.ActivityLog, error)

	CreatePenalty(ctx context.Context, p model.Penalty) error
	PenaltySummary(ctx context.Context, desc bool) ([]model.PenaltySummary, error)

	CreateSell(ctx context.Context, s model.Sell) (model.Sell, error)
	CreatePayment(ctx context.Context, p model.Payment) error
	ListPaymentsByMember(ctx context.Context, memberID int64) ([]model.Payment, error)
	RevenueByCategory(ctx context.Context) ([]model.RevenueSummary, error)

	ListStatuses(ctx context.Context) ([]model.StatusInfo, error)
}

type Repository interface {
	Store
	// WithTx runs fn in one transaction. fn's error rolls everything back.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

// BorrowFilter narrows CountBorrows. Zero fields do not filter.
type BorrowFilter struct {
	MemberID   int64
	BookID     int64
	CategoryID int64
	Statuses   []model.Status
	// delivery_date is null
	Undelivered bool
	// max_delivery_date <= DueBy
	DueBy *time.Time
	// start_date >= StartedSince
	StartedSince *time.Time
}

type dbtx interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type store struct {
	q   dbtx
	log *zap.Logger
}

type repository struct {
	*store
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	log = log.Named("repo")
	return &repository{
		store: &store{q: db, log: log},
		db:    db,
	}, nil
}

func (r *repository) WithTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.log.Error("rollback", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(ctx, &store{q: tx, log: r.log}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit tx")
	}
	return nil
}

const (
	booksTableName       = `books`
	categoriesTableName  = `categories`
	membersTableName     = `members`
	borrowsTableName     = `borrows`
	activityLogTableName = `borrow_activity_log`
	penaltiesTableName   = `penalties`
	sellsTableName       = `sells`
	paymentsTableName    = `payments`
	statusTableName      = `status`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	bookColumns     = []string{"id", "title", "category_id", "borrow_qty", "sell_qty", "sell_price", "is_deleted"}
	categoryColumns = []string{"id", "title", "borrow_limit", "borrow_price_per_day", "is_deleted"}
	memberColumns   = []string{"id", "full_name", "email", "balance", "is_staff", "is_deleted"}
	borrowColumns   = []string{
		"id", "book_id", "member_id", "staff_id", "status_id", "start_date", "max_delivery_date",
		"delivery_date", "borrow_price", "borrow_penalty_price", "total_price", "is_deleted", "created_at",
	}
)

// mapErr translates driver errors into the service taxonomy, everything else is wrapped as is.
func mapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		case pgerrcode.LockNotAvailable:
			return errors.Wrap(errs.ErrPreconditionFailed, "row is locked by another operation")
		}
	}
	return errors.Wrap(err, op)
}

func (s *store) get(ctx context.Context, dest interface{}, b sq.Sqlizer, op string) error {
	q, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if err := s.q.GetContext(ctx, dest, q, args...); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error(op, zap.String("q", q), zap.Any("args", args), zap.Error(err))
		}
		return mapErr(err, op)
	}
	return nil
}

func (s *store) selectAll(ctx context.Context, dest interface{}, b sq.SelectBuilder, op string) error {
	q, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if err := s.q.SelectContext(ctx, dest, q, args...); err != nil {
		s.log.Error(op, zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return mapErr(err, op)
	}
	return nil
}

func (s *store) exec(ctx context.Context, b sq.Sqlizer, op string) (int64, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, op)
	}
	res, err := s.q.ExecContext(ctx, q, args...)
	if err != nil {
		s.log.Error(op, zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return 0, mapErr(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, op)
	}
	return n, nil
}
