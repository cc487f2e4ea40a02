package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var errStore = errors.New("store is down")

// ledger is an in-memory database. Transactions run on a clone that replaces the
// committed state only when fn succeeds.
type ledger struct {
	nextID     int64
	books      map[int64]model.Book
	categories map[int64]model.Category
	members    map[int64]model.Member
	borrows    map[int64]model.Borrow
	activity   []model.ActivityLog
	penalties  []model.Penalty
	sells      []model.Sell
	payments   []model.Payment
}

func newLedger() *ledger {
	return &ledger{
		books:      map[int64]model.Book{},
		categories: map[int64]model.Category{},
		members:    map[int64]model.Member{},
		borrows:    map[int64]model.Borrow{},
	}
}

func (l *ledger) clone() *ledger {
	c := &ledger{
		nextID:     l.nextID,
		books:      make(map[int64]model.Book, len(l.books)),
		categories: make(map[int64]model.Category, len(l.categories)),
		members:    make(map[int64]model.Member, len(l.members)),
		borrows:    make(map[int64]model.Borrow, len(l.borrows)),
		activity:   append([]model.ActivityLog(nil), l.activity...),
		penalties:  append([]model.Penalty(nil), l.penalties...),
		sells:      append([]model.Sell(nil), l.sells...),
		payments:   append([]model.Payment(nil), l.payments...),
	}
	for k, v := range l.books {
		c.books[k] = v
	}
	for k, v := range l.categories {
		c.categories[k] = v
	}
	for k, v := range l.members {
		c.members[k] = v
	}
	for k, v := range l.borrows {
		c.borrows[k] = v
	}
	return c
}

func (l *ledger) id() int64 {
	l.nextID++
	return l.nextID
}

// faultFunc lets a test fail a single store call: op is the method name, id its main argument.
type faultFunc func(op string, id int64) error

type fakeStore struct {
	l     *ledger
	fault faultFunc
}

func (s *fakeStore) check(op string, id int64) error {
	if s.fault == nil {
		return nil
	}
	return s.fault(op, id)
}

type fakeRepo struct {
	*fakeStore
	mu sync.Mutex
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{fakeStore: &fakeStore{l: newLedger()}}
}

var _ repository.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) WithTx(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	work := r.l.clone()
	if err := fn(ctx, &fakeStore{l: work, fault: r.fault}); err != nil {
		return err
	}
	*r.l = *work
	return nil
}

func (r *fakeRepo) addCategory(c model.Category) model.Category {
	c.ID = r.l.id()
	r.l.categories[c.ID] = c
	return c
}

func (r *fakeRepo) addBook(b model.Book) model.Book {
	b.ID = r.l.id()
	r.l.books[b.ID] = b
	return b
}

func (r *fakeRepo) addMember(m model.Member) model.Member {
	m.ID = r.l.id()
	r.l.members[m.ID] = m
	return m
}

func (r *fakeRepo) addBorrow(b model.Borrow) model.Borrow {
	b.ID = r.l.id()
	r.l.borrows[b.ID] = b
	return b
}

func (r *fakeRepo) activityOf(borrowID int64) []model.Status {
	var out []model.Status
	for _, a := range r.l.activity {
		if a.BorrowID == borrowID {
			out = append(out, a.StatusID)
		}
	}
	return out
}

func (s *fakeStore) GetBook(_ context.Context, id int64) (model.Book, error) {
	b, ok := s.l.books[id]
	if !ok || b.IsDeleted {
		return model.Book{}, errs.ErrNotFound
	}
	return b, nil
}

func (s *fakeStore) GetBookForUpdate(_ context.Context, id int64) (model.Book, error) {
	b, ok := s.l.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return b, nil
}

func (s *fakeStore) UpdateBookBorrowQty(_ context.Context, id int64, delta int) error {
	if err := s.check("UpdateBookBorrowQty", id); err != nil {
		return err
	}
	b := s.l.books[id]
	if b.BorrowQty+delta < 0 {
		return errs.ErrNotAvailable
	}
	b.BorrowQty += delta
	s.l.books[id] = b
	return nil
}

func (s *fakeStore) UpdateBookSellQty(_ context.Context, id int64, delta int) error {
	b := s.l.books[id]
	if b.SellQty+delta < 0 {
		return errs.ErrNotAvailableForSale
	}
	b.SellQty += delta
	s.l.books[id] = b
	return nil
}

func (s *fakeStore) ListBooksLowSellStock(_ context.Context, below int) ([]model.Book, error) {
	out := make([]model.Book, 0)
	for _, b := range s.l.books {
		if !b.IsDeleted && b.SellQty < below {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) GetCategory(_ context.Context, id int64) (model.Category, error) {
	c, ok := s.l.categories[id]
	if !ok {
		return model.Category{}, errs.ErrNotFound
	}
	return c, nil
}

func (s *fakeStore) GetMember(_ context.Context, id int64) (model.Member, error) {
	m, ok := s.l.members[id]
	if !ok || m.IsDeleted {
		return model.Member{}, errs.ErrNotFound
	}
	return m, nil
}

func (s *fakeStore) GetMemberForUpdate(ctx context.Context, id int64) (model.Member, error) {
	if err := s.check("GetMemberForUpdate", id); err != nil {
		return model.Member{}, err
	}
	return s.GetMember(ctx, id)
}

func (s *fakeStore) AdjustMemberBalance(_ context.Context, id int64, delta decimal.Decimal) error {
	m, ok := s.l.members[id]
	if !ok || m.IsDeleted {
		return errs.ErrNotFound
	}
	m.Balance = m.Balance.Add(delta)
	s.l.members[id] = m
	return nil
}

func (s *fakeStore) ListMemberIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0)
	for id, m := range s.l.members {
		if !m.IsDeleted && !m.IsStaff {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *fakeStore) CreateBorrow(_ context.Context, b model.Borrow) (model.Borrow, error) {
	b.ID = s.l.id()
	s.l.borrows[b.ID] = b
	return b, nil
}

func (s *fakeStore) GetBorrow(_ context.Context, id int64) (model.Borrow, error) {
	b, ok := s.l.borrows[id]
	if !ok || b.IsDeleted {
		return model.Borrow{}, errs.ErrNotFound
	}
	return b, nil
}

func (s *fakeStore) GetBorrowForUpdate(ctx context.Context, id int64) (model.Borrow, error) {
	return s.GetBorrow(ctx, id)
}

func (s *fakeStore) UpdateBorrow(_ context.Context, b model.Borrow) error {
	cur, ok := s.l.borrows[b.ID]
	if !ok || cur.IsDeleted {
		return errs.ErrNotFound
	}
	s.l.borrows[b.ID] = b
	return nil
}

func (s *fakeStore) ListBorrowsByMember(_ context.Context, memberID int64, q model.MemberBorrowsQuery) ([]model.Borrow, error) {
	times := map[int64]int{}
	for _, b := range s.l.borrows {
		if b.MemberID == memberID && !b.IsDeleted {
			times[b.BookID]++
		}
	}
	out := make([]model.Borrow, 0)
	for _, b := range s.l.borrows {
		if b.MemberID != memberID || b.IsDeleted {
			continue
		}
		book := s.l.books[b.BookID]
		if q.BookName != "" && !containsFold(book.Title, q.BookName) {
			continue
		}
		if q.CategoryName != "" && !containsFold(s.l.categories[book.CategoryID].Title, q.CategoryName) {
			continue
		}
		if q.BorrowCount != nil && times[b.BookID] != *q.BorrowCount {
			continue
		}
		if q.BorrowQty != nil && book.BorrowQty != *q.BorrowQty {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *fakeStore) CountBorrows(_ context.Context, f repository.BorrowFilter) (int, error) {
	n := 0
	for _, b := range s.l.borrows {
		if b.IsDeleted {
			continue
		}
		if f.MemberID != 0 && b.MemberID != f.MemberID {
			continue
		}
		if f.BookID != 0 && b.BookID != f.BookID {
			continue
		}
		if f.CategoryID != 0 && s.l.books[b.BookID].CategoryID != f.CategoryID {
			continue
		}
		if len(f.Statuses) > 0 && !hasStatus(f.Statuses, b.StatusID) {
			continue
		}
		if f.Undelivered && b.DeliveryDate != nil {
			continue
		}
		if f.DueBy != nil && (b.MaxDeliveryDate == nil || b.MaxDeliveryDate.After(*f.DueBy)) {
			continue
		}
		if f.StartedSince != nil && (b.StartDate == nil || b.StartDate.Before(*f.StartedSince)) {
			continue
		}
		n++
	}
	return n, nil
}

func hasStatus(in []model.Status, st model.Status) bool {
	for _, s := range in {
		if s == st {
			return true
		}
	}
	return false
}

func (s *fakeStore) ListActiveLoans(_ context.Context, memberID int64) ([]model.ActiveLoan, error) {
	if err := s.check("ListActiveLoans", memberID); err != nil {
		return nil, err
	}
	out := make([]model.ActiveLoan, 0)
	for _, b := range s.l.borrows {
		if b.MemberID != memberID || b.IsDeleted || b.StatusID != model.StatusBorrowed || b.DeliveryDate != nil {
			continue
		}
		book := s.l.books[b.BookID]
		out = append(out, model.ActiveLoan{
			BorrowID:    b.ID,
			BookID:      b.BookID,
			CategoryID:  book.CategoryID,
			PricePerDay: s.l.categories[book.CategoryID].BorrowPricePerDay,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BorrowID < out[j].BorrowID })
	return out, nil
}

func (s *fakeStore) CreateActivityLog(_ context.Context, borrowID int64, status model.Status) error {
	if err := s.check("CreateActivityLog", borrowID); err != nil {
		return err
	}
	s.l.activity = append(s.l.activity, model.ActivityLog{ID: s.l.id(), BorrowID: borrowID, StatusID: status})
	return nil
}

func (s *fakeStore) ListActivityLog(_ context.Context, borrowID int64) ([]model.ActivityLog, error) {
	out := make([]model.ActivityLog, 0)
	for _, a := range s.l.activity {
		if a.BorrowID == borrowID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeStore) CreatePenalty(_ context.Context, p model.Penalty) error {
	p.ID = s.l.id()
	s.l.penalties = append(s.l.penalties, p)
	return nil
}

func (s *fakeStore) PenaltySummary(_ context.Context, desc bool) ([]model.PenaltySummary, error) {
	byMember := map[int64]*model.PenaltySummary{}
	for _, p := range s.l.penalties {
		sum, ok := byMember[p.MemberID]
		if !ok {
			sum = &model.PenaltySummary{MemberID: p.MemberID}
			byMember[p.MemberID] = sum
		}
		sum.Penalties++
		sum.TotalPenaltyDays += p.PenaltyDays
	}
	out := make([]model.PenaltySummary, 0, len(byMember))
	for _, v := range byMember {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPenaltyDays != out[j].TotalPenaltyDays {
			if desc {
				return out[i].TotalPenaltyDays > out[j].TotalPenaltyDays
			}
			return out[i].TotalPenaltyDays < out[j].TotalPenaltyDays
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out, nil
}

func (s *fakeStore) CreateSell(_ context.Context, sell model.Sell) (model.Sell, error) {
	sell.ID = s.l.id()
	s.l.sells = append(s.l.sells, sell)
	return sell, nil
}

func (s *fakeStore) CreatePayment(_ context.Context, p model.Payment) error {
	if err := s.check("CreatePayment", p.MemberID); err != nil {
		return err
	}
	p.ID = s.l.id()
	s.l.payments = append(s.l.payments, p)
	return nil
}

func (s *fakeStore) ListPaymentsByMember(_ context.Context, memberID int64) ([]model.Payment, error) {
	out := make([]model.Payment, 0)
	for _, p := range s.l.payments {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeStore) RevenueByCategory(_ context.Context) ([]model.RevenueSummary, error) {
	byCategory := map[int64]decimal.Decimal{}
	for _, p := range s.l.payments {
		byCategory[p.CategoryID] = byCategory[p.CategoryID].Add(p.Price)
	}
	out := make([]model.RevenueSummary, 0, len(byCategory))
	for id, total := range byCategory {
		out = append(out, model.RevenueSummary{CategoryID: id, TotalPrice: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

func (s *fakeStore) ListStatuses(_ context.Context) ([]model.StatusInfo, error) {
	out := make([]model.StatusInfo, 0, len(model.Statuses()))
	for _, st := range model.Statuses() {
		out = append(out, model.StatusInfo{ID: st, Title: st.Title()})
	}
	return out, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
