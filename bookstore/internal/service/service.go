package service

import (
	"context"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/Astemirdum/bookstore-service/pkg/clock"
	"github.com/Astemirdum/bookstore-service/pkg/kafka"
	"go.uber.org/zap"
)

const (
	defaultAccrualWorkers = 8
	// LowSellStock is the sell_qty below which a book shows up in the restock report.
	LowSellStock = 30
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	clock    clock.Clock
	enqueuer kafka.Enqueuer
	topic    string
	workers  int
}

type Option func(s *Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithEnqueuer publishes every committed borrow transition to topic.
func WithEnqueuer(e kafka.Enqueuer, topic string) Option {
	return func(s *Service) {
		s.enqueuer = e
		s.topic = topic
	}
}

func WithAccrualWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		clock:    clock.New(),
		enqueuer: kafka.NewNoopEnqueuer(),
		topic:    kafka.BorrowActivityTopic,
		workers:  defaultAccrualWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetBorrowDetails(ctx context.Context, borrowID int64) (model.BorrowDetails, error) {
	borrow, err := s.repo.GetBorrow(ctx, borrowID)
	if err != nil {
		return model.BorrowDetails{}, err
	}
	activity, err := s.repo.ListActivityLog(ctx, borrowID)
	if err != nil {
		return model.BorrowDetails{}, err
	}
	return model.BorrowDetails{Borrow: borrow, Activity: activity}, nil
}

func (s *Service) ListMemberBorrows(ctx context.Context, memberID int64, q model.MemberBorrowsQuery) ([]model.Borrow, error) {
	return s.repo.ListBorrowsByMember(ctx, memberID, q)
}

func (s *Service) ListMemberPayments(ctx context.Context, memberID int64) ([]model.Payment, error) {
	return s.repo.ListPaymentsByMember(ctx, memberID)
}

func (s *Service) ListStatuses(ctx context.Context) ([]model.StatusInfo, error) {
	return s.repo.ListStatuses(ctx)
}

func (s *Service) RevenueSummary(ctx context.Context) ([]model.RevenueSummary, error) {
	return s.repo.RevenueByCategory(ctx)
}

func (s *Service) PenaltySummary(ctx context.Context, desc bool) ([]model.PenaltySummary, error) {
	return s.repo.PenaltySummary(ctx, desc)
}

func (s *Service) LowStockBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooksLowSellStock(ctx, LowSellStock)
}
