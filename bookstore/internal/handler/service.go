package handler

import (
	"context"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BorrowService interface {
	SubmitBorrow(ctx context.Context, memberID int64, req model.BorrowRequest) (model.Borrow, error)
	LendBorrow(ctx context.Context, borrowID, staffID int64) (model.Borrow, error)
	DeliverBorrow(ctx context.Context, borrowID, staffID int64) (model.Borrow, error)
	GetBorrowDetails(ctx context.Context, borrowID int64) (model.BorrowDetails, error)
	ListMemberBorrows(ctx context.Context, memberID int64, q model.MemberBorrowsQuery) ([]model.Borrow, error)
	ListMemberPayments(ctx context.Context, memberID int64) ([]model.Payment, error)
	ListStatuses(ctx context.Context) ([]model.StatusInfo, error)
	SellBook(ctx context.Context, memberID, bookID int64, req model.SellRequest) (model.SellResponse, error)
	RevenueSummary(ctx context.Context) ([]model.RevenueSummary, error)
	PenaltySummary(ctx context.Context, desc bool) ([]model.PenaltySummary, error)
	LowStockBooks(ctx context.Context) ([]model.Book, error)
}

var _ BorrowService = (*service.Service)(nil)
