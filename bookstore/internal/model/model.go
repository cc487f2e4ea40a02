package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID                int64           `json:"id" db:"id"`
	Title             string          `json:"title" db:"title"`
	BorrowLimit       int             `json:"borrowLimit" db:"borrow_limit"`
	BorrowPricePerDay decimal.Decimal `json:"borrowPricePerDay" db:"borrow_price_per_day"`
	IsDeleted         bool            `json:"-" db:"is_deleted"`
}

type Book struct {
	ID         int64           `json:"id" db:"id"`
	Title      string          `json:"title" db:"title"`
	CategoryID int64           `json:"categoryId" db:"category_id"`
	BorrowQty  int             `json:"borrowQty" db:"borrow_qty"`
	SellQty    int             `json:"sellQty" db:"sell_qty"`
	SellPrice  decimal.Decimal `json:"sellPrice" db:"sell_price"`
	IsDeleted  bool            `json:"-" db:"is_deleted"`
}

type Member struct {
	ID        int64           `json:"id" db:"id"`
	FullName  string          `json:"fullName" db:"full_name"`
	Email     string          `json:"email" db:"email"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	IsStaff   bool            `json:"isStaff" db:"is_staff"`
	IsDeleted bool            `json:"-" db:"is_deleted"`
}

type Borrow struct {
	ID                 int64               `json:"id" db:"id"`
	BookID             int64               `json:"bookId" db:"book_id"`
	MemberID           int64               `json:"memberId" db:"member_id"`
	StaffID            *int64              `json:"staffId" db:"staff_id"`
	StatusID           Status              `json:"statusId" db:"status_id"`
	StartDate          *time.Time          `json:"startDate" db:"start_date"`
	MaxDeliveryDate    *time.Time          `json:"maxDeliveryDate" db:"max_delivery_date"`
	DeliveryDate       *time.Time          `json:"deliveryDate" db:"delivery_date"`
	BorrowPrice        decimal.NullDecimal `json:"borrowPrice" db:"borrow_price"`
	BorrowPenaltyPrice decimal.NullDecimal `json:"borrowPenaltyPrice" db:"borrow_penalty_price"`
	TotalPrice         decimal.NullDecimal `json:"totalPrice" db:"total_price"`
	IsDeleted          bool                `json:"-" db:"is_deleted"`
	CreatedAt          time.Time           `json:"createdAt" db:"created_at"`
}

// LoanDays is the granted loan length, zero until the borrow is approved.
func (b Borrow) LoanDays() int {
	if b.StartDate == nil || b.MaxDeliveryDate == nil {
		return 0
	}
	return int(b.MaxDeliveryDate.Sub(*b.StartDate) / (24 * time.Hour))
}

type ActivityLog struct {
	ID        int64     `json:"id" db:"id"`
	BorrowID  int64     `json:"borrowId" db:"borrow_id"`
	StatusID  Status    `json:"statusId" db:"status_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Penalty struct {
	ID          int64 `json:"id" db:"id"`
	MemberID    int64 `json:"memberId" db:"member_id"`
	BorrowID    int64 `json:"borrowId" db:"borrow_id"`
	PenaltyDays int   `json:"penaltyDays" db:"penalty_days"`
}

type Sell struct {
	ID        int64           `json:"id" db:"id"`
	BookID    int64           `json:"bookId" db:"book_id"`
	MemberID  int64           `json:"memberId" db:"member_id"`
	Qty       int             `json:"qty" db:"qty"`
	Price     decimal.Decimal `json:"price" db:"price"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// ActiveLoan is a lent borrow joined with the per day price of its category.
type ActiveLoan struct {
	BorrowID    int64           `db:"borrow_id"`
	BookID      int64           `db:"book_id"`
	CategoryID  int64           `db:"category_id"`
	PricePerDay decimal.Decimal `db:"borrow_price_per_day"`
}

type BorrowDetails struct {
	Borrow   Borrow        `json:"borrow"`
	Activity []ActivityLog `json:"activity"`
}

type BorrowResponse struct {
	Borrow
	StatusTitle string `json:"status"`
	BorrowDays  int    `json:"borrowDays"`
}

func NewBorrowResponse(b Borrow) BorrowResponse {
	return BorrowResponse{
		Borrow:      b,
		StatusTitle: b.StatusID.Title(),
		BorrowDays:  b.LoanDays(),
	}
}

type BorrowRequest struct {
	BookID        int64 `json:"bookId" validate:"required,gt=0"`
	RequestedDays *int  `json:"requestedDays" validate:"omitempty,gt=0,lte=365"`
}

// MemberBorrowsQuery narrows a member's borrow listing. Zero fields do not filter.
type MemberBorrowsQuery struct {
	// case insensitive substring of the book title
	BookName string
	// case insensitive substring of the category title
	CategoryName string
	// times the member has borrowed the same book
	BorrowCount *int
	// copies of the book currently on the lending shelf
	BorrowQty *int
}

type SellRequest struct {
	Qty int `json:"qty" validate:"required,gte=1"`
}

type SellResponse struct {
	BookName   string          `json:"bookName"`
	Qty        int             `json:"qty"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Message    string          `json:"message"`
}

type RevenueSummary struct {
	CategoryID int64           `json:"categoryId" db:"category_id"`
	TotalPrice decimal.Decimal `json:"totalPrice" db:"total_price"`
}

type PenaltySummary struct {
	MemberID         int64 `json:"memberId" db:"member_id"`
	Penalties        int   `json:"penalties" db:"penalties"`
	TotalPenaltyDays int   `json:"totalPenaltyDays" db:"total_penalty_days"`
}

type AccrualReport struct {
	Members int             `json:"members"`
	Loans   int             `json:"loans"`
	Failed  int             `json:"failed"`
	Total   decimal.Decimal `json:"total"`
}
