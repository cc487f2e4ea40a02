package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SourceKind string

const (
	SourceSell   SourceKind = "Sell"
	SourceBorrow SourceKind = "Borrow"
)

// PaymentSource names the record a payment was charged for: a sale or a borrow.
type PaymentSource struct {
	kind SourceKind
	id   int64
}

func SellSource(sellID int64) PaymentSource {
	return PaymentSource{kind: SourceSell, id: sellID}
}

func BorrowSource(borrowID int64) PaymentSource {
	return PaymentSource{kind: SourceBorrow, id: borrowID}
}

// ParsePaymentSource rebuilds a source from its persisted discriminant and id.
func ParsePaymentSource(kind string, id int64) (PaymentSource, error) {
	switch k := SourceKind(kind); k {
	case SourceSell, SourceBorrow:
		return PaymentSource{kind: k, id: id}, nil
	}
	return PaymentSource{}, fmt.Errorf("unknown payment source %q", kind)
}

func (s PaymentSource) Kind() SourceKind { return s.kind }
func (s PaymentSource) ID() int64        { return s.id }

func (s PaymentSource) String() string {
	return fmt.Sprintf("%s(%d)", s.kind, s.id)
}

func (s PaymentSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind SourceKind `json:"kind"`
		ID   int64      `json:"id"`
	}{s.kind, s.id})
}

type Payment struct {
	ID         int64           `json:"id"`
	Source     PaymentSource   `json:"source"`
	BookID     int64           `json:"bookId"`
	CategoryID int64           `json:"categoryId"`
	MemberID   int64           `json:"memberId"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"createdAt"`
}
