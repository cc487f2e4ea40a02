package model

import "fmt"

// Status ids are persisted and consumed by reporting, never renumber them.
type Status int

const (
	StatusRequested Status = iota + 1
	StatusRejectedCategoryLimit
	StatusRejectedPendingReturn
	StatusRejectedInsufficientBalance
	StatusPending
	StatusBorrowed
	StatusDelivered
)

var statusTitles = map[Status]string{
	StatusRequested:                   "Requested",
	StatusRejectedCategoryLimit:       "Category borrow limit reached",
	StatusRejectedPendingReturn:       "Pending return of a borrowed book",
	StatusRejectedInsufficientBalance: "Insufficient balance",
	StatusPending:                     "Pending",
	StatusBorrowed:                    "Borrowed",
	StatusDelivered:                   "Delivered",
}

// CommittedStatuses are the statuses in which a copy counts against category limits and demand.
var CommittedStatuses = []Status{StatusPending, StatusBorrowed, StatusDelivered}

func Statuses() []Status {
	return []Status{
		StatusRequested,
		StatusRejectedCategoryLimit,
		StatusRejectedPendingReturn,
		StatusRejectedInsufficientBalance,
		StatusPending,
		StatusBorrowed,
		StatusDelivered,
	}
}

func (s Status) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

func (s Status) Title() string {
	if t, ok := statusTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) String() string {
	return s.Title()
}

func (s Status) IsRejected() bool {
	return s >= StatusRejectedCategoryLimit && s <= StatusRejectedInsufficientBalance
}

func (s Status) IsTerminal() bool {
	return s.IsRejected() || s == StatusDelivered
}

type Event int

const (
	EventRejectCategoryLimit Event = iota + 1
	EventRejectPendingReturn
	EventRejectInsufficientBalance
	EventApprove
	EventLend
	EventDeliver
)

func (e Event) String() string {
	switch e {
	case EventRejectCategoryLimit:
		return "reject (category limit)"
	case EventRejectPendingReturn:
		return "reject (pending return)"
	case EventRejectInsufficientBalance:
		return "reject (insufficient balance)"
	case EventApprove:
		return "approve"
	case EventLend:
		return "lend"
	case EventDeliver:
		return "deliver"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Rejections accumulate on the same borrow, so a later rejection may follow an earlier one.
var transitions = map[Status]map[Event]Status{
	StatusRequested: {
		EventRejectCategoryLimit:       StatusRejectedCategoryLimit,
		EventRejectPendingReturn:       StatusRejectedPendingReturn,
		EventRejectInsufficientBalance: StatusRejectedInsufficientBalance,
		EventApprove:                   StatusPending,
	},
	StatusRejectedCategoryLimit: {
		EventRejectPendingReturn:       StatusRejectedPendingReturn,
		EventRejectInsufficientBalance: StatusRejectedInsufficientBalance,
	},
	StatusRejectedPendingReturn: {
		EventRejectInsufficientBalance: StatusRejectedInsufficientBalance,
	},
	StatusPending: {
		EventLend:    StatusBorrowed,
		EventDeliver: StatusDelivered,
	},
	StatusBorrowed: {
		EventDeliver: StatusDelivered,
	},
}

// Transition reports the status reached by applying e in from.
func Transition(from Status, e Event) (Status, bool) {
	to, ok := transitions[from][e]
	return to, ok
}

type StatusInfo struct {
	ID    Status `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}
