package service

import (
	"strconv"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActivityEvent mirrors one borrow_activity_log row for downstream consumers.
type ActivityEvent struct {
	EventID  string       `json:"event_id"`
	BorrowID int64        `json:"borrow_id"`
	StatusID model.Status `json:"status_id"`
	Status   string       `json:"status"`
	At       time.Time    `json:"at"`
}

type trail []ActivityEvent

func (t *trail) record(borrowID int64, st model.Status, at time.Time) {
	*t = append(*t, ActivityEvent{
		EventID:  uuid.NewString(),
		BorrowID: borrowID,
		StatusID: st,
		Status:   st.Title(),
		At:       at,
	})
}

// publish runs after commit. Events are keyed by borrow id so one borrow stays on one partition.
func (s *Service) publish(events trail) {
	for _, ev := range events {
		key := strconv.FormatInt(ev.BorrowID, 10)
		if err := s.enqueuer.Enqueue(s.topic, key, ev); err != nil {
			s.log.Warn("publish activity event",
				zap.Int64("borrow_id", ev.BorrowID),
				zap.Stringer("status", ev.StatusID),
				zap.Error(err))
		}
	}
}
