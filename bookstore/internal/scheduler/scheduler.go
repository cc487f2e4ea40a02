package scheduler

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Accruer interface {
	AccrueDailyCosts(ctx context.Context) (model.AccrualReport, error)
}

// Scheduler runs the accrual sweep on a cron spec with seconds precision, in UTC.
type Scheduler struct {
	cron    *cron.Cron
	accruer Accruer
	timeout time.Duration
	log     *zap.Logger
}

func New(spec string, timeout time.Duration, accruer Accruer, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		accruer: accruer,
		timeout: timeout,
		log:     log.Named("scheduler"),
	}
	if _, err := s.cron.AddFunc(spec, s.runAccrual); err != nil {
		return nil, errors.Wrapf(err, "register accrual job %q", spec)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("cron scheduler started")
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("cron scheduler stopped")
}

// RunOnce runs one sweep outside of the cron schedule.
func (s *Scheduler) RunOnce(ctx context.Context) (model.AccrualReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.accruer.AccrueDailyCosts(ctx)
}

func (s *Scheduler) runAccrual() {
	s.runWithRecovery("accrual", func() {
		report, err := s.RunOnce(context.Background())
		if err != nil {
			s.log.Error("accrual sweep", zap.Error(err))
			return
		}
		if report.Failed > 0 {
			s.log.Warn("accrual sweep finished with failures",
				zap.Int("failed", report.Failed),
				zap.Int("members", report.Members))
		}
	})
}

func (s *Scheduler) runWithRecovery(job string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("job panicked", zap.String("job", job), zap.Any("panic", r), zap.Stack("stack"))
		}
	}()
	start := time.Now()
	fn()
	s.log.Info("job finished", zap.String("job", job), zap.Duration("took", time.Since(start)))
}
