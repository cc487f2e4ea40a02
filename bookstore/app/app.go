package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/config"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/handler"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/scheduler"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/server"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/service"
	"github.com/Astemirdum/bookstore-service/bookstore/migrations"
	"github.com/Astemirdum/bookstore-service/pkg/circuit_breaker"
	"github.com/Astemirdum/bookstore-service/pkg/kafka"
	"github.com/Astemirdum/bookstore-service/pkg/logger"
	"github.com/Astemirdum/bookstore-service/pkg/middleware"
	"github.com/Astemirdum/bookstore-service/pkg/postgres"
	"github.com/IBM/sarama"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	cbRecordLength     = 10
	cbTimeout          = 10 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

type deps struct {
	log      *zap.Logger
	db       *sqlx.DB
	producer sarama.SyncProducer
	svc      *service.Service
}

func (d *deps) close() {
	if d.producer != nil {
		if err := d.producer.Close(); err != nil {
			d.log.Error("producer.Close", zap.Error(err))
		}
	}
	if err := d.db.Close(); err != nil {
		d.log.Error("db.Close", zap.Error(err))
	}
	_ = d.log.Sync()
}

func build(cfg *config.Config, name string) (*deps, error) {
	log := logger.NewLogger(cfg.Log, name)
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("repo init %v", err)
	}

	d := &deps{log: log, db: db}
	enqueuer := kafka.NewNoopEnqueuer()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Error("kafka producer, activity events are disabled", zap.Error(err))
		} else {
			d.producer = producer
			cb := circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests)
			enqueuer = kafka.NewEnqueuer(producer, cb)
		}
	}

	d.svc = service.NewService(repo, log,
		service.WithEnqueuer(enqueuer, cfg.Kafka.Topic),
		service.WithAccrualWorkers(cfg.Accrual.Workers),
	)
	return d, nil
}

// Run serves the HTTP API and runs the accrual sweep on its cron until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	d, err := build(cfg, "bookstore")
	if err != nil {
		return err
	}
	defer d.close()
	log := d.log

	sched, err := scheduler.New(cfg.Accrual.Cron, cfg.Accrual.Timeout, d.svc, log)
	if err != nil {
		return err
	}
	sched.Start()

	var authn echo.MiddlewareFunc = middleware.AuthContext
	if cfg.Auth.JWTKey != "" {
		authn = middleware.JwtAuthentication([]byte(cfg.Auth.JWTKey))
	}
	h := handler.New(d.svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(authn))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	sched.Stop()
	log.Info("Graceful shutdown finished")
	return nil
}

// RunAccrual runs the accrual sweep without the HTTP API: once, or on its cron until a signal.
func RunAccrual(cfg *config.Config, runOnce bool) error {
	d, err := build(cfg, "accrual")
	if err != nil {
		return err
	}
	defer d.close()

	sched, err := scheduler.New(cfg.Accrual.Cron, cfg.Accrual.Timeout, d.svc, d.log)
	if err != nil {
		return err
	}
	if runOnce {
		report, err := sched.RunOnce(context.Background())
		if err != nil {
			return err
		}
		d.log.Info("accrual done",
			zap.Int("members", report.Members),
			zap.Int("loans", report.Loans),
			zap.Int("failed", report.Failed),
			zap.String("total", report.Total.StringFixed(2)))
		return nil
	}

	sched.Start()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	d.log.Debug("stopping", zap.Any("signal", <-sig))
	sched.Stop()
	return nil
}
