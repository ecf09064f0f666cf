package reload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

type Reloader interface {
	Reload() error
	Path() string
}

type Service struct {
	scd       gocron.Scheduler
	ctxCancel context.CancelFunc
	reloader  Reloader
	interval  time.Duration
}

func (s *Service) reload(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if err := s.reloader.Reload(); err != nil {
		zap.L().Error("failed to reload phrases, keeping previous ones",
			zap.String("path", s.reloader.Path()),
			zap.Error(err),
		)

		return
	}

	zap.L().Debug("phrases reloaded", zap.String("path", s.reloader.Path()))
}

func (s *Service) Start(ctx context.Context) error {
	if s.scd != nil {
		return errors.New("reload has been already started")
	}

	if s.interval <= 0 {
		return fmt.Errorf("invalid reload interval: %s", s.interval)
	}

	scd, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create reload scheduler: %w", err)
	}

	serviceCtx, cancel := context.WithCancel(ctx)

	job, err := scd.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.reload, serviceCtx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		scd.Shutdown()

		return fmt.Errorf("failed to create reload job: %w", err)
	}

	s.scd = scd
	s.ctxCancel = cancel

	scd.Start()

	zap.L().Info("phrases reload scheduled",
		zap.String("job_id", job.ID().String()),
		zap.String("path", s.reloader.Path()),
		zap.Duration("interval", s.interval),
	)

	return nil
}

func (s *Service) Stop() error {
	if s.scd == nil && s.ctxCancel == nil {
		return errors.New("service is not started")
	}

	s.ctxCancel()

	if err := s.scd.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown reload scheduler: %w", err)
	}

	s.scd = nil
	s.ctxCancel = nil

	return nil
}

func NewService(reloader Reloader, interval time.Duration) *Service {
	return &Service{
		reloader: reloader,
		interval: interval,
	}
}
