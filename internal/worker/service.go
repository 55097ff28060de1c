package worker

import (
	"context"
	"errors"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/config"
	"github.com/mercadito-app/mercadito-api/internal/logger"
	"github.com/mercadito-app/mercadito-api/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	couponSweepInterval = time.Hour
)

// Service servicio de cola asíncrona
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService crea el servicio de cola
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name nombre del servicio
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start arranca el servicio
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.QueueClient != nil {
		go s.runCouponSweepLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop detiene el servicio
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runCouponSweepLoop encola un barrido de cupones vencidos al arrancar y
// después una vez por hora
func (s *Service) runCouponSweepLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.QueueClient == nil {
		return
	}
	runOnce := func() {
		if err := s.consumer.QueueClient.EnqueueCouponExpireSweep(); err != nil {
			logger.Warnw("worker_coupon_sweep_enqueue_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(couponSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
