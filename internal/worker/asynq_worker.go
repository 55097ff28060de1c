package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/logger"
	"github.com/mercadito-app/mercadito-api/internal/provider"
	"github.com/mercadito-app/mercadito-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer consumidor de tareas asíncronas
type Consumer struct {
	*provider.Container
}

// NewConsumer crea el consumidor
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registra los handlers de tareas
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCouponExpireSweep, c.handleCouponExpireSweep)
}

func (c *Consumer) handleCouponExpireSweep(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_coupon_sweep_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CouponExpireSweepPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_coupon_sweep_unmarshal_failed", "error", err)
		return err
	}
	if c.CouponAdminService == nil {
		logger.Warnw("worker_coupon_sweep_skip_service_nil")
		return nil
	}
	affected, err := c.CouponAdminService.DeactivateExpired(time.Now())
	if err != nil {
		logger.Warnw("worker_coupon_sweep_failed", "error", err)
		return err
	}
	if affected > 0 {
		logger.Infow("worker_coupon_sweep_done", "deactivated", affected)
	}
	return nil
}
