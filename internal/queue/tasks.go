package queue

import (
	"encoding/json"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCouponExpireSweep barrido de cupones vencidos
	TaskCouponExpireSweep = constants.TaskCouponExpireSweep
)

// CouponExpireSweepPayload carga del barrido de cupones vencidos
type CouponExpireSweepPayload struct {
	RequestedAt time.Time `json:"requested_at"`
}

// NewCouponExpireSweepTask crea la tarea de barrido de cupones
func NewCouponExpireSweepTask(payload CouponExpireSweepPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCouponExpireSweep, body), nil
}
