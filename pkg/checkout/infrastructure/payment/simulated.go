package payment

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
)

// SimulatedProcessor stands in for a payment gateway: it waits a fixed delay
// and always succeeds unless ctx ends first.
type SimulatedProcessor struct {
	delay  time.Duration
	logger log.FieldLogger
}

func NewSimulatedProcessor(delay time.Duration, logger log.FieldLogger) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay, logger: logger}
}

func (p *SimulatedProcessor) Process(ctx context.Context, order *model.Order) error {
	p.logger.WithFields(log.Fields{
		"order": order.ID,
		"total": order.Total.StringFixed(2),
		"delay": p.delay,
	}).Info("processing payment")

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
