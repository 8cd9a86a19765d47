package event

import (
	log "github.com/sirupsen/logrus"

	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

type Handler func(event domain.Event) error

// Dispatcher logs every event and fans it out to the handlers subscribed to its type.
type Dispatcher struct {
	logger   log.FieldLogger
	handlers map[string][]Handler
}

func NewDispatcher(logger log.FieldLogger) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		handlers: make(map[string][]Handler),
	}
}

// Subscribe must be called before the dispatcher is shared.
func (d *Dispatcher) Subscribe(eventType string, handler Handler) {
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *Dispatcher) Dispatch(event domain.Event) error {
	d.logger.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": event,
	}).Info("event dispatched")

	for _, handler := range d.handlers[event.Type()] {
		if err := handler(event); err != nil {
			d.logger.WithError(err).WithField("event", event.Type()).Error("event handler failed")
			return err
		}
	}
	return nil
}
