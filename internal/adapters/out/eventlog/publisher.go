// Package eventlog provides a structured-log implementation of the event
// publisher port. Status change notifications in this system are operational
// signals for agents, not integration events, so writing them to the log
// stream is the whole delivery mechanism.
package eventlog

import (
	"context"

	"github.com/rs/zerolog"

	"partsflow/internal/core/domain/model/order"
)

// Publisher writes order status change events to a zerolog stream.
type Publisher struct {
	log zerolog.Logger
}

// NewPublisher creates a publisher over the given logger.
func NewPublisher(log zerolog.Logger) *Publisher {
	return &Publisher{log: log}
}

// PublishStatusChanged logs one status transition. Never fails; the error
// return satisfies the port for implementations with real delivery.
func (p *Publisher) PublishStatusChanged(_ context.Context, event order.StatusChangedEvent) error {
	p.log.Info().
		Str("order_id", event.OrderID.String()).
		Str("previous_status", event.PreviousStatus.String()).
		Str("new_status", event.NewStatus.String()).
		Time("occurred_at", event.OccurredAt).
		Msg("order status changed")
	return nil
}
