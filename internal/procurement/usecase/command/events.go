package command

import (
	"context"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
	"github.com/emuhs/s2p-api/pkg/logger"
)

// publish sends an event after commit. Failures are logged and never undo the write.
func publish(ctx context.Context, publisher domain.EventPublisher, event domain.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", event.Type).
			Uint("entity_id", event.EntityID).
			Msg("Failed to publish event")
	}
}
