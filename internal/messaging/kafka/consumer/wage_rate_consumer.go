package consumer

import (
	"context"
	"encoding/json"
	"go-siteops/internal/events"
	"go-siteops/internal/wagerate"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeWageRateChanges drops cached wage rates whenever a rate row changes
// upstream. Role-to-employee fan-out is not tracked in the cache key, so a
// change invalidates globally.
func ConsumeWageRateChanges(
	ctx context.Context,
	reader *kafkago.Reader,
	provider wagerate.Provider,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.wage_rate_changed")
	log.Info("wage rate change consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("wage rate change consumer stopped")
				return
			}
			log.Error("fetch wage rate change message failed", zap.Error(err))
			continue
		}

		var event events.WageRateChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode wage_rate_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := provider.InvalidateAll(ctx); err != nil {
			log.Error("invalidate wage rate cache failed",
				zap.String("wage_rate_id", event.WageRateID),
				zap.String("role_id", event.RoleID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit wage rate change message failed", zap.Error(err))
			continue
		}

		log.Info("wage rate cache invalidated from event",
			zap.String("wage_rate_id", event.WageRateID),
			zap.String("role_id", event.RoleID),
		)
	}
}
