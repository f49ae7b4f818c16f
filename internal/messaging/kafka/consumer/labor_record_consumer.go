package consumer

import (
	"context"
	"encoding/json"
	"go-siteops/internal/events"
	"go-siteops/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLaborRecordCreated fans labor record creations out into persisted
// notifications for the affected employee.
func ConsumeLaborRecordCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.labor_record_created")
	log.Info("labor record consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("labor record consumer stopped")
				return
			}
			log.Error("fetch labor record message failed", zap.Error(err))
			continue
		}

		var event events.LaborRecordCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode labor_record_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = notificationService.CreateForLaborRecord(ctx, notification.LaborRecordNotice{
			LaborRecordID: event.LaborRecordID,
			EmployeeID:    event.EmployeeID,
			SiteID:        event.SiteID,
			PaymentType:   event.PaymentType,
			Amount:        event.Amount,
		})
		if err != nil {
			log.Error("create labor record notification failed",
				zap.String("labor_record_id", event.LaborRecordID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit labor record message failed", zap.Error(err))
			continue
		}

		log.Info("labor record notification created",
			zap.String("labor_record_id", event.LaborRecordID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
