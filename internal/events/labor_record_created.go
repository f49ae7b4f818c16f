package events

import "time"

const LaborRecordCreatedTopic = "siteops.laborcost.record.created.v1"

type LaborRecordCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	LaborRecordID string    `json:"labor_record_id"`
	EmployeeID    string    `json:"employee_id"`
	SiteID        string    `json:"site_id,omitempty"`
	PaymentType   string    `json:"payment_type"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
