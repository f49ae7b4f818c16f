package events

import "time"

const WageRateChangedTopic = "siteops.wagerate.changed.v1"

type WageRateChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	WageRateID string    `json:"wage_rate_id"`
	RoleID     string    `json:"role_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
