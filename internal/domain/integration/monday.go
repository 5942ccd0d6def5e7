package integration

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aigym/backend/internal/domain/shared"
)

// EventType is the Monday.com webhook event discriminator
type EventType string

const (
	EventCreatePulse       EventType = "create_pulse"
	EventUpdateColumnValue EventType = "update_column_value"
)

// WebhookPayload is the inbound Monday.com event shape. The Value variant
// is keyed by ColumnType; only the branches this service reads are modeled.
type WebhookPayload struct {
	Type                EventType       `json:"type"`
	TriggerTime         string          `json:"triggerTime"`
	SubscriptionID      int64           `json:"subscriptionId"`
	UserID              int64           `json:"userId"`
	OriginalTriggerUUID string          `json:"originalTriggerUuid"`
	BoardID             int64           `json:"boardId"`
	PulseID             int64           `json:"pulseId"`
	PulseName           string          `json:"pulseName"`
	ColumnID            string          `json:"columnId,omitempty"`
	ColumnType          string          `json:"columnType,omitempty"`
	Value               *ColumnValue    `json:"value,omitempty"`
	PreviousValue       json.RawMessage `json:"previousValue,omitempty"`
	ChangedAt           int64           `json:"changedAt"`
	IsTopGroup          bool            `json:"isTopGroup"`
	GroupID             string          `json:"groupId"`
}

// ColumnValue is the variant value object attached to column updates.
type ColumnValue struct {
	Label   *LabelValue `json:"label,omitempty"`
	Date    *DateValue  `json:"date,omitempty"`
	Text    string      `json:"text,omitempty"`
	Email   *EmailValue `json:"email,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Numbers string      `json:"numbers,omitempty"`
}

// LabelValue is a status-column value
type LabelValue struct {
	Index int    `json:"index,omitempty"`
	Text  string `json:"text,omitempty"`
}

// DateValue is a date-column value (date is "YYYY-MM-DD")
type DateValue struct {
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
}

// EmailValue is an email-column value
type EmailValue struct {
	Email string `json:"email,omitempty"`
	Text  string `json:"text,omitempty"`
}

// BoardKind identifies which internal entity a Monday board maps to
type BoardKind string

const (
	BoardKindMembers   BoardKind = "members"
	BoardKindContracts BoardKind = "contracts"
)

// BoardMap is the injected mapping from external board ids to entity
// kinds. Events from boards outside the map are ignored.
type BoardMap struct {
	MembersBoardID   int64
	ContractsBoardID int64
}

// Kind resolves a board id; ok is false for unrecognized boards.
func (m BoardMap) Kind(boardID int64) (BoardKind, bool) {
	switch boardID {
	case m.MembersBoardID:
		return BoardKindMembers, true
	case m.ContractsBoardID:
		return BoardKindContracts, true
	}
	return "", false
}

// LogStatus marks how far a webhook got through processing
type LogStatus string

const (
	LogStatusReceived LogStatus = "received"
	LogStatusError    LogStatus = "error"
)

// WebhookLogEntry is an append-only audit record of an inbound webhook.
// Payload holds the verbatim request body.
type WebhookLogEntry struct {
	shared.BaseEntity
	WebhookType  string          `json:"webhook_type"`
	Payload      json.RawMessage `json:"payload"`
	Status       LogStatus       `json:"status"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	ReceivedAt   time.Time       `json:"received_at"`
}

// WebhookLogRepository is the persistence port for the audit trail
type WebhookLogRepository interface {
	Append(ctx context.Context, entry *WebhookLogEntry) error
	FindPage(ctx context.Context, q shared.ListQuery) ([]WebhookLogEntry, int64, error)
	Count(ctx context.Context) (int64, error)
}
