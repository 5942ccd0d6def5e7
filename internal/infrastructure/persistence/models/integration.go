package models

import (
	"time"

	"github.com/aigym/backend/internal/domain/integration"
)

// WebhookLogModel is the GORM model for the webhook_log table
type WebhookLogModel struct {
	BaseModel
	WebhookType  string `gorm:"not null;index"`
	Payload      []byte `gorm:"type:jsonb;not null"`
	Status       string `gorm:"not null;index"`
	ErrorMessage *string
	ReceivedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for WebhookLogModel
func (WebhookLogModel) TableName() string {
	return "webhook_log"
}

// ToDomain converts the model to a domain log entry
func (m *WebhookLogModel) ToDomain() *integration.WebhookLogEntry {
	return &integration.WebhookLogEntry{
		BaseEntity:   m.BaseModel.ToDomain(),
		WebhookType:  m.WebhookType,
		Payload:      m.Payload,
		Status:       integration.LogStatus(m.Status),
		ErrorMessage: m.ErrorMessage,
		ReceivedAt:   m.ReceivedAt,
	}
}

// WebhookLogModelFromDomain converts a domain log entry to its model
func WebhookLogModelFromDomain(entry *integration.WebhookLogEntry) *WebhookLogModel {
	model := &WebhookLogModel{
		WebhookType:  entry.WebhookType,
		Payload:      entry.Payload,
		Status:       string(entry.Status),
		ErrorMessage: entry.ErrorMessage,
		ReceivedAt:   entry.ReceivedAt,
	}
	model.FromDomainBaseEntity(entry.BaseEntity)
	return model
}
