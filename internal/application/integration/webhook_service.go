package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aigym/backend/internal/application/normalize"
	"github.com/aigym/backend/internal/domain/integration"
	"github.com/aigym/backend/internal/domain/membership"
	"github.com/aigym/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MondayWebhookService routes inbound Monday.com events to member and
// contract writes. Each call is independent: no retry, no dedup.
type MondayWebhookService struct {
	memberRepo   membership.MemberRepository
	contractRepo membership.ContractRepository
	logRepo      integration.WebhookLogRepository
	boards       integration.BoardMap
	logger       *zap.Logger
}

// NewMondayWebhookService creates a new MondayWebhookService
func NewMondayWebhookService(
	memberRepo membership.MemberRepository,
	contractRepo membership.ContractRepository,
	logRepo integration.WebhookLogRepository,
	boards integration.BoardMap,
	logger *zap.Logger,
) *MondayWebhookService {
	return &MondayWebhookService{
		memberRepo:   memberRepo,
		contractRepo: contractRepo,
		logRepo:      logRepo,
		boards:       boards,
		logger:       logger,
	}
}

// Process handles one raw webhook body. The verbatim payload is appended
// to the audit trail with status "received" before any dispatch; any
// failure after that point produces a second audit entry with status
// "error" and is returned to the caller. The "received" entry is never
// updated retroactively.
func (s *MondayWebhookService) Process(ctx context.Context, raw []byte) error {
	var payload integration.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.recordFailure(ctx, err)
		return shared.NewValidationErrorf("Malformed webhook payload: %v", err)
	}

	s.logger.Info("received monday webhook",
		zap.String("type", string(payload.Type)),
		zap.Int64("board_id", payload.BoardID),
		zap.Int64("pulse_id", payload.PulseID),
		zap.String("column_id", payload.ColumnID))

	entry := &integration.WebhookLogEntry{
		BaseEntity:  shared.NewBaseEntity(),
		WebhookType: string(payload.Type),
		Payload:     json.RawMessage(raw),
		Status:      integration.LogStatusReceived,
		ReceivedAt:  time.Now(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		// The audit store itself just failed, so a second error append
		// would only fail the same way. Log and bail.
		s.logger.Error("webhook processing failed", zap.Error(err))
		return err
	}

	var err error
	switch payload.Type {
	case integration.EventCreatePulse:
		err = s.handlePulseCreation(ctx, payload)
	case integration.EventUpdateColumnValue:
		err = s.handleColumnUpdate(ctx, payload)
	}
	if err != nil {
		s.recordFailure(ctx, err)
		return err
	}
	return nil
}

// Logs returns one page of the webhook audit trail, newest first.
func (s *MondayWebhookService) Logs(ctx context.Context, q shared.ListQuery) (*shared.Paginated[integration.WebhookLogEntry], error) {
	q = q.Normalize()
	entries, total, err := s.logRepo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(entries, total, q)
	return &page, nil
}

// recordFailure appends an "error" audit entry. A failing append is
// logged and swallowed so the original error still reaches the caller.
func (s *MondayWebhookService) recordFailure(ctx context.Context, cause error) {
	msg := cause.Error()
	entry := &integration.WebhookLogEntry{
		BaseEntity:   shared.NewBaseEntity(),
		WebhookType:  "error",
		Payload:      json.RawMessage(fmt.Sprintf(`{"error":%s}`, strconv.Quote(msg))),
		Status:       integration.LogStatusError,
		ErrorMessage: &msg,
		ReceivedAt:   time.Now(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Error("failed to log webhook error", zap.Error(err))
	}
	s.logger.Error("webhook processing failed", zap.Error(cause))
}

// handlePulseCreation creates a stub member or contract from a new board
// item. Events from unmapped boards are ignored.
func (s *MondayWebhookService) handlePulseCreation(ctx context.Context, payload integration.WebhookPayload) error {
	kind, ok := s.boards.Kind(payload.BoardID)
	if !ok {
		return nil
	}

	pulseID := strconv.FormatInt(payload.PulseID, 10)
	switch kind {
	case integration.BoardKindMembers:
		member := &membership.Member{
			BaseEntity:     shared.NewBaseEntity(),
			MondayMemberID: pulseID,
			Name:           payload.PulseName,
			Status:         membership.MemberStatusActive,
			DirectDebit:    "No",
			Version:        "1",
		}
		if err := s.memberRepo.Save(ctx, member); err != nil {
			return err
		}
		s.logger.Info("created member from webhook",
			zap.String("monday_member_id", pulseID),
			zap.String("name", payload.PulseName))
	case integration.BoardKindContracts:
		contract := &membership.Contract{
			BaseEntity:       shared.NewBaseEntity(),
			MondayContractID: pulseID,
			ContractType:     payload.PulseName,
			Status:           membership.ContractStatusActive,
		}
		if err := s.contractRepo.Save(ctx, contract); err != nil {
			return err
		}
		s.logger.Info("created contract from webhook",
			zap.String("monday_contract_id", pulseID),
			zap.String("contract_type", payload.PulseName))
	}
	return nil
}

// handleColumnUpdate maps a known column change onto the entity looked up
// by its external id. Unknown boards and columns are ignored, and an
// update that set no columns is skipped entirely.
func (s *MondayWebhookService) handleColumnUpdate(ctx context.Context, payload integration.WebhookPayload) error {
	kind, ok := s.boards.Kind(payload.BoardID)
	if !ok {
		return nil
	}

	pulseID := strconv.FormatInt(payload.PulseID, 10)
	switch kind {
	case integration.BoardKindMembers:
		values := memberColumnValues(payload)
		if len(values) == 0 {
			return nil
		}
		if err := s.memberRepo.UpdateByMondayID(ctx, pulseID, values); err != nil {
			return err
		}
		s.logger.Info("updated member from webhook",
			zap.String("monday_member_id", pulseID),
			zap.String("column_id", payload.ColumnID))
	case integration.BoardKindContracts:
		values := contractColumnValues(payload)
		if len(values) == 0 {
			return nil
		}
		if err := s.contractRepo.UpdateByMondayID(ctx, pulseID, values); err != nil {
			return err
		}
		s.logger.Info("updated contract from webhook",
			zap.String("monday_contract_id", pulseID),
			zap.String("column_id", payload.ColumnID))
	}
	return nil
}

func memberColumnValues(payload integration.WebhookPayload) map[string]any {
	values := map[string]any{}
	v := payload.Value
	if v == nil {
		return values
	}
	switch payload.ColumnID {
	case "email":
		if v.Email != nil && v.Email.Email != "" {
			values["email"] = v.Email.Email
		}
	case "phone":
		if v.Phone != "" {
			values["phone"] = v.Phone
		}
	case "status":
		if v.Label != nil && v.Label.Text != "" {
			values["status"] = strings.ToLower(v.Label.Text)
		}
	case "name":
		if v.Text != "" {
			values["name"] = v.Text
		}
	}
	return values
}

func contractColumnValues(payload integration.WebhookPayload) map[string]any {
	values := map[string]any{}
	v := payload.Value
	if v == nil {
		return values
	}
	switch payload.ColumnID {
	case "start_date":
		if v.Date != nil {
			if d := normalize.Date(v.Date.Date); d != nil {
				values["start_date"] = *d
			}
		}
	case "end_date":
		if v.Date != nil {
			if d := normalize.Date(v.Date.Date); d != nil {
				values["end_date"] = *d
			}
		}
	case "monthly_fee":
		if fee := normalize.Money(v.Numbers); fee != nil {
			values["monthly_fee"] = *fee
		}
	case "status":
		if v.Label != nil && v.Label.Text != "" {
			values["status"] = strings.ToLower(v.Label.Text)
		}
	case "contract_type":
		if v.Text != "" {
			values["contract_type"] = v.Text
		}
	}
	return values
}
