package membership

import (
	"context"
	"strings"

	"github.com/aigym/backend/internal/application/normalize"
	"github.com/aigym/backend/internal/domain/membership"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContractService handles contract-related business operations
type ContractService struct {
	contractRepo membership.ContractRepository
}

// NewContractService creates a new ContractService
func NewContractService(contractRepo membership.ContractRepository) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
	}
}

// Create validates and normalizes a contract form submission and persists it
func (s *ContractService) Create(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	contractType := strings.TrimSpace(req.ContractType)
	if contractType == "" {
		return nil, shared.NewValidationError("Missing required fields: contract_type")
	}

	status := normalize.TextOr(req.Status, string(membership.ContractStatusActive))
	if !membership.ValidContractStatus(status) {
		return nil, shared.NewValidationErrorf("Invalid status: %s", status)
	}

	var memberID *uuid.UUID
	if strings.TrimSpace(req.MemberID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(req.MemberID))
		if err != nil {
			return nil, shared.NewValidationErrorf("Invalid member_id: %s", req.MemberID)
		}
		memberID = &id
	}

	mondayID := strings.TrimSpace(req.MondayContractID)
	if mondayID == "" {
		mondayID = normalize.ExternalID("contract")
	}

	contract := &membership.Contract{
		BaseEntity:       shared.NewBaseEntity(),
		MondayContractID: mondayID,
		MemberID:         memberID,
		ContractType:     contractType,
		StartDate:        normalize.Date(req.StartDate),
		EndDate:          normalize.Date(req.EndDate),
		MonthlyFee:       normalize.Money(req.MonthlyFee),
		Status:           membership.ContractStatus(status),
	}

	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	resp := ToContractResponse(contract)
	return &resp, nil
}

// List retrieves a filtered page of contracts
func (s *ContractService) List(ctx context.Context, q shared.ListQuery) (*shared.Paginated[ContractResponse], error) {
	q = q.Normalize()
	contracts, total, err := s.contractRepo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		items = append(items, ToContractResponse(&contracts[i]))
	}
	page := shared.NewPaginated(items, total, q)
	return &page, nil
}

// GetByID retrieves a contract with its member
func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToContractResponse(contract)
	return &resp, nil
}

// Update applies a partial edit to an existing contract
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, req UpdateContractRequest) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !membership.ValidContractStatus(*req.Status) {
			return nil, shared.NewValidationErrorf("Invalid status: %s", *req.Status)
		}
		contract.Status = membership.ContractStatus(*req.Status)
	}
	if req.ContractType != nil {
		if strings.TrimSpace(*req.ContractType) == "" {
			return nil, shared.NewValidationError("Missing required fields: contract_type")
		}
		contract.ContractType = strings.TrimSpace(*req.ContractType)
	}
	if req.MemberID != nil {
		if strings.TrimSpace(*req.MemberID) == "" {
			contract.MemberID = nil
		} else {
			memberID, err := uuid.Parse(strings.TrimSpace(*req.MemberID))
			if err != nil {
				return nil, shared.NewValidationErrorf("Invalid member_id: %s", *req.MemberID)
			}
			contract.MemberID = &memberID
		}
	}
	if req.StartDate != nil {
		contract.StartDate = normalize.Date(*req.StartDate)
	}
	if req.EndDate != nil {
		contract.EndDate = normalize.Date(*req.EndDate)
	}
	if req.MonthlyFee != nil {
		contract.MonthlyFee = normalize.Money(req.MonthlyFee)
	}

	contract.Touch()
	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	resp := ToContractResponse(contract)
	return &resp, nil
}
