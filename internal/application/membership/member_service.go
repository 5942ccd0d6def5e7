package membership

import (
	"context"
	"strings"

	"github.com/aigym/backend/internal/application/normalize"
	"github.com/aigym/backend/internal/domain/membership"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MemberService handles member-related business operations
type MemberService struct {
	memberRepo membership.MemberRepository
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo membership.MemberRepository) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
	}
}

// Create validates and normalizes a member form submission and persists it
func (s *MemberService) Create(ctx context.Context, req CreateMemberRequest) (*MemberResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = normalize.ComposeName(req.FirstName, req.PaternalLastName)
	}

	var missing []string
	if name == "" {
		missing = append(missing, "name or first_name/paternal_last_name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.PrimaryPhone) == "" {
		missing = append(missing, "primary_phone")
	}
	if len(missing) > 0 {
		return nil, shared.NewValidationErrorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	status := normalize.TextOr(req.Status, string(membership.MemberStatusActive))
	if !membership.ValidMemberStatus(status) {
		return nil, shared.NewValidationErrorf("Invalid status: %s", status)
	}

	mondayID := strings.TrimSpace(req.MondayMemberID)
	if mondayID == "" {
		mondayID = normalize.ExternalID("member")
	}

	member := &membership.Member{
		BaseEntity:            shared.NewBaseEntity(),
		MondayMemberID:        mondayID,
		Name:                  name,
		FirstName:             normalize.Text(req.FirstName),
		PaternalLastName:      normalize.Text(req.PaternalLastName),
		MaternalLastName:      normalize.Text(req.MaternalLastName),
		Person:                normalize.Text(req.Person),
		Status:                membership.MemberStatus(status),
		StartDate:             normalize.Date(req.StartDate),
		DateOfBirth:           normalize.Date(req.DateOfBirth),
		Email:                 normalize.Text(req.Email),
		Phone:                 normalize.Text(req.Phone),
		PrimaryPhone:          normalize.Text(req.PrimaryPhone),
		SecondaryPhone:        normalize.Text(req.SecondaryPhone),
		Address1:              normalize.Text(req.Address1),
		City:                  normalize.Text(req.City),
		State:                 normalize.Text(req.State),
		ZipCode:               normalize.Text(req.ZipCode),
		AccessType:            normalize.Text(req.AccessType),
		EmergencyContactName:  normalize.Text(req.EmergencyContactName),
		EmergencyContactPhone: normalize.Text(req.EmergencyContactPhone),
		ReferredMember:        normalize.Text(req.ReferredMember),
		SelectedPlan:          normalize.Text(req.SelectedPlan),
		Employee:              normalize.Text(req.Employee),
		MemberID:              normalize.Text(req.MemberID),
		MonthlyAmount:         normalize.Money(req.MonthlyAmount),
		ExpirationDate:        normalize.Date(req.ExpirationDate),
		DirectDebit:           normalize.TextOr(req.DirectDebit, "No"),
		HowDidYouHear:         normalize.Text(req.HowDidYouHear),
		ContractLink:          normalize.Text(req.ContractLink),
		Version:               "1",
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	resp := ToMemberResponse(member)
	return &resp, nil
}

// List retrieves a filtered page of members
func (s *MemberService) List(ctx context.Context, q shared.ListQuery) (*shared.Paginated[MemberResponse], error) {
	q = q.Normalize()
	members, total, err := s.memberRepo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]MemberResponse, 0, len(members))
	for i := range members {
		items = append(items, ToMemberResponse(&members[i]))
	}
	page := shared.NewPaginated(items, total, q)
	return &page, nil
}

// GetByID retrieves a member with its contracts
func (s *MemberService) GetByID(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToMemberResponse(member)
	return &resp, nil
}

// Update applies a partial edit to an existing member
func (s *MemberService) Update(ctx context.Context, id uuid.UUID, req UpdateMemberRequest) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !membership.ValidMemberStatus(*req.Status) {
			return nil, shared.NewValidationErrorf("Invalid status: %s", *req.Status)
		}
		member.Status = membership.MemberStatus(*req.Status)
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, shared.NewValidationError("Missing required fields: name")
		}
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.FirstName != nil {
		member.FirstName = normalize.Text(*req.FirstName)
	}
	if req.PaternalLastName != nil {
		member.PaternalLastName = normalize.Text(*req.PaternalLastName)
	}
	if req.MaternalLastName != nil {
		member.MaternalLastName = normalize.Text(*req.MaternalLastName)
	}
	if req.StartDate != nil {
		member.StartDate = normalize.Date(*req.StartDate)
	}
	if req.DateOfBirth != nil {
		member.DateOfBirth = normalize.Date(*req.DateOfBirth)
	}
	if req.Email != nil {
		member.Email = normalize.Text(*req.Email)
	}
	if req.Phone != nil {
		member.Phone = normalize.Text(*req.Phone)
	}
	if req.PrimaryPhone != nil {
		member.PrimaryPhone = normalize.Text(*req.PrimaryPhone)
	}
	if req.SecondaryPhone != nil {
		member.SecondaryPhone = normalize.Text(*req.SecondaryPhone)
	}
	if req.Address1 != nil {
		member.Address1 = normalize.Text(*req.Address1)
	}
	if req.City != nil {
		member.City = normalize.Text(*req.City)
	}
	if req.State != nil {
		member.State = normalize.Text(*req.State)
	}
	if req.ZipCode != nil {
		member.ZipCode = normalize.Text(*req.ZipCode)
	}
	if req.AccessType != nil {
		member.AccessType = normalize.Text(*req.AccessType)
	}
	if req.EmergencyContactName != nil {
		member.EmergencyContactName = normalize.Text(*req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		member.EmergencyContactPhone = normalize.Text(*req.EmergencyContactPhone)
	}
	if req.ReferredMember != nil {
		member.ReferredMember = normalize.Text(*req.ReferredMember)
	}
	if req.SelectedPlan != nil {
		member.SelectedPlan = normalize.Text(*req.SelectedPlan)
	}
	if req.Employee != nil {
		member.Employee = normalize.Text(*req.Employee)
	}
	if req.MonthlyAmount != nil {
		member.MonthlyAmount = normalize.Money(req.MonthlyAmount)
	}
	if req.ExpirationDate != nil {
		member.ExpirationDate = normalize.Date(*req.ExpirationDate)
	}
	if req.DirectDebit != nil {
		member.DirectDebit = normalize.TextOr(*req.DirectDebit, "No")
	}
	if req.HowDidYouHear != nil {
		member.HowDidYouHear = normalize.Text(*req.HowDidYouHear)
	}
	if req.ContractLink != nil {
		member.ContractLink = normalize.Text(*req.ContractLink)
	}

	member.Touch()
	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	resp := ToMemberResponse(member)
	return &resp, nil
}
