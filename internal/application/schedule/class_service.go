package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/aigym/backend/internal/application/normalize"
	"github.com/aigym/backend/internal/domain/schedule"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateClassRequest carries a raw class schedule form submission
type CreateClassRequest struct {
	ClassName       string `json:"class_name"`
	Instructor      string `json:"instructor"`
	ClassDate       string `json:"class_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	MaxCapacity     int    `json:"max_capacity"`
	CurrentBookings int    `json:"current_bookings"`
	Location        string `json:"location"`
	ClassType       string `json:"class_type"`
	Status          string `json:"status"`
}

// UpdateClassRequest carries a partial class schedule edit
type UpdateClassRequest struct {
	ClassName       *string `json:"class_name"`
	Instructor      *string `json:"instructor"`
	ClassDate       *string `json:"class_date"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	MaxCapacity     *int    `json:"max_capacity"`
	CurrentBookings *int    `json:"current_bookings"`
	Location        *string `json:"location"`
	ClassType       *string `json:"class_type"`
	Status          *string `json:"status"`
}

// ClassResponse is a class occurrence as rendered in API responses
type ClassResponse struct {
	ID              uuid.UUID `json:"id"`
	ClassName       string    `json:"class_name"`
	Instructor      string    `json:"instructor"`
	ClassDate       time.Time `json:"class_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	MaxCapacity     int       `json:"max_capacity"`
	CurrentBookings int       `json:"current_bookings"`
	Location        *string   `json:"location"`
	ClassType       *string   `json:"class_type"`
	Status          string    `json:"status"`
	Availability    string    `json:"availability"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToClassResponse maps a domain class session to its API shape
func ToClassResponse(c *schedule.ClassSession) ClassResponse {
	return ClassResponse{
		ID:              c.ID,
		ClassName:       c.ClassName,
		Instructor:      c.Instructor,
		ClassDate:       c.ClassDate,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		MaxCapacity:     c.MaxCapacity,
		CurrentBookings: c.CurrentBookings,
		Location:        c.Location,
		ClassType:       c.ClassType,
		Status:          string(c.Status),
		Availability:    c.Availability(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ClassService handles class-schedule business operations
type ClassService struct {
	classRepo schedule.ClassRepository
}

// NewClassService creates a new ClassService
func NewClassService(classRepo schedule.ClassRepository) *ClassService {
	return &ClassService{
		classRepo: classRepo,
	}
}

// Create validates a class occurrence and persists it
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*ClassResponse, error) {
	var missing []string
	if strings.TrimSpace(req.ClassName) == "" {
		missing = append(missing, "class_name")
	}
	if strings.TrimSpace(req.Instructor) == "" {
		missing = append(missing, "instructor")
	}
	classDate := normalize.Date(req.ClassDate)
	if classDate == nil {
		missing = append(missing, "class_date")
	}
	if len(missing) > 0 {
		return nil, shared.NewValidationErrorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if req.MaxCapacity <= 0 {
		return nil, shared.NewValidationError("Invalid max_capacity: must be a positive number")
	}
	if req.CurrentBookings < 0 {
		return nil, shared.NewValidationError("Invalid current_bookings: cannot be negative")
	}

	status := normalize.TextOr(req.Status, string(schedule.ClassStatusActive))

	session := &schedule.ClassSession{
		BaseEntity:      shared.NewBaseEntity(),
		ClassName:       strings.TrimSpace(req.ClassName),
		Instructor:      strings.TrimSpace(req.Instructor),
		ClassDate:       *classDate,
		StartTime:       strings.TrimSpace(req.StartTime),
		EndTime:         strings.TrimSpace(req.EndTime),
		MaxCapacity:     req.MaxCapacity,
		CurrentBookings: req.CurrentBookings,
		Location:        normalize.Text(req.Location),
		ClassType:       normalize.Text(req.ClassType),
		Status:          schedule.ClassStatus(status),
	}

	if err := s.classRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	resp := ToClassResponse(session)
	return &resp, nil
}

// List retrieves a filtered page of class occurrences
func (s *ClassService) List(ctx context.Context, q shared.ListQuery) (*shared.Paginated[ClassResponse], error) {
	q = q.Normalize()
	sessions, total, err := s.classRepo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]ClassResponse, 0, len(sessions))
	for i := range sessions {
		items = append(items, ToClassResponse(&sessions[i]))
	}
	page := shared.NewPaginated(items, total, q)
	return &page, nil
}

// GetByID retrieves a single class occurrence
func (s *ClassService) GetByID(ctx context.Context, id uuid.UUID) (*ClassResponse, error) {
	session, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToClassResponse(session)
	return &resp, nil
}

// Update applies a partial edit to an existing class occurrence
func (s *ClassService) Update(ctx context.Context, id uuid.UUID, req UpdateClassRequest) (*ClassResponse, error) {
	session, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClassName != nil {
		if strings.TrimSpace(*req.ClassName) == "" {
			return nil, shared.NewValidationError("Missing required fields: class_name")
		}
		session.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.Instructor != nil {
		session.Instructor = strings.TrimSpace(*req.Instructor)
	}
	if req.ClassDate != nil {
		if d := normalize.Date(*req.ClassDate); d != nil {
			session.ClassDate = *d
		}
	}
	if req.StartTime != nil {
		session.StartTime = strings.TrimSpace(*req.StartTime)
	}
	if req.EndTime != nil {
		session.EndTime = strings.TrimSpace(*req.EndTime)
	}
	if req.MaxCapacity != nil {
		if *req.MaxCapacity <= 0 {
			return nil, shared.NewValidationError("Invalid max_capacity: must be a positive number")
		}
		session.MaxCapacity = *req.MaxCapacity
	}
	if req.CurrentBookings != nil {
		if *req.CurrentBookings < 0 {
			return nil, shared.NewValidationError("Invalid current_bookings: cannot be negative")
		}
		session.CurrentBookings = *req.CurrentBookings
	}
	if req.Location != nil {
		session.Location = normalize.Text(*req.Location)
	}
	if req.ClassType != nil {
		session.ClassType = normalize.Text(*req.ClassType)
	}
	if req.Status != nil {
		session.Status = schedule.ClassStatus(normalize.TextOr(*req.Status, string(schedule.ClassStatusActive)))
	}

	session.Touch()
	if err := s.classRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	resp := ToClassResponse(session)
	return &resp, nil
}
