package schedule

import (
	"context"
	"time"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClassStatus represents a class occurrence state
type ClassStatus string

const (
	ClassStatusActive    ClassStatus = "active"
	ClassStatusCancelled ClassStatus = "cancelled"
	ClassStatusFull      ClassStatus = "full"
)

// Availability buckets derived from the booking ratio
const (
	AvailabilityFull       = "Full"
	AvailabilityAlmostFull = "Almost Full"
	AvailabilityAvailable  = "Available"
)

// ClassSession is a single class occurrence on the gym schedule.
type ClassSession struct {
	shared.BaseEntity
	ClassName       string      `json:"class_name"`
	Instructor      string      `json:"instructor"`
	ClassDate       time.Time   `json:"class_date"`
	StartTime       string      `json:"start_time"`
	EndTime         string      `json:"end_time"`
	MaxCapacity     int         `json:"max_capacity"`
	CurrentBookings int         `json:"current_bookings"`
	Location        *string     `json:"location"`
	ClassType       *string     `json:"class_type"`
	Status          ClassStatus `json:"status"`
}

// Availability reports how booked the session is: full at capacity,
// almost full at 80% or more, available otherwise.
func (s *ClassSession) Availability() string {
	if s.MaxCapacity > 0 && s.CurrentBookings >= s.MaxCapacity {
		return AvailabilityFull
	}
	if s.MaxCapacity > 0 && float64(s.CurrentBookings) >= float64(s.MaxCapacity)*0.8 {
		return AvailabilityAlmostFull
	}
	return AvailabilityAvailable
}

// ClassRepository is the persistence port for schedule entries
type ClassRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClassSession, error)
	FindPage(ctx context.Context, q shared.ListQuery) ([]ClassSession, int64, error)
	Save(ctx context.Context, session *ClassSession) error
	Count(ctx context.Context) (int64, error)
}
