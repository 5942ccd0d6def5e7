package models

import (
	"time"

	"github.com/aigym/backend/internal/domain/schedule"
)

// ClassModel is the GORM model for the schedule table
type ClassModel struct {
	BaseModel
	ClassName       string    `gorm:"not null"`
	Instructor      string    `gorm:"not null"`
	ClassDate       time.Time `gorm:"not null;index"`
	StartTime       string
	EndTime         string
	MaxCapacity     int `gorm:"not null"`
	CurrentBookings int `gorm:"not null;default:0"`
	Location        *string
	ClassType       *string
	Status          string `gorm:"not null;default:active;index"`
}

// TableName returns the table name for ClassModel
func (ClassModel) TableName() string {
	return "schedule"
}

// ToDomain converts the model to a domain class session
func (m *ClassModel) ToDomain() *schedule.ClassSession {
	return &schedule.ClassSession{
		BaseEntity:      m.BaseModel.ToDomain(),
		ClassName:       m.ClassName,
		Instructor:      m.Instructor,
		ClassDate:       m.ClassDate,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		MaxCapacity:     m.MaxCapacity,
		CurrentBookings: m.CurrentBookings,
		Location:        m.Location,
		ClassType:       m.ClassType,
		Status:          schedule.ClassStatus(m.Status),
	}
}

// ClassModelFromDomain converts a domain class session to its model
func ClassModelFromDomain(session *schedule.ClassSession) *ClassModel {
	model := &ClassModel{
		ClassName:       session.ClassName,
		Instructor:      session.Instructor,
		ClassDate:       session.ClassDate,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		MaxCapacity:     session.MaxCapacity,
		CurrentBookings: session.CurrentBookings,
		Location:        session.Location,
		ClassType:       session.ClassType,
		Status:          string(session.Status),
	}
	model.FromDomainBaseEntity(session.BaseEntity)
	return model
}
