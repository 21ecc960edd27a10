package domain

import (
	"time"

	"github.com/agendly/appointment-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled             AppointmentStatus = "scheduled"
	StatusConfirmed             AppointmentStatus = "confirmed"
	StatusCompleted             AppointmentStatus = "completed"
	StatusCancelledByClient     AppointmentStatus = "cancelled_by_client"
	StatusCancelledByEnterprise AppointmentStatus = "cancelled_by_enterprise"
	StatusNoShow                AppointmentStatus = "no_show"
)

// Appointment represents a booked slot of a professional
type Appointment struct {
	ID             int64
	EnterpriseID   int64
	ProfessionalID int64
	ClientID       int64
	ServiceID      *int64
	Date           time.Time // calendar day, no time component
	StartTime      types.TimeString
	Status         AppointmentStatus

	// Denormalized data for history
	ServiceName string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot.
// Cancellation is a status transition, not a delete: cancelled and
// no-show appointments vacate the slot immediately.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledByEnterprise &&
		a.Status != StatusNoShow
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledByEnterprise
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// ProfessionalAppointmentsFilter фильтр для получения записей профессионала
type ProfessionalAppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	Date            *time.Time         // Фильтр по дате (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли неактивные записи (отмененные, no-show)
}
