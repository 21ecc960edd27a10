package get_availability

import (
	"context"

	"github.com/agendly/appointment-service/internal/domain"
)

// ProfessionalRepository интерфейс справочника профессионалов
type ProfessionalRepository interface {
	// GetByID возвращает профессионала с его рабочим окном
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByProfessionalWithFilter получает записи профессионала на дату
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
