package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendly/appointment-service/internal/domain"
	professionalRepo "github.com/agendly/appointment-service/internal/infra/storage/professional"
	"github.com/agendly/appointment-service/internal/schedule"
)

// UseCase use case получения слотов профессионала на дату
//
// Расчет выполняется заново на каждый запрос по свежим данным:
// занятость не кэшируется дольше одного запроса, отмененная запись
// освобождает слот немедленно.
type UseCase struct {
	professionalRepo ProfessionalRepository
	appointmentRepo  AppointmentRepository
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// location - референсная таймзона сервиса: день недели даты вычисляется в ней
func NewUseCase(
	professionalRepo ProfessionalRepository,
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
		location:         location,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: professional=%d, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем профессионала и его рабочее окно
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailability: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailability: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Приводим дату к референсной таймзоне
	// Все сравнения дней недели и времени выполняются в ней
	date := uc.anchorDate(req.Date)

	// 4. Получаем активные записи на эту дату
	// Отмененные и no-show исключаются фильтром репозитория
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:  req.ProfessionalID,
		Date:            &date,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Вычисляем слоты
	slots := schedule.ComputeAvailability(date, professional.Window, schedule.OccupiedSet(appointments))

	uc.logger.Info("GetAvailability: computed %d slots for professional=%d, date=%s",
		len(slots), req.ProfessionalID, date.Format(domain.DateFormat))

	return toResponse(req.ProfessionalID, date, slots), nil
}

// anchorDate пересобирает календарную дату в референсной таймзоне
func (uc *UseCase) anchorDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.location)
}

func toResponse(professionalID int64, date time.Time, slots []domain.AvailabilitySlot) *Response {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{
			Time:      s.Time,
			Available: s.Available,
			Label:     s.Label,
		}
	}
	return &Response{
		ProfessionalID: professionalID,
		Date:           date,
		Slots:          out,
	}
}
