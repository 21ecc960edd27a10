package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendly/appointment-service/internal/domain"
	appointmentRepo "github.com/agendly/appointment-service/internal/infra/storage/appointment"
	professionalRepo "github.com/agendly/appointment-service/internal/infra/storage/professional"
	"github.com/agendly/appointment-service/internal/schedule"
)

// UseCase use case создания записи на слот
//
// Выданный ранее список слотов - консультативный снимок: между показом
// и записью занятость могла измениться. Поэтому занятость перепроверяется
// на write-path в сериализуемой транзакции (чтение записей с FOR UPDATE),
// а детерминированную защиту от двойной записи дает частичный уникальный
// индекс в БД - из двух конкурентных попыток на один слот ровно одна
// завершается ErrSlotNotAvailable.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		location:         location,
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: client=%d, professional=%d, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем профессионала и его рабочее окно
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("BookAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("BookAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Приводим дату к референсной таймзоне
	date := uc.anchorDate(req.Date)

	// 4. Проверяем, что запрошенное время - слот сетки в рабочем окне
	if !schedule.SlotOffered(date, professional.Window, req.StartTime) {
		uc.logger.Warn("BookAppointment: time %s is outside the working window of professional=%d on %s",
			req.StartTime, req.ProfessionalID, date.Format(domain.DateFormat))
		return nil, ErrOutsideWorkingWindow
	}

	var result *domain.Appointment

	// 5. Перепроверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные записи на дату с блокировкой (FOR UPDATE)
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:  req.ProfessionalID,
			Date:            &date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.2. Слот должен быть свободен на момент записи
		occupied := schedule.OccupiedSet(appointments)
		if _, busy := occupied[req.StartTime.Truncate()]; busy {
			uc.logger.Warn("BookAppointment: slot %s on %s already taken for professional=%d",
				req.StartTime, date.Format(domain.DateFormat), req.ProfessionalID)
			return ErrSlotNotAvailable
		}

		// 5.3. Создаем запись
		appt := &domain.Appointment{
			EnterpriseID:   professional.EnterpriseID,
			ProfessionalID: req.ProfessionalID,
			ClientID:       req.ClientID,
			ServiceID:      req.ServiceID,
			Date:           date,
			StartTime:      req.StartTime.Truncate(),
			Status:         domain.StatusScheduled,
			ServiceName:    req.ServiceName,
			Notes:          req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Нарушение уникального индекса - конкурентная запись успела раньше
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: lost race for slot %s on %s, professional=%d",
					req.StartTime, date.Format(domain.DateFormat), req.ProfessionalID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		EnterpriseID:   result.EnterpriseID,
		ProfessionalID: result.ProfessionalID,
		ClientID:       result.ClientID,
		ServiceID:      result.ServiceID,
		Date:           result.Date,
		StartTime:      result.StartTime,
		Status:         string(result.Status),
		ServiceName:    result.ServiceName,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// anchorDate пересобирает календарную дату в референсной таймзоне
func (uc *UseCase) anchorDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.location)
}
