package book_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/appointment-service/internal/domain"
	appointmentRepo "github.com/agendly/appointment-service/internal/infra/storage/appointment"
	professionalRepo "github.com/agendly/appointment-service/internal/infra/storage/professional"
	"github.com/agendly/appointment-service/pkg/ptr"
	"github.com/agendly/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeProfessionalRepo struct {
	professionals map[int64]*domain.Professional
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	p, ok := f.professionals[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return p, nil
}

// fakeAppointmentRepo in-memory репозиторий, эмулирующий частичный
// уникальный индекс активного слота
type fakeAppointmentRepo struct {
	nextID       int64
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	for _, existing := range f.appointments {
		if existing.IsActive() &&
			existing.ProfessionalID == appt.ProfessionalID &&
			existing.Date.Equal(appt.Date) &&
			existing.StartTime == appt.StartTime {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.appointments = append(f.appointments, appt)
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		if !filter.IncludeInactive && !a.IsActive() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

var (
	monday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase() (*UseCase, *fakeAppointmentRepo) {
	profs := &fakeProfessionalRepo{
		professionals: map[int64]*domain.Professional{
			1: {
				ID:           1,
				EnterpriseID: 10,
				Name:         "Анна",
				Window: domain.WorkingWindow{
					FromWeekday: time.Monday,
					ToWeekday:   time.Friday,
					FromTime:    "09:00",
					ToTime:      "12:00",
				},
			},
		},
	}
	appts := &fakeAppointmentRepo{}
	uc := NewUseCase(appts, profs, fakeTxManager{}, time.UTC, nopLogger{})
	return uc, appts
}

func validRequest() *Request {
	return &Request{
		ClientID:       100,
		ProfessionalID: 1,
		ServiceID:      ptr.Ptr(int64(5)),
		ServiceName:    "Стрижка",
		Date:           monday,
		StartTime:      "10:00",
		Notes:          ptr.Ptr("прошу мастера Ольгу"),
	}
}

func TestUseCase_Execute(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, int64(10), resp.EnterpriseID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "10:00", resp.StartTime.String())
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// второй запрос на тот же слот отклоняется
	req := validRequest()
	req.ClientID = 200
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_RaceLostOnInsert(t *testing.T) {
	// снимок занятости пуст, но insert натыкается на уникальный индекс:
	// конкурент успел раньше - детерминированный отказ, а не двойная запись
	uc, appts := newTestUseCase()

	appts.appointments = append(appts.appointments, &domain.Appointment{
		ID:             77,
		ProfessionalID: 1,
		Date:           monday,
		StartTime:      "10:00",
		Status:         domain.StatusScheduled,
	})
	// подменяем чтение так, будто снимок был сделан до конкурента
	snapshot := &fakeAppointmentRepo{nextID: 77, appointments: appts.appointments}
	uc.appointmentRepo = racingRepo{reads: &fakeAppointmentRepo{}, writes: snapshot}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

// racingRepo читает из одного репозитория (устаревший снимок), пишет в другой
type racingRepo struct {
	reads  *fakeAppointmentRepo
	writes *fakeAppointmentRepo
}

func (r racingRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	return r.writes.Create(ctx, appt)
}

func (r racingRepo) GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return r.reads.GetByProfessionalWithFilter(ctx, filter)
}

func TestUseCase_Execute_CancelledSlotCanBeRebooked(t *testing.T) {
	uc, appts := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// отмена освобождает слот: повторная запись проходит
	for _, a := range appts.appointments {
		if a.ID == resp.ID {
			a.Status = domain.StatusCancelledByClient
		}
	}

	req := validRequest()
	req.ClientID = 200
	resp2, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, resp.ID, resp2.ID)
}

func TestUseCase_Execute_OutsideWorkingWindow(t *testing.T) {
	uc, _ := newTestUseCase()

	tests := []struct {
		name string
		date time.Time
		time string
	}{
		{name: "non-working day", date: sunday, time: "10:00"},
		{name: "before opening", date: monday, time: "08:30"},
		{name: "after closing", date: monday, time: "12:30"},
		{name: "off-grid time", date: monday, time: "10:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Date = tt.date
			req.StartTime = types.TimeString(tt.time)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideWorkingWindow)
		})
	}
}

func TestUseCase_Execute_ProfessionalNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.ProfessionalID = 999
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero client id", mutate: func(r *Request) { r.ClientID = 0 }},
		{name: "zero professional id", mutate: func(r *Request) { r.ProfessionalID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:99" }},
		{name: "empty service name", mutate: func(r *Request) { r.ServiceName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
