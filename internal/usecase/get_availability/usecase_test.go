package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/appointment-service/internal/domain"
	professionalRepo "github.com/agendly/appointment-service/internal/infra/storage/professional"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

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

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
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

func newTestUseCase(appointments ...*domain.Appointment) *UseCase {
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
	return NewUseCase(profs, &fakeAppointmentRepo{appointments: appointments}, time.UTC, nopLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	uc := newTestUseCase(&domain.Appointment{
		ID:             1,
		ProfessionalID: 1,
		Date:           monday,
		StartTime:      "10:00",
		Status:         domain.StatusConfirmed,
	})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 7)
	assert.Equal(t, "09:00", resp.Slots[0].Label)
	assert.Equal(t, "12:00", resp.Slots[6].Label)

	for _, slot := range resp.Slots {
		if slot.Time == "10:00" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available)
		}
	}
}

func TestUseCase_Execute_NonWorkingDay(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_CancelledAppointmentFreesSlot(t *testing.T) {
	appt := &domain.Appointment{
		ID:             1,
		ProfessionalID: 1,
		Date:           monday,
		StartTime:      "10:00",
		Status:         domain.StatusConfirmed,
	}
	uc := newTestUseCase(appt)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
	require.NoError(t, err)
	assert.False(t, resp.Slots[2].Available)

	appt.Status = domain.StatusCancelledByClient

	resp, err = uc.Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
	require.NoError(t, err)
	assert.True(t, resp.Slots[2].Available)
}

func TestUseCase_Execute_ProfessionalNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 999, Date: monday})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero professional id", req: &Request{ProfessionalID: 0, Date: monday}},
		{name: "zero date", req: &Request{ProfessionalID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_ReferenceTimezoneAnchorsWeekday(t *testing.T) {
	// 2025-10-06 23:00 UTC уже вторник в UTC+3, но дата-компонента
	// запроса - понедельник: день недели берется от календарной даты,
	// пересобранной в референсной таймзоне
	uc := newTestUseCase()

	late := time.Date(2025, 10, 6, 23, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, Date: late})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 7)
}
