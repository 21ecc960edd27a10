package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/appointment-service/internal/domain"
)

func newTestAppointment() *domain.Appointment {
	return &domain.Appointment{
		EnterpriseID:   10,
		ProfessionalID: 1,
		ClientID:       100,
		Date:           time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		Status:         domain.StatusScheduled,
		ServiceName:    "Стрижка",
	}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), newTestAppointment())
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// Нарушение частичного уникального индекса активного слота:
	// второй конкурентный insert получает детерминированный отказ
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{
			Code:       "23505",
			Constraint: "uq_appointments_active_slot",
		})

	_, err = repo.Create(context.Background(), newTestAppointment())
	assert.ErrorIs(t, err, ErrSlotTaken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OtherUniqueViolationNotMasked(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{
			Code:       "23505",
			Constraint: "appointments_pkey",
		})

	_, err = repo.Create(context.Background(), newTestAppointment())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotTaken)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM appointments").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err = repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_Cancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Cancel(context.Background(), 42, domain.StatusCancelledByClient, "клиент передумал")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Cancel(context.Background(), 999, domain.StatusCancelledByClient, "")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_GetByProfessionalWithFilter_ExcludesInactive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	date := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(appointmentColumns).
		AddRow(int64(1), int64(10), int64(1), int64(100), nil, date, "09:00", "scheduled",
			"Стрижка", nil, nil, nil, time.Now(), time.Now())

	// отмененные и no-show исключаются запросом, а не в памяти
	mock.ExpectQuery("SELECT .+ FROM appointments WHERE professional_id = .+ AND appointment_date = .+ AND status NOT IN").
		WillReturnRows(rows)

	appointments, err := repo.GetByProfessionalWithFilter(context.Background(), domain.ProfessionalAppointmentsFilter{
		ProfessionalID: 1,
		Date:           &date,
	})
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, domain.StatusScheduled, appointments[0].Status)
}
