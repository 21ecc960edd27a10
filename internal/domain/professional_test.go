package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agendly/appointment-service/pkg/types"
)

func TestWorkingWindow_Validate(t *testing.T) {
	valid := WorkingWindow{
		FromWeekday: time.Monday,
		ToWeekday:   time.Friday,
		FromTime:    types.TimeString("09:00"),
		ToTime:      types.TimeString("18:00"),
	}

	tests := []struct {
		name    string
		mutate  func(w *WorkingWindow)
		wantErr bool
	}{
		{
			name:   "valid window",
			mutate: func(w *WorkingWindow) {},
		},
		{
			name: "single weekday",
			mutate: func(w *WorkingWindow) {
				w.FromWeekday = time.Wednesday
				w.ToWeekday = time.Wednesday
			},
		},
		{
			name: "full week",
			mutate: func(w *WorkingWindow) {
				w.FromWeekday = time.Sunday
				w.ToWeekday = time.Saturday
			},
		},
		{
			name:    "fromWeekday below range",
			mutate:  func(w *WorkingWindow) { w.FromWeekday = -1 },
			wantErr: true,
		},
		{
			name:    "toWeekday above range",
			mutate:  func(w *WorkingWindow) { w.ToWeekday = 7 },
			wantErr: true,
		},
		{
			name: "weekday range inverted, no wraparound",
			mutate: func(w *WorkingWindow) {
				w.FromWeekday = time.Friday
				w.ToWeekday = time.Monday
			},
			wantErr: true,
		},
		{
			name:    "malformed fromTime",
			mutate:  func(w *WorkingWindow) { w.FromTime = "9am" },
			wantErr: true,
		},
		{
			name:    "malformed toTime",
			mutate:  func(w *WorkingWindow) { w.ToTime = "" },
			wantErr: true,
		},
		{
			name: "fromTime equals toTime",
			mutate: func(w *WorkingWindow) {
				w.FromTime = "09:00"
				w.ToTime = "09:00"
			},
			wantErr: true,
		},
		{
			name: "fromTime after toTime",
			mutate: func(w *WorkingWindow) {
				w.FromTime = "18:00"
				w.ToTime = "09:00"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := valid
			tt.mutate(&w)

			err := w.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkingWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkingWindow_CoversWeekday(t *testing.T) {
	w := WorkingWindow{
		FromWeekday: time.Monday,
		ToWeekday:   time.Friday,
		FromTime:    types.TimeString("09:00"),
		ToTime:      types.TimeString("18:00"),
	}

	// Границы включительны
	assert.True(t, w.CoversWeekday(time.Monday))
	assert.True(t, w.CoversWeekday(time.Wednesday))
	assert.True(t, w.CoversWeekday(time.Friday))

	assert.False(t, w.CoversWeekday(time.Sunday))
	assert.False(t, w.CoversWeekday(time.Saturday))
}

func TestAppointment_Lifecycle(t *testing.T) {
	appt := Appointment{Status: StatusScheduled}
	assert.True(t, appt.IsActive())
	assert.False(t, appt.IsCancelled())
	assert.True(t, appt.CanBeCancelled())

	appt.Status = StatusConfirmed
	assert.True(t, appt.IsActive())
	assert.True(t, appt.CanBeCancelled())

	appt.Status = StatusCancelledByClient
	assert.False(t, appt.IsActive())
	assert.True(t, appt.IsCancelled())
	assert.False(t, appt.CanBeCancelled())

	// Завершенная запись не отменяется, но слот продолжает держать
	appt.Status = StatusCompleted
	assert.True(t, appt.IsActive())
	assert.False(t, appt.CanBeCancelled())

	appt.Status = StatusNoShow
	assert.False(t, appt.IsActive())
	assert.False(t, appt.CanBeCancelled())
}
