package domain

import (
	"fmt"
	"time"

	"github.com/agendly/appointment-service/pkg/types"
)

// WorkingWindow describes when a professional accepts appointments:
// an inclusive weekday range (no wraparound across the week boundary)
// and an inclusive daily time range. All values are interpreted in the
// service's single reference timezone.
type WorkingWindow struct {
	FromWeekday time.Weekday // 0 = Sunday
	ToWeekday   time.Weekday
	FromTime    types.TimeString
	ToTime      types.TimeString
}

// Validate checks the window invariants. Malformed windows are rejected
// here, at creation/edit time, so query paths can assume a valid window.
func (w WorkingWindow) Validate() error {
	if w.FromWeekday < time.Sunday || w.FromWeekday > time.Saturday {
		return fmt.Errorf("%w: fromWeekday %d out of range [0,6]", ErrInvalidWorkingWindow, w.FromWeekday)
	}
	if w.ToWeekday < time.Sunday || w.ToWeekday > time.Saturday {
		return fmt.Errorf("%w: toWeekday %d out of range [0,6]", ErrInvalidWorkingWindow, w.ToWeekday)
	}
	if w.FromWeekday > w.ToWeekday {
		return fmt.Errorf("%w: fromWeekday %d after toWeekday %d", ErrInvalidWorkingWindow, w.FromWeekday, w.ToWeekday)
	}
	if err := w.FromTime.Validate(); err != nil {
		return fmt.Errorf("%w: fromTime: %v", ErrInvalidWorkingWindow, err)
	}
	if err := w.ToTime.Validate(); err != nil {
		return fmt.Errorf("%w: toTime: %v", ErrInvalidWorkingWindow, err)
	}
	if !w.FromTime.IsBefore(w.ToTime) {
		return fmt.Errorf("%w: fromTime %s must be before toTime %s", ErrInvalidWorkingWindow, w.FromTime, w.ToTime)
	}
	return nil
}

// CoversWeekday reports whether the professional works on the given weekday
func (w WorkingWindow) CoversWeekday(d time.Weekday) bool {
	return d >= w.FromWeekday && d <= w.ToWeekday
}

// Professional represents a service professional registered by an enterprise
type Professional struct {
	ID           int64
	EnterpriseID int64
	Name         string
	Window       WorkingWindow
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
