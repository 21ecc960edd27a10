package domain

// Slot grid constants
// The grid is global and professional-independent: candidate times every
// SlotGridStepMinutes covering the whole day. The set of slots offered to
// a professional is the subset falling inside their working window.
const (
	SlotGridStepMinutes = 30
)

// Business validation constants
const (
	MaxNameLength               = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных записей
// Используется при фильтрации занятых слотов: отмененные записи
// и no-show освобождают слот
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledByEnterprise,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}
