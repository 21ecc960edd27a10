package domain

import "github.com/agendly/appointment-service/pkg/types"

// AvailabilitySlot represents one slot-grid entry for a requested date,
// annotated with whether it is currently bookable
type AvailabilitySlot struct {
	Time      types.TimeString
	Available bool
	Label     string // human-readable form, truncated to HH:MM
}
