package leave

import "context"

// IntervalRepository is the engine's read side of the leave subsystem.
type IntervalRepository interface {
	// GetApprovedByEmployeeMonth returns approved intervals whose start
	// date falls in the given month and year.
	GetApprovedByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Interval, error)
}
