package report

import "context"

// ReportRepository - read-only rollups over persisted state. No live
// consistency guarantee beyond the store's read semantics.
type ReportRepository interface {
	GetDashboard(ctx context.Context, month, year int) (DashboardResponse, error)
	GetEmployeeStats(ctx context.Context) (EmployeeStatsResponse, error)
	GetPayrollStats(ctx context.Context, year int) (PayrollStatsResponse, error)
	GetLeaveStats(ctx context.Context, year int) (LeaveStatsResponse, error)
}
