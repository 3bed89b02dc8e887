package report

import "context"

type ReportService interface {
	GetDashboard(ctx context.Context, month, year int) (DashboardResponse, error)
	GetEmployeeStats(ctx context.Context) (EmployeeStatsResponse, error)
	GetPayrollStats(ctx context.Context, year int) (PayrollStatsResponse, error)
	GetLeaveStats(ctx context.Context, year int) (LeaveStatsResponse, error)
}
