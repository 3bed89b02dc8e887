package report

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

func (s *ReportServiceImpl) GetDashboard(ctx context.Context, month, year int) (report.DashboardResponse, error) {
	return s.reportRepo.GetDashboard(ctx, month, year)
}

func (s *ReportServiceImpl) GetEmployeeStats(ctx context.Context) (report.EmployeeStatsResponse, error) {
	return s.reportRepo.GetEmployeeStats(ctx)
}

func (s *ReportServiceImpl) GetPayrollStats(ctx context.Context, year int) (report.PayrollStatsResponse, error) {
	return s.reportRepo.GetPayrollStats(ctx, year)
}

func (s *ReportServiceImpl) GetLeaveStats(ctx context.Context, year int) (report.LeaveStatsResponse, error) {
	return s.reportRepo.GetLeaveStats(ctx, year)
}
