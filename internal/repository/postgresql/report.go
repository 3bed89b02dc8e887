package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

func (r *reportRepositoryImpl) GetDashboard(ctx context.Context, month, year int) (report.DashboardResponse, error) {
	q := GetQuerier(ctx, r.db)

	var resp report.DashboardResponse

	employeeQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'inactive'),
			COUNT(*) FILTER (WHERE status = 'terminated')
		FROM employees
	`
	if err := q.QueryRow(ctx, employeeQuery).Scan(
		&resp.TotalEmployees, &resp.ActiveEmployees, &resp.InactiveEmployees, &resp.TerminatedEmployees,
	); err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to get employee counters: %w", err)
	}

	departmentQuery := `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY COUNT(*) DESC
	`
	rows, err := q.Query(ctx, departmentQuery)
	if err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to get department counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var dc report.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return report.DashboardResponse{}, fmt.Errorf("failed to scan department count: %w", err)
		}
		resp.Departments = append(resp.Departments, dc)
	}
	if err = rows.Err(); err != nil {
		return report.DashboardResponse{}, err
	}

	payrollQuery := `
		SELECT COUNT(*), COALESCE(SUM(net_salary), 0)
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2
	`
	if err := q.QueryRow(ctx, payrollQuery, month, year).Scan(&resp.MonthlyPayrolls, &resp.MonthlyNetTotal); err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to get payroll counters: %w", err)
	}

	leaveQuery := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM leave_intervals
	`
	if err := q.QueryRow(ctx, leaveQuery).Scan(&resp.PendingLeaves, &resp.ApprovedLeaves, &resp.RejectedLeaves); err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to get leave counters: %w", err)
	}

	return resp, nil
}

func (r *reportRepositoryImpl) GetEmployeeStats(ctx context.Context) (report.EmployeeStatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var resp report.EmployeeStatsResponse

	rows, err := q.Query(ctx, `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return report.EmployeeStatsResponse{}, fmt.Errorf("failed to get department stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var dc report.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return report.EmployeeStatsResponse{}, fmt.Errorf("failed to scan department stat: %w", err)
		}
		resp.ByDepartment = append(resp.ByDepartment, dc)
	}
	if err = rows.Err(); err != nil {
		return report.EmployeeStatsResponse{}, err
	}

	statusRows, err := q.Query(ctx, `
		SELECT status, COUNT(*)
		FROM employees
		GROUP BY status
	`)
	if err != nil {
		return report.EmployeeStatsResponse{}, fmt.Errorf("failed to get status stats: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var sc report.StatusCount
		if err := statusRows.Scan(&sc.Status, &sc.Count); err != nil {
			return report.EmployeeStatsResponse{}, fmt.Errorf("failed to scan status stat: %w", err)
		}
		resp.ByStatus = append(resp.ByStatus, sc)
	}
	if err = statusRows.Err(); err != nil {
		return report.EmployeeStatsResponse{}, err
	}

	salaryQuery := `
		SELECT COALESCE(MIN(current_salary), 0), COALESCE(MAX(current_salary), 0),
			COALESCE(ROUND(AVG(current_salary)), 0)
		FROM employees
		WHERE status = 'active'
	`
	if err := q.QueryRow(ctx, salaryQuery).Scan(
		&resp.Salary.MinSalary, &resp.Salary.MaxSalary, &resp.Salary.AvgSalary,
	); err != nil {
		return report.EmployeeStatsResponse{}, fmt.Errorf("failed to get salary stats: %w", err)
	}

	return resp, nil
}

func (r *reportRepositoryImpl) GetPayrollStats(ctx context.Context, year int) (report.PayrollStatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var resp report.PayrollStatsResponse

	monthRows, err := q.Query(ctx, `
		SELECT period_month, period_year, COUNT(*),
			COALESCE(SUM(gross_salary), 0), COALESCE(SUM(net_salary), 0)
		FROM payroll_records
		WHERE period_year = $1
		GROUP BY period_month, period_year
		ORDER BY period_month
	`, year)
	if err != nil {
		return report.PayrollStatsResponse{}, fmt.Errorf("failed to get monthly payroll stats: %w", err)
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var ms report.MonthlyPayrollStat
		if err := monthRows.Scan(&ms.Month, &ms.Year, &ms.Count, &ms.GrossTotal, &ms.NetTotal); err != nil {
			return report.PayrollStatsResponse{}, fmt.Errorf("failed to scan monthly payroll stat: %w", err)
		}
		resp.ByMonth = append(resp.ByMonth, ms)
	}
	if err = monthRows.Err(); err != nil {
		return report.PayrollStatsResponse{}, err
	}

	deptRows, err := q.Query(ctx, `
		SELECT e.department, COUNT(*), COALESCE(SUM(p.net_salary), 0)
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.period_year = $1
		GROUP BY e.department
		ORDER BY SUM(p.net_salary) DESC
	`, year)
	if err != nil {
		return report.PayrollStatsResponse{}, fmt.Errorf("failed to get department payroll stats: %w", err)
	}
	defer deptRows.Close()
	for deptRows.Next() {
		var ds report.DepartmentPayrollStat
		if err := deptRows.Scan(&ds.Department, &ds.Count, &ds.NetTotal); err != nil {
			return report.PayrollStatsResponse{}, fmt.Errorf("failed to scan department payroll stat: %w", err)
		}
		resp.ByDepartment = append(resp.ByDepartment, ds)
	}
	if err = deptRows.Err(); err != nil {
		return report.PayrollStatsResponse{}, err
	}

	statusRows, err := q.Query(ctx, `
		SELECT status, COUNT(*)
		FROM payroll_records
		WHERE period_year = $1
		GROUP BY status
	`, year)
	if err != nil {
		return report.PayrollStatsResponse{}, fmt.Errorf("failed to get payroll status stats: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var sc report.StatusCount
		if err := statusRows.Scan(&sc.Status, &sc.Count); err != nil {
			return report.PayrollStatsResponse{}, fmt.Errorf("failed to scan payroll status stat: %w", err)
		}
		resp.ByStatus = append(resp.ByStatus, sc)
	}
	if err = statusRows.Err(); err != nil {
		return report.PayrollStatsResponse{}, err
	}

	return resp, nil
}

func (r *reportRepositoryImpl) GetLeaveStats(ctx context.Context, year int) (report.LeaveStatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var resp report.LeaveStatsResponse

	typeRows, err := q.Query(ctx, `
		SELECT type, COUNT(*),
			COALESCE(SUM(number_of_days), 0),
			COALESCE(SUM(number_of_days) FILTER (WHERE is_paid), 0),
			COALESCE(SUM(number_of_days) FILTER (WHERE NOT is_paid), 0)
		FROM leave_intervals
		WHERE status = 'approved' AND EXTRACT(YEAR FROM start_date) = $1
		GROUP BY type
		ORDER BY COUNT(*) DESC
	`, year)
	if err != nil {
		return report.LeaveStatsResponse{}, fmt.Errorf("failed to get leave type stats: %w", err)
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var ts report.LeaveTypeStat
		if err := typeRows.Scan(&ts.Type, &ts.Count, &ts.TotalDays, &ts.PaidDays, &ts.UnpaidDays); err != nil {
			return report.LeaveStatsResponse{}, fmt.Errorf("failed to scan leave type stat: %w", err)
		}
		resp.ByType = append(resp.ByType, ts)
	}
	if err = typeRows.Err(); err != nil {
		return report.LeaveStatsResponse{}, err
	}

	statusRows, err := q.Query(ctx, `
		SELECT status, COUNT(*)
		FROM leave_intervals
		WHERE EXTRACT(YEAR FROM start_date) = $1
		GROUP BY status
	`, year)
	if err != nil {
		return report.LeaveStatsResponse{}, fmt.Errorf("failed to get leave status stats: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var sc report.StatusCount
		if err := statusRows.Scan(&sc.Status, &sc.Count); err != nil {
			return report.LeaveStatsResponse{}, fmt.Errorf("failed to scan leave status stat: %w", err)
		}
		resp.ByStatus = append(resp.ByStatus, sc)
	}
	if err = statusRows.Err(); err != nil {
		return report.LeaveStatsResponse{}, err
	}

	return resp, nil
}
