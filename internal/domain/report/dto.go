package report

import "github.com/shopspring/decimal"

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardResponse - headline counters for the admin dashboard
type DashboardResponse struct {
	TotalEmployees      int64             `json:"total_employees"`
	ActiveEmployees     int64             `json:"active_employees"`
	InactiveEmployees   int64             `json:"inactive_employees"`
	TerminatedEmployees int64             `json:"terminated_employees"`
	Departments         []DepartmentCount `json:"departments"`
	MonthlyPayrolls     int64             `json:"monthly_payrolls"`
	MonthlyNetTotal     decimal.Decimal   `json:"monthly_net_total"`
	PendingLeaves       int64             `json:"pending_leaves"`
	ApprovedLeaves      int64             `json:"approved_leaves"`
	RejectedLeaves      int64             `json:"rejected_leaves"`
}

type SalarySummary struct {
	MinSalary decimal.Decimal `json:"min_salary"`
	MaxSalary decimal.Decimal `json:"max_salary"`
	AvgSalary decimal.Decimal `json:"avg_salary"`
}

type EmployeeStatsResponse struct {
	ByDepartment []DepartmentCount `json:"by_department"`
	ByStatus     []StatusCount     `json:"by_status"`
	Salary       SalarySummary     `json:"salary"`
}

type MonthlyPayrollStat struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Count      int64           `json:"count"`
	GrossTotal decimal.Decimal `json:"gross_total"`
	NetTotal   decimal.Decimal `json:"net_total"`
}

type DepartmentPayrollStat struct {
	Department string          `json:"department"`
	Count      int64           `json:"count"`
	NetTotal   decimal.Decimal `json:"net_total"`
}

type PayrollStatsResponse struct {
	ByMonth      []MonthlyPayrollStat    `json:"by_month"`
	ByDepartment []DepartmentPayrollStat `json:"by_department"`
	ByStatus     []StatusCount           `json:"by_status"`
}

type LeaveTypeStat struct {
	Type       string `json:"type"`
	Count      int64  `json:"count"`
	TotalDays  int64  `json:"total_days"`
	PaidDays   int64  `json:"paid_days"`
	UnpaidDays int64  `json:"unpaid_days"`
}

type LeaveStatsResponse struct {
	ByType   []LeaveTypeStat `json:"by_type"`
	ByStatus []StatusCount   `json:"by_status"`
}
