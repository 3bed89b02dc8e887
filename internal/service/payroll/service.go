package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
)

// Working days recorded when a manual entry does not supply them; the
// form path has no leave aggregation to derive the figure from.
const defaultManualWorkingDays = 22

type PayrollServiceImpl struct {
	calc         *Calculator
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.IntervalRepository
}

func NewPayrollService(
	calc *Calculator,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.IntervalRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		calc:         calc,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
	}
}

func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	// Pre-check for an existing record. The unique constraint on the
	// table closes the remaining check-then-insert window.
	_, err = s.payrollRepo.GetRecordByEmployeePeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err == nil {
		return payroll.RecordResponse{}, payroll.ErrPayrollRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.RecordResponse{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	intervals, err := s.leaveRepo.GetApprovedByEmployeeMonth(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.RecordResponse{}, fmt.Errorf("failed to get leave intervals: %w", err)
	}

	days := s.calc.AggregateLeaveDays(intervals, req.Month, req.Year)
	record := s.calc.CompileMonthly(emp, req.Month, req.Year, days)

	created, err := s.payrollRepo.CreateRecord(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.RecordResponse{}, err
	}

	allowances := payroll.Allowances{
		Housing:   req.Allowances.Housing,
		Dearness:  req.Allowances.Dearness,
		Transport: req.Allowances.Transport,
		Other:     req.Allowances.Other,
	}
	bonuses := payroll.Bonuses{
		Performance: req.Bonuses.Performance,
		Attendance:  req.Bonuses.Attendance,
		Other:       req.Bonuses.Other,
	}
	deductions := payroll.Deductions{
		Tax:             req.Deductions.Tax,
		ProvidentFund:   req.Deductions.ProvidentFund,
		SocialInsurance: req.Deductions.SocialInsurance,
		Loan:            req.Deductions.Loan,
		Leave:           req.Deductions.Leave,
		Other:           req.Deductions.Other,
	}

	// Gross and net are always computed, never taken from the caller.
	gross := req.BasicSalary.Add(allowances.Total()).Add(bonuses.Total()).Round(0)
	net := gross.Sub(deductions.Total()).Round(0)

	workingDays := defaultManualWorkingDays
	if req.WorkingDays != nil {
		workingDays = *req.WorkingDays
	}

	record := payroll.Record{
		EmployeeID:      req.EmployeeID,
		Month:           req.Month,
		Year:            req.Year,
		BasicSalary:     req.BasicSalary,
		Allowances:      allowances,
		Bonuses:         bonuses,
		Deductions:      deductions,
		GrossSalary:     gross,
		NetSalary:       net,
		WorkingDays:     workingDays,
		PaidLeaveDays:   req.PaidLeaveDays,
		UnpaidLeaveDays: req.UnpaidLeaveDays,
		Status:          payroll.StatusProcessed,
		Remarks:         req.Remarks,
	}

	created, err := s.payrollRepo.CreateRecord(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.Filter) (payroll.ListRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	records, totalCount, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	return payroll.ListRecordResponse{
		Data:       mapToRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string, year *int) ([]payroll.RecordResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListRecordsByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	return mapToRecordResponses(records), nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.payrollRepo.MarkRecordsPaid(ctx, req.RecordIDs)
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteRecord(ctx, id)
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.Record) payroll.RecordResponse {
	var paymentDateStr *string
	if r.PaymentDate != nil {
		str := r.PaymentDate.Format(time.RFC3339)
		paymentDateStr = &str
	}

	employeeName := ""
	employeeCode := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}

	return payroll.RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		EmployeeCode: employeeCode,
		Department:   r.Department,
		Month:        r.Month,
		Year:         r.Year,
		BasicSalary:  r.BasicSalary,
		Allowances: payroll.AllowancesPayload{
			Housing:   r.Allowances.Housing,
			Dearness:  r.Allowances.Dearness,
			Transport: r.Allowances.Transport,
			Other:     r.Allowances.Other,
		},
		Bonuses: payroll.BonusesPayload{
			Performance: r.Bonuses.Performance,
			Attendance:  r.Bonuses.Attendance,
			Other:       r.Bonuses.Other,
		},
		Deductions: payroll.DeductionsPayload{
			Tax:             r.Deductions.Tax,
			ProvidentFund:   r.Deductions.ProvidentFund,
			SocialInsurance: r.Deductions.SocialInsurance,
			Loan:            r.Deductions.Loan,
			Leave:           r.Deductions.Leave,
			Other:           r.Deductions.Other,
		},
		GrossSalary:     r.GrossSalary,
		NetSalary:       r.NetSalary,
		WorkingDays:     r.WorkingDays,
		PaidLeaveDays:   r.PaidLeaveDays,
		UnpaidLeaveDays: r.UnpaidLeaveDays,
		Status:          string(r.Status),
		PaymentDate:     paymentDateStr,
		Remarks:         r.Remarks,
	}
}

func mapToRecordResponses(records []payroll.Record) []payroll.RecordResponse {
	result := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}
