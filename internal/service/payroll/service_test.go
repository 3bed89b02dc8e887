package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayrollRepo struct {
	payroll.PayrollRepository

	existing *payroll.Record
	created  *payroll.Record
}

func (s *stubPayrollRepo) CreateRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	record.ID = "rec-1"
	s.created = &record
	return record, nil
}

func (s *stubPayrollRepo) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Record, error) {
	if s.existing != nil {
		return *s.existing, nil
	}
	return payroll.Record{}, payroll.ErrPayrollRecordNotFound
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository

	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type stubLeaveRepo struct {
	intervals []leave.Interval
}

func (s *stubLeaveRepo) GetApprovedByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]leave.Interval, error) {
	return s.intervals, nil
}

func newTestService(payrollRepo *stubPayrollRepo, employeeRepo *stubEmployeeRepo, leaveRepo *stubLeaveRepo) payroll.PayrollService {
	return NewPayrollService(NewCalculator(), payrollRepo, employeeRepo, leaveRepo)
}

func testEmployee(id string, currentSalary int64) employee.Employee {
	return employee.Employee{
		ID:            id,
		EmployeeCode:  "EMP001",
		FullName:      "Jordan Smith",
		CurrentSalary: decimal.NewFromInt(currentSalary),
		Status:        employee.StatusActive,
	}
}

func TestGenerate_ComputesFromLeave(t *testing.T) {
	payrollRepo := &stubPayrollRepo{}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": testEmployee("emp-1", 60000),
	}}
	leaveRepo := &stubLeaveRepo{intervals: []leave.Interval{
		{
			StartDate:    time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			NumberOfDays: 2,
			IsPaid:       false,
		},
	}}

	svc := newTestService(payrollRepo, employeeRepo, leaveRepo)

	got, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID: "emp-1",
		Month:      3,
		Year:       2025,
	})
	require.NoError(t, err)

	assert.Equal(t, "rec-1", got.ID)
	assert.Equal(t, 2, got.UnpaidLeaveDays)
	assert.Equal(t, 28, got.WorkingDays)
	assert.True(t, decimal.NewFromInt(4000).Equal(got.Deductions.Leave), "leave: %s", got.Deductions.Leave)
	assert.True(t, decimal.NewFromInt(105250).Equal(got.NetSalary), "net: %s", got.NetSalary)
	assert.Equal(t, "processed", got.Status)
}

func TestGenerate_RejectsDuplicatePeriod(t *testing.T) {
	payrollRepo := &stubPayrollRepo{existing: &payroll.Record{ID: "rec-0"}}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": testEmployee("emp-1", 60000),
	}}

	svc := newTestService(payrollRepo, employeeRepo, &stubLeaveRepo{})

	_, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID: "emp-1",
		Month:      3,
		Year:       2025,
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)
	assert.Nil(t, payrollRepo.created)
}

func TestGenerate_UnknownEmployee(t *testing.T) {
	svc := newTestService(&stubPayrollRepo{}, &stubEmployeeRepo{}, &stubLeaveRepo{})

	_, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID: "emp-missing",
		Month:      3,
		Year:       2025,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_RecomputesGrossAndNet(t *testing.T) {
	payrollRepo := &stubPayrollRepo{}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": testEmployee("emp-1", 50000),
	}}

	svc := newTestService(payrollRepo, employeeRepo, &stubLeaveRepo{})

	req := payroll.CreateRecordRequest{
		EmployeeID:  "emp-1",
		Month:       4,
		Year:        2025,
		BasicSalary: decimal.NewFromInt(50000),
	}
	req.Allowances.Housing = decimal.NewFromInt(20000)
	req.Allowances.Transport = decimal.NewFromInt(2000)
	req.Bonuses.Performance = decimal.NewFromInt(5000)
	req.Deductions.Tax = decimal.NewFromInt(5000)
	req.Deductions.Loan = decimal.NewFromInt(1500)

	got, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(77000).Equal(got.GrossSalary), "gross: %s", got.GrossSalary)
	assert.True(t, decimal.NewFromInt(70500).Equal(got.NetSalary), "net: %s", got.NetSalary)
	assert.Equal(t, 22, got.WorkingDays)
}

func TestCreate_HonorsSuppliedWorkingDays(t *testing.T) {
	payrollRepo := &stubPayrollRepo{}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": testEmployee("emp-1", 50000),
	}}

	svc := newTestService(payrollRepo, employeeRepo, &stubLeaveRepo{})

	workingDays := 26
	got, err := svc.Create(context.Background(), payroll.CreateRecordRequest{
		EmployeeID:  "emp-1",
		Month:       4,
		Year:        2025,
		BasicSalary: decimal.NewFromInt(50000),
		WorkingDays: &workingDays,
	})
	require.NoError(t, err)
	assert.Equal(t, 26, got.WorkingDays)
}

func TestListRecords_ClampsPaging(t *testing.T) {
	repo := &listingPayrollRepo{}
	svc := NewPayrollService(NewCalculator(), repo, &stubEmployeeRepo{}, &stubLeaveRepo{})

	got, err := svc.ListRecords(context.Background(), payroll.Filter{Page: -3, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, 1, repo.gotFilter.Page)
	assert.Equal(t, 10, repo.gotFilter.Limit)
}

type listingPayrollRepo struct {
	payroll.PayrollRepository

	gotFilter payroll.Filter
}

func (s *listingPayrollRepo) ListRecords(ctx context.Context, filter payroll.Filter) ([]payroll.Record, int64, error) {
	s.gotFilter = filter
	return nil, 0, nil
}
