package increment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/increment"
	payrollService "github.com/cmlabs-hris/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPolicyRepo struct {
	policy increment.Policy
	err    error
}

func (s *stubPolicyRepo) GetActive(ctx context.Context) (increment.Policy, error) {
	return s.policy, s.err
}

func (s *stubPolicyRepo) ReplaceActive(ctx context.Context, policy increment.Policy) (increment.Policy, error) {
	policy.ID = "policy-1"
	return policy, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository

	employees []employee.Employee
	updateErr map[string]error

	mu      sync.Mutex
	updates map[string]decimal.Decimal
}

func (s *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) UpdateCurrentSalary(ctx context.Context, id string, currentSalary decimal.Decimal) error {
	if err := s.updateErr[id]; err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updates == nil {
		s.updates = map[string]decimal.Decimal{}
	}
	s.updates[id] = currentSalary
	return nil
}

func activeEmployee(id string, base int64, joinedYearsAgo int) employee.Employee {
	salary := decimal.NewFromInt(base)
	return employee.Employee{
		ID:            id,
		BaseSalary:    salary,
		CurrentSalary: salary,
		JoinDate:      time.Now().AddDate(-joinedYearsAgo, 0, -1),
		Status:        employee.StatusActive,
	}
}

func TestApplyIncrements_NoActivePolicy(t *testing.T) {
	svc := NewIncrementService(payrollService.NewCalculator(),
		&stubPolicyRepo{err: increment.ErrNoActivePolicy},
		&stubEmployeeRepo{},
	)

	result, err := svc.ApplyIncrements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no active increment policy found", result.Message)
	assert.Equal(t, 0, result.UpdatedCount)
}

func TestApplyIncrements_UpdatesOnlyChangedSalaries(t *testing.T) {
	policyRepo := &stubPolicyRepo{policy: increment.Policy{
		ID:            "policy-1",
		IntervalYears: 1,
		Kind:          increment.KindPercentage,
		Value:         decimal.NewFromInt(10),
		IsActive:      true,
	}}
	employeeRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", 50000, 2),
		// Joined under a year ago; projection equals current salary.
		activeEmployee("emp-2", 40000, 0),
	}}

	svc := NewIncrementService(payrollService.NewCalculator(), policyRepo, employeeRepo)

	result, err := svc.ApplyIncrements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedCount)
	assert.Equal(t, 2, result.Processed)

	want := decimal.NewFromInt(60500)
	assert.True(t, want.Equal(employeeRepo.updates["emp-1"]), "got %s", employeeRepo.updates["emp-1"])
	_, touched := employeeRepo.updates["emp-2"]
	assert.False(t, touched)
}

func TestApplyIncrements_SecondRunIsNoOp(t *testing.T) {
	policyRepo := &stubPolicyRepo{policy: increment.Policy{
		ID:            "policy-1",
		IntervalYears: 1,
		Kind:          increment.KindPercentage,
		Value:         decimal.NewFromInt(10),
		IsActive:      true,
	}}
	employeeRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", 50000, 2),
	}}

	svc := NewIncrementService(payrollService.NewCalculator(), policyRepo, employeeRepo)

	first, err := svc.ApplyIncrements(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, first.UpdatedCount)

	// Persist the first run's result the way the real repository would.
	employeeRepo.employees[0].CurrentSalary = employeeRepo.updates["emp-1"]
	employeeRepo.updates = nil

	second, err := svc.ApplyIncrements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.UpdatedCount)
	assert.Equal(t, 1, second.Processed)
}

func TestApplyIncrements_PartialFailure(t *testing.T) {
	policyRepo := &stubPolicyRepo{policy: increment.Policy{
		ID:            "policy-1",
		IntervalYears: 1,
		Kind:          increment.KindFixed,
		Value:         decimal.NewFromInt(1000),
		IsActive:      true,
	}}
	updateErr := errors.New("connection reset")
	employeeRepo := &stubEmployeeRepo{
		employees: []employee.Employee{
			activeEmployee("emp-1", 50000, 3),
			activeEmployee("emp-2", 40000, 3),
		},
		updateErr: map[string]error{"emp-2": updateErr},
	}

	svc := NewIncrementService(payrollService.NewCalculator(), policyRepo, employeeRepo)

	_, err := svc.ApplyIncrements(context.Background())
	require.Error(t, err)

	var partial *increment.PartialBatchError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 2, partial.Total)
	assert.ErrorIs(t, partial, updateErr)
}

func TestReplacePolicy_Validation(t *testing.T) {
	svc := NewIncrementService(payrollService.NewCalculator(), &stubPolicyRepo{}, &stubEmployeeRepo{})

	_, err := svc.ReplacePolicy(context.Background(), increment.ReplacePolicyRequest{
		IntervalYears: 0,
		Kind:          "weekly",
		Value:         decimal.NewFromInt(-5),
	})
	require.Error(t, err)
}

func TestReplacePolicy_Success(t *testing.T) {
	svc := NewIncrementService(payrollService.NewCalculator(), &stubPolicyRepo{}, &stubEmployeeRepo{})

	got, err := svc.ReplacePolicy(context.Background(), increment.ReplacePolicyRequest{
		IntervalYears: 2,
		Kind:          "percentage",
		Value:         decimal.NewFromInt(8),
	})
	require.NoError(t, err)
	assert.Equal(t, "policy-1", got.ID)
	assert.True(t, got.IsActive)
	assert.Equal(t, 2, got.IntervalYears)
}
