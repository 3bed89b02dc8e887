package increment

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/increment"
	payrollService "github.com/cmlabs-hris/payroll-backend-go/internal/service/payroll"
	"golang.org/x/sync/errgroup"
)

// Per-employee updates are independent writes, so the batch fans out.
const batchConcurrency = 8

type IncrementServiceImpl struct {
	calc         *payrollService.Calculator
	policyRepo   increment.PolicyRepository
	employeeRepo employee.EmployeeRepository
}

func NewIncrementService(
	calc *payrollService.Calculator,
	policyRepo increment.PolicyRepository,
	employeeRepo employee.EmployeeRepository,
) increment.IncrementService {
	return &IncrementServiceImpl{
		calc:         calc,
		policyRepo:   policyRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *IncrementServiceImpl) GetPolicy(ctx context.Context) (increment.PolicyResponse, error) {
	policy, err := s.policyRepo.GetActive(ctx)
	if err != nil {
		return increment.PolicyResponse{}, err
	}

	return mapToPolicyResponse(policy), nil
}

func (s *IncrementServiceImpl) ReplacePolicy(ctx context.Context, req increment.ReplacePolicyRequest) (increment.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return increment.PolicyResponse{}, err
	}

	policy := increment.Policy{
		IntervalYears: req.IntervalYears,
		Kind:          increment.Kind(req.Kind),
		Value:         req.Value,
		IsActive:      true,
		LastUpdatedBy: req.LastUpdatedBy,
	}

	replaced, err := s.policyRepo.ReplaceActive(ctx, policy)
	if err != nil {
		return increment.PolicyResponse{}, err
	}

	return mapToPolicyResponse(replaced), nil
}

func (s *IncrementServiceImpl) ApplyIncrements(ctx context.Context) (increment.ApplyIncrementsResult, error) {
	policy, err := s.policyRepo.GetActive(ctx)
	if errors.Is(err, increment.ErrNoActivePolicy) {
		return increment.ApplyIncrementsResult{
			Message: "no active increment policy found",
		}, nil
	}
	if err != nil {
		return increment.ApplyIncrementsResult{}, fmt.Errorf("failed to get active policy: %w", err)
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return increment.ApplyIncrementsResult{}, fmt.Errorf("failed to get active employees: %w", err)
	}

	now := time.Now()
	var updated, processed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			newSalary := s.calc.ProjectCurrentSalary(emp.BaseSalary, emp.JoinDate, &policy, now)
			processed.Add(1)

			// Persist only when the projection moved the salary; makes
			// re-running the batch a no-op for an unchanged policy.
			if newSalary.Equal(emp.CurrentSalary) {
				return nil
			}

			if err := s.employeeRepo.UpdateCurrentSalary(gctx, emp.ID, newSalary); err != nil {
				return fmt.Errorf("failed to update salary for employee %s: %w", emp.ID, err)
			}
			updated.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Committed updates stay committed; the caller sees how far the
		// run got and may simply re-run.
		return increment.ApplyIncrementsResult{}, &increment.PartialBatchError{
			Updated:   int(updated.Load()),
			Processed: int(processed.Load()),
			Total:     len(employees),
			Err:       err,
		}
	}

	return increment.ApplyIncrementsResult{
		Message:      fmt.Sprintf("increments applied to %d employees", updated.Load()),
		UpdatedCount: int(updated.Load()),
		Processed:    int(processed.Load()),
	}, nil
}

func mapToPolicyResponse(p increment.Policy) increment.PolicyResponse {
	return increment.PolicyResponse{
		ID:            p.ID,
		IntervalYears: p.IntervalYears,
		Kind:          string(p.Kind),
		Value:         p.Value,
		IsActive:      p.IsActive,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}
