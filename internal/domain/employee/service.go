package employee

import "context"

// EmployeeService defines the directory operations the engine's host exposes.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	OverrideCurrentSalary(ctx context.Context, req OverrideSalaryRequest) (EmployeeResponse, error)
}
