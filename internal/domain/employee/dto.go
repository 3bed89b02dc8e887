package employee

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Department   string          `json:"department"`
	Designation  string          `json:"designation"`
	JoinDate     string          `json:"join_date"` // YYYY-MM-DD
	BaseSalary   decimal.Decimal `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match EMP followed by 3-6 digits"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"active", "inactive", "terminated"}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, inactive or terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OverrideSalaryRequest sets an employee's current salary directly,
// bypassing the projection. Administrative action.
type OverrideSalaryRequest struct {
	ID            string          `json:"-"`
	CurrentSalary decimal.Decimal `json:"current_salary"`
}

func (r *OverrideSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CurrentSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "current_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Page       int
	Limit      int
	Search     string
	Department string
	Status     string
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	EmployeeCode  string          `json:"employee_code"`
	FullName      string          `json:"full_name"`
	Department    string          `json:"department"`
	Designation   string          `json:"designation"`
	JoinDate      string          `json:"join_date"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	CurrentSalary decimal.Decimal `json:"current_salary"`
	Status        string          `json:"status"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
