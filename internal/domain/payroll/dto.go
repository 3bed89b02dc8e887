package payroll

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const minPayrollYear = 2020

// GenerateRequest asks the engine to derive a full payroll record for an
// employee and period from the organization's salary rules.
type GenerateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < minPayrollYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AllowancesPayload struct {
	Housing   decimal.Decimal `json:"housing"`
	Dearness  decimal.Decimal `json:"dearness"`
	Transport decimal.Decimal `json:"transport"`
	Other     decimal.Decimal `json:"other"`
}

type BonusesPayload struct {
	Performance decimal.Decimal `json:"performance"`
	Attendance  decimal.Decimal `json:"attendance"`
	Other       decimal.Decimal `json:"other"`
}

type DeductionsPayload struct {
	Tax             decimal.Decimal `json:"tax"`
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	SocialInsurance decimal.Decimal `json:"social_insurance"`
	Loan            decimal.Decimal `json:"loan"`
	Leave           decimal.Decimal `json:"leave"`
	Other           decimal.Decimal `json:"other"`
}

// CreateRecordRequest is the manual entry point: the caller supplies the
// itemized components and the engine only computes gross and net.
type CreateRecordRequest struct {
	EmployeeID      string            `json:"employee_id"`
	Month           int               `json:"month"`
	Year            int               `json:"year"`
	BasicSalary     decimal.Decimal   `json:"basic_salary"`
	Allowances      AllowancesPayload `json:"allowances"`
	Bonuses         BonusesPayload    `json:"bonuses"`
	Deductions      DeductionsPayload `json:"deductions"`
	WorkingDays     *int              `json:"working_days,omitempty"`
	PaidLeaveDays   int               `json:"paid_leave_days"`
	UnpaidLeaveDays int               `json:"unpaid_leave_days"`
	Remarks         *string           `json:"remarks,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < minPayrollYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	for field, v := range map[string]decimal.Decimal{
		"allowances.housing":          r.Allowances.Housing,
		"allowances.dearness":         r.Allowances.Dearness,
		"allowances.transport":        r.Allowances.Transport,
		"allowances.other":            r.Allowances.Other,
		"bonuses.performance":         r.Bonuses.Performance,
		"bonuses.attendance":          r.Bonuses.Attendance,
		"bonuses.other":               r.Bonuses.Other,
		"deductions.tax":              r.Deductions.Tax,
		"deductions.provident_fund":   r.Deductions.ProvidentFund,
		"deductions.social_insurance": r.Deductions.SocialInsurance,
		"deductions.loan":             r.Deductions.Loan,
		"deductions.leave":            r.Deductions.Leave,
		"deductions.other":            r.Deductions.Other,
	} {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.WorkingDays != nil && *r.WorkingDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be non-negative"})
	}
	if r.PaidLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "paid_leave_days", Message: "must be non-negative"})
	}
	if r.UnpaidLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "unpaid_leave_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	RecordIDs []string `json:"record_ids"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "record_ids", Message: "at least one record id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	Page   int
	Limit  int
	Month  *int
	Year   *int
	Status string
}

type RecordResponse struct {
	ID              string            `json:"id"`
	EmployeeID      string            `json:"employee_id"`
	EmployeeName    string            `json:"employee_name,omitempty"`
	EmployeeCode    string            `json:"employee_code,omitempty"`
	Department      *string           `json:"department,omitempty"`
	Month           int               `json:"month"`
	Year            int               `json:"year"`
	BasicSalary     decimal.Decimal   `json:"basic_salary"`
	Allowances      AllowancesPayload `json:"allowances"`
	Bonuses         BonusesPayload    `json:"bonuses"`
	Deductions      DeductionsPayload `json:"deductions"`
	GrossSalary     decimal.Decimal   `json:"gross_salary"`
	NetSalary       decimal.Decimal   `json:"net_salary"`
	WorkingDays     int               `json:"working_days"`
	PaidLeaveDays   int               `json:"paid_leave_days"`
	UnpaidLeaveDays int               `json:"unpaid_leave_days"`
	Status          string            `json:"status"`
	PaymentDate     *string           `json:"payment_date,omitempty"`
	Remarks         *string           `json:"remarks,omitempty"`
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
