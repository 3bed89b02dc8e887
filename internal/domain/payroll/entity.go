package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allowances - itemized monthly allowances
type Allowances struct {
	Housing   decimal.Decimal
	Dearness  decimal.Decimal
	Transport decimal.Decimal
	Other     decimal.Decimal
}

func (a Allowances) Total() decimal.Decimal {
	return a.Housing.Add(a.Dearness).Add(a.Transport).Add(a.Other)
}

// Bonuses - itemized monthly bonuses
type Bonuses struct {
	Performance decimal.Decimal
	Attendance  decimal.Decimal
	Other       decimal.Decimal
}

func (b Bonuses) Total() decimal.Decimal {
	return b.Performance.Add(b.Attendance).Add(b.Other)
}

// Deductions - itemized monthly deductions
type Deductions struct {
	Tax             decimal.Decimal
	ProvidentFund   decimal.Decimal
	SocialInsurance decimal.Decimal
	Loan            decimal.Decimal
	Leave           decimal.Decimal
	Other           decimal.Decimal
}

func (d Deductions) Total() decimal.Decimal {
	return d.Tax.Add(d.ProvidentFund).Add(d.SocialInsurance).Add(d.Loan).Add(d.Leave).Add(d.Other)
}

// Status enum
type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// Record is one employee's payroll for one (month, year) period.
// BasicSalary is a snapshot of the employee's current salary at
// generation time; later increments never touch existing records.
type Record struct {
	ID              string
	EmployeeID      string
	Month           int
	Year            int
	BasicSalary     decimal.Decimal
	Allowances      Allowances
	Bonuses         Bonuses
	Deductions      Deductions
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal
	WorkingDays     int
	PaidLeaveDays   int
	UnpaidLeaveDays int
	Status          Status
	PaymentDate     *time.Time
	Remarks         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
