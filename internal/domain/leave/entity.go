package leave

import "time"

// Interval is a recorded leave request. The payroll engine only reads
// these; the approval workflow lives in the leave subsystem.
type Interval struct {
	ID           string
	EmployeeID   string
	Type         Type
	StartDate    time.Time
	EndDate      time.Time // inclusive
	NumberOfDays int
	IsPaid       bool
	Status       Status
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Type string

const (
	TypeSick      Type = "sick"
	TypeCasual    Type = "casual"
	TypeAnnual    Type = "annual"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
	TypeOther     Type = "other"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Days is the paid/unpaid split of an employee's leave within one period.
type Days struct {
	Paid   int
	Unpaid int
}
