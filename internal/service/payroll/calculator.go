package payroll

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/increment"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Organization-configured salary constants. Rates apply to the basic
// salary; flat amounts are in whole currency units.
var (
	housingAllowanceRate  = decimal.RequireFromString("0.40")
	dearnessAllowanceRate = decimal.RequireFromString("0.50")
	transportAllowance    = decimal.NewFromInt(2000)
	otherAllowance        = decimal.NewFromInt(1000)

	performanceBonusRate = decimal.RequireFromString("0.10")
	attendanceBonus      = decimal.NewFromInt(500)

	taxRate             = decimal.RequireFromString("0.10")
	providentFundRate   = decimal.RequireFromString("0.12")
	socialInsuranceRate = decimal.RequireFromString("0.0175")

	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// Fixed 30-day month. Not calendar-accurate; changing it changes
	// financial output, so it stays.
	daysPerMonth = decimal.NewFromInt(30)
)

// Calculator holds the pure payroll math. No I/O, no side effects;
// callers validate inputs before invoking it.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ProjectCurrentSalary derives an employee's current salary from the base
// salary and the active increment policy as of the given date. Each
// increment step compounds on the previous step's result. The final
// amount is rounded to whole currency units; intermediate steps are not.
func (c *Calculator) ProjectCurrentSalary(baseSalary decimal.Decimal, joinDate time.Time, policy *increment.Policy, asOf time.Time) decimal.Decimal {
	if policy == nil || !policy.IsActive {
		return baseSalary
	}

	years := wholeYearsBetween(joinDate, asOf)
	if years < policy.IntervalYears {
		return baseSalary
	}

	steps := years / policy.IntervalYears
	salary := baseSalary
	for i := 0; i < steps; i++ {
		if policy.Kind == increment.KindPercentage {
			salary = salary.Mul(one.Add(policy.Value.Div(hundred)))
		} else {
			salary = salary.Add(policy.Value)
		}
	}

	return salary.Round(0)
}

// AggregateLeaveDays splits leave intervals into paid and unpaid day
// counts for the given period. An interval is attributed to the month
// containing its start date, even when it straddles a month boundary.
// Callers pass approved intervals only.
func (c *Calculator) AggregateLeaveDays(intervals []leave.Interval, month, year int) leave.Days {
	var days leave.Days
	for _, iv := range intervals {
		if int(iv.StartDate.Month()) != month || iv.StartDate.Year() != year {
			continue
		}
		if iv.IsPaid {
			days.Paid += iv.NumberOfDays
		} else {
			days.Unpaid += iv.NumberOfDays
		}
	}
	return days
}

// CompileMonthly produces the itemized payroll record for one employee
// and period. The record is uncommitted; persistence is the caller's
// concern. Gross and net are rounded to whole currency units, component
// lines keep full precision.
func (c *Calculator) CompileMonthly(emp employee.Employee, month, year int, days leave.Days) payroll.Record {
	basic := emp.CurrentSalary

	allowances := payroll.Allowances{
		Housing:   basic.Mul(housingAllowanceRate),
		Dearness:  basic.Mul(dearnessAllowanceRate),
		Transport: transportAllowance,
		Other:     otherAllowance,
	}

	bonuses := payroll.Bonuses{
		Performance: basic.Mul(performanceBonusRate),
		Attendance:  attendanceBonus,
		Other:       decimal.Zero,
	}

	perDaySalary := basic.Div(daysPerMonth)
	deductions := payroll.Deductions{
		Tax:             basic.Mul(taxRate),
		ProvidentFund:   basic.Mul(providentFundRate),
		SocialInsurance: basic.Mul(socialInsuranceRate),
		Loan:            decimal.Zero,
		Leave:           decimal.NewFromInt(int64(days.Unpaid)).Mul(perDaySalary),
		Other:           decimal.Zero,
	}

	gross := basic.Add(allowances.Total()).Add(bonuses.Total()).Round(0)
	net := gross.Sub(deductions.Total()).Round(0)

	return payroll.Record{
		EmployeeID:      emp.ID,
		Month:           month,
		Year:            year,
		BasicSalary:     basic,
		Allowances:      allowances,
		Bonuses:         bonuses,
		Deductions:      deductions,
		GrossSalary:     gross,
		NetSalary:       net,
		WorkingDays:     30 - days.Unpaid,
		PaidLeaveDays:   days.Paid,
		UnpaidLeaveDays: days.Unpaid,
		Status:          payroll.StatusProcessed,
	}
}

// wholeYearsBetween counts complete calendar years elapsed from start to
// end, the way anniversaries are counted.
func wholeYearsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	anniversary := start.AddDate(years, 0, 0)
	if anniversary.After(end) {
		years--
	}
	return years
}
