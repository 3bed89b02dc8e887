package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// testInit connects once per run. Tests are skipped entirely when no
// test database is configured.
func testInit(t *testing.T) {
	t.Helper()

	if testDB != nil {
		return
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")

	ensureSchema(t)
}

func ensureSchema(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_code TEXT NOT NULL,
			full_name TEXT NOT NULL,
			department TEXT NOT NULL,
			designation TEXT NOT NULL,
			join_date DATE NOT NULL,
			base_salary NUMERIC(14,2) NOT NULL,
			current_salary NUMERIC(14,2) NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT uk_employee_code UNIQUE (employee_code)
		)`,
		`CREATE TABLE IF NOT EXISTS payroll_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			period_month INT NOT NULL,
			period_year INT NOT NULL,
			basic_salary NUMERIC(14,2) NOT NULL,
			allowance_housing NUMERIC(14,2) NOT NULL,
			allowance_dearness NUMERIC(14,2) NOT NULL,
			allowance_transport NUMERIC(14,2) NOT NULL,
			allowance_other NUMERIC(14,2) NOT NULL,
			bonus_performance NUMERIC(14,2) NOT NULL,
			bonus_attendance NUMERIC(14,2) NOT NULL,
			bonus_other NUMERIC(14,2) NOT NULL,
			deduction_tax NUMERIC(14,2) NOT NULL,
			deduction_provident_fund NUMERIC(14,2) NOT NULL,
			deduction_social_insurance NUMERIC(14,2) NOT NULL,
			deduction_loan NUMERIC(14,2) NOT NULL,
			deduction_leave NUMERIC(14,2) NOT NULL,
			deduction_other NUMERIC(14,2) NOT NULL,
			gross_salary NUMERIC(14,2) NOT NULL,
			net_salary NUMERIC(14,2) NOT NULL,
			working_days INT NOT NULL,
			paid_leave_days INT NOT NULL,
			unpaid_leave_days INT NOT NULL,
			status TEXT NOT NULL,
			payment_date TIMESTAMPTZ,
			remarks TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT uk_payroll_employee_period UNIQUE (employee_id, period_month, period_year)
		)`,
	}

	for _, stmt := range statements {
		_, err := testDB.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

func cleanupTestData(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	for _, table := range []string{"payroll_records", "employees"} {
		_, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, employeeCode string) employee.Employee {
	t.Helper()

	repo := postgresql.NewEmployeeRepository(testDB)
	salary := decimal.NewFromInt(50000)
	emp, err := repo.Create(ctx, employee.Employee{
		EmployeeCode:  employeeCode,
		FullName:      "Jordan Smith",
		Department:    "Engineering",
		Designation:   "Engineer",
		JoinDate:      time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary:    salary,
		CurrentSalary: salary,
		Status:        employee.StatusActive,
	})
	require.NoError(t, err)
	return emp
}
