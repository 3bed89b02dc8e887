package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Create_DuplicateCode(t *testing.T) {
	testInit(t)
	defer cleanupTestData(t)
	ctx := context.Background()

	original := createTestEmployee(t, ctx, "EMP001")

	repo := postgresql.NewEmployeeRepository(testDB)
	_, err := repo.Create(ctx, employee.Employee{
		EmployeeCode:  "EMP001",
		FullName:      "Someone Else",
		Department:    "Finance",
		Designation:   "Analyst",
		JoinDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary:    decimal.NewFromInt(40000),
		CurrentSalary: decimal.NewFromInt(40000),
		Status:        employee.StatusActive,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	// The original row is untouched by the rejected insert.
	kept, err := repo.GetByEmployeeCode(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, original.ID, kept.ID)
	assert.Equal(t, "Jordan Smith", kept.FullName)
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	testInit(t)
	defer cleanupTestData(t)
	ctx := context.Background()

	repo := postgresql.NewEmployeeRepository(testDB)
	_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_UpdateCurrentSalary(t *testing.T) {
	testInit(t)
	defer cleanupTestData(t)
	ctx := context.Background()

	emp := createTestEmployee(t, ctx, "EMP002")

	repo := postgresql.NewEmployeeRepository(testDB)
	newSalary := decimal.NewFromInt(60500)
	require.NoError(t, repo.UpdateCurrentSalary(ctx, emp.ID, newSalary))

	updated, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, newSalary.Equal(updated.CurrentSalary), "got %s", updated.CurrentSalary)
	assert.True(t, emp.BaseSalary.Equal(updated.BaseSalary))
}
