package payroll

import "context"

type PayrollRepository interface {
	// CreateRecord inserts a record. The table carries a unique constraint
	// on (employee_id, period_month, period_year); a violation is returned
	// as ErrPayrollRecordAlreadyExists so concurrent generation attempts
	// for the same key cannot both succeed.
	CreateRecord(ctx context.Context, record Record) (Record, error)

	GetRecordByID(ctx context.Context, id string) (Record, error)
	GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Record, error)
	ListRecords(ctx context.Context, filter Filter) ([]Record, int64, error)
	ListRecordsByEmployee(ctx context.Context, employeeID string, year *int) ([]Record, error)

	// MarkRecordsPaid flips status to paid and stamps the payment date.
	// Records already paid are left untouched.
	MarkRecordsPaid(ctx context.Context, ids []string) error

	// DeleteRecord removes a record that has not reached paid status.
	DeleteRecord(ctx context.Context, id string) error
}
