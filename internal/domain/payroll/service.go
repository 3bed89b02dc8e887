package payroll

import "context"

type PayrollService interface {
	// Generate derives a full payroll record from the salary rules and the
	// employee's approved leave for the period.
	Generate(ctx context.Context, req GenerateRequest) (RecordResponse, error)

	// Create stores a manually itemized record; gross and net are computed
	// from the supplied components.
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter Filter) (ListRecordResponse, error)
	GetEmployeeHistory(ctx context.Context, employeeID string, year *int) ([]RecordResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) error
	DeleteRecord(ctx context.Context, id string) error
}
