package payroll

import (
	"testing"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		req        GenerateRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  GenerateRequest{EmployeeID: "emp-1", Month: 3, Year: 2025},
		},
		{
			name:       "missing employee",
			req:        GenerateRequest{Month: 3, Year: 2025},
			wantFields: []string{"employee_id"},
		},
		{
			name:       "month out of range",
			req:        GenerateRequest{EmployeeID: "emp-1", Month: 13, Year: 2025},
			wantFields: []string{"month"},
		},
		{
			name:       "year before floor",
			req:        GenerateRequest{EmployeeID: "emp-1", Month: 3, Year: 2019},
			wantFields: []string{"year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			got := errs.ToMap()
			for _, field := range tt.wantFields {
				assert.Contains(t, got, field)
			}
		})
	}
}

func TestCreateRecordRequestValidate_NegativeComponents(t *testing.T) {
	req := CreateRecordRequest{
		EmployeeID:  "emp-1",
		Month:       3,
		Year:        2025,
		BasicSalary: decimal.NewFromInt(50000),
	}
	req.Deductions.Loan = decimal.NewFromInt(-100)
	req.Bonuses.Other = decimal.NewFromInt(-1)

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)

	got := errs.ToMap()
	assert.Contains(t, got, "deductions.loan")
	assert.Contains(t, got, "bonuses.other")
}

func TestMarkPaidRequestValidate(t *testing.T) {
	empty := MarkPaidRequest{}
	assert.Error(t, empty.Validate())

	ok := MarkPaidRequest{RecordIDs: []string{"rec-1"}}
	assert.NoError(t, ok.Validate())
}
