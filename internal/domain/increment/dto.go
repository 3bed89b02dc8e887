package increment

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ReplacePolicyRequest struct {
	IntervalYears int             `json:"interval_years"`
	Kind          string          `json:"kind"` // "percentage" or "fixed"
	Value         decimal.Decimal `json:"value"`
	LastUpdatedBy *string         `json:"-"`
}

func (r *ReplacePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IntervalYears < 1 {
		errs = append(errs, validator.ValidationError{Field: "interval_years", Message: "must be at least 1"})
	}
	if r.Kind != string(KindPercentage) && r.Kind != string(KindFixed) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'percentage' or 'fixed'"})
	}
	if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID            string          `json:"id"`
	IntervalYears int             `json:"interval_years"`
	Kind          string          `json:"kind"`
	Value         decimal.Decimal `json:"value"`
	IsActive      bool            `json:"is_active"`
	LastUpdatedBy *string         `json:"last_updated_by,omitempty"`
}

// ApplyIncrementsResult reports a completed batch run. A run with no
// active policy is a no-op result, not an error.
type ApplyIncrementsResult struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
	Processed    int    `json:"processed"`
}
