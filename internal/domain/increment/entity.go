package increment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy is an organization-wide salary increment configuration.
// At most one policy is active at any time.
type Policy struct {
	ID            string
	IntervalYears int
	Kind          Kind
	Value         decimal.Decimal
	IsActive      bool
	LastUpdatedBy *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)
