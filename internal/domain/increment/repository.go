package increment

import "context"

type PolicyRepository interface {
	GetActive(ctx context.Context) (Policy, error)

	// ReplaceActive deactivates every policy and inserts the given one as
	// active, atomically. Past policies are kept for audit.
	ReplaceActive(ctx context.Context, policy Policy) (Policy, error)
}
