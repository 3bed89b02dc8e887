package increment

import "context"

type IncrementService interface {
	GetPolicy(ctx context.Context) (PolicyResponse, error)
	ReplacePolicy(ctx context.Context, req ReplacePolicyRequest) (PolicyResponse, error)

	// ApplyIncrements recomputes the current salary of every active
	// employee and persists only those that changed. Not atomic across
	// employees; a failure partway returns *PartialBatchError.
	ApplyIncrements(ctx context.Context) (ApplyIncrementsResult, error)
}
