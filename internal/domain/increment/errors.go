package increment

import (
	"errors"
	"fmt"
)

var ErrNoActivePolicy = errors.New("no active increment policy")

// PartialBatchError reports an increment run that stopped partway.
// Updates committed before the failure stay committed; re-running is
// safe because projection is idempotent for an unchanged policy.
type PartialBatchError struct {
	Updated   int
	Processed int
	Total     int
	Err       error
}

func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("increment batch stopped after %d of %d active employees (%d updated): %v",
		e.Processed, e.Total, e.Updated, e.Err)
}

func (e *PartialBatchError) Unwrap() error {
	return e.Err
}
