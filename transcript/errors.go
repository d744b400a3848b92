package transcript

import (
	"errors"
	"fmt"
)

// ErrNoTranscriptAvailable is the single terminal error the pipeline
// surfaces: every strategy was exhausted without a usable result. Callers
// should present it as "this video likely has no captions".
var ErrNoTranscriptAvailable = errors.New("no transcript available")

// StrategyError records the failure of one extraction strategy. Strategy
// failures are swallowed by the pipeline; the type exists so logs and the
// terminal error can name which techniques failed and why.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}
