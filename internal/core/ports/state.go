package ports

import "io"

// TestState is a previously computed test outcome. Its content is owned by the
// StateDecoder that produced it; reconnection only inspects it through this interface.
//
//go:generate mockgen -source=state.go -destination=mocks/mock_state.go -package=mocks
type TestState interface {
	// Category is the short outcome category, e.g. "success" or "failure".
	Category() string
	// HasResults reports whether the outcome already contains completed comparison results.
	HasResults() bool
	// ExecutionHosts returns the hosts the test ran on.
	ExecutionHosts() []string
	// ClearLifecycleChange drops the marker that flags the outcome as complete.
	ClearLifecycleChange()
}

// StateDecoder reads serialized test outcomes.
type StateDecoder interface {
	// Decode reads an outcome from r. Absolute paths recorded under the outcome's
	// original temporary root are rewritten to live under newTmpRoot.
	Decode(r io.Reader, newTmpRoot string) (TestState, error)
}
