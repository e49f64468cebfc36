package ports

// Test is the live test a previous outcome is reconnected to.
//
//go:generate mockgen -source=test.go -destination=mocks/mock_test_model.go -package=mocks
type Test interface {
	// RelPath is the test's path relative to its application directory.
	RelPath() string
	// SetExecutionHosts records the hosts the test's previous run executed on.
	SetExecutionHosts(hosts []string)
	// ChangeState installs a new state on the test.
	ChangeState(state TestState)
	// MakeWriteDirectory creates a fresh working directory for the test.
	MakeWriteDirectory() error
	// WriteTmpFile stores a raw result file of the given name in the write directory.
	WriteTmpFile(name string, data []byte) error
}

// TestFinder lists the tests available under an application directory of a run.
type TestFinder interface {
	// FindTests returns test paths relative to appDir in lexicographic order.
	FindTests(appDir string) ([]string, error)
}
