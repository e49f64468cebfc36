package ports

// Renderer is the abstraction for reconnect progress output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnVersions is called with the selectable extra versions discovered for an application.
	// problem is non-empty when discovery failed.
	OnVersions(app string, versions []string, problem string)

	// OnApplicationStart is called once an application's reconnect directory is pinned down.
	OnApplicationStart(app, reconnectDir string)

	// OnTestReconnected is called for each test. A nil state means the test's
	// results were copied and must be recomputed.
	OnTestReconnected(app, relPath string, state TestState)

	// OnTestFailed is called when a test's files could not be copied.
	OnTestFailed(app, relPath string, err error)

	// OnSummary is called when all tests of an application have been handled.
	OnSummary(app string, hydrated, recomputed, failed int)
}
