package reconnect

import (
	"context"
	"path/filepath"

	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
)

// Options configure a reconnection.
type Options struct {
	// Target is an explicit run directory, or a directory to search for runs.
	// Relative targets are resolved under the application's write root.
	Target string
	// FullRecalculate recomputes every outcome from the copied raw results.
	FullRecalculate bool
}

// Discovery is the outcome of looking for previous runs of an application.
type Discovery struct {
	// Versions are the selectable extra versions in lexicographic order.
	Versions []string
	// Problem explains why no runs were found. It is empty on success.
	Problem string
}

// DiscoveryError reports that no previous run could be pinned down for reconnection.
type DiscoveryError struct {
	Message string
}

// Error implements the error interface.
func (e *DiscoveryError) Error() string {
	return e.Message
}

// Unwrap returns domain.ErrReconnectFailed.
func (e *DiscoveryError) Unwrap() error {
	return domain.ErrReconnectFailed
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache shares a run directory cache between resolvers.
func WithCache(cache *RunDirCache) Option {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// WithTracer traces discovery with the given tracer.
func WithTracer(tracer ports.Tracer) Option {
	return func(r *Resolver) {
		r.tracer = tracer
	}
}

// Resolver finds the previous run of an application to reconnect to.
// Discover records problems without failing; CheckSanity turns them into errors once a
// reconnection is actually requested.
type Resolver struct {
	opts    Options
	fs      ports.FileSystem
	logger  ports.Logger
	tracer  ports.Tracer
	cache   *RunDirCache
	scanner *Scanner

	problem      string
	reconnectDir string
}

// NewResolver creates a Resolver.
func NewResolver(opts Options, fsys ports.FileSystem, logger ports.Logger, options ...Option) *Resolver {
	r := &Resolver{
		opts:   opts,
		fs:     fsys,
		logger: logger,
		tracer: nopTracer{},
	}
	for _, opt := range options {
		opt(r)
	}
	if r.cache == nil {
		r.cache = NewRunDirCache()
	}
	r.scanner = NewScanner(fsys, r.cache, logger)
	return r
}

// Cache returns the run directory cache populated by discovery.
func (r *Resolver) Cache() *RunDirCache {
	return r.cache
}

// Discover looks for previous runs of the application and returns the extra versions
// that can be selected to reconnect to them. Any problem is also kept for CheckSanity.
func (r *Resolver) Discover(ctx context.Context, app *domain.Application) Discovery {
	_, span := r.tracer.Start(ctx, "reconnect.discover", ports.WithAttribute("app", app.Identity()))
	defer span.End()

	r.problem = ""
	d := r.discover(app)
	if d.Problem != "" {
		r.problem = d.Problem
		span.SetAttribute("problem", d.Problem)
	}
	span.SetAttribute("versions", len(d.Versions))
	return d
}

func (r *Resolver) discover(app *domain.Application) Discovery {
	target := r.opts.Target
	r.logger.Debug("Finding reconnect directory for " + app.Identity() + " under " + target)

	if target != "" {
		if ok, err := r.fs.IsDir(target); err == nil && ok {
			if _, ok := domain.ParseRunDirVersionLists(filepath.Base(target)); ok {
				return Discovery{Versions: r.scanner.Versions(app, []string{target})}
			}
		}
	}

	root := app.PreviousWriteDir(target)
	if ok, err := r.fs.IsDir(root); err != nil || !ok {
		if target == "" || root == target {
			return Discovery{Problem: "Could not find TextTest temporary directory at " + root}
		}
		return Discovery{Problem: "Could not find TextTest temporary directory for " + target + " at " + root}
	}

	r.logger.Debug("Looking for run directories under " + root)
	dirs, err := r.scanner.RunDirs(app, root)
	if err != nil {
		r.logger.Debug(err.Error())
	}
	if len(dirs) == 0 {
		return Discovery{Problem: "Could not find any runs matching " + app.Description() + " under " + root}
	}
	return Discovery{Versions: r.scanner.Versions(app, dirs)}
}

// Problem returns the problem recorded by the last Discover call.
func (r *Resolver) Problem() string {
	return r.problem
}

// CheckSanity pins down the application directory to reconnect to. It fails when
// discovery recorded a problem, when no run directory is cached for the application's
// identity, or when that run directory holds no matching application directory.
// On success every dated version becomes an unsaveable version of the application.
func (r *Resolver) CheckSanity(app *domain.Application) error {
	if r.problem != "" {
		return &DiscoveryError{Message: r.problem}
	}

	runDir, ok := r.cache.FindFor(app)
	if !ok {
		return &DiscoveryError{Message: "Could not find any runs matching " + app.Description()}
	}
	r.logger.Debug("Found run directory " + runDir)

	dir, ok := r.findAppDirUnder(app, runDir)
	if !ok {
		return &DiscoveryError{
			Message: "Could not find an application directory matching " + app.Description() +
				" for the run directory found at " + runDir,
		}
	}
	r.logger.Debug("Found application directory " + dir)
	r.reconnectDir = dir

	for _, dated := range r.cache.DatedVersions() {
		app.AddUnsaveableVersion(dated)
	}
	return nil
}

// findAppDirUnder looks for the application directory whose versions equal the
// application's, dated versions aside.
func (r *Resolver) findAppDirUnder(app *domain.Application, runDir string) (string, bool) {
	want := app.VersionSet().Difference(r.cache.datedSet())
	entries, err := r.fs.ReadDir(runDir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if set, ok := domain.ParseAppDirVersionSet(entry.Name(), app.Name); ok && set.Equal(want) {
			return filepath.Join(runDir, entry.Name()), true
		}
	}
	return "", false
}

// ReconnectDir returns the application directory found by CheckSanity.
func (r *Resolver) ReconnectDir() string {
	return r.reconnectDir
}

// Reconnector returns the per-test action reconnecting to the directory found by CheckSanity.
func (r *Resolver) Reconnector(decoder ports.StateDecoder, logger ports.Logger) *Reconnector {
	return NewReconnector(r.reconnectDir, r.opts.FullRecalculate, r.fs, decoder, logger)
}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}
