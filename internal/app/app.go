// Package app implements the application layer for reattach.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/reattach/internal/adapters/detector"
	"go.trai.ch/reattach/internal/adapters/linear"
	"go.trai.ch/reattach/internal/adapters/teststate"
	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/reattach/internal/engine/reconnect"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	finder       ports.TestFinder
	decoder      ports.StateDecoder
	logger       ports.Logger
	tracer       ports.Tracer

	stdout   io.Writer
	stderr   io.Writer
	renderer ports.Renderer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	finder ports.TestFinder,
	decoder ports.StateDecoder,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		fs:           fsys,
		finder:       finder,
		decoder:      decoder,
		logger:       log,
		tracer:       tracer,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects rendered progress.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithRenderer replaces the linear renderer otherwise created for each run.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// CommonOptions are shared by every command operating on the suite.
type CommonOptions struct {
	// ConfigPath is an explicit configuration file. When empty, reattach.yaml is searched
	// for from the working directory upwards.
	ConfigPath string
	// Apps restricts the command to the named applications. Empty means all of them.
	Apps []string
	// Target is an explicit run directory, or a directory to search for runs.
	Target string
	// OutputMode is one of auto, color or plain.
	OutputMode string
}

// VersionsOptions configuration for the Versions method.
type VersionsOptions struct {
	CommonOptions
}

// ReconnectOptions configuration for the Reconnect method.
type ReconnectOptions struct {
	CommonOptions
	// Version is the extra version to reconnect to, as listed by Versions.
	Version string
	// FullRecalculate recomputes every outcome from the copied raw results.
	FullRecalculate bool
	// WorkDir is where reconnected tests are written. It defaults to .reattach/work
	// next to the configuration file.
	WorkDir string
}

// Versions discovers previous runs of each application and renders the extra versions
// that can be reconnected to. Discovery problems are rendered, not returned.
func (a *App) Versions(ctx context.Context, opts VersionsOptions) error {
	_, apps, renderer, err := a.prepare(opts.CommonOptions)
	if err != nil {
		return err
	}

	target, err := expandTarget(opts.Target)
	if err != nil {
		return err
	}

	cache := reconnect.NewRunDirCache()
	for _, application := range apps {
		resolver := a.newResolver(reconnect.Options{Target: target}, cache)
		discovery := resolver.Discover(ctx, application)
		renderer.OnVersions(application.Name, discovery.Versions, discovery.Problem)
	}
	return nil
}

// Reconnect reattaches the tests of each application to the outcomes of a previous run.
func (a *App) Reconnect(ctx context.Context, opts ReconnectOptions) error {
	suite, apps, renderer, err := a.prepare(opts.CommonOptions)
	if err != nil {
		return err
	}

	target, err := expandTarget(opts.Target)
	if err != nil {
		return err
	}

	workRoot := opts.WorkDir
	if workRoot == "" {
		workRoot = filepath.Join(suite.Root, domain.DefaultWorkPath())
	}

	cache := reconnect.NewRunDirCache()
	failed := 0
	var errs error
	for _, application := range apps {
		resolver := a.newResolver(reconnect.Options{Target: target, FullRecalculate: opts.FullRecalculate}, cache)
		n, err := a.reconnectApplication(ctx, resolver, application, opts.Version, workRoot, renderer)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		failed += n
	}

	if errs != nil {
		return errs
	}
	if failed > 0 {
		return zerr.With(domain.ErrReconnectIncomplete, "failed", failed)
	}
	return nil
}

// reconnectApplication reconnects every test of one application and returns how many
// of them failed.
func (a *App) reconnectApplication(
	ctx context.Context,
	resolver *reconnect.Resolver,
	application *domain.Application,
	version string,
	workRoot string,
	renderer ports.Renderer,
) (int, error) {
	ctx, span := a.tracer.Start(ctx, "reconnect.application", ports.WithAttribute("app", application.Name))
	defer span.End()

	discovery := resolver.Discover(ctx, application)
	selected := application
	if version != "" {
		if discovery.Problem == "" && !slices.Contains(discovery.Versions, version) {
			err := zerr.With(zerr.With(domain.ErrUnknownVersion, "version", version), "app", application.Name)
			span.RecordError(err)
			return 0, err
		}
		selected = application.WithExtraVersion(version)
	}

	if err := resolver.CheckSanity(selected); err != nil {
		span.RecordError(err)
		return 0, zerr.With(err, "app", selected.Identity())
	}

	reconnectDir := resolver.ReconnectDir()
	renderer.OnApplicationStart(application.Name, reconnectDir)

	tests := selected.Tests
	if len(tests) == 0 {
		found, err := a.finder.FindTests(reconnectDir)
		if err != nil {
			span.RecordError(err)
			return 0, zerr.With(err, "app", selected.Identity())
		}
		tests = found
	}

	reconnector := resolver.Reconnector(a.decoder, a.logger)
	hydrated, recomputed, failed := 0, 0, 0
	for _, relPath := range tests {
		test := teststate.NewTest(selected, relPath, workRoot)
		state, err := a.reconnectTest(ctx, reconnector, test)
		switch {
		case err != nil:
			failed++
			renderer.OnTestFailed(application.Name, relPath, err)
		case state == nil:
			recomputed++
			renderer.OnTestReconnected(application.Name, relPath, nil)
		default:
			hydrated++
			renderer.OnTestReconnected(application.Name, relPath, state)
		}
	}
	renderer.OnSummary(application.Name, hydrated, recomputed, failed)

	if !selected.IsSaveable() {
		a.logger.Debug(fmt.Sprintf("Results of %s must not be saved, versions %s identify a single run",
			selected.Identity(), strings.Join(selected.UnsaveableVersions(), ", ")))
	}
	span.SetAttribute("tests", len(tests))
	span.SetAttribute("failed", failed)
	return failed, nil
}

func (a *App) reconnectTest(ctx context.Context, reconnector *reconnect.Reconnector, test *teststate.Test) (ports.TestState, error) {
	_, span := a.tracer.Start(ctx, "reconnect.test", ports.WithAttribute("test", test.RelPath()))
	defer span.End()

	state, err := reconnector.Reconnect(test)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("recomputing", state == nil)
	if state != nil {
		span.SetAttribute("category", state.Category())
	}

	if err := test.Save(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return state, nil
}

// prepare loads the suite, selects the requested applications and creates the renderer.
func (a *App) prepare(opts CommonOptions) (*domain.Suite, []*domain.Application, ports.Renderer, error) {
	mode, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return nil, nil, nil, err
	}

	suite, err := a.loadSuite(opts.ConfigPath)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	apps, err := selectApplications(suite, opts.Apps)
	if err != nil {
		return nil, nil, nil, err
	}

	if a.renderer != nil {
		return suite, apps, a.renderer, nil
	}
	renderer := linear.NewRenderer(a.stdout, a.stderr, detector.Colored(mode))
	return suite, apps, renderer, nil
}

func (a *App) loadSuite(configPath string) (*domain.Suite, error) {
	if configPath != "" {
		return a.configLoader.LoadFile(configPath)
	}
	return a.configLoader.Load(".")
}

func (a *App) newResolver(opts reconnect.Options, cache *reconnect.RunDirCache) *reconnect.Resolver {
	return reconnect.NewResolver(opts, a.fs, a.logger,
		reconnect.WithCache(cache),
		reconnect.WithTracer(a.tracer),
	)
}

// selectApplications returns the named applications in the order given, or every
// configured application when no names are given.
func selectApplications(suite *domain.Suite, names []string) ([]*domain.Application, error) {
	if len(suite.Applications) == 0 {
		return nil, domain.ErrNoApplications
	}
	if len(names) == 0 {
		return suite.Applications, nil
	}

	apps := make([]*domain.Application, 0, len(names))
	for _, name := range names {
		application, ok := suite.Application(name)
		if !ok {
			return nil, zerr.With(domain.ErrApplicationNotFound, "app", name)
		}
		apps = append(apps, application)
	}
	return apps, nil
}

// expandTarget resolves a leading ~ in an explicit target.
func expandTarget(target string) (string, error) {
	if target == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(target)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHomeDirExpandFailed.Error()), "path", target)
	}
	return expanded, nil
}
