package app_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reattach/internal/adapters/fs"
	"go.trai.ch/reattach/internal/adapters/telemetry"
	"go.trai.ch/reattach/internal/adapters/teststate"
	"go.trai.ch/reattach/internal/app"
	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/reattach/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	baseRun  = "hello.x.20230102.4242"
	extraRun = "hello.x.y.20230103.4243"
)

type fixture struct {
	runs   string
	work   string
	suite  *domain.Suite
	app    *app.App
	loader *mocks.MockConfigLoader
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newFixture lays out two previous runs of application hello, version x: one with the
// base versions and one that also carries the extra version y.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	root := t.TempDir()
	runs := filepath.Join(root, "runs")

	base := filepath.Join(runs, baseRun, "hello.x")
	writeFile(t, filepath.Join(base, "suite", "t1", "framework_tmp", "teststate"), "category: success\n")
	writeFile(t, filepath.Join(base, "suite", "t1", "output.hello.x"), "hello\n")
	writeFile(t, filepath.Join(base, "suite", "t2", "output"), "recompute me\n")

	extra := filepath.Join(runs, extraRun, "hello.x.y")
	writeFile(t, filepath.Join(extra, "suite", "t1", "framework_tmp", "teststate"), "category: failure\n")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := newQuietLogger(ctrl)

	suite := &domain.Suite{
		Root:    root,
		TmpRoot: runs,
		Applications: []*domain.Application{
			{Name: "hello", Versions: []string{"x"}, WriteDirRoot: runs},
		},
	}

	var stdout, stderr bytes.Buffer
	a := app.New(loader, fs.NewOSFS(), fs.NewWalker(), teststate.NewCodec(), log, telemetry.NewNoOpTracer()).
		WithOutput(&stdout, &stderr)

	return &fixture{
		runs:   runs,
		work:   filepath.Join(root, "work"),
		suite:  suite,
		app:    a,
		loader: loader,
		stdout: &stdout,
		stderr: &stderr,
	}
}

func newQuietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func plain() app.CommonOptions {
	return app.CommonOptions{OutputMode: "plain"}
}

func TestApp_Versions(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	err := f.app.Versions(t.Context(), app.VersionsOptions{CommonOptions: plain()})
	require.NoError(t, err)
	assert.Equal(t, "[hello] y\n", f.stdout.String())
	assert.Empty(t, f.stderr.String())
}

func TestApp_Versions_Problem(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	opts := plain()
	opts.Target = filepath.Join(f.runs, "missing")
	err := f.app.Versions(t.Context(), app.VersionsOptions{CommonOptions: opts})
	require.NoError(t, err)
	assert.Empty(t, f.stdout.String())
	assert.Equal(t, "[hello] ! Could not find TextTest temporary directory at "+opts.Target+"\n", f.stderr.String())
}

func TestApp_Versions_ConfigFile(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().LoadFile("/etc/reattach.yaml").Return(f.suite, nil)

	opts := plain()
	opts.ConfigPath = "/etc/reattach.yaml"
	require.NoError(t, f.app.Versions(t.Context(), app.VersionsOptions{CommonOptions: opts}))
}

func TestApp_Reconnect(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	err := f.app.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: plain(), WorkDir: f.work})
	require.NoError(t, err)

	reconnectDir := filepath.Join(f.runs, baseRun, "hello.x")
	assert.Equal(t,
		"[hello] Reconnecting to test results in directory "+reconnectDir+"\n"+
			"[hello] ✓ suite/t1 (state success)\n"+
			"[hello] ~ suite/t2 (recomputing)\n"+
			"[hello] ✓ 1 restored, 1 recomputing, 0 failed\n",
		f.stdout.String(),
	)

	saved, err := os.ReadFile(domain.StateFilePath(filepath.Join(f.work, "hello.x", "suite", "t1")))
	require.NoError(t, err)
	assert.Contains(t, string(saved), "category: success")

	copied, err := os.ReadFile(filepath.Join(f.work, "hello.x", "suite", "t2", "output.hello.x"))
	require.NoError(t, err)
	assert.Equal(t, "recompute me\n", string(copied))
}

func TestApp_Reconnect_ExtraVersion(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	err := f.app.Reconnect(t.Context(), app.ReconnectOptions{
		CommonOptions: plain(),
		Version:       "y",
		WorkDir:       f.work,
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), filepath.Join(f.runs, extraRun, "hello.x.y"))
	assert.Contains(t, f.stdout.String(), "[hello] ✗ suite/t1 (state failure)\n")
	assert.Equal(t, []string{"x"}, f.suite.Applications[0].Versions)
}

func TestApp_Reconnect_ExplicitTests(t *testing.T) {
	f := newFixture(t)
	f.suite.Applications[0].Tests = []string{"suite/t1", "suite/gone"}
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	err := f.app.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: plain(), WorkDir: f.work})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "[hello] ✗ suite/gone (state unrunnable)\n")
	assert.Contains(t, f.stdout.String(), "[hello] ✓ 2 restored, 0 recomputing, 0 failed\n")
}

func TestApp_Reconnect_UnknownVersion(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	err := f.app.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: plain(), Version: "z", WorkDir: f.work})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownVersion.Error())
	assert.Empty(t, f.stdout.String())
}

func TestApp_Reconnect_NoRuns(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	opts := plain()
	opts.Target = filepath.Join(f.runs, "missing")
	err := f.app.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: opts, WorkDir: f.work})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReconnectFailed)
	assert.ErrorContains(t, err, "Could not find TextTest temporary directory at "+opts.Target)
}

func TestApp_Reconnect_CopyFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	// A file where the work root should be makes every write directory fail.
	writeFile(t, f.work, "not a directory")

	err := f.app.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: plain(), WorkDir: f.work})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReconnectIncomplete.Error())
	assert.Contains(t, f.stderr.String(), "[hello] ✗ suite/t2 failed: ")
	assert.Contains(t, f.stdout.String(), "[hello] ✗ 0 restored, 0 recomputing, 2 failed\n")
}

func TestApp_UnknownApplication(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	opts := plain()
	opts.Apps = []string{"world"}
	err := f.app.Versions(t.Context(), app.VersionsOptions{CommonOptions: opts})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrApplicationNotFound.Error())
}

func TestApp_NoApplications(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(&domain.Suite{Root: f.runs}, nil)

	err := f.app.Versions(t.Context(), app.VersionsOptions{CommonOptions: plain()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoApplications)
}

func TestApp_InvalidOutputMode(t *testing.T) {
	f := newFixture(t)

	err := f.app.Versions(t.Context(), app.VersionsOptions{CommonOptions: app.CommonOptions{OutputMode: "tui"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidOutputMode.Error())
}

func TestApp_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	err := f.app.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: plain()})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Reconnect_RendererEvents(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	reconnectDir := filepath.Join(f.runs, baseRun, "hello.x")
	finder := mocks.NewMockTestFinder(ctrl)
	finder.EXPECT().FindTests(reconnectDir).Return([]string{"suite/t2", "suite/t1"}, nil)

	renderer := mocks.NewMockRenderer(ctrl)
	gomock.InOrder(
		renderer.EXPECT().OnApplicationStart("hello", reconnectDir),
		renderer.EXPECT().OnTestReconnected("hello", "suite/t2", gomock.Nil()),
		renderer.EXPECT().OnTestReconnected("hello", "suite/t1", gomock.Not(gomock.Nil())),
		renderer.EXPECT().OnSummary("hello", 1, 1, 0),
	)

	a := app.New(f.loader, fs.NewOSFS(), finder, teststate.NewCodec(), newQuietLogger(ctrl), telemetry.NewNoOpTracer()).
		WithRenderer(renderer)

	err := a.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: plain(), WorkDir: f.work})
	require.NoError(t, err)
}

func TestApp_Reconnect_FinderError(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	finder := mocks.NewMockTestFinder(ctrl)
	finder.EXPECT().FindTests(gomock.Any()).Return(nil, errors.New("walk failed"))

	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnApplicationStart("hello", gomock.Any())

	a := app.New(f.loader, fs.NewOSFS(), finder, teststate.NewCodec(), newQuietLogger(ctrl), telemetry.NewNoOpTracer()).
		WithRenderer(renderer)

	err := a.Reconnect(t.Context(), app.ReconnectOptions{CommonOptions: plain(), WorkDir: f.work})
	require.ErrorContains(t, err, "walk failed")
}

func TestApp_Versions_MissingTmpRoot(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	f.loader.EXPECT().Load(".").Return(f.suite, nil)

	fsys := mocks.NewMockFileSystem(ctrl)
	fsys.EXPECT().IsDir(f.runs).Return(false, nil)

	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnVersions("hello", gomock.Len(0), "Could not find TextTest temporary directory at "+f.runs)

	a := app.New(f.loader, fsys, fs.NewWalker(), teststate.NewCodec(), newQuietLogger(ctrl), telemetry.NewNoOpTracer()).
		WithRenderer(renderer)

	require.NoError(t, a.Versions(t.Context(), app.VersionsOptions{CommonOptions: plain()}))
}
