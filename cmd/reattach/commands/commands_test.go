package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reattach/cmd/reattach/commands"
	"go.trai.ch/reattach/internal/app"
	"go.trai.ch/reattach/internal/build"
	"go.trai.ch/reattach/internal/core/domain"
)

type mockApp struct {
	versionsFunc  func(ctx context.Context, opts app.VersionsOptions) error
	reconnectFunc func(ctx context.Context, opts app.ReconnectOptions) error
}

func (m *mockApp) Versions(ctx context.Context, opts app.VersionsOptions) error {
	if m.versionsFunc != nil {
		return m.versionsFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Reconnect(ctx context.Context, opts app.ReconnectOptions) error {
	if m.reconnectFunc != nil {
		return m.reconnectFunc(ctx, opts)
	}
	return nil
}

type logSettings struct {
	verbose, json, color bool
	calls                int
}

func (l *logSettings) SetVerbose(enable bool) { l.verbose = enable; l.calls++ }
func (l *logSettings) SetJSON(enable bool)    { l.json = enable; l.calls++ }
func (l *logSettings) SetColor(enable bool)   { l.color = enable; l.calls++ }

func TestCommands_Versions(t *testing.T) {
	var captured app.VersionsOptions
	mock := &mockApp{
		versionsFunc: func(_ context.Context, opts app.VersionsOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"versions", "hello", "world", "--target", "~/runs", "-c", "suite/reattach.yaml"})
	require.NoError(t, cli.Execute(t.Context()))

	assert.Equal(t, []string{"hello", "world"}, captured.Apps)
	assert.Equal(t, "~/runs", captured.Target)
	assert.Equal(t, "suite/reattach.yaml", captured.ConfigPath)
	assert.Equal(t, "auto", captured.OutputMode)
}

func TestCommands_Reconnect(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ReconnectOptions
		called := false
		mock := &mockApp{
			reconnectFunc: func(_ context.Context, opts app.ReconnectOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"reconnect", "hello",
			"--version", "y.20230102",
			"--full",
			"--work-dir", "/tmp/work",
			"-o", "plain",
		})
		require.NoError(t, cli.Execute(t.Context()))

		assert.True(t, called)
		assert.Equal(t, []string{"hello"}, captured.Apps)
		assert.Equal(t, "y.20230102", captured.Version)
		assert.True(t, captured.FullRecalculate)
		assert.Equal(t, "/tmp/work", captured.WorkDir)
		assert.Equal(t, "plain", captured.OutputMode)
	})

	t.Run("returns error on reconnect failure", func(t *testing.T) {
		mock := &mockApp{
			reconnectFunc: func(_ context.Context, _ app.ReconnectOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"reconnect"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_LogFlags(t *testing.T) {
	t.Setenv("CI", "true")

	log := &logSettings{}
	cli := commands.New(&mockApp{}, log)
	cli.SetArgs([]string{"versions", "--verbose", "--json-logs", "--output-mode", "color"})
	require.NoError(t, cli.Execute(t.Context()))

	assert.Equal(t, 3, log.calls)
	assert.True(t, log.verbose)
	assert.True(t, log.json)
	assert.True(t, log.color)
}

func TestCommands_InvalidOutputMode(t *testing.T) {
	called := false
	mock := &mockApp{
		versionsFunc: func(_ context.Context, _ app.VersionsOptions) error {
			called = true
			return nil
		},
	}

	log := &logSettings{}
	cli := commands.New(mock, log)
	cli.SetArgs([]string{"versions", "--output-mode", "tui"})

	err := cli.Execute(t.Context())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidOutputMode.Error())
	assert.False(t, called)
	assert.Zero(t, log.calls)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(t.Context()))

	assert.Contains(t, buf.String(), "reattach version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})
	require.NoError(t, cli.Execute(t.Context()))

	assert.Contains(t, buf.String(), "reattach version "+build.Version)
}

func TestCommands_FlagShorthands(t *testing.T) {
	for _, args := range [][]string{
		{"versions"},
		{"reconnect", "--verbose"},
		{"version"},
		{"--help"},
	} {
		cli := commands.New(&mockApp{}, &logSettings{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs(args)
		assert.NotPanics(t, func() {
			assert.NoError(t, cli.Execute(t.Context()))
		}, "args %v", args)
	}
}

func TestCommands_VersionShorthand(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"-v"})
	require.NoError(t, cli.Execute(t.Context()))

	assert.Contains(t, buf.String(), "reattach version "+build.Version)
}
