package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pip-reinstall/internal/logger"
	"pip-reinstall/internal/runner"
	"pip-reinstall/internal/state"
)

// recordingRunner records every command and fails those listed in fail.
// onRun, when set, is called with each command before it "exits".
type recordingRunner struct {
	calls []runner.CommandConfig
	fail  map[string]bool
	onRun func(cfg runner.CommandConfig)
}

func (r *recordingRunner) Run(ctx context.Context, cfg runner.CommandConfig) (runner.CommandResult, error) {
	r.calls = append(r.calls, cfg)
	if r.onRun != nil {
		r.onRun(cfg)
	}
	if r.fail[cfg.Command] {
		return runner.CommandResult{Command: cfg.Command, ExitCode: runner.NotFoundExitCode}, exec.ErrNotFound
	}
	return runner.CommandResult{Command: cfg.Command}, nil
}

func useRunner(t *testing.T, r runner.Runner) {
	t.Helper()
	prev := newRunner
	newRunner = func() runner.Runner { return r }
	t.Cleanup(func() { newRunner = prev })
}

// execute runs the command tree with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true
	var out bytes.Buffer
	prev := logger.SetOutput(&out)
	t.Cleanup(func() {
		logger.SetOutput(prev)
		color.NoColor = noColor
	})

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReinstallDefaultsWithFallback(t *testing.T) {
	r := &recordingRunner{fail: map[string]bool{"pip3": true}}
	useRunner(t, r)

	out, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, []runner.CommandConfig{
		{Command: "pip3", Args: []string{"uninstall", "-y", "ttkbootstrap"}},
		{Command: "pip", Args: []string{"uninstall", "-y", "ttkbootstrap"}},
		{Command: "pip3", Args: []string{"install", "ttkbootstrap>=1.10.1"}},
		{Command: "pip", Args: []string{"install", "ttkbootstrap>=1.10.1"}},
	}, r.calls)

	assert.Equal(t, "Trying pip3 first...\n"+
		"pip3 not found. Trying pip...\n"+
		"Installing ttkbootstrap >= 1.10.1...\n"+
		"pip3 install failed. Trying pip...\n"+
		"Finished.\n", out)
}

func TestReinstallPrimarySucceeds(t *testing.T) {
	r := &recordingRunner{}
	useRunner(t, r)

	out, err := execute(t)
	require.NoError(t, err)

	require.Len(t, r.calls, 2)
	for _, call := range r.calls {
		assert.Equal(t, "pip3", call.Command)
	}
	assert.NotContains(t, out, "Trying pip...")
	assert.Contains(t, out, "Finished.")
}

func TestReinstallAlwaysExitsZero(t *testing.T) {
	r := &recordingRunner{fail: map[string]bool{"pip3": true, "pip": true}}
	useRunner(t, r)

	out, err := execute(t)
	assert.NoError(t, err)
	assert.Len(t, r.calls, 4)
	assert.Contains(t, out, "Finished.")
}

func TestStrictReportsFailure(t *testing.T) {
	r := &recordingRunner{fail: map[string]bool{"pip3": true, "pip": true}}
	useRunner(t, r)

	out, err := execute(t, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pip install failed")
	assert.Contains(t, out, "Finished.")
}

func TestInterruptDoesNotSkipFallback(t *testing.T) {
	// Keep the test binary alive; the command under test must not react.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	r := &recordingRunner{fail: map[string]bool{"pip3": true}}
	r.onRun = func(cfg runner.CommandConfig) {
		if len(r.calls) == 1 {
			require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
			<-interrupts
		}
	}
	useRunner(t, r)

	out, err := execute(t)
	require.NoError(t, err)

	require.Len(t, r.calls, 4)
	assert.Equal(t, "pip", r.calls[1].Command)
	assert.Equal(t, []string{"uninstall", "-y", "ttkbootstrap"}, r.calls[1].Args)
	assert.Contains(t, out, "pip3 not found. Trying pip...")
	assert.Contains(t, out, "Finished.")
}

func TestTimeoutFlagStopsRun(t *testing.T) {
	r := &recordingRunner{fail: map[string]bool{"pip3": true}}
	useRunner(t, r)

	out, err := execute(t, "--timeout", "1ns")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Empty(t, r.calls)
	assert.NotContains(t, out, "Installing")
	assert.NotContains(t, out, "Finished.")
	assert.Contains(t, out, "Run aborted")
}

func TestTimeoutFromConfigFile(t *testing.T) {
	r := &recordingRunner{}
	useRunner(t, r)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 1ns\n"), 0644))

	out, err := execute(t, "--config", path)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, r.calls)
	assert.NotContains(t, out, "Finished.")
}

func TestGenerousTimeoutCompletes(t *testing.T) {
	r := &recordingRunner{fail: map[string]bool{"pip3": true}}
	useRunner(t, r)

	out, err := execute(t, "--timeout", "1m")
	require.NoError(t, err)
	assert.Len(t, r.calls, 4)
	assert.Contains(t, out, "Finished.")
}

func TestRealProcessesFallBack(t *testing.T) {
	out, err := execute(t, "--tool", "false", "--tool", "true")
	require.NoError(t, err)

	assert.Contains(t, out, "Trying false first...")
	assert.Contains(t, out, "false not found. Trying true...")
	assert.Contains(t, out, "false install failed. Trying true...")
}

func TestSingleSteps(t *testing.T) {
	r := &recordingRunner{}
	useRunner(t, r)

	_, err := execute(t, "uninstall")
	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Equal(t, "uninstall", r.calls[0].Args[0])

	r.calls = nil
	out, err := execute(t, "install", "--package", "rich==13.7.0")
	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"install", "rich==13.7.0"}, r.calls[0].Args)
	assert.Contains(t, out, "Installing rich == 13.7.0...")
}

func TestStateFileRecordsOutcome(t *testing.T) {
	r := &recordingRunner{fail: map[string]bool{"pip3": true}}
	useRunner(t, r)
	path := filepath.Join(t.TempDir(), "state.json")

	_, err := execute(t, "--state", path)
	require.NoError(t, err)

	st, err := state.LoadState(path)
	require.NoError(t, err)
	got, ok := st.Packages["ttkbootstrap"]
	require.True(t, ok)
	assert.Equal(t, "ttkbootstrap>=1.10.1", got.Spec)
	require.NotNil(t, got.Install)
	assert.Equal(t, "pip", got.Install.Tool)
	assert.True(t, got.Install.FellBack)
	assert.Equal(t, 0, got.Install.ExitCode)
}

func TestLogFileJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	_, err := execute(t, "--tool", "true", "--log-file", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 2)
	assert.Equal(t, "true", entries[0]["command"])
	assert.Equal(t, float64(0), entries[0]["exit_code"])
}

func TestConfigFile(t *testing.T) {
	r := &recordingRunner{}
	useRunner(t, r)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: requests\ntools: [pip3.12]\n"), 0644))

	_, err := execute(t, "--config", path)
	require.NoError(t, err)
	require.Len(t, r.calls, 2)
	assert.Equal(t, "pip3.12", r.calls[1].Command)
	assert.Equal(t, []string{"install", "requests"}, r.calls[1].Args)
}

func TestFlagOverridesConfigFile(t *testing.T) {
	r := &recordingRunner{}
	useRunner(t, r)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: requests\n"), 0644))

	_, err := execute(t, "-c", path, "-p", "numpy>=2.0")
	require.NoError(t, err)
	assert.Equal(t, []string{"install", "numpy>=2.0"}, r.calls[1].Args)
}

func TestInvalidInput(t *testing.T) {
	r := &recordingRunner{}
	useRunner(t, r)

	_, err := execute(t, "--package", ">=1.0")
	assert.Error(t, err)

	_, err = execute(t, "unexpected")
	assert.Error(t, err)

	assert.Empty(t, r.calls)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pip-reinstall dev")
}
