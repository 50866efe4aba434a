package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/darkawower/wallcycle/internal/config"
	"github.com/darkawower/wallcycle/internal/core"
	"github.com/darkawower/wallcycle/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTarget struct {
	mu       sync.Mutex
	advances int
	reloads  int
}

func (c *countingTarget) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advances++
}

func (c *countingTarget) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reloads++
}

func (c *countingTarget) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advances, c.reloads
}

// executeRoot runs the root command with args and captured output.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	out = ui.NewOutput(&stdout, &stderr)
	logCloser = nil

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	if logCloser != nil {
		_ = logCloser.Close()
	}
	return stdout.String(), stderr.String(), err
}

func TestForwardSignals(t *testing.T) {
	target := &countingTarget{}
	sigCh := make(chan os.Signal)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		forwardSignals(ctx, sigCh, target, ui.NewOutput(&bytes.Buffer{}, &bytes.Buffer{}))
		close(done)
	}()

	sigCh <- ReloadSignal
	sigCh <- AdvanceSignal
	sigCh <- ReloadSignal
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwardSignals did not return")
	}

	advances, reloads := target.counts()
	if AdvanceSignal == ReloadSignal {
		t.Skip("no control signals on this platform")
	}
	assert.Equal(t, 1, advances)
	assert.Equal(t, 2, reloads)
}

func TestForwardSignals_EngineTarget(t *testing.T) {
	var _ signalTarget = (*core.Engine)(nil)
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"log-file", "dry-run", "verbose", "quiet", "no-color", "retry-delay"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.True(t, cmd.Flags().Lookup("retry-delay").Hidden)
	assert.Equal(t, config.DefaultLogPath(), cmd.Flags().Lookup("log-file").DefValue)
	assert.Equal(t, version, cmd.Version)
}

func TestRootCmd_RequiresDirectory(t *testing.T) {
	stdout, _, err := executeRoot(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts between 1 and 3 arg(s)")
	assert.Contains(t, stdout+err.Error(), "Usage:")
}

func TestRootCmd_TooManyArguments(t *testing.T) {
	dir := t.TempDir()
	_, _, err := executeRoot(t, "--log-file", "", dir, "1", dir, "extra")

	require.Error(t, err)
}

func TestRootCmd_MissingDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "wallcycle.log")

	_, _, err := executeRoot(t, "--log-file", logPath,
		filepath.Join(tmpDir, "missing"), "10", filepath.Join(tmpDir, "also-missing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNoDirectory)
}

func TestRootCmd_InvalidInterval(t *testing.T) {
	_, _, err := executeRoot(t, "--log-file", "", t.TempDir(), "soon")

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidInterval)
}

func TestRootCmd_NoPictures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	_, _, err := executeRoot(t, "--log-file", "", "--dry-run", dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoPictures)
}

func TestRootCmd_DryRunOneShot(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "pics")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("x"), 0644))
	logPath := filepath.Join(tmpDir, "logs", "wallcycle.log")

	stdout, _, err := executeRoot(t, "--log-file", logPath, "--dry-run", "--no-color", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Found 1 pictures")
	assert.Contains(t, stdout, "Done")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Found 1 pictures")
}

func TestRootCmd_FallbackDryRun(t *testing.T) {
	tmpDir := t.TempDir()
	fallback := filepath.Join(tmpDir, "fallback")
	require.NoError(t, os.MkdirAll(fallback, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(fallback, "b.png"), []byte("x"), 0644))

	stdout, _, err := executeRoot(t, "--log-file", "", "--dry-run", "--no-color",
		filepath.Join(tmpDir, "missing"), "60", fallback)
	require.NoError(t, err)

	assert.Contains(t, stdout, "using fallback directory")
}
