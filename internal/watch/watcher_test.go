package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"devcon/internal/config"
	"devcon/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConfig(t *testing.T, path, prompt string) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Prompt = prompt
	require.NoError(t, cfg.Save(path))
}

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	t.Setenv("DEVCON_PROMPT", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "devcon.yaml")
	writeConfig(t, path, "> ")

	reloaded := make(chan *config.Config, 4)
	w, err := NewConfigWatcher(path, logging.Nop(), func(c *config.Config) {
		reloaded <- c
	})
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	time.Sleep(50 * time.Millisecond) // let the watch settle before writing
	writeConfig(t, path, "dev# ")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "dev# ", cfg.Prompt)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcon.yaml")
	writeConfig(t, path, "> ")

	reloaded := make(chan struct{}, 4)
	w, err := NewConfigWatcher(path, logging.Nop(), func(*config.Config) {
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	w.SetDebounce(time.Millisecond)

	ctx := context.Background()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfigWatcher_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcon.yaml")
	writeConfig(t, path, "> ")

	reloaded := make(chan struct{}, 4)
	w, err := NewConfigWatcher(path, logging.Nop(), func(*config.Config) {
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	w.SetDebounce(time.Millisecond)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	select {
	case <-reloaded:
		t.Fatal("invalid config triggered the reload callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfigWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcon.yaml")
	writeConfig(t, path, "> ")

	w, err := NewConfigWatcher(path, logging.Nop(), nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop() // second call is a no-op
}
