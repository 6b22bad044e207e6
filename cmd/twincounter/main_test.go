package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jask/twincounter/internal/config"
)

func setup(t *testing.T, initial ...int) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Config{Scopes: config.ScopesConfig{Initial: initial}}
	replayScope, replayStrict = 0, false
	t.Cleanup(func() { replayScope, replayStrict = 0, false })

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func TestReplayDispatchesOnChosenScopeOnly(t *testing.T) {
	cmd, out, _ := setup(t, 0, 1)
	replayScope = 1
	require.NoError(t, runReplay(cmd, []string{"ADD", "ADD"}))

	got := out.String()
	require.Contains(t, got, "Scope 0")
	require.Contains(t, got, "Inner Counter: 0")
	require.Contains(t, got, "Inner Counter: 3")
	require.Less(t, strings.Index(got, "Inner Counter: 0"), strings.Index(got, "Inner Counter: 3"))
}

func TestReplayPassesUnknownActionsThrough(t *testing.T) {
	cmd, out, errOut := setup(t, 0, 1)
	require.NoError(t, runReplay(cmd, []string{"ADD", "ADDD", "add"}))

	require.Contains(t, out.String(), "Inner Counter: 2")
	require.Contains(t, errOut.String(), `did you mean "ADD"`)
}

func TestReplayStrictRejectsUnknown(t *testing.T) {
	cmd, out, _ := setup(t, 0)
	replayStrict = true
	err := runReplay(cmd, []string{"RESET"})
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestReplayScopeOutOfRange(t *testing.T) {
	cmd, _, _ := setup(t, 0, 1)
	replayScope = 2
	require.Error(t, runReplay(cmd, nil))
}

func TestRootCommandLoadsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TWINCOUNTER_CONFIG", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scopes]\ninitial = [10, 20, 30]\n"), 0o644))
	t.Cleanup(func() {
		configPath, verbose = "", false
		replayScope, replayStrict = 0, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "replay", "--scope", "2", "ADD"})
	require.NoError(t, rootCmd.Execute())

	got := out.String()
	require.Contains(t, got, "Inner Counter: 10")
	require.Contains(t, got, "Inner Counter: 20")
	require.Contains(t, got, "Inner Counter: 31")
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		configPath, verbose, configForce = "", false, false
		replayScope, replayStrict = 0, false
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVerboseReplayLogsDispatchToStderr(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TWINCOUNTER_CONFIG", "")

	out, errOut, err := runRoot(t, "--verbose", "replay", "ADD")
	require.NoError(t, err)
	require.Contains(t, out, "Inner Counter: 1")
	require.Contains(t, errOut, `"msg":"dispatch"`)
	require.Contains(t, errOut, `"type":"ADD"`)
	require.Contains(t, errOut, `"msg":"store created"`)
}

func TestReplayWithoutVerboseIsQuiet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TWINCOUNTER_CONFIG", "")

	_, errOut, err := runRoot(t, "replay", "ADD")
	require.NoError(t, err)
	require.Empty(t, errOut)
}

func TestConfigInitWritesEffectiveConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TWINCOUNTER_CONFIG", "")
	t.Setenv("TWINCOUNTER_UI_TITLE", "from env")

	out, _, err := runRoot(t, "config", "init")
	require.NoError(t, err)

	want := filepath.Join(home, ".config", "twincounter", "config.toml")
	require.Equal(t, want, strings.TrimSpace(out))

	// viper ignores empty env values, so the title must come from the file
	t.Setenv("TWINCOUNTER_UI_TITLE", "")
	loaded, err := config.Load(want)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, loaded.Scopes.Initial)
	require.Equal(t, "from env", loaded.UI.Title)
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TWINCOUNTER_CONFIG", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scopes]\ninitial = [4]\n"), 0o644))

	_, _, err := runRoot(t, "--config", path, "config", "init")
	require.Error(t, err)

	_, _, err = runRoot(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{4}, loaded.Scopes.Initial)
}
