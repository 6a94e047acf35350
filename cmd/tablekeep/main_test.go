package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func withConfigFile(t *testing.T, path string) {
	t.Helper()
	prev := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = prev })
}

func captured() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	withConfigFile(t, path)

	cmd, out := captured()
	require.NoError(t, runConfigInit(cmd, nil))
	require.Contains(t, out.String(), "wrote "+path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	cmd, out = captured()
	require.NoError(t, runConfigShow(cmd, nil))
	require.Contains(t, out.String(), "ui.table_height           10")
	require.Contains(t, out.String(), "tasks.default_status      Backlog")
	require.Contains(t, out.String(), "log.path                  (discard)")
}

func TestRunConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntable_height = 3\n"), 0o600))
	withConfigFile(t, path)

	cmd, _ := captured()
	require.ErrorContains(t, runConfigInit(cmd, nil), "already exists")

	forceInit = true
	t.Cleanup(func() { forceInit = false })
	require.NoError(t, runConfigInit(cmd, nil))
}

func TestNewRuntimeAppliesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[log]
level = "debug"
path = "` + filepath.ToSlash(filepath.Join(dir, "tablekeep.log")) + `"

[[contacts.seed]]
name = "Ada"
phone = "1"

[[keybindings]]
scope = "contacts_table"
action = "remove"
keys = ["x"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	withConfigFile(t, path)

	rt, err := newRuntime()
	require.NoError(t, err)
	require.Equal(t, 1, rt.app.SeedContacts())
	require.NoError(t, rt.app.Close())

	logData, err := os.ReadFile(filepath.Join(dir, "tablekeep.log"))
	require.NoError(t, err)
	require.Contains(t, string(logData), rt.app.SessionID)
}

func TestNewRuntimeRejectsBadKeybinding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[[keybindings]]
scope = "contacts_table"
action = "launch"
keys = ["x"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	withConfigFile(t, path)

	_, err := newRuntime()
	require.ErrorContains(t, err, "keybindings")
}

func TestVersionCommand(t *testing.T) {
	cmd, out := captured()
	versionCmd.Run(cmd, nil)
	require.Equal(t, "tablekeep dev\n", out.String())
}
