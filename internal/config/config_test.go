package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tablekeep/internal/store"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TABLEKEEP_CONFIG", "")
	t.Setenv("TABLEKEEP_LOG_LEVEL", "")
	return home
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 10, cfg.UI.TableHeight)
	require.Equal(t, "Contact List", cfg.UI.TitleContacts)
	require.Equal(t, "To-Do List", cfg.UI.TitleTasks)
	require.Equal(t, 2, cfg.Contacts.SimilarDistance)
	require.Equal(t, store.StatusBacklog, cfg.DefaultStatus())
	require.Empty(t, cfg.Contacts.Seed)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileWithSeedsAndKeybindings(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "tk.toml")
	data := `
[log]
level = "debug"

[ui]
table_height = 6

[tasks]
default_status = "in progress"

[[contacts.seed]]
name = "Ada"
phone = "555-0101"

[[tasks.seed]]
description = "Write spec"
status = "Backlog"

[[keybindings]]
scope = "contacts_table"
action = "remove"
keys = ["x"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("TABLEKEEP_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 6, cfg.UI.TableHeight)
	require.Equal(t, store.StatusInProgress, cfg.DefaultStatus())
	require.Equal(t, []ContactSeed{{Name: "Ada", Phone: "555-0101"}}, cfg.Contacts.Seed)
	require.Equal(t, []TaskSeed{{Description: "Write spec", Status: "Backlog"}}, cfg.Tasks.Seed)
	require.Equal(t, []Keybinding{{Scope: "contacts_table", Action: "remove", Keys: []string{"x"}}}, cfg.Keybindings)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("TABLEKEEP_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	home := isolate(t)
	missing := filepath.Join(home, "nope", "config.toml")
	t.Setenv("TABLEKEEP_CONFIG", missing)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = LoadFile(missing)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { _ = Default() })
	require.NoError(t, Default().Validate())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.toml")
	data := `
[log]
level = "loud"

[tasks]
default_status = "blocked"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "log.level")
	require.Contains(t, err.Error(), "tasks.default_status")
}

func TestValidateKeybindings(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Keybindings = []Keybinding{{Scope: "global", Action: "", Keys: []string{"q"}}}
	require.ErrorContains(t, cfg.Validate(), "keybindings[0]")
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "nested", "config.toml")

	cfg := Default()
	cfg.UI.TableHeight = 4
	cfg.Tasks.DefaultStatus = "Done"
	cfg.Contacts.Seed = []ContactSeed{{Name: "Grace", Phone: "1"}}
	cfg.Tasks.Seed = []TaskSeed{{Description: "Ship", Status: "Done"}}
	require.NoError(t, Save(cfg, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, got.UI.TableHeight)
	require.Equal(t, store.StatusDone, got.DefaultStatus())
	require.Equal(t, cfg.Contacts.Seed, got.Contacts.Seed)
	require.Equal(t, cfg.Tasks.Seed, got.Tasks.Seed)
}
