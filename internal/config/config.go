package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/tablekeep/internal/store"
)

// Config holds application configuration.
type Config struct {
	Log         LogConfig      `mapstructure:"log"`
	UI          UIConfig       `mapstructure:"ui"`
	Contacts    ContactsConfig `mapstructure:"contacts"`
	Tasks       TasksConfig    `mapstructure:"tasks"`
	Keybindings []Keybinding   `mapstructure:"keybindings"`
}

// LogConfig holds logger settings. An empty Path discards logs because the
// TUI owns the terminal.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TableHeight   int    `mapstructure:"table_height"`
	TitleContacts string `mapstructure:"title_contacts"`
	TitleTasks    string `mapstructure:"title_tasks"`
}

// ContactsConfig holds contact list settings.
type ContactsConfig struct {
	SimilarDistance int           `mapstructure:"similar_distance"`
	Seed            []ContactSeed `mapstructure:"seed"`
}

type ContactSeed struct {
	Name  string `mapstructure:"name"`
	Phone string `mapstructure:"phone"`
}

// TasksConfig holds to-do list settings.
type TasksConfig struct {
	DefaultStatus string     `mapstructure:"default_status"`
	Seed          []TaskSeed `mapstructure:"seed"`
}

type TaskSeed struct {
	Description string `mapstructure:"description"`
	Status      string `mapstructure:"status"`
}

// Keybinding overrides the keys of one action within one scope.
type Keybinding struct {
	Scope  string   `mapstructure:"scope"`
	Action string   `mapstructure:"action"`
	Keys   []string `mapstructure:"keys"`
}

const envPrefix = "TABLEKEEP"

// Path returns the config file location: $TABLEKEEP_CONFIG or
// ~/.config/tablekeep/config.toml.
func Path() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tablekeep", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("ui.table_height", 10)
	v.SetDefault("ui.title_contacts", "Contact List")
	v.SetDefault("ui.title_tasks", "To-Do List")
	v.SetDefault("contacts.similar_distance", 2)
	v.SetDefault("tasks.default_status", store.StatusBacklog.String())
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config: unmarshal defaults: %v", err))
	}
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix TABLEKEEP_.
// A missing file is not an error.
func Load() (Config, error) {
	return LoadFile(os.Getenv(envPrefix + "_CONFIG"))
}

// LoadFile is Load with an explicit config file; an empty path searches the
// default location. An explicit path that does not exist yet yields defaults.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tablekeep"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if c.UI.TableHeight <= 0 {
		errs = append(errs, fmt.Errorf("ui.table_height: must be positive, got %d", c.UI.TableHeight))
	}
	if c.Contacts.SimilarDistance < 0 {
		errs = append(errs, fmt.Errorf("contacts.similar_distance: must not be negative, got %d", c.Contacts.SimilarDistance))
	}
	if _, err := store.ParseStatus(c.Tasks.DefaultStatus); err != nil {
		errs = append(errs, fmt.Errorf("tasks.default_status: %w", err))
	}
	for i, kb := range c.Keybindings {
		if strings.TrimSpace(kb.Scope) == "" || strings.TrimSpace(kb.Action) == "" || len(kb.Keys) == 0 {
			errs = append(errs, fmt.Errorf("keybindings[%d]: scope, action and keys are required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DefaultStatus returns the parsed tasks.default_status, falling back to Backlog.
func (c Config) DefaultStatus() store.Status {
	s, err := store.ParseStatus(c.Tasks.DefaultStatus)
	if err != nil {
		return store.StatusBacklog
	}
	return s
}

// Save writes the provided config to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.table_height", cfg.UI.TableHeight)
	v.Set("ui.title_contacts", cfg.UI.TitleContacts)
	v.Set("ui.title_tasks", cfg.UI.TitleTasks)
	v.Set("contacts.similar_distance", cfg.Contacts.SimilarDistance)
	v.Set("tasks.default_status", cfg.Tasks.DefaultStatus)

	if len(cfg.Contacts.Seed) > 0 {
		seeds := make([]map[string]any, 0, len(cfg.Contacts.Seed))
		for _, s := range cfg.Contacts.Seed {
			seeds = append(seeds, map[string]any{"name": s.Name, "phone": s.Phone})
		}
		v.Set("contacts.seed", seeds)
	}
	if len(cfg.Tasks.Seed) > 0 {
		seeds := make([]map[string]any, 0, len(cfg.Tasks.Seed))
		for _, s := range cfg.Tasks.Seed {
			seeds = append(seeds, map[string]any{"description": s.Description, "status": s.Status})
		}
		v.Set("tasks.seed", seeds)
	}
	if len(cfg.Keybindings) > 0 {
		kbs := make([]map[string]any, 0, len(cfg.Keybindings))
		for _, kb := range cfg.Keybindings {
			kbs = append(kbs, map[string]any{"scope": kb.Scope, "action": kb.Action, "keys": kb.Keys})
		}
		v.Set("keybindings", kbs)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
