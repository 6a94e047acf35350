package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/tablekeep/internal/app"
	"github.com/jask/tablekeep/internal/config"
	"github.com/jask/tablekeep/internal/logging"
	"github.com/jask/tablekeep/internal/tui"
)

var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tablekeep",
	Short: "Terminal contact list and to-do list",
	Long: `tablekeep runs one of two small in-memory list managers:
a contact list (name, phone) and a to-do list (task, status).
Nothing is saved when the program exits.`,
	SilenceUsage: true,
}

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage a contact list",
	Args:  cobra.NoArgs,
	RunE:  runContacts,
}

var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"tasks"},
	Short:   "Manage a to-do list",
	Args:    cobra.NoArgs,
	RunE:    runTodo,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tablekeep %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $TABLEKEEP_CONFIG or $HOME/.config/tablekeep/config.toml)")
	rootCmd.AddCommand(contactsCmd, todoCmd, configCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runtime is everything a window needs, built once per invocation.
type runtime struct {
	app  *app.App
	keys *tui.KeyRegistry
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load()
}

func newRuntime() (*runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, err := logging.NewLogger(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	keys := tui.NewKeyRegistry()
	if err := keys.ApplyKeybindingConfig(cfg.Keybindings); err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("keybindings: %w", err)
	}
	return &runtime{app: app.New(cfg, logger), keys: keys}, nil
}

func runProgram(rt *runtime, model tea.Model, name string) error {
	defer func() {
		if err := rt.app.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "warn:", err)
		}
	}()
	rt.app.Logger().Info("session started", "window", name, "version", version)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		rt.app.Logger().Error("program exited with error", "error", err)
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

func runContacts(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	rt.app.SeedContacts()
	return runProgram(rt, tui.NewContactWindow(rt.app, rt.keys), "contacts")
}

func runTodo(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	rt.app.SeedTasks()
	return runProgram(rt, tui.NewTaskWindow(rt.app, rt.keys), "todo")
}
