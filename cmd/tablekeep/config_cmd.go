package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/tablekeep/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.Path()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	writeConfig(cmd.OutOrStdout(), cfg)
	return nil
}

func writeConfig(w io.Writer, cfg config.Config) {
	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = "(discard)"
	}
	fmt.Fprintf(w, "log.level                 %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "log.path                  %s\n", logPath)
	fmt.Fprintf(w, "ui.table_height           %d\n", cfg.UI.TableHeight)
	fmt.Fprintf(w, "ui.title_contacts         %s\n", cfg.UI.TitleContacts)
	fmt.Fprintf(w, "ui.title_tasks            %s\n", cfg.UI.TitleTasks)
	fmt.Fprintf(w, "contacts.similar_distance %d\n", cfg.Contacts.SimilarDistance)
	fmt.Fprintf(w, "contacts.seed             %d entries\n", len(cfg.Contacts.Seed))
	fmt.Fprintf(w, "tasks.default_status      %s\n", cfg.DefaultStatus())
	fmt.Fprintf(w, "tasks.seed                %d entries\n", len(cfg.Tasks.Seed))
	for _, kb := range cfg.Keybindings {
		fmt.Fprintf(w, "keybinding                %s.%s = %s\n", kb.Scope, kb.Action, strings.Join(kb.Keys, ", "))
	}
}
