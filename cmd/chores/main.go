package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/chores/internal/config"
	"github.com/tgienger/chores/internal/db"
	"github.com/tgienger/chores/internal/log"
	"github.com/tgienger/chores/internal/store"
	"github.com/tgienger/chores/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFlag  string
	dataDirFlag string

	rootCmd = &cobra.Command{
		Use:           "chores",
		Short:         "Track household chores with your housemates",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg, database, err := open()
			if err != nil {
				return err
			}
			defer database.Close()

			app := ui.NewApp(store.New(database), database, cfg)
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running application: %w", err)
			}
			return nil
		},
	}
)

// open loads the config and the database named by it, flags taking precedence
func open() (*config.Config, *db.DB, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}

	database, err := db.New(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}
	log.InfoLog.Printf("using database %s", database.Path())
	if log.IsDebugEnabled() {
		log.DebugLog.Printf("roster: %v, hide completed: %v", cfg.HousemateNames(), cfg.HideCompleted)
	}
	return cfg, database, nil
}

func init() {
	rootCmd.SetVersionTemplate("chores {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/chores/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding the chores database")

	rootCmd.AddCommand(listCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
