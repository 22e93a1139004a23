package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tgienger/chores/internal/config"
)

var (
	forceFlag bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the chores configuration",
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFlag
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !forceFlag {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
)

func init() {
	configInitCmd.Flags().BoolVar(&forceFlag, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
