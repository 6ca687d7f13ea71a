package main

import (
	"fmt"

	"github.com/oomph-ac/hopsim/settings"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default settings file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.SaveDefault(a.settingsPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote default settings to %s\n", a.settingsPath)
			return nil
		},
	}, &cobra.Command{
		Use:   "show",
		Short: "Print the settings in use.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			data, err := toml.Marshal(a.settings)
			if err != nil {
				return fmt.Errorf("failed encoding settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	return cmd
}
