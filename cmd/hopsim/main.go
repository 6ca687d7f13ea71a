package main

import (
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/hopsim/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultSettingsPath = "settings.toml"

// app holds the state shared by every command.
type app struct {
	settingsPath string
	settings     settings.Settings
	log          *logrus.Logger
}

func main() {
	defer sentry.Flush(2 * time.Second)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "hopsim",
		Short:         "hopsim simulates character movement and velocity integration.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.settingsPath, "config", "c", defaultSettingsPath, "settings file, created with defaults if missing")

	root.AddCommand(a.runCmd(), a.listCmd(), a.configCmd())
	return root
}

// load reads the settings file and sets up logging and panic reporting from it.
func (a *app) load(cmd *cobra.Command) error {
	s, err := settings.Load(a.settingsPath)
	if err != nil {
		return err
	}
	a.settings = s
	a.log = s.Logger()
	a.log.SetOutput(cmd.ErrOrStderr())

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         s.Sentry.DSN,
			Environment: s.Sentry.Environment,
		}); err != nil {
			return fmt.Errorf("error initialising sentry: %w", err)
		}
		a.log.Debug("sentry reporting enabled")
	}
	return nil
}
