package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oomph-ac/hopsim/movement"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured in the settings file.
type Settings struct {
	// Movement is the tuning of every simulated mover.
	Movement movement.Config `toml:"movement"`
	Log      LogSettings     `toml:"log"`
	Sentry   SentrySettings  `toml:"sentry"`
}

// LogSettings configures the logger.
type LogSettings struct {
	// Level is the logrus level name, such as "info" or "debug".
	Level string `toml:"level"`
	// Format is either "text" or "json".
	Format string `toml:"format"`
	// Debug lists the movement debug modes to trace. Tracing needs the debug level.
	Debug []string `toml:"debug"`
}

// SentrySettings configures panic reporting. Reporting is disabled if DSN is empty.
type SentrySettings struct {
	DSN         string `toml:"dsn"`
	Environment string `toml:"environment"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Movement: movement.DefaultConfig(),
		Log: LogSettings{
			Level:  "info",
			Format: "text",
			Debug:  []string{},
		},
		Sentry: SentrySettings{Environment: "development"},
	}
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	return Save(path, DefaultSettings())
}

// Save writes the settings passed to path.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed writing settings file: %w", err)
	}
	return nil
}

// Load loads the settings from path. If the file does not exist, it is created with the default settings. Values
// missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, s); err != nil {
			return Settings{}, err
		}
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate returns an error if any of the settings cannot be used.
func (s Settings) Validate() error {
	var errs []error
	if err := s.Movement.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(s.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", s.Log.Format))
	}
	if _, err := s.DebugModes(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DebugModes returns the movement debug modes listed in the log settings.
func (s Settings) DebugModes() ([]movement.DebugMode, error) {
	modes := make([]movement.DebugMode, 0, len(s.Log.Debug))
	for _, name := range s.Log.Debug {
		mode, err := movement.ParseDebugMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

// Logger creates a logger configured by the log settings.
func (s Settings) Logger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(s.Log.Level); err == nil {
		log.Level = lvl
	}
	if strings.EqualFold(s.Log.Format, "json") {
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		log.Formatter = &logrus.TextFormatter{ForceColors: true}
	}
	return log
}

// Debugger creates a movement debugger writing to log for the debug modes listed in the log settings. Unknown modes
// are ignored.
func (s Settings) Debugger(log *logrus.Logger) *movement.Debugger {
	modes, _ := s.DebugModes()
	if len(modes) == 0 {
		return nil
	}
	return movement.NewDebugger(log, modes...)
}
