package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSaveFile = "goals.txt"
	DefaultSlot     = "default"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	SaveFile     string
	DatabaseDSN  string
	Slot         string
	LogLevel     string
	LogFormat    string
	ReplayOnLoad bool
}

func Default() Config {
	return Config{
		SaveFile:  DefaultSaveFile,
		Slot:      DefaultSlot,
		LogLevel:  logrus.WarnLevel.String(),
		LogFormat: LogFormatText,
	}
}

// Location is the save location handed to the repository: the slot name when
// a database is configured, the save file otherwise.
func (c Config) Location() string {
	if c.UsesDatabase() {
		return c.Slot
	}
	return c.SaveFile
}

func (c Config) UsesDatabase() bool {
	return strings.TrimSpace(c.DatabaseDSN) != ""
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if strings.TrimSpace(c.Location()) == "" {
		return fmt.Errorf("%w: empty save location", ErrInvalidConfig)
	}
	return nil
}
