// Package config holds the settings shared by the command-line tools. Values
// come from the environment and are then overridden by flags.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"github.com/Thiagojm/rdseed_go/rdseed"
)

// Config is read from RDSEED_* environment variables.
type Config struct {
	// LibraryPath selects the shared-library binding. Empty uses the
	// instruction compiled into the binary.
	LibraryPath string `env:"RDSEED_LIBRARY_PATH"`
	Retries     int    `env:"RDSEED_RETRIES" envDefault:"20"`
	LogLevel    string `env:"RDSEED_LOG_LEVEL" envDefault:"info"`
	OutDir      string `env:"RDSEED_OUTDIR" envDefault:"data"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// RDSEEDOptions converts c into options for rdseed.New and rdseed.Probe.
func (c Config) RDSEEDOptions() []rdseed.Option {
	opts := []rdseed.Option{rdseed.WithRetries(c.Retries)}
	if c.LibraryPath != "" {
		opts = append(opts, rdseed.WithLibraryPath(c.LibraryPath))
	}
	return opts
}

// infoFormatter prints Info entries as bare messages and everything else
// with the default text formatter.
type infoFormatter struct {
	fallback log.Formatter
}

func (f *infoFormatter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level == log.InfoLevel {
		return append([]byte(entry.Message), '\n'), nil
	}
	return f.fallback.Format(entry)
}

// SetupLogging configures the standard logrus logger from c.LogLevel.
func (c Config) SetupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("RDSEED_LOG_LEVEL: %w", err)
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	if level >= log.DebugLevel {
		log.SetFormatter(&log.TextFormatter{})
	} else {
		log.SetFormatter(&infoFormatter{fallback: &log.TextFormatter{}})
	}
	return nil
}
