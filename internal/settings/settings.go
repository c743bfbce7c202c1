// Package settings loads the user settings of the reqbuild CLI from an
// optional YAML file, REQBUILD_* environment variables and command-line flags.
package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/wesleyorama2/reqbuild/internal/logger"
	"github.com/wesleyorama2/reqbuild/internal/output"
	"github.com/wesleyorama2/reqbuild/request"
)

// Settings holds the CLI settings.
type Settings struct {
	// Output is the default output format (text, json, yaml or wire).
	Output string `mapstructure:"output"`
	// NoColor disables colored output.
	NoColor bool `mapstructure:"no_color"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// DefaultHeaders are "Name: value" lines added to every request built
	// from the command line.
	DefaultHeaders []string `mapstructure:"default_headers"`

	// ParsedOutput is the parsed output format.
	ParsedOutput output.OutputFormat
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedHeaders are the parsed default headers.
	ParsedHeaders request.Headers
}

const (
	// DefaultFilename is the settings file looked up when none is given.
	DefaultFilename = ".reqbuild.yaml"

	// EnvPrefix prefixes environment variables overriding settings.
	EnvPrefix = "REQBUILD"
)

// ErrUnknownLogLevel indicates that the log level is not recognized.
var ErrUnknownLogLevel = errors.New("unknown log level")

// Load reads settings from filename. When filename is empty the default
// file is used if it exists, and built-in defaults otherwise. The result
// is not validated.
func Load(filename string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("output", string(output.FormatText))
	v.SetDefault("no_color", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("default_headers", []string{})
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	switch {
	case filename != "":
		v.SetConfigFile(filename)
	case fileExists(DefaultFilename):
		v.SetConfigFile(DefaultFilename)
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings from file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &s, nil
}

// Validate checks the settings and sets the parsed fields.
func Validate(s *Settings) error {
	format, err := output.ParseFormat(s.Output)
	if err != nil {
		return err
	}
	s.ParsedOutput = format

	level, ok := logger.ParseLogLevel(s.LogLevel)
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, s.LogLevel)
	}
	s.ParsedLogLevel = level

	headers, err := request.ParseHeaderLines(s.DefaultHeaders)
	if err != nil {
		return fmt.Errorf("invalid default header: %w", err)
	}
	s.ParsedHeaders = headers

	return nil
}

// BindFlags copies the flags that were set on the command line into s and
// validates the result. Flags that were not changed leave s untouched.
func BindFlags(flags *pflag.FlagSet, s *Settings) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		s.Output, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("no-color"); flag != nil && flag.Changed {
		s.NoColor, _ = flags.GetBool("no-color")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		s.LogLevel, _ = flags.GetString("log-level")
	}

	return Validate(s)
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
