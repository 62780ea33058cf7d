package logger

import (
	"io"
	"os"
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/config"
	"github.com/rs/zerolog"
)

// Format selects the record layout
type Format string

const (
	FormatConsole Format = "console"
	FormatText    Format = "text"
	FormatJSON    Format = "json"
)

// Options is the resolved logger setup
type Options struct {
	Level   zerolog.Level
	Format  Format
	Console io.Writer // nil disables console output
	File    FileOptions
}

// FileOptions configures the rotating log file. An empty Path disables it.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// DefaultOptions logs info and above to stderr in console layout.
// Stdout is reserved for command results.
func DefaultOptions() Options {
	return Options{
		Level:   zerolog.InfoLevel,
		Format:  FormatConsole,
		Console: os.Stderr,
		File: FileOptions{
			MaxSizeMB:  config.DefaultMaxLogSizeMB,
			MaxBackups: config.DefaultMaxLogBackups,
		},
	}
}

// OptionsFromConfig maps the log section of the application config onto
// the defaults. Non-positive rotation limits fall back to the defaults.
func OptionsFromConfig(cfg config.LogConfig) (Options, error) {
	opts := DefaultOptions()

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return opts, err
	}
	opts.Level = level
	opts.Format = ParseFormat(cfg.Format)
	opts.File.Path = cfg.File
	if cfg.MaxSizeMB > 0 {
		opts.File.MaxSizeMB = cfg.MaxSizeMB
	}
	if cfg.MaxBackups > 0 {
		opts.File.MaxBackups = cfg.MaxBackups
	}
	return opts, nil
}

// ParseLevel accepts zerolog level names in any case. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, common.WrapError(err, "invalid log level")
	}
	return level, nil
}

// ParseFormat maps a format name onto Format. Unknown names get console.
func ParseFormat(s string) Format {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f
	default:
		return FormatConsole
	}
}
