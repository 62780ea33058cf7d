// Package logger builds the application's zerolog logger from the log
// section of the config.
package logger

import (
	"io"
	stdlog "log"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/config"
	"github.com/rs/zerolog"
)

// Builder assembles a zerolog.Logger step by step
type Builder struct {
	opts Options
	err  error
}

// NewBuilder starts from DefaultOptions
func NewBuilder() *Builder {
	return &Builder{opts: DefaultOptions()}
}

// FromConfig applies the log section of the config. The console output
// chosen so far is kept.
func (b *Builder) FromConfig(cfg config.LogConfig) *Builder {
	console := b.opts.Console
	opts, err := OptionsFromConfig(cfg)
	opts.Console = console
	b.opts, b.err = opts, err
	return b
}

// WithConsole redirects console records; nil turns them off
func (b *Builder) WithConsole(out io.Writer) *Builder {
	b.opts.Console = out
	return b
}

// Build creates the logger, sets the global level and routes the standard
// library logger through it
func (b *Builder) Build() (zerolog.Logger, error) {
	if b.err != nil {
		return zerolog.Nop(), b.err
	}
	if b.opts.File.Path != "" && b.opts.File.MaxSizeMB <= 0 {
		return zerolog.Nop(), common.NewValidationError("max_size_mb", b.opts.File.MaxSizeMB, "max size must be positive")
	}

	var outputs []io.Writer
	if b.opts.Console != nil {
		outputs = append(outputs, withLayout(b.opts.Format, b.opts.Console, true))
	}
	if b.opts.File.Path != "" {
		f, err := rotatingFile(b.opts.File)
		if err != nil {
			return zerolog.Nop(), err
		}
		outputs = append(outputs, withLayout(b.opts.Format, f, false))
	}
	if len(outputs) == 0 {
		return zerolog.Nop(), common.NewError("no output writers configured")
	}

	log := zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		Level(b.opts.Level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(b.opts.Level)
	stdlog.SetOutput(log)
	stdlog.SetFlags(0)

	return log, nil
}

// New creates the application logger from cfg
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewBuilder().FromConfig(cfg).Build()
}
