package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// layouts wraps a raw output in the record layout of each format
var layouts = map[Format]func(out io.Writer, color bool) io.Writer{
	FormatJSON:    func(out io.Writer, _ bool) io.Writer { return out },
	FormatConsole: humanLayout,
	FormatText:    func(out io.Writer, _ bool) io.Writer { return humanLayout(out, false) },
}

func humanLayout(out io.Writer, color bool) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
}

func withLayout(format Format, out io.Writer, color bool) io.Writer {
	layout, ok := layouts[format]
	if !ok {
		layout = humanLayout
	}
	return layout(out, color)
}

// rotatingFile opens the log file lazily through lumberjack after making
// sure its directory exists
func rotatingFile(opts FileOptions) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, common.WrapError(err, "failed to create log directory")
	}
	return &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}, nil
}
