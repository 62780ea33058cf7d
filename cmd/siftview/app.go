package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aleister1102/siftview/internal/commands"
	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/common/file"
	"github.com/aleister1102/siftview/internal/models"
	"github.com/rs/zerolog"
)

// maxRequestLineBytes bounds one invoke request. Content is JSON-escaped,
// so it may take several times the file ceiling.
const maxRequestLineBytes = 4 * int(file.MaxFileSizeBytes)

// App runs one CLI mode against a Workbench
type App struct {
	logger    zerolog.Logger
	flags     AppFlags
	workbench *commands.Workbench
	stdin     io.Reader
	stdout    io.Writer
}

// NewApp creates an App
func NewApp(flags AppFlags, workbench *commands.Workbench, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) *App {
	return &App{
		logger:    logger.With().Str("component", "App").Logger(),
		flags:     flags,
		workbench: workbench,
		stdin:     stdin,
		stdout:    stdout,
	}
}

// Run executes the selected mode
func (a *App) Run(ctx context.Context) error {
	if a.flags.Mode == ModeInvoke {
		return a.runInvoke(ctx)
	}

	content, err := a.readInput(ctx, a.flags.InputFile)
	if err != nil {
		return err
	}

	var result any
	switch a.flags.Mode {
	case ModeDetect:
		result = a.workbench.DetectContent(content, a.extension())
	case ModeSegments:
		result = a.workbench.DetectSegments(content, a.extension())
	case ModeFormat:
		segments, err := a.loadSegments(ctx, content)
		if err != nil {
			return err
		}
		result = a.workbench.FormatContentSegmented(content, segments)
	case ModeFormatJSON:
		result, err = a.workbench.FormatJSON(content)
		if err != nil {
			return err
		}
	case ModeDiff, ModeDiffStructured, ModeDiffReport:
		right, err := a.workbench.ReadFile(ctx, a.flags.RightFile)
		if err != nil {
			return err
		}
		switch a.flags.Mode {
		case ModeDiff:
			result = a.workbench.ComputeDiff(content, right)
		case ModeDiffStructured:
			result = a.workbench.ComputeDiffStructured(content, right)
		default:
			report, err := a.workbench.CompareBuffers(content, right)
			if err != nil {
				return err
			}
			result = report
		}
	default:
		return common.NewError("unknown mode: %s", a.flags.Mode)
	}

	return a.writeResult(ctx, result)
}

// runInvoke answers one JSON request per stdin line with one JSON response
// per stdout line
func (a *App) runInvoke(ctx context.Context) error {
	invoker := commands.NewInvoker(a.workbench, a.logger)
	encoder := json.NewEncoder(a.stdout)
	encoder.SetEscapeHTML(false)

	scanner := bufio.NewScanner(a.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestLineBytes)

	handled := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := encoder.Encode(invoker.HandleRequest(ctx, []byte(line))); err != nil {
			return common.WrapError(err, "failed to write response")
		}
		handled++
	}
	if err := scanner.Err(); err != nil {
		return common.WrapError(err, "failed to read requests")
	}

	a.logger.Debug().Int("requests", handled).Msg("Invoke session finished")
	return nil
}

// readInput reads path, or stdin when path is empty, under the same size
// ceiling
func (a *App) readInput(ctx context.Context, path string) (string, error) {
	if path != "" {
		return a.workbench.ReadFile(ctx, path)
	}

	return file.ReadBounded(a.stdin, "<stdin>", file.MaxFileSizeBytes)
}

// loadSegments decodes the -segments file or detects segments when none
// is given
func (a *App) loadSegments(ctx context.Context, content string) ([]models.Segment, error) {
	if a.flags.SegmentsFile == "" {
		return a.workbench.DetectSegments(content, a.extension()), nil
	}

	raw, err := a.workbench.ReadFile(ctx, a.flags.SegmentsFile)
	if err != nil {
		return nil, common.WrapError(err, "failed to read segments file")
	}
	var segments []models.Segment
	if err := json.Unmarshal([]byte(raw), &segments); err != nil {
		return nil, common.WrapError(err, "invalid segments file")
	}
	return segments, nil
}

// extension returns the hint from -ext or from the input file name
func (a *App) extension() string {
	if a.flags.Extension != "" {
		return strings.TrimPrefix(a.flags.Extension, ".")
	}
	if a.flags.InputFile != "" {
		return strings.TrimPrefix(filepath.Ext(a.flags.InputFile), ".")
	}
	return ""
}

// writeResult prints strings as-is and everything else as indented JSON
func (a *App) writeResult(ctx context.Context, result any) error {
	var out string
	if text, ok := result.(string); ok {
		out = text
	} else {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return common.WrapError(err, "failed to encode result")
		}
		out = string(data) + "\n"
	}

	if a.flags.OutputFile != "" {
		return a.workbench.WriteFile(ctx, a.flags.OutputFile, out)
	}
	_, err := fmt.Fprint(a.stdout, out)
	return err
}
