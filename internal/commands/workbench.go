package commands

import (
	"context"
	"time"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/common/file"
	"github.com/aleister1102/siftview/internal/config"
	"github.com/aleister1102/siftview/internal/detector"
	"github.com/aleister1102/siftview/internal/differ"
	"github.com/aleister1102/siftview/internal/formatter"
	"github.com/aleister1102/siftview/internal/models"
	"github.com/aleister1102/siftview/internal/segmenter"
	"github.com/rs/zerolog"
)

// Workbench exposes the buffer operations offered to a host: bounded file
// I/O, classification, segmentation, canonicalization and comparison.
// It holds no per-call state and is safe for concurrent use.
type Workbench struct {
	logger    zerolog.Logger
	storage   config.StorageConfig
	files     *file.Storage
	formatter *formatter.SegmentFormatter
	differ    *differ.ContentDiffer
}

// NewWorkbench creates a Workbench from the global configuration
func NewWorkbench(cfg *config.GlobalConfig, logger zerolog.Logger) (*Workbench, error) {
	if cfg == nil {
		cfg = config.NewDefaultGlobalConfig()
	}
	componentLogger := logger.With().Str("component", "Workbench").Logger()

	contentDiffer, err := differ.NewContentDifferBuilder(logger).
		WithContextLines(cfg.DiffConfig.ContextLines).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create content differ")
	}

	return &Workbench{
		logger:    componentLogger,
		storage:   cfg.StorageConfig,
		files:     file.NewStorage(logger),
		formatter: formatter.NewSegmentFormatter(logger),
		differ:    contentDiffer,
	}, nil
}

// ReadFile returns the text content of path. Files above the size ceiling
// fail with a *common.FileTooLargeError and OS errors are returned as-is.
func (w *Workbench) ReadFile(ctx context.Context, path string) (string, error) {
	content, err := w.files.Read(ctx, path, w.readOptions())
	if err != nil {
		w.logger.Debug().Err(err).Str("path", path).Msg("Read failed")
		return "", err
	}
	return content, nil
}

// WriteFile replaces the content of path
func (w *Workbench) WriteFile(ctx context.Context, path, content string) error {
	if err := w.files.Write(ctx, path, content, w.writeOptions()); err != nil {
		w.logger.Debug().Err(err).Str("path", path).Msg("Write failed")
		return err
	}
	return nil
}

// DetectContent classifies the whole buffer
func (w *Workbench) DetectContent(content, extension string) models.DetectedType {
	return detector.Detect(content, extension)
}

// DetectSegments partitions the buffer into same-dialect runs
func (w *Workbench) DetectSegments(content, extension string) []models.Segment {
	segments := segmenter.DetectSegments(content, extension)
	w.logger.Debug().Int("segments", len(segments)).Msg("Segments detected")
	return segments
}

// FormatContentSegmented canonicalizes each segment independently. It
// never fails.
func (w *Workbench) FormatContentSegmented(content string, segments []models.Segment) string {
	return w.formatter.FormatSegments(content, segments)
}

// FormatJSON pretty-prints a JSON document
func (w *Workbench) FormatJSON(content string) (string, error) {
	return formatter.FormatJSON(content)
}

// ComputeDiff returns the unified diff of left against right. Identical
// buffers give an empty string.
func (w *Workbench) ComputeDiff(left, right string) string {
	unified, err := w.differ.Unified(left, right)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to render unified diff")
		return ""
	}
	return unified
}

// CompareBuffers computes both diff presentations and the line statistics
// from one edit script
func (w *Workbench) CompareBuffers(left, right string) (*models.ContentDiffResult, error) {
	return w.differ.GenerateDiff(left, right)
}

// ComputeDiffStructured returns the block list of left against right
func (w *Workbench) ComputeDiffStructured(left, right string) *models.StructuredDiff {
	return w.differ.Structured(left, right)
}

func (w *Workbench) readOptions() file.ReadOptions {
	opts := file.DefaultReadOptions()
	opts.Timeout = secondsOrZero(w.storage.ReadTimeoutSecs)
	opts.BufferSize = w.storage.BufferSizeKB * 1024
	return opts
}

func (w *Workbench) writeOptions() file.WriteOptions {
	opts := file.DefaultWriteOptions()
	opts.Timeout = secondsOrZero(w.storage.WriteTimeoutSecs)
	opts.CreateDirs = w.storage.CreateDirs
	return opts
}

func secondsOrZero(secs int) time.Duration {
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
