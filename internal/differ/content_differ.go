package differ

import (
	"time"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/models"
	"github.com/rs/zerolog"
)

// ContentDiffer compares two text buffers line by line
type ContentDiffer struct {
	logger          zerolog.Logger
	config          DiffConfig
	processor       *DiffProcessor
	renderer        *UnifiedRenderer
	statsCalculator *DiffStatsCalculator
}

// ContentDifferBuilder provides a fluent interface for creating ContentDiffer
type ContentDifferBuilder struct {
	logger  zerolog.Logger
	diffCfg DiffConfig
}

// NewContentDifferBuilder creates a new builder
func NewContentDifferBuilder(logger zerolog.Logger) *ContentDifferBuilder {
	return &ContentDifferBuilder{
		logger:  logger.With().Str("component", "ContentDiffer").Logger(),
		diffCfg: DefaultDiffConfig(),
	}
}

// WithDiffConfig sets the diff configuration
func (b *ContentDifferBuilder) WithDiffConfig(cfg DiffConfig) *ContentDifferBuilder {
	b.diffCfg = cfg
	return b
}

// WithContextLines overrides the number of context lines
func (b *ContentDifferBuilder) WithContextLines(n int) *ContentDifferBuilder {
	b.diffCfg.ContextLines = n
	return b
}

// Build creates a new ContentDiffer instance
func (b *ContentDifferBuilder) Build() (*ContentDiffer, error) {
	if b.diffCfg.ContextLines < 0 {
		return nil, common.NewValidationError("context_lines", b.diffCfg.ContextLines, "context lines cannot be negative")
	}
	if b.diffCfg.LeftLabel == "" || b.diffCfg.RightLabel == "" {
		return nil, common.NewValidationError("labels", b.diffCfg.LeftLabel+"/"+b.diffCfg.RightLabel, "diff labels cannot be empty")
	}

	return &ContentDiffer{
		logger:          b.logger,
		config:          b.diffCfg,
		processor:       NewDiffProcessor(),
		renderer:        NewUnifiedRenderer(b.diffCfg),
		statsCalculator: NewDiffStatsCalculator(),
	}, nil
}

// NewContentDiffer creates a ContentDiffer with the default configuration
func NewContentDiffer(logger zerolog.Logger) (*ContentDiffer, error) {
	return NewContentDifferBuilder(logger).Build()
}

// GenerateDiff compares left with right and renders both presentations
// from the same edit script.
func (cd *ContentDiffer) GenerateDiff(left, right string) (*models.ContentDiffResult, error) {
	startTime := time.Now()

	script := cd.processor.ProcessDiff(left, right)

	unified, err := cd.renderer.Render(script)
	if err != nil {
		return nil, err
	}
	structured := cd.buildStructured(script)
	stats := cd.statsCalculator.CalculateStats(script)

	cd.logger.Debug().
		Int("lines_added", stats.LinesAdded).
		Int("lines_deleted", stats.LinesDeleted).
		Int("regions", stats.Regions).
		Bool("identical", stats.IsIdentical).
		Msg("Diff computed")

	return NewContentDiffResultBuilder().
		WithUnified(unified).
		WithStructured(structured).
		WithStats(stats).
		WithProcessingTime(time.Since(startTime)).
		Build(), nil
}

// Unified returns the unified diff of left and right
func (cd *ContentDiffer) Unified(left, right string) (string, error) {
	return cd.renderer.Render(cd.processor.ProcessDiff(left, right))
}

// Structured returns the block list of left and right
func (cd *ContentDiffer) Structured(left, right string) *models.StructuredDiff {
	return cd.buildStructured(cd.processor.ProcessDiff(left, right))
}

// Statistics returns line counts for the comparison of left and right
func (cd *ContentDiffer) Statistics(left, right string) models.DiffStatistics {
	return cd.statsCalculator.CalculateStats(cd.processor.ProcessDiff(left, right))
}

func (cd *ContentDiffer) buildStructured(script *EditScript) *models.StructuredDiff {
	return NewStructuredDiffBuilder().
		WithLabels(cd.config.LeftLabel, cd.config.RightLabel).
		WithEditScript(script).
		Build()
}
