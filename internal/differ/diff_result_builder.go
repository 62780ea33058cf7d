package differ

import (
	"strings"
	"time"

	"github.com/aleister1102/siftview/internal/models"
)

// StructuredDiffBuilder builds StructuredDiff objects
type StructuredDiffBuilder struct {
	result models.StructuredDiff
}

// NewStructuredDiffBuilder creates a new structured diff builder
func NewStructuredDiffBuilder() *StructuredDiffBuilder {
	return &StructuredDiffBuilder{
		result: models.StructuredDiff{
			LeftLabel:  models.DiffLeftLabel,
			RightLabel: models.DiffRightLabel,
			Blocks:     []models.DiffBlock{},
		},
	}
}

// WithLabels sets the names of the two compared buffers
func (sb *StructuredDiffBuilder) WithLabels(left, right string) *StructuredDiffBuilder {
	sb.result.LeftLabel = left
	sb.result.RightLabel = right
	return sb
}

// WithEditScript converts the regions of script into blocks, in document
// order. Equal regions become unchanged blocks and each changed region
// becomes one changed block. Line terminators are dropped.
func (sb *StructuredDiffBuilder) WithEditScript(script *EditScript) *StructuredDiffBuilder {
	for _, r := range script.Regions() {
		if !r.Changed {
			if r.OldLen() == 0 {
				continue
			}
			sb.result.Blocks = append(sb.result.Blocks, models.UnchangedBlock{
				Count: r.OldLen(),
				Lines: stripTerminators(script.OldLines[r.OldStart:r.OldEnd]),
			})
			continue
		}
		sb.result.Blocks = append(sb.result.Blocks, models.ChangedBlock{
			OldLines: stripTerminators(script.OldLines[r.OldStart:r.OldEnd]),
			NewLines: stripTerminators(script.NewLines[r.NewStart:r.NewEnd]),
		})
	}
	return sb
}

// Build creates the final StructuredDiff
func (sb *StructuredDiffBuilder) Build() *models.StructuredDiff {
	return &sb.result
}

func stripTerminators(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	}
	return out
}

// ContentDiffResultBuilder builds ContentDiffResult objects
type ContentDiffResultBuilder struct {
	result models.ContentDiffResult
}

// NewContentDiffResultBuilder creates a new result builder
func NewContentDiffResultBuilder() *ContentDiffResultBuilder {
	return &ContentDiffResultBuilder{}
}

// WithUnified sets the unified diff text
func (rb *ContentDiffResultBuilder) WithUnified(unified string) *ContentDiffResultBuilder {
	rb.result.Unified = unified
	return rb
}

// WithStructured sets the block list
func (rb *ContentDiffResultBuilder) WithStructured(structured *models.StructuredDiff) *ContentDiffResultBuilder {
	rb.result.Structured = *structured
	return rb
}

// WithStats sets the diff statistics
func (rb *ContentDiffResultBuilder) WithStats(stats models.DiffStatistics) *ContentDiffResultBuilder {
	rb.result.Stats = stats
	return rb
}

// WithProcessingTime sets the processing time
func (rb *ContentDiffResultBuilder) WithProcessingTime(duration time.Duration) *ContentDiffResultBuilder {
	rb.result.ProcessingTimeMs = duration.Milliseconds()
	return rb
}

// Build creates the final ContentDiffResult
func (rb *ContentDiffResultBuilder) Build() *models.ContentDiffResult {
	return &rb.result
}
