// Package formatter canonicalizes text per dialect, either as a whole
// document or segment by segment.
package formatter

import (
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/models"
	"github.com/rs/zerolog"
)

// Canonicalizer rewrites text of one dialect into its normalized form.
type Canonicalizer func(content string) (string, error)

// Identity returns content unchanged. It is used for text and for any kind
// without a registered canonicalizer.
func Identity(content string) (string, error) {
	return content, nil
}

// OrOriginal wraps c so that a failure yields the input unchanged. The
// error is still reported to onError when it is non-nil.
func OrOriginal(c Canonicalizer, onError func(error)) func(string) string {
	return func(content string) string {
		out, err := c(content)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return content
		}
		return out
	}
}

var defaultCanonicalizers = map[models.Kind]Canonicalizer{
	models.KindJSON:       FormatJSON,
	models.KindCSV:        FormatCSV,
	models.KindXML:        FormatMarkup,
	models.KindYAML:       FormatYAML,
	models.KindProperties: FormatProperties,
	models.KindText:       Identity,
}

// CanonicalizerFor returns the canonicalizer registered for kind. Aliases
// such as "html" and "env" are folded first; unknown kinds get Identity.
func CanonicalizerFor(kind models.Kind) Canonicalizer {
	if c, ok := defaultCanonicalizers[models.ParseKind(string(kind))]; ok {
		return c
	}
	return Identity
}

// SegmentFormatter formats buffers segment by segment. A segment that fails
// to parse is kept as written and never fails the whole buffer.
type SegmentFormatter struct {
	logger zerolog.Logger
}

// NewSegmentFormatter creates a new SegmentFormatter
func NewSegmentFormatter(logger zerolog.Logger) *SegmentFormatter {
	return &SegmentFormatter{
		logger: logger.With().Str("component", "SegmentFormatter").Logger(),
	}
}

// FormatSegments canonicalizes each segment of content and joins the results
// with "\n". Segment bounds are clamped to the buffer and segments left
// empty by clamping are skipped. Without segments the whole buffer is
// treated as one JSON document.
func (sf *SegmentFormatter) FormatSegments(content string, segments []models.Segment) string {
	if content == "" {
		return content
	}

	if len(segments) == 0 {
		return OrOriginal(FormatJSON, func(err error) {
			sf.logger.Debug().Err(err).Msg("Whole buffer is not JSON, leaving it unchanged")
		})(content)
	}

	lines := common.SplitLines(content)
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		start := max(seg.StartLine-1, 0)
		end := min(seg.EndLine, len(lines))
		if start >= end {
			continue
		}

		format := OrOriginal(CanonicalizerFor(seg.Kind), func(err error) {
			sf.logger.Debug().
				Err(err).
				Int("start_line", seg.StartLine).
				Int("end_line", seg.EndLine).
				Str("kind", seg.Kind.String()).
				Msg("Segment left unformatted")
		})
		parts = append(parts, format(strings.Join(lines[start:end], "\n")))
	}
	return strings.Join(parts, "\n")
}

// FormatSegments is SegmentFormatter.FormatSegments without logging.
func FormatSegments(content string, segments []models.Segment) string {
	return NewSegmentFormatter(zerolog.Nop()).FormatSegments(content, segments)
}
