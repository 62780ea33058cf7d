// Package segmenter partitions a buffer into runs of consecutive non-blank
// lines that share one dialect.
package segmenter

import (
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/detector"
	"github.com/aleister1102/siftview/internal/models"
)

// DetectSegments walks content once and returns its segments in line order.
// A run is extended only when the next non-blank line has the same kind and
// directly follows it, so a blank line always starts a new segment.
func DetectSegments(content, ext string) []models.Segment {
	lines := common.SplitLines(content)
	if len(lines) == 0 {
		return []models.Segment{{StartLine: 1, EndLine: 1, Kind: emptyBufferKind(content, ext)}}
	}

	var segments []models.Segment
	for i, line := range lines {
		if common.IsBlank(line) {
			continue
		}

		lineNo := i + 1
		kind := detector.DetectLine(line, i, ext)

		if n := len(segments); n > 0 {
			last := &segments[n-1]
			if last.Kind == kind && last.EndLine+1 == lineNo {
				last.EndLine = lineNo
				continue
			}
		}
		segments = append(segments, models.Segment{StartLine: lineNo, EndLine: lineNo, Kind: kind})
	}

	if len(segments) == 0 {
		segments = append(segments, models.Segment{StartLine: 1, EndLine: len(lines), Kind: models.KindText})
	}
	return segments
}

func emptyBufferKind(content, ext string) models.Kind {
	if dt, ok := detector.LookupExtension(ext); ok {
		return dt.Kind
	}
	return detector.Heuristic(strings.TrimSpace(content)).Kind
}
