package differ

import (
	"bytes"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/sourcegraph/go-diff/diff"
)

// UnifiedRenderer prints an edit script as a unified diff.
type UnifiedRenderer struct {
	contextLines int
	leftLabel    string
	rightLabel   string
}

// NewUnifiedRenderer creates a new unified renderer
func NewUnifiedRenderer(config DiffConfig) *UnifiedRenderer {
	return &UnifiedRenderer{
		contextLines: max(config.ContextLines, 0),
		leftLabel:    config.LeftLabel,
		rightLabel:   config.RightLabel,
	}
}

// Render returns the unified diff of script, or "" when nothing changed.
// Every body line ends with "\n"; no missing-newline marker is written.
func (ur *UnifiedRenderer) Render(script *EditScript) (string, error) {
	hunks := ur.buildHunks(script)
	if len(hunks) == 0 {
		return "", nil
	}

	out, err := diff.PrintFileDiff(&diff.FileDiff{
		OrigName: ur.leftLabel,
		NewName:  ur.rightLabel,
		Hunks:    hunks,
	})
	if err != nil {
		return "", common.WrapError(err, "failed to print unified diff")
	}
	return string(out), nil
}

// buildHunks groups changed regions whose unchanged gap is small enough for
// their context to touch or overlap.
func (ur *UnifiedRenderer) buildHunks(script *EditScript) []*diff.Hunk {
	changes := script.ChangedRegions()
	var hunks []*diff.Hunk

	for i := 0; i < len(changes); {
		j := i + 1
		for j < len(changes) && changes[j].OldStart-changes[j-1].OldEnd <= 2*ur.contextLines {
			j++
		}
		hunks = append(hunks, ur.buildHunk(script, changes[i:j]))
		i = j
	}
	return hunks
}

func (ur *UnifiedRenderer) buildHunk(script *EditScript, group []Region) *diff.Hunk {
	first, last := group[0], group[len(group)-1]

	startOld := max(first.OldStart-ur.contextLines, 0)
	startNew := first.NewStart - (first.OldStart - startOld)
	endOld := min(last.OldEnd+ur.contextLines, len(script.OldLines))
	endNew := last.NewEnd + (endOld - last.OldEnd)

	var body bytes.Buffer
	o := startOld
	for _, r := range group {
		for ; o < r.OldStart; o++ {
			writeBodyLine(&body, ' ', script.OldLines[o])
		}
		for _, line := range script.OldLines[r.OldStart:r.OldEnd] {
			writeBodyLine(&body, '-', line)
		}
		for _, line := range script.NewLines[r.NewStart:r.NewEnd] {
			writeBodyLine(&body, '+', line)
		}
		o = r.OldEnd
	}
	for ; o < endOld; o++ {
		writeBodyLine(&body, ' ', script.OldLines[o])
	}

	oldCount, newCount := endOld-startOld, endNew-startNew
	return &diff.Hunk{
		OrigStartLine: int32(hunkStart(startOld, oldCount)),
		OrigLines:     int32(oldCount),
		NewStartLine:  int32(hunkStart(startNew, newCount)),
		NewLines:      int32(newCount),
		Body:          body.Bytes(),
	}
}

// hunkStart converts a 0-based offset to the 1-based line number used in
// hunk headers. An empty range names the line before it.
func hunkStart(offset, count int) int {
	if count == 0 {
		return offset
	}
	return offset + 1
}

func writeBodyLine(buf *bytes.Buffer, prefix byte, line string) {
	buf.WriteByte(prefix)
	buf.WriteString(line)
	if len(line) == 0 || line[len(line)-1] != '\n' {
		buf.WriteByte('\n')
	}
}
