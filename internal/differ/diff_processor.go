package differ

import (
	"unicode/utf8"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// maxInternedLines is how many distinct lines fit in the rune alphabet once
// the surrogate block is skipped.
const maxInternedLines = utf8.MaxRune - 0x800

// LineOp is one run of an edit script over line indexes. Ranges are
// half-open; an insert has an empty old range and a delete an empty new one.
type LineOp struct {
	Kind     models.DiffOperation
	OldStart int
	OldEnd   int
	NewStart int
	NewEnd   int
}

// Region is a maximal run of either equal lines or changed lines.
type Region struct {
	Changed  bool
	OldStart int
	OldEnd   int
	NewStart int
	NewEnd   int
}

// OldLen returns the number of left-side lines in the region.
func (r Region) OldLen() int { return r.OldEnd - r.OldStart }

// NewLen returns the number of right-side lines in the region.
func (r Region) NewLen() int { return r.NewEnd - r.NewStart }

// EditScript is a line-level edit script. Lines keep their "\n" terminator,
// so a final line without one differs from the same line with one.
type EditScript struct {
	OldLines []string
	NewLines []string
	Ops      []LineOp
}

// Regions groups the ops into alternating equal and changed regions. A
// delete next to an insert becomes a single changed region.
func (s *EditScript) Regions() []Region {
	var regions []Region
	for _, op := range s.Ops {
		changed := op.Kind != models.DiffEqual
		if n := len(regions); n > 0 && changed && regions[n-1].Changed {
			last := &regions[n-1]
			last.OldEnd = op.OldEnd
			last.NewEnd = op.NewEnd
			continue
		}
		regions = append(regions, Region{
			Changed:  changed,
			OldStart: op.OldStart,
			OldEnd:   op.OldEnd,
			NewStart: op.NewStart,
			NewEnd:   op.NewEnd,
		})
	}
	return regions
}

// ChangedRegions returns only the changed regions, in order.
func (s *EditScript) ChangedRegions() []Region {
	var changes []Region
	for _, r := range s.Regions() {
		if r.Changed {
			changes = append(changes, r)
		}
	}
	return changes
}

// DiffProcessor handles the core diffing logic
type DiffProcessor struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor() *DiffProcessor {
	dmp := diffmatchpatch.New()
	// No deadline: the result must not depend on machine speed.
	dmp.DiffTimeout = 0
	return &DiffProcessor{dmp: dmp}
}

// ProcessDiff computes the line edit script turning left into right.
func (dp *DiffProcessor) ProcessDiff(left, right string) *EditScript {
	script := &EditScript{
		OldLines: common.SplitLinesKeepEnds(left),
		NewLines: common.SplitLinesKeepEnds(right),
	}

	a, b, ok := internLines(script.OldLines, script.NewLines)
	if !ok {
		script.Ops = affixOps(script.OldLines, script.NewLines)
		return script
	}

	script.Ops = opsFromDiffs(dp.dmp.DiffMainRunes(a, b, false))
	return script
}

// internLines maps each distinct line to its own rune so the character
// differ works on whole lines.
func internLines(oldLines, newLines []string) ([]rune, []rune, bool) {
	ids := make(map[string]rune)
	encode := func(lines []string) ([]rune, bool) {
		runes := make([]rune, len(lines))
		for i, line := range lines {
			r, seen := ids[line]
			if !seen {
				if len(ids) >= maxInternedLines {
					return nil, false
				}
				r = rune(len(ids) + 1)
				if r >= 0xD800 {
					r += 0x800
				}
				ids[line] = r
			}
			runes[i] = r
		}
		return runes, true
	}

	a, ok := encode(oldLines)
	if !ok {
		return nil, nil, false
	}
	b, ok := encode(newLines)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

func opsFromDiffs(diffs []diffmatchpatch.Diff) []LineOp {
	ops := make([]LineOp, 0, len(diffs))
	oldPos, newPos := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		if n == 0 {
			continue
		}
		op := LineOp{OldStart: oldPos, OldEnd: oldPos, NewStart: newPos, NewEnd: newPos}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op.Kind = models.DiffEqual
			op.OldEnd += n
			op.NewEnd += n
		case diffmatchpatch.DiffDelete:
			op.Kind = models.DiffDelete
			op.OldEnd += n
		case diffmatchpatch.DiffInsert:
			op.Kind = models.DiffInsert
			op.NewEnd += n
		}
		oldPos, newPos = op.OldEnd, op.NewEnd
		ops = append(ops, op)
	}
	return ops
}

// affixOps is a coarse but valid script: common prefix, one replaced
// middle, common suffix.
func affixOps(oldLines, newLines []string) []LineOp {
	prefix := 0
	for prefix < len(oldLines) && prefix < len(newLines) && oldLines[prefix] == newLines[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(oldLines)-prefix && suffix < len(newLines)-prefix &&
		oldLines[len(oldLines)-1-suffix] == newLines[len(newLines)-1-suffix] {
		suffix++
	}

	oldMid, newMid := len(oldLines)-suffix, len(newLines)-suffix
	var ops []LineOp
	if prefix > 0 {
		ops = append(ops, LineOp{Kind: models.DiffEqual, OldEnd: prefix, NewEnd: prefix})
	}
	if oldMid > prefix {
		ops = append(ops, LineOp{Kind: models.DiffDelete, OldStart: prefix, OldEnd: oldMid, NewStart: prefix, NewEnd: prefix})
	}
	if newMid > prefix {
		ops = append(ops, LineOp{Kind: models.DiffInsert, OldStart: oldMid, OldEnd: oldMid, NewStart: prefix, NewEnd: newMid})
	}
	if suffix > 0 {
		ops = append(ops, LineOp{
			Kind:     models.DiffEqual,
			OldStart: oldMid, OldEnd: len(oldLines),
			NewStart: newMid, NewEnd: len(newLines),
		})
	}
	return ops
}

// DiffStatsCalculator calculates statistics from diff results
type DiffStatsCalculator struct{}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// CalculateStats computes statistics from an edit script
func (dsc *DiffStatsCalculator) CalculateStats(script *EditScript) models.DiffStatistics {
	stats := models.DiffStatistics{}

	for _, r := range script.ChangedRegions() {
		stats.LinesAdded += r.NewLen()
		stats.LinesDeleted += r.OldLen()
		stats.Regions++
	}

	stats.IsIdentical = stats.Regions == 0
	return stats
}
