package models

import "encoding/json"

// DiffOperation defines the type of change.
type DiffOperation int

const (
	// DiffEqual indicates an unchanged run of lines.
	DiffEqual DiffOperation = 0
	// DiffInsert indicates lines present only on the right side.
	DiffInsert DiffOperation = 1
	// DiffDelete indicates lines present only on the left side.
	DiffDelete DiffOperation = -1
)

func (op DiffOperation) String() string {
	switch op {
	case DiffInsert:
		return "insert"
	case DiffDelete:
		return "delete"
	default:
		return "equal"
	}
}

// Labels naming the two buffers of a comparison.
const (
	DiffLeftLabel  = "current"
	DiffRightLabel = "clipboard"
)

// DiffBlock is one entry of a StructuredDiff. It is either an
// UnchangedBlock or a ChangedBlock.
type DiffBlock interface {
	isDiffBlock()
	// OldLineCount is the number of left-side lines the block accounts for.
	OldLineCount() int
	// NewLineCount is the number of right-side lines the block accounts for.
	NewLineCount() int
}

// UnchangedBlock is a run of lines identical on both sides.
type UnchangedBlock struct {
	Count int      `json:"count"`
	Lines []string `json:"lines"`
}

func (UnchangedBlock) isDiffBlock() {}

func (b UnchangedBlock) OldLineCount() int { return b.Count }

func (b UnchangedBlock) NewLineCount() int { return b.Count }

// MarshalJSON encodes the block with a "type" discriminator.
func (b UnchangedBlock) MarshalJSON() ([]byte, error) {
	lines := b.Lines
	if lines == nil {
		lines = []string{}
	}
	return json.Marshal(struct {
		Type  string   `json:"type"`
		Count int      `json:"count"`
		Lines []string `json:"lines"`
	}{"unchanged", b.Count, lines})
}

// ChangedBlock pairs a region of the left side with the region of the right
// side that replaces it. Either side may be empty.
type ChangedBlock struct {
	OldLines []string `json:"old_lines"`
	NewLines []string `json:"new_lines"`
}

func (ChangedBlock) isDiffBlock() {}

func (b ChangedBlock) OldLineCount() int { return len(b.OldLines) }

func (b ChangedBlock) NewLineCount() int { return len(b.NewLines) }

// MarshalJSON encodes the block with a "type" discriminator.
func (b ChangedBlock) MarshalJSON() ([]byte, error) {
	oldLines, newLines := b.OldLines, b.NewLines
	if oldLines == nil {
		oldLines = []string{}
	}
	if newLines == nil {
		newLines = []string{}
	}
	return json.Marshal(struct {
		Type     string   `json:"type"`
		OldLines []string `json:"old_lines"`
		NewLines []string `json:"new_lines"`
	}{"changed", oldLines, newLines})
}

// StructuredDiff is the block-list presentation of a line diff, suitable for
// side-by-side rendering.
type StructuredDiff struct {
	LeftLabel  string      `json:"left_label"`
	RightLabel string      `json:"right_label"`
	Blocks     []DiffBlock `json:"blocks"`
}

// MarshalJSON keeps an empty block list as [] rather than null.
func (d StructuredDiff) MarshalJSON() ([]byte, error) {
	blocks := d.Blocks
	if blocks == nil {
		blocks = []DiffBlock{}
	}
	return json.Marshal(struct {
		LeftLabel  string      `json:"left_label"`
		RightLabel string      `json:"right_label"`
		Blocks     []DiffBlock `json:"blocks"`
	}{d.LeftLabel, d.RightLabel, blocks})
}

// DiffStatistics summarizes a line diff.
type DiffStatistics struct {
	LinesAdded   int  `json:"lines_added"`
	LinesDeleted int  `json:"lines_deleted"`
	Regions      int  `json:"regions"`
	IsIdentical  bool `json:"is_identical"`
}

// ContentDiffResult bundles both presentations of one comparison, computed
// from a single edit script.
type ContentDiffResult struct {
	Unified          string         `json:"unified"`
	Structured       StructuredDiff `json:"structured"`
	Stats            DiffStatistics `json:"stats"`
	ProcessingTimeMs int64          `json:"processing_time_ms"`
}
