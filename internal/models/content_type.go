package models

import "strings"

// Kind identifies the serialized-data dialect of a piece of text.
type Kind string

const (
	KindJSON       Kind = "json"
	KindCSV        Kind = "csv"
	KindXML        Kind = "xml"
	KindYAML       Kind = "yaml"
	KindProperties Kind = "properties"
	KindText       Kind = "text"
)

// kindAliases folds the dialect names callers may send for a segment onto
// the canonical kinds.
var kindAliases = map[string]Kind{
	"json":       KindJSON,
	"csv":        KindCSV,
	"xml":        KindXML,
	"html":       KindXML,
	"yaml":       KindYAML,
	"yml":        KindYAML,
	"properties": KindProperties,
	"env":        KindProperties,
	"text":       KindText,
}

// ParseKind normalizes a caller-supplied kind. Unrecognized values are
// returned unchanged so that they can be treated as unknown dialects.
func ParseKind(s string) Kind {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return Kind(s)
}

// IsKnown reports whether k is one of the canonical dialects.
func (k Kind) IsKnown() bool {
	switch k {
	case KindJSON, KindCSV, KindXML, KindYAML, KindProperties, KindText:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// DetectedType is the result of classifying a buffer or a single line.
type DetectedType struct {
	Kind       Kind    `json:"kind"`
	Confidence float64 `json:"confidence"`
}

// Segment is a contiguous region of a buffer sharing one dialect.
// Line numbers are 1-based and EndLine is inclusive.
type Segment struct {
	StartLine int  `json:"start_line"`
	EndLine   int  `json:"end_line"`
	Kind      Kind `json:"kind"`
}

// LineCount returns the number of lines covered by the segment.
func (s Segment) LineCount() int {
	if s.EndLine < s.StartLine {
		return 0
	}
	return s.EndLine - s.StartLine + 1
}
