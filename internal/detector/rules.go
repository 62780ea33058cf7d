package detector

import (
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/models"
)

// Heuristic confidences.
const (
	ConfidenceJSONHeuristic       = 0.85
	ConfidenceCSVHeuristic        = 0.70
	ConfidenceYAMLDocument        = 0.75
	ConfidenceYAMLKeyValue        = 0.65
	ConfidencePropertiesHeuristic = 0.65
	ConfidenceText                = 0.50
)

// Rule is one step of the heuristic cascade. Match receives text that has
// already been trimmed.
type Rule struct {
	Name       string
	Match      func(trimmed string) bool
	Kind       models.Kind
	Confidence float64
}

// DefaultRules are evaluated in order and the first match wins. JSON markers
// are the least ambiguous and go first; "=" shows up inside most other
// dialects so properties go last.
var DefaultRules = []Rule{
	{
		Name:       "json structure",
		Match:      looksLikeJSON,
		Kind:       models.KindJSON,
		Confidence: ConfidenceJSONHeuristic,
	},
	{
		Name:       "csv header",
		Match:      looksLikeCSV,
		Kind:       models.KindCSV,
		Confidence: ConfidenceCSVHeuristic,
	},
	{
		Name:       "yaml document marker",
		Match:      func(s string) bool { return strings.HasPrefix(s, "---") },
		Kind:       models.KindYAML,
		Confidence: ConfidenceYAMLDocument,
	},
	{
		Name:       "yaml key/value",
		Match:      looksLikeYAMLMapping,
		Kind:       models.KindYAML,
		Confidence: ConfidenceYAMLKeyValue,
	},
	{
		Name:       "properties assignments",
		Match:      looksLikeProperties,
		Kind:       models.KindProperties,
		Confidence: ConfidencePropertiesHeuristic,
	},
}

func startsWithBrace(s string) bool {
	return strings.HasPrefix(s, "{")
}

func looksLikeJSON(s string) bool {
	return (strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")) && strings.Contains(s, `"`)
}

func looksLikeCSV(s string) bool {
	if !strings.Contains(s, ",") || !strings.Contains(s, "\n") {
		return false
	}
	first, _, _ := strings.Cut(s, "\n")
	return strings.Contains(first, ",")
}

func looksLikeYAMLMapping(s string) bool {
	if !strings.Contains(s, "\n") || !strings.Contains(s, ": ") {
		return false
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return false
	}

	lines := common.SplitLines(s)
	for _, line := range lines[:min(3, len(lines))] {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") || startsWithBrace(t) {
			continue
		}
		if strings.Contains(t, ": ") {
			return true
		}
	}
	return false
}

func looksLikeProperties(s string) bool {
	if !strings.Contains(s, "=") || startsWithBrace(s) {
		return false
	}

	assignments := 0
	for _, line := range common.SplitLines(s) {
		t := strings.TrimSpace(line)
		switch {
		case t == "", strings.HasPrefix(t, "#"):
		case strings.Contains(t, "=") && !strings.HasPrefix(t, "="):
			assignments++
		default:
			return false
		}
	}
	return assignments > 0
}
