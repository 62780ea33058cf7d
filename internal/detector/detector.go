// Package detector classifies text into one of the supported data dialects.
// Every function here is total: any string input yields a result.
package detector

import (
	"strings"

	"github.com/aleister1102/siftview/internal/models"
)

// Detect classifies a whole buffer. A recognized extension hint wins over
// the content; an empty or unknown hint falls through to Heuristic.
func Detect(text, ext string) models.DetectedType {
	if dt, ok := LookupExtension(ext); ok {
		return dt
	}
	return Heuristic(text)
}

// Heuristic runs the rule cascade over the trimmed text.
func Heuristic(text string) models.DetectedType {
	return evaluate(DefaultRules, strings.TrimSpace(text))
}

func evaluate(rules []Rule, trimmed string) models.DetectedType {
	for _, rule := range rules {
		if rule.Match(trimmed) {
			return models.DetectedType{Kind: rule.Kind, Confidence: rule.Confidence}
		}
	}
	return models.DetectedType{Kind: models.KindText, Confidence: ConfidenceText}
}

// DetectLine classifies a single line at the 0-based index. Only the first
// line of a buffer honors the extension hint. Blank lines are text.
func DetectLine(line string, index int, ext string) models.Kind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return models.KindText
	}
	if index == 0 {
		if dt, ok := LookupExtension(ext); ok {
			return dt.Kind
		}
	}
	return Heuristic(trimmed).Kind
}
