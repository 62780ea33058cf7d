package detector

import (
	"strings"

	"github.com/aleister1102/siftview/internal/models"
)

// extensionMapping is the dialect a filename extension implies.
type extensionMapping struct {
	kind       models.Kind
	confidence float64
}

// knownExtensions maps lower-case extensions, without the leading dot.
var knownExtensions = map[string]extensionMapping{
	"json":       {models.KindJSON, 0.95},
	"csv":        {models.KindCSV, 0.95},
	"xml":        {models.KindXML, 0.90},
	"html":       {models.KindXML, 0.90},
	"yaml":       {models.KindYAML, 0.95},
	"yml":        {models.KindYAML, 0.95},
	"env":        {models.KindProperties, 0.90},
	"properties": {models.KindProperties, 0.90},
}

// LookupExtension returns the dialect implied by ext. The match is
// case-insensitive; ".json" is not a recognized spelling.
func LookupExtension(ext string) (models.DetectedType, bool) {
	if ext == "" {
		return models.DetectedType{}, false
	}
	m, ok := knownExtensions[strings.ToLower(ext)]
	if !ok {
		return models.DetectedType{}, false
	}
	return models.DetectedType{Kind: m.kind, Confidence: m.confidence}, true
}
