package formatter

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"gopkg.in/yaml.v3"
)

var errNoYAMLDocument = errors.New("no document found")

// FormatYAML re-emits every document of a YAML stream in block style with
// two-space indentation. Comments and quoting choices are dropped; mapping
// order is kept.
func FormatYAML(content string) (string, error) {
	dec := yaml.NewDecoder(strings.NewReader(content))

	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", common.NewParseError("yaml", err)
		}
		if isEmptyDocument(&doc) {
			continue
		}
		resetPresentation(&doc)
		docs = append(docs, &doc)
	}
	if len(docs) == 0 {
		return "", common.NewParseError("yaml", errNoYAMLDocument)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return "", common.NewParseError("yaml", err)
		}
	}
	if err := enc.Close(); err != nil {
		return "", common.NewParseError("yaml", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// isEmptyDocument reports a document with no content. A bare "---" still
// decodes to a document holding one empty null scalar.
func isEmptyDocument(doc *yaml.Node) bool {
	if len(doc.Content) == 0 {
		return true
	}
	if len(doc.Content) > 1 {
		return false
	}
	n := doc.Content[0]
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" && n.Value == ""
}

func resetPresentation(n *yaml.Node) {
	n.Style = 0
	n.HeadComment = ""
	n.LineComment = ""
	n.FootComment = ""
	for _, child := range n.Content {
		resetPresentation(child)
	}
}
