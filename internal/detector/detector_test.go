package detector

import (
	"strings"
	"testing"

	"github.com/aleister1102/siftview/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDetect_ExtensionHint(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		ext        string
		kind       models.Kind
		confidence float64
	}{
		{"json", "anything", "json", models.KindJSON, 0.95},
		{"csv", "anything", "csv", models.KindCSV, 0.95},
		{"xml", "x", "xml", models.KindXML, 0.90},
		{"html upper case", "x", "HTML", models.KindXML, 0.90},
		{"yaml", "x", "yaml", models.KindYAML, 0.95},
		{"yml", "x", "yml", models.KindYAML, 0.95},
		{"env", "x", "env", models.KindProperties, 0.90},
		{"properties", "x", "Properties", models.KindProperties, 0.90},
		{"hint overrides csv-shaped content", "a,b,c\n1,2,3", "json", models.KindJSON, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text, tt.ext)
			assert.Equal(t, tt.kind, got.Kind)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestDetect_UnknownHintFallsThrough(t *testing.T) {
	for _, ext := range []string{"", "txt", ".json", "jsonl"} {
		t.Run("ext="+ext, func(t *testing.T) {
			assert.Equal(t, Heuristic(`{"a":1}`), Detect(`{"a":1}`, ext))
		})
	}
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		kind       models.Kind
		confidence float64
	}{
		{"json object", `{"a":1}`, models.KindJSON, 0.85},
		{"json object padded", `  {"a": 1}  `, models.KindJSON, 0.85},
		{"json array", `["x", "y"]`, models.KindJSON, 0.85},
		{"brace without quote", "{a:1}", models.KindText, 0.50},
		{"csv", "a,b,c\n1,2,3", models.KindCSV, 0.70},
		{"csv needs comma on first line", "abc\n1,2,3", models.KindText, 0.50},
		{"single line with commas", "a,b,c", models.KindText, 0.50},
		{"yaml document marker", "---\nname: x", models.KindYAML, 0.75},
		{"yaml mapping", "name: app\nversion: 2", models.KindYAML, 0.65},
		{"yaml mapping after comment", "# config\nname: app", models.KindYAML, 0.65},
		{"yaml key past third line", "a\nb\nc\nname: app", models.KindText, 0.50},
		{"single line colon", "name: app", models.KindText, 0.50},
		{"properties", "a=1\nb=2", models.KindProperties, 0.65},
		{"properties with comments", "# db\nhost=localhost\n\nport=5432", models.KindProperties, 0.65},
		{"properties single line", "key=value", models.KindProperties, 0.65},
		{"assignment must not lead", "=value", models.KindText, 0.50},
		{"line without assignment", "a=1\nplain", models.KindText, 0.50},
		{"plain text", "plain text\nno structure", models.KindText, 0.50},
		{"empty", "", models.KindText, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heuristic(tt.text)
			assert.Equal(t, tt.kind, got.Kind)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestHeuristic_RuleOrder(t *testing.T) {
	// Both the csv and yaml rules could claim this; csv is checked first.
	got := Heuristic("name: a, b\nother: c")
	assert.Equal(t, models.KindCSV, got.Kind)

	// A json array that also contains "=" and commas stays json.
	got = Heuristic("[\"a=1\", \"b\"]\nx,y")
	assert.Equal(t, models.KindJSON, got.Kind)

	// Document marker beats key/value.
	got = Heuristic("--- \nkey: value\nother: value")
	assert.InDelta(t, ConfidenceYAMLDocument, got.Confidence, 1e-9)
}

func TestHeuristic_ConfidenceIsFixedConstant(t *testing.T) {
	allowed := map[float64]bool{0.95: true, 0.90: true, 0.85: true, 0.75: true, 0.70: true, 0.65: true, 0.50: true}
	inputs := []string{
		"", " ", "{", `{"`, "[1]", "a,b\n", "---", "k: v\nk2: v2", "x=y", "#c\n=x",
		strings.Repeat("a,", 50) + "\n1", "<root/>", "\t\n\t",
	}
	for _, in := range inputs {
		first := Heuristic(in)
		assert.True(t, allowed[first.Confidence], "unexpected confidence %v for %q", first.Confidence, in)
		assert.Equal(t, first, Heuristic(in), "non-deterministic result for %q", in)
	}
}

func TestDetectLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		index int
		ext   string
		want  models.Kind
	}{
		{"blank is text", "   ", 0, "json", models.KindText},
		{"first line honors hint", "plain", 0, "csv", models.KindCSV},
		{"later line ignores hint", "plain", 1, "csv", models.KindText},
		{"unknown hint uses heuristics", `{"a":1}`, 0, "log", models.KindJSON},
		{"json line", `  {"a": 1}`, 3, "", models.KindJSON},
		{"properties line", "key=value", 2, "", models.KindProperties},
		{"csv needs more than one line", "a,b,c", 2, "", models.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLine(tt.line, tt.index, tt.ext))
		})
	}
}

func TestLookupExtension(t *testing.T) {
	dt, ok := LookupExtension("YML")
	assert.True(t, ok)
	assert.Equal(t, models.KindYAML, dt.Kind)

	_, ok = LookupExtension(".yml")
	assert.False(t, ok)

	_, ok = LookupExtension("")
	assert.False(t, ok)
}
