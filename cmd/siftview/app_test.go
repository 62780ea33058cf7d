package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/siftview/internal/commands"
	"github.com/aleister1102/siftview/internal/config"
	"github.com/aleister1102/siftview/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, flags AppFlags, stdin string) (string, error) {
	t.Helper()
	wb, err := commands.NewWorkbench(config.NewDefaultGlobalConfig(), zerolog.Nop())
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = NewApp(flags, wb, strings.NewReader(stdin), &stdout, zerolog.Nop()).Run(context.Background())
	return stdout.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{"-m", "diff", "-f", "a.txt", "-right", "b.txt", "-c", "cfg.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, AppFlags{Mode: ModeDiff, InputFile: "a.txt", RightFile: "b.txt", GlobalConfigFile: "cfg.yaml"}, flags)

	flags, err = ParseFlags([]string{"-mode", "detect", "-m", "segments"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, ModeDetect, flags.Mode)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing mode", []string{}, "-mode argument is required"},
		{"unknown mode", []string{"-m", "paint"}, "unknown mode"},
		{"diff without right", []string{"-m", "diff", "-f", "a.txt"}, "-file and -right are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApp_DetectUsesFileExtension(t *testing.T) {
	path := writeTemp(t, "data.csv", "plain words")

	out, err := runApp(t, AppFlags{Mode: ModeDetect, InputFile: path}, "")

	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"csv","confidence":0.95}`, out)
}

func TestApp_SegmentsFromStdin(t *testing.T) {
	out, err := runApp(t, AppFlags{Mode: ModeSegments}, "123\n123\n{\"a\": 1}\n\nselect * from t")

	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"start_line":1,"end_line":2,"kind":"text"},
		{"start_line":3,"end_line":3,"kind":"json"},
		{"start_line":5,"end_line":5,"kind":"text"}
	]`, out)
}

func TestApp_FormatWithSegmentsFile(t *testing.T) {
	segments := writeTemp(t, "segments.json", `[{"start_line":1,"end_line":2,"kind":"properties"}]`)

	out, err := runApp(t, AppFlags{Mode: ModeFormat, SegmentsFile: segments}, "z=1\na=2")

	require.NoError(t, err)
	assert.Equal(t, "a=2\nz=1", out)
}

func TestApp_FormatJSONError(t *testing.T) {
	_, err := runApp(t, AppFlags{Mode: ModeFormatJSON}, "{nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestApp_DiffModes(t *testing.T) {
	left := writeTemp(t, "left.txt", "1\n2\n3\n")
	right := writeTemp(t, "right.txt", "1\n2\n")

	unified, err := runApp(t, AppFlags{Mode: ModeDiff, InputFile: left, RightFile: right}, "")
	require.NoError(t, err)
	assert.Equal(t, "--- current\n+++ clipboard\n@@ -1,3 +1,2 @@\n 1\n 2\n-3\n", unified)

	structured, err := runApp(t, AppFlags{Mode: ModeDiffStructured, InputFile: left, RightFile: right}, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"left_label":"current","right_label":"clipboard","blocks":[
		{"type":"unchanged","count":2,"lines":["1","2"]},
		{"type":"changed","old_lines":["3"],"new_lines":[]}
	]}`, structured)
}

func TestApp_DiffReport(t *testing.T) {
	left := writeTemp(t, "left.txt", "a\nb\n")
	right := writeTemp(t, "right.txt", "a\nc\nd\n")

	out, err := runApp(t, AppFlags{Mode: ModeDiffReport, InputFile: left, RightFile: right}, "")
	require.NoError(t, err)

	var report models.ContentDiffResult
	require.NoError(t, json.Unmarshal([]byte(out), &struct {
		Unified *string                `json:"unified"`
		Stats   *models.DiffStatistics `json:"stats"`
	}{&report.Unified, &report.Stats}))

	assert.Equal(t, models.DiffStatistics{LinesAdded: 2, LinesDeleted: 1, Regions: 1}, report.Stats)
	assert.Contains(t, report.Unified, "-b\n+c\n+d\n")
}

func TestApp_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "pretty.json")

	stdout, err := runApp(t, AppFlags{Mode: ModeFormatJSON, OutputFile: outPath}, `{"b":2,"a":1}`)

	require.NoError(t, err)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", string(data))
}

func TestApp_Invoke(t *testing.T) {
	requests := strings.Join([]string{
		`{"command":"detect_content","args":{"content":"{\"a\":1}"}}`,
		``,
		`{"command":"nope"}`,
		`{"command":"format_json","args":{"content":"[1]"}}`,
	}, "\n")

	out, err := runApp(t, AppFlags{Mode: ModeInvoke}, requests)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var first commands.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.True(t, first.OK)

	assert.JSONEq(t, `{"ok":false,"error":"unknown command: nope"}`, lines[1])
	assert.JSONEq(t, `{"ok":true,"result":"[\n  1\n]"}`, lines[2])
}
