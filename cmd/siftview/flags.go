package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
)

// Modes accepted by -mode
const (
	ModeDetect         = "detect"
	ModeSegments       = "segments"
	ModeFormat         = "format"
	ModeFormatJSON     = "format-json"
	ModeDiff           = "diff"
	ModeDiffStructured = "diff-structured"
	ModeDiffReport     = "diff-report"
	ModeInvoke         = "invoke"
)

var validModes = []string{ModeDetect, ModeSegments, ModeFormat, ModeFormatJSON, ModeDiff, ModeDiffStructured, ModeDiffReport, ModeInvoke}

type AppFlags struct {
	Mode             string
	InputFile        string
	RightFile        string
	Extension        string
	SegmentsFile     string
	OutputFile       string
	GlobalConfigFile string
}

// ParseFlags parses args (without the program name) into AppFlags
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("siftview", flag.ContinueOnError)
	fs.SetOutput(output)

	modeFlag := fs.String("mode", "", "Operation to run: detect, segments, format, format-json, diff, diff-structured, diff-report or invoke")
	modeFlagAlias := fs.String("m", "", "Alias for -mode")

	inputFile := fs.String("file", "", "Input file (left side for diff modes). Reads stdin when empty.")
	inputFileAlias := fs.String("f", "", "Alias for -file")

	rightFile := fs.String("right", "", "Right side file for diff modes")
	rightFileAlias := fs.String("r", "", "Alias for -right")

	extension := fs.String("ext", "", "Extension hint without the dot, e.g. json. Defaults to the input file extension.")
	extensionAlias := fs.String("e", "", "Alias for -ext")

	segmentsFile := fs.String("segments", "", "JSON file with the segments to format. Detected segments are used when empty.")
	segmentsFileAlias := fs.String("s", "", "Alias for -segments")

	outputFile := fs.String("out", "", "Write the result to this file instead of stdout")
	outputFileAlias := fs.String("o", "", "Alias for -out")

	globalConfigFile := fs.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{
		Mode:             firstNonEmpty(*modeFlag, *modeFlagAlias),
		InputFile:        firstNonEmpty(*inputFile, *inputFileAlias),
		RightFile:        firstNonEmpty(*rightFile, *rightFileAlias),
		Extension:        firstNonEmpty(*extension, *extensionAlias),
		SegmentsFile:     firstNonEmpty(*segmentsFile, *segmentsFileAlias),
		OutputFile:       firstNonEmpty(*outputFile, *outputFileAlias),
		GlobalConfigFile: firstNonEmpty(*globalConfigFile, *globalConfigFileAlias),
	}

	if flags.Mode == "" {
		return flags, fmt.Errorf("-mode argument is required (%v)", validModes)
	}
	if !slices.Contains(validModes, flags.Mode) {
		return flags, fmt.Errorf("unknown mode %q, expected one of %v", flags.Mode, validModes)
	}
	if isDiffMode(flags.Mode) && (flags.InputFile == "" || flags.RightFile == "") {
		return flags, fmt.Errorf("-file and -right are required for mode %s", flags.Mode)
	}

	return flags, nil
}

func isDiffMode(mode string) bool {
	return mode == ModeDiff || mode == ModeDiffStructured || mode == ModeDiffReport
}

func firstNonEmpty(value, alias string) string {
	if value != "" {
		return value
	}
	return alias
}
