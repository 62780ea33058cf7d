package common

import "strings"

// SplitLines splits s into physical lines. A trailing "\n" does not start an
// extra empty line and a trailing "\r" is removed from every line, so
// "a\r\nb\n" yields ["a", "b"]. The empty string has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SplitLinesKeepEnds splits s after every "\n", keeping the terminators.
// The last line has no terminator when s does not end with a newline.
func SplitLinesKeepEnds(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsBlank reports whether line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
