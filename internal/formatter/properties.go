package formatter

import (
	"slices"
	"strings"

	"github.com/aleister1102/siftview/internal/common"
)

// FormatProperties trims every line, drops blank ones and sorts the rest
// byte-wise. Comment lines sort together with assignments.
func FormatProperties(content string) (string, error) {
	var lines []string
	for _, line := range common.SplitLines(content) {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	slices.Sort(lines)
	return strings.Join(lines, "\n"), nil
}
