package formatter

import (
	"encoding/csv"
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/mattn/go-runewidth"
)

const csvColumnSeparator = "  "

var csvBufferPool = common.NewBufferPool(4*1024, 1024*1024)

// FormatCSV aligns comma-separated rows into columns. Every row, the header
// included, is padded to the widest cell of each column.
func FormatCSV(content string) (string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return "", common.NewParseError("csv", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	widths := columnWidths(records)
	buf := csvBufferPool.Get()
	defer csvBufferPool.Put(buf)

	for row, record := range records {
		if row > 0 {
			buf.WriteByte('\n')
		}
		for i, cell := range record {
			if i > 0 {
				buf.WriteString(csvColumnSeparator)
			}
			buf.WriteString(runewidth.FillRight(cell, widths[i]))
		}
	}
	return buf.String(), nil
}

func columnWidths(records [][]string) []int {
	var widths []int
	for _, record := range records {
		for i, cell := range record {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}
