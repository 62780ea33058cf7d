package formatter

import (
	"errors"
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var errInvalidJSON = errors.New("input is not a well-formed JSON document")

// jsonStyle puts every object member and array element on its own line.
var jsonStyle = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: true,
}

// FormatJSON pretty-prints a JSON document with two-space indentation and
// sorted object keys. Strings and numbers are copied as written, so the
// output formats to itself.
func FormatJSON(content string) (string, error) {
	if !gjson.Valid(content) {
		return "", common.NewParseError("json", errInvalidJSON)
	}
	out := pretty.PrettyOptions([]byte(content), jsonStyle)
	return strings.TrimSuffix(string(out), "\n"), nil
}
