package charts

import (
	"encoding/xml"
	"strings"
)

// escapeText makes str safe to use as svg character data: the svg package
// writes text and titles as is.
func escapeText(str string) string {
	var buf strings.Builder
	if err := xml.EscapeText(&buf, []byte(str)); err != nil {
		return ""
	}
	return buf.String()
}
