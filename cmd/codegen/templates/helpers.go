package templates

import (
	"fmt"
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// repeated formats format once per index (as %[1]d) and joins the results with sep.
func repeated(format string, count int, sep string) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, format, i)
		if i < count-1 {
			sb.WriteString(sep)
		}
	}
	return sb.String()
}
