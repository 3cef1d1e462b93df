package dialects

import "strings"

// Rebind converts `?` markers in sql to the dialect's positional markers,
// numbering left to right from 1. Question marks inside single-quoted runs
// are left alone. Dialects whose marker already is `?` return sql unchanged.
func Rebind(d Dialect, sql string) string {
	if d.BindMarker(1) == "?" {
		return sql
	}
	var out strings.Builder
	out.Grow(len(sql) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			out.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			out.WriteString(d.BindMarker(n))
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}
