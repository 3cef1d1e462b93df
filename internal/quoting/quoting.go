// Package quoting provides shared identifier and literal quoting utilities
// for SQL text generation.
package quoting

import "strings"

// DoubleQuote quotes a SQL identifier using double quotes (PostgreSQL,
// SQLite, Oracle, ANSI SQL). Internal double quotes are escaped by
// doubling them.
func DoubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Backtick quotes a SQL identifier using backticks (MySQL).
// Internal backticks are escaped by doubling them.
func Backtick(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// EscapeString escapes a string for inclusion in a single-quoted SQL
// literal by doubling single quotes. It performs no charset-aware escaping;
// values carrying untrusted input bind through placeholders and never pass
// through here.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// SingleQuote wraps s in single quotes, escaping internal single quotes.
func SingleQuote(s string) string {
	return "'" + EscapeString(s) + "'"
}
