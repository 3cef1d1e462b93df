package dialects

import (
	"fmt"
	"strings"
)

// UnrecognizedDialectError reports a connection URL or dialect name that
// maps to no known dialect.
type UnrecognizedDialectError struct {
	URL string
}

// Error implements the error interface.
func (e *UnrecognizedDialectError) Error() string {
	return fmt.Sprintf("unrecognized dialect for %q", e.URL)
}

// prefixDialects maps connection-URL prefixes to dialect names, longest
// prefix first. Matching is ordered and case-insensitive.
var prefixDialects = []struct {
	prefix string
	name   string
}{
	{"postgresql://", "postgres"},
	{"postgres://", "postgres"},
	{"sqlite3://", "sqlite"},
	{"mariadb://", "mysql"},
	{"sqlite://", "sqlite"},
	{"oracle://", "oracle"},
	{"mysql://", "mysql"},
	{"oci://", "oracle"},
	{"file:", "sqlite"},
}

// ForURL resolves a connection URL to its dialect by prefix lookup.
func ForURL(url string) (Dialect, error) {
	lower := strings.ToLower(url)
	for _, e := range prefixDialects {
		if strings.HasPrefix(lower, e.prefix) {
			return ForName(e.name)
		}
	}
	return nil, &UnrecognizedDialectError{URL: url}
}

// ForName resolves a dialect by name. Common aliases are accepted.
func ForName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "ansi":
		return NewANSI(), nil
	case "postgres", "postgresql":
		return NewPostgres(), nil
	case "mysql", "mariadb":
		return NewMySQL(), nil
	case "sqlite", "sqlite3":
		return NewSQLite(), nil
	case "oracle", "oci":
		return NewOracle(), nil
	}
	return nil, &UnrecognizedDialectError{URL: name}
}
