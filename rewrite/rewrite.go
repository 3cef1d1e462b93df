// Package rewrite turns SQL with named placeholders into positional SQL.
//
// A named placeholder is a colon followed by an identifier, e.g. :user_id.
// Rewriting replaces each one with a single `?` marker and records the name,
// in order, duplicates preserved. A doubled colon `::` escapes to one literal
// colon and consumes no placeholder, so a Postgres cast `expr::text` must be
// written `expr::::text` to survive the rewrite. Conversion of `?` markers to
// vendor-specific ordinal markers is a dialect concern and lives in the
// dialects package.
package rewrite

import (
	"sort"
	"strings"
)

// Statement is the immutable result of rewriting one SQL string: the
// positional SQL text plus the ordered parameter names.
type Statement struct {
	sql      string
	names    []string
	distinct int
}

// Parse scans sql for named placeholders and returns the rewritten
// statement. The scan is a plain text transform; it does not validate SQL.
//
// A trailing lone colon (the last or second-to-last character with no
// identifier following) is tolerated by truncating the output there. This is
// a boundary-condition compromise, not validation.
func Parse(sql string) *Statement {
	var out strings.Builder
	out.Grow(len(sql))
	var names []string

	i := 0
	for i < len(sql) {
		c := sql[i]
		if c != ':' {
			out.WriteByte(c)
			i++
			continue
		}

		// Escape: `::` emits one literal colon, no placeholder.
		if i+1 < len(sql) && sql[i+1] == ':' {
			out.WriteByte(':')
			i += 2
			continue
		}

		// Named placeholder: colon followed by an identifier.
		if i+1 < len(sql) && isIdentStart(sql[i+1]) {
			j := i + 1
			for j < len(sql) && isIdentByte(sql[j]) {
				j++
			}
			names = append(names, sql[i+1:j])
			out.WriteByte('?')
			i = j
			continue
		}

		// Lone colon at or next to the end: truncate silently.
		if i >= len(sql)-2 {
			break
		}

		// Mid-string lone colon is literal text.
		out.WriteByte(':')
		i++
	}

	return &Statement{
		sql:      out.String(),
		names:    names,
		distinct: countDistinct(names),
	}
}

// SQL returns the rewritten SQL with one `?` per surviving placeholder.
func (s *Statement) SQL() string { return s.sql }

// Names returns the placeholder names in textual order, duplicates
// preserved. The returned slice is a copy.
func (s *Statement) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// NumParams returns the number of positional placeholders.
func (s *Statement) NumParams() int { return len(s.names) }

// Args resolves a name→value map into an argument array in placeholder
// order. Duplicated names pull the same value into every position that
// uses them.
//
// The unused check is a count threshold, deliberately: when the map holds
// more distinct keys than the SQL consumes, the excess keys are reported as
// UnusedParameterError before extraction. Equal-sized partial overlaps pass
// the threshold and surface as MissingParameterError during extraction
// instead.
func (s *Statement) Args(values map[string]any) ([]any, error) {
	if len(values) > s.distinct {
		return nil, &UnusedParameterError{Names: s.unusedKeys(values)}
	}
	out := make([]any, len(s.names))
	for i, name := range s.names {
		v, ok := values[name]
		if !ok {
			return nil, &MissingParameterError{Name: name}
		}
		out[i] = v
	}
	return out, nil
}

// unusedKeys returns the map keys the SQL never consumes, sorted.
func (s *Statement) unusedKeys(values map[string]any) []string {
	used := make(map[string]bool, len(s.names))
	for _, n := range s.names {
		used[n] = true
	}
	var unused []string
	for k := range values {
		if !used[k] {
			unused = append(unused, k)
		}
	}
	sort.Strings(unused)
	return unused
}

func countDistinct(names []string) int {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	return len(seen)
}

// isIdentStart reports whether b can begin an identifier: [A-Za-z_].
func isIdentStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

// isIdentByte reports whether b can continue an identifier: [A-Za-z0-9_].
func isIdentByte(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
