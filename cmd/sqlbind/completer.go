package main

import (
	"slices"
	"sort"
	"strings"
)

// completionContext describes what kind of completion is appropriate.
type completionContext int

const (
	contextCommand   completionContext = iota // start of line or partial command
	contextParamName                          // after set*/setnull (placeholder names)
	contextDialect                            // after dialect
	contextKind                               // after setnull <name>
	contextNone                               // no completion
)

var dialectNames = []string{"ansi", "mysql", "oracle", "postgres", "sqlite"}

// replCompleter implements readline's AutoCompleter interface.
type replCompleter struct {
	sess *Session
}

// Do returns completion candidates for the current line/cursor position.
// length is the number of chars from end of line[:pos] that form the prefix being completed.
// newLine contains the suffixes to append for each candidate.
func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	ctx, prefix := c.parseContext(lineStr)

	var candidates []string
	switch ctx {
	case contextCommand:
		candidates = filterPrefix(c.sess.commandNames(), prefix)
	case contextParamName:
		candidates = filterPrefix(c.sess.paramNames(), prefix)
	case contextDialect:
		candidates = filterPrefix(dialectNames, prefix)
	case contextKind:
		candidates = filterPrefix(kindNames(), prefix)
	}

	for _, cand := range candidates {
		// Candidates carry only the unshared suffix, plus a convenience space.
		newLine = append(newLine, []rune(cand[len(prefix):]+" "))
	}
	return newLine, len([]rune(prefix))
}

// parseContext examines the line up to cursor and determines what kind of
// completion is needed and the current prefix being typed.
func (c *replCompleter) parseContext(line string) (completionContext, string) {
	lower := strings.ToLower(line)

	for _, cmd := range c.sess.commands {
		if !strings.HasSuffix(cmd.prefix, " ") {
			continue // exact-match commands have no arg completion
		}
		if strings.HasPrefix(lower, cmd.prefix) && cmd.completer != nil {
			return cmd.completer(line[len(cmd.prefix):])
		}
	}

	// Default: command completion.
	return contextCommand, strings.TrimSpace(line)
}

// filterPrefix returns items that start with prefix (case-insensitive).
func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		return slices.Clone(items)
	}
	want := strings.ToLower(prefix)
	var out []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), want) {
			out = append(out, item)
		}
	}
	return out
}

// dedup removes duplicate strings, keeping first-occurrence order.
func dedup(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// kindNames returns the accepted null kind names, sorted.
func kindNames() []string {
	names := make([]string, 0, len(kindsByName))
	for name := range kindsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
