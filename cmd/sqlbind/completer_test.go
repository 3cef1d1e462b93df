package main

import (
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/corvid-labs/sqlbind/dialects"
)

func newTestCompleter(statements ...string) *replCompleter {
	sess := NewSession(dialects.NewPostgres(), nil)
	sess.out = io.Discard
	for _, stmt := range statements {
		_ = sess.Execute("sql " + stmt)
	}
	return &replCompleter{sess: sess}
}

// --- Command completion ---

func TestCompleteCommandsEmpty(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	line := []rune("")
	newLine, length := c.Do(line, 0)
	names := c.sess.commandNames()
	if length != 0 {
		t.Errorf("expected length 0, got %d", length)
	}
	if len(newLine) != len(names) {
		t.Errorf("expected %d commands, got %d", len(names), len(newLine))
	}
}

func TestCompleteCommandsPrefix(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	line := []rune("con")
	newLine, length := c.Do(line, len(line))
	if length != 3 {
		t.Errorf("expected length 3, got %d", length)
	}
	if len(newLine) != 1 || string(newLine[0]) != "nect " {
		t.Errorf("expected [nect ], got %v", runesToStrings(newLine))
	}
}

func TestCompleteCommandsMultiMatch(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	candidates := filterPrefix(c.sess.commandNames(), "set")
	found := map[string]bool{}
	for _, cand := range candidates {
		found[cand] = true
	}
	for _, want := range []string{"set", "setnull", "setnow", "setdate"} {
		if !found[want] {
			t.Errorf("expected %q in candidates: %v", want, candidates)
		}
	}
}

func TestCommandNamesIncludeExitQuit(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	found := map[string]bool{}
	for _, name := range c.sess.commandNames() {
		found[name] = true
	}
	if !found["exit"] || !found["quit"] {
		t.Error("expected exit and quit in commandNames")
	}
}

func TestCommandNamesExcludeHidden(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	for _, name := range c.sess.commandNames() {
		if name == "params" || name == "run" {
			t.Errorf("alias %q should be hidden from completion", name)
		}
	}
	// The aliases still execute.
	if err := c.sess.Execute("params"); err != nil {
		t.Errorf("params alias failed: %v", err)
	}
}

// --- Parameter name completion ---

func TestCompleteParamNames(t *testing.T) {
	t.Parallel()
	c := newTestCompleter("SELECT * FROM users WHERE id = :id AND org = :org")
	line := []rune("set i")
	newLine, length := c.Do(line, len(line))
	if length != 1 {
		t.Errorf("expected length 1, got %d", length)
	}
	if len(newLine) != 1 || string(newLine[0]) != "d " {
		t.Errorf("expected [d ], got %v", runesToStrings(newLine))
	}
}

func TestCompleteParamNamesDeduped(t *testing.T) {
	t.Parallel()
	c := newTestCompleter("SELECT * FROM spans WHERE a = :at OR b = :at")
	names := c.sess.paramNames()
	if len(names) != 1 || names[0] != "at" {
		t.Errorf("expected [at], got %v", names)
	}
}

func TestCompleteParamNamesNoStatement(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	line := []rune("set ")
	newLine, _ := c.Do(line, len(line))
	if len(newLine) != 0 {
		t.Errorf("expected no candidates without a statement, got %v", runesToStrings(newLine))
	}
}

func TestNoCompletionAfterValueStarts(t *testing.T) {
	t.Parallel()
	c := newTestCompleter("SELECT :name")
	line := []rune("set name 'a")
	newLine, _ := c.Do(line, len(line))
	if len(newLine) != 0 {
		t.Errorf("expected no candidates in the value position, got %v", runesToStrings(newLine))
	}
}

// --- Dialect completion ---

func TestCompleteDialects(t *testing.T) {
	t.Parallel()
	line := []rune("dialect p")
	c := newTestCompleter()
	newLine, length := c.Do(line, len(line))
	if length != 1 {
		t.Errorf("expected length 1, got %d", length)
	}
	if len(newLine) != 1 || string(newLine[0]) != "ostgres " {
		t.Errorf("expected [ostgres ], got %v", runesToStrings(newLine))
	}
}

func TestCompleteDialectsAll(t *testing.T) {
	t.Parallel()
	candidates := filterPrefix(dialectNames, "")
	if len(candidates) != 5 {
		t.Errorf("expected 5 dialects, got %d: %v", len(candidates), candidates)
	}
}

// --- Kind completion ---

func TestCompleteKinds(t *testing.T) {
	t.Parallel()
	c := newTestCompleter("UPDATE t SET deleted_at = :at")
	line := []rune("setnull at ti")
	newLine, length := c.Do(line, len(line))
	if length != 2 {
		t.Errorf("expected length 2, got %d", length)
	}
	if len(newLine) != 1 || string(newLine[0]) != "mestamp " {
		t.Errorf("expected [mestamp ], got %v", runesToStrings(newLine))
	}
}

func TestKindNamesSorted(t *testing.T) {
	t.Parallel()
	names := kindNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted kind names, got %v", names)
	}
	found := map[string]bool{}
	for _, name := range names {
		found[name] = true
	}
	for _, want := range []string{"bool", "clob", "blob", "timestamp", "date"} {
		if !found[want] {
			t.Errorf("expected kind %q, got %v", want, names)
		}
	}
	for _, name := range names {
		if strings.Contains(name, "stream") {
			t.Errorf("stream kinds must not be offered for nulls: %v", names)
		}
	}
}

// --- parseContext ---

func TestParseContextCommandEmpty(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("")
	if ctx != contextCommand || prefix != "" {
		t.Errorf("expected contextCommand/'', got %v/%q", ctx, prefix)
	}
}

func TestParseContextCommandPartial(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("dial")
	if ctx != contextCommand || prefix != "dial" {
		t.Errorf("expected contextCommand/'dial', got %v/%q", ctx, prefix)
	}
}

func TestParseContextDialect(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("dialect ")
	if ctx != contextDialect || prefix != "" {
		t.Errorf("expected contextDialect/'', got %v/%q", ctx, prefix)
	}
}

func TestParseContextDialectPartial(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("dialect or")
	if ctx != contextDialect || prefix != "or" {
		t.Errorf("expected contextDialect/'or', got %v/%q", ctx, prefix)
	}
}

func TestParseContextParamName(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("set na")
	if ctx != contextParamName || prefix != "na" {
		t.Errorf("expected contextParamName/'na', got %v/%q", ctx, prefix)
	}
}

func TestParseContextParamNameTypedSetter(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("setlong i")
	if ctx != contextParamName || prefix != "i" {
		t.Errorf("expected contextParamName/'i', got %v/%q", ctx, prefix)
	}
}

func TestParseContextValuePosition(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, _ := c.parseContext("set name 42")
	if ctx != contextNone {
		t.Errorf("expected contextNone, got %v", ctx)
	}
}

func TestParseContextNullKind(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("setnull bio ")
	if ctx != contextKind || prefix != "" {
		t.Errorf("expected contextKind/'', got %v/%q", ctx, prefix)
	}
}

func TestParseContextNullKindPartial(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("setnull bio da")
	if ctx != contextKind || prefix != "da" {
		t.Errorf("expected contextKind/'da', got %v/%q", ctx, prefix)
	}
}

func TestParseContextNullName(t *testing.T) {
	t.Parallel()
	c := newTestCompleter()
	ctx, prefix := c.parseContext("setnull bi")
	if ctx != contextParamName || prefix != "bi" {
		t.Errorf("expected contextParamName/'bi', got %v/%q", ctx, prefix)
	}
}

// --- filterPrefix ---

func TestFilterPrefixCaseInsensitive(t *testing.T) {
	t.Parallel()
	items := []string{"Select", "SQL", "select"}
	result := filterPrefix(items, "sel")
	if len(result) != 2 {
		t.Errorf("expected 2 matches, got %d: %v", len(result), result)
	}
}

func TestFilterPrefixEmpty(t *testing.T) {
	t.Parallel()
	items := []string{"a", "b", "c"}
	result := filterPrefix(items, "")
	if len(result) != 3 {
		t.Errorf("expected 3 items, got %d", len(result))
	}
}

// --- Dedup ---

func TestDedup(t *testing.T) {
	t.Parallel()
	items := []string{"a", "b", "a", "c", "b"}
	result := dedup(items)
	if len(result) != 3 {
		t.Errorf("expected 3 unique items, got %d: %v", len(result), result)
	}
}

// runesToStrings renders completion candidates for failure messages.
func runesToStrings(candidates [][]rune) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = string(c)
	}
	return out
}
