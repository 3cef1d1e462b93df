package main

import (
	"strings"
	"testing"

	"github.com/corvid-labs/sqlbind/args"
	"github.com/corvid-labs/sqlbind/internal/testutil"
)

// --- parseValue ---

func TestParseValueString(t *testing.T) {
	t.Parallel()
	v, err := parseValue("'hello'")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != args.KindString || v.StringVal() != "hello" {
		t.Errorf("expected string %q, got %s %q", "hello", v.Kind, v.StringVal())
	}
}

func TestParseValueQuoteEscape(t *testing.T) {
	t.Parallel()
	v, err := parseValue("'it''s'")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, v.StringVal(), "it's")
}

func TestParseValueInt(t *testing.T) {
	t.Parallel()
	v, err := parseValue("42")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != args.KindLong || v.Int64Val() != 42 {
		t.Errorf("expected long 42, got %s %v", v.Kind, v)
	}
}

func TestParseValueFloat(t *testing.T) {
	t.Parallel()
	v, err := parseValue("3.14")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != args.KindDouble || v.Float64Val() != 3.14 {
		t.Errorf("expected double 3.14, got %s %v", v.Kind, v)
	}
}

func TestParseValueBool(t *testing.T) {
	t.Parallel()
	v1, err := parseValue("true")
	if err != nil {
		t.Fatal(err)
	}
	v2, err := parseValue("FALSE")
	if err != nil {
		t.Fatal(err)
	}
	if v1.Kind != args.KindBool || !v1.BoolVal() {
		t.Error("expected true")
	}
	if v2.Kind != args.KindBool || v2.BoolVal() {
		t.Error("expected false")
	}
}

func TestParseValueNullRejected(t *testing.T) {
	t.Parallel()
	_, err := parseValue("null")
	if err == nil || !strings.Contains(err.Error(), "declared kind") {
		t.Errorf("expected the setnull hint, got %v", err)
	}
}

func TestParseValueBareWord(t *testing.T) {
	t.Parallel()
	_, err := parseValue("hello")
	if err == nil || !strings.Contains(err.Error(), "cannot parse value") {
		t.Errorf("expected parse error, got %v", err)
	}
}

// --- parseKind ---

func TestParseKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		kind args.Kind
	}{
		{"bool", args.KindBool},
		{"int", args.KindInteger},
		{"long", args.KindLong},
		{"string", args.KindString},
		{"clob", args.KindClobString},
		{"blob", args.KindBlobBytes},
		{"TIMESTAMP", args.KindTimestamp},
		{"date", args.KindDate},
	}
	for _, tt := range tests {
		k, err := parseKind(tt.name)
		if err != nil {
			t.Errorf("parseKind(%q): %v", tt.name, err)
			continue
		}
		if k != tt.kind {
			t.Errorf("parseKind(%q): expected %s, got %s", tt.name, tt.kind, k)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	t.Parallel()
	_, err := parseKind("varray")
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("expected unknown kind error, got %v", err)
	}
}

// --- splitNameValue ---

func TestSplitNameValue(t *testing.T) {
	t.Parallel()
	name, value, err := splitNameValue("id 42")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, name, "id")
	testutil.AssertEqual(t, value, "42")
}

func TestSplitNameValueKeepsSpacesInValue(t *testing.T) {
	t.Parallel()
	name, value, err := splitNameValue("name 'Ada Lovelace'")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, name, "name")
	testutil.AssertEqual(t, value, "'Ada Lovelace'")
}

func TestSplitNameValueMissingValue(t *testing.T) {
	t.Parallel()
	_, _, err := splitNameValue("lonely")
	if err == nil {
		t.Error("expected error for missing value")
	}
}

// --- parseParams ---

func TestParseParams(t *testing.T) {
	t.Parallel()
	values, err := parseParams([]string{"id=7", "name='ada'"})
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	id := values["id"].(args.Value)
	if id.Kind != args.KindLong || id.Name != "id" {
		t.Errorf("unexpected id value: %+v", id)
	}
	name := values["name"].(args.Value)
	testutil.AssertEqual(t, name.StringVal(), "ada")
}

func TestParseParamsBadShape(t *testing.T) {
	t.Parallel()
	for _, pair := range []string{"noequals", "=7"} {
		_, err := parseParams([]string{pair})
		if err == nil || !strings.Contains(err.Error(), "invalid --param") {
			t.Errorf("%q: expected shape error, got %v", pair, err)
		}
	}
}

func TestParseParamsBadValue(t *testing.T) {
	t.Parallel()
	_, err := parseParams([]string{"id=zzz"})
	if err == nil || !strings.Contains(err.Error(), "param id") {
		t.Errorf("expected wrapped value error, got %v", err)
	}
}
