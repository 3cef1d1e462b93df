package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corvid-labs/sqlbind/dialects"
)

// --- Unit Tests (no DB) ---

func TestRenderTableBasic(t *testing.T) {
	cols := []string{"id", "name", "active"}
	rows := [][]string{
		{"1", "Alice", "true"},
		{"2", "Bob", "false"},
	}
	result := renderTable(cols, rows)

	if !strings.Contains(result, "| id | name  | active |") {
		t.Errorf("missing header row:\n%s", result)
	}
	if !strings.Contains(result, "| 1") {
		t.Errorf("missing data row for Alice:\n%s", result)
	}
	if !strings.Contains(result, "(2 rows)") {
		t.Errorf("missing row count:\n%s", result)
	}
}

func TestRenderTableSingleRow(t *testing.T) {
	cols := []string{"x"}
	rows := [][]string{{"42"}}
	result := renderTable(cols, rows)

	if !strings.Contains(result, "(1 row)") {
		t.Errorf("expected '(1 row)', got:\n%s", result)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	cols := []string{"a", "b"}
	result := renderTable(cols, nil)

	if !strings.Contains(result, "(0 rows)") {
		t.Errorf("expected '(0 rows)', got:\n%s", result)
	}
	// Should still have header.
	if !strings.Contains(result, "| a | b |") {
		t.Errorf("missing header:\n%s", result)
	}
}

func TestRenderTableNoColumns(t *testing.T) {
	result := renderTable(nil, nil)
	if result != "(0 rows)\n" {
		t.Errorf("expected '(0 rows)\\n', got: %q", result)
	}
}

// --- Integration Tests (SQLite :memory:) ---

func TestConnectDisconnect(t *testing.T) {
	conn, err := connect("sqlite://:memory:")
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if conn.d.Name() != "sqlite" {
		t.Errorf("dialect: got %q, want %q", conn.d.Name(), "sqlite")
	}
	if err := conn.close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestConnectUnrecognizedURL(t *testing.T) {
	_, err := connect("db2://host/x")
	if err == nil {
		t.Fatal("expected error for unrecognized URL")
	}
}

func TestConnectWhenAlreadyConnected(t *testing.T) {
	sess := newTestSession(t)
	if err := sess.Execute("connect sqlite://:memory:"); err != nil {
		t.Fatalf("first connect failed: %v", err)
	}
	defer func() { _ = sess.conn.close() }()

	err := sess.Execute("connect sqlite://:memory:")
	if err == nil {
		t.Fatal("expected error for double connect")
	}
	if !strings.Contains(err.Error(), "already connected") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConnectSyncsDialect(t *testing.T) {
	sess := newTestSession(t)
	if err := sess.Execute("connect sqlite://:memory:"); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer func() { _ = sess.conn.close() }()

	if sess.dialect.Name() != "sqlite" {
		t.Errorf("expected dialect to follow the URL, got %q", sess.dialect.Name())
	}
}

func TestDisconnectWhenNotConnected(t *testing.T) {
	sess := newTestSession(t)
	err := sess.Execute("disconnect")
	if err == nil {
		t.Fatal("expected error for disconnect when not connected")
	}
	if !strings.Contains(err.Error(), "not connected") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecQueryParameterized(t *testing.T) {
	conn, err := connect("sqlite://:memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() { _ = conn.close() }()

	_, err = conn.db.Exec("CREATE TABLE items (id INTEGER, val TEXT)")
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	_, err = conn.db.Exec("INSERT INTO items VALUES (1, 'a'), (2, 'b'), (3, 'c')")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	result, err := conn.execQuery("SELECT val FROM items WHERE id = ?", []any{2})
	if err != nil {
		t.Fatalf("execQuery: %v", err)
	}

	if !strings.Contains(result, "b") {
		t.Errorf("result should contain 'b':\n%s", result)
	}
	if !strings.Contains(result, "(1 row)") {
		t.Errorf("expected 1 row:\n%s", result)
	}
}

func TestExecQueryNullDisplay(t *testing.T) {
	conn, err := connect("sqlite://:memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() { _ = conn.close() }()

	_, err = conn.db.Exec("CREATE TABLE n (id INTEGER, val TEXT)")
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	_, err = conn.db.Exec("INSERT INTO n VALUES (1, NULL)")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	result, err := conn.execQuery("SELECT id, val FROM n", nil)
	if err != nil {
		t.Fatalf("execQuery: %v", err)
	}

	if !strings.Contains(result, "NULL") {
		t.Errorf("NULL values should display as 'NULL':\n%s", result)
	}
}

func TestExecNoConnection(t *testing.T) {
	sess := newTestSession(t)
	execAll(t, sess, "sql SELECT 1")
	err := sess.Execute("exec")
	if err == nil {
		t.Fatal("expected error for exec without connection")
	}
	if !strings.Contains(err.Error(), "not connected") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecNoStatement(t *testing.T) {
	sess := newTestSession(t)
	if err := sess.Execute("connect sqlite://:memory:"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() { _ = sess.conn.close() }()

	err := sess.Execute("exec")
	if err == nil {
		t.Fatal("expected error for exec without statement")
	}
	if !strings.Contains(err.Error(), "no statement") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecDialectMismatchWarns(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(dialects.NewPostgres(), nil)
	sess.out = &buf

	if err := sess.Execute("connect sqlite://:memory:"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() { _ = sess.conn.close() }()

	// Override the dialect after connecting; exec warns but proceeds.
	execAll(t, sess, "dialect postgres", "sql SELECT 1", "exec")
	if !strings.Contains(buf.String(), "Warning: connected to sqlite") {
		t.Errorf("expected mismatch warning:\n%s", buf.String())
	}
}

func TestSessionRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(dialects.NewPostgres(), nil)
	sess.out = &buf

	execAll(t, sess,
		"connect sqlite://:memory:",
		"sql CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT)",
		"exec",
		"sql INSERT INTO people (name) VALUES (:name)",
		"set name 'ada'",
		"exec",
	)
	if !strings.Contains(buf.String(), "(1 row affected)") {
		t.Errorf("expected insert to affect one row:\n%s", buf.String())
	}

	buf.Reset()
	execAll(t, sess,
		"sql SELECT id, name FROM people WHERE name = :name",
		"query",
	)
	out := buf.String()
	if !strings.Contains(out, "ada") {
		t.Errorf("expected queried name in output:\n%s", out)
	}
	if !strings.Contains(out, "(1 row)") {
		t.Errorf("expected one result row:\n%s", out)
	}

	execAll(t, sess, "disconnect")
	if sess.conn != nil {
		t.Error("expected connection to be cleared")
	}
}

func TestSessionSeqNextOverConnection(t *testing.T) {
	sess := newTestSession(t)
	if err := sess.Execute("connect sqlite://:memory:"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() { _ = sess.conn.close() }()

	// SQLite has no sequences; the command must refuse before touching the DB.
	err := sess.Execute("seq next s")
	if err == nil || !strings.Contains(err.Error(), "has no sequences") {
		t.Errorf("unexpected error: %v", err)
	}
}
