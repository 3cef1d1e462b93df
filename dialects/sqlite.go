package dialects

import (
	"time"

	"github.com/corvid-labs/sqlbind/internal/quoting"
)

// SQLite generates SQLite-dialect SQL.
// Identifiers are quoted with double quotes, placeholders are ?.
type SQLite struct {
	*base
}

// NewSQLite creates a SQLite dialect ready for use.
//
// SQLite has no sequence objects; generated keys come from RETURNING.
// Large objects bind in-memory.
func NewSQLite() *SQLite {
	d := &SQLite{}
	d.base = newBase(d, "sqlite")
	d.base.supportsSequences = false
	d.base.supportsInsertReturning = true
	return d
}

// Type names follow SQLite's affinity system: every column is one of
// INTEGER, REAL, TEXT, BLOB, or NUMERIC regardless of declared length.

func (d *SQLite) TypeBool() string         { return "INTEGER" }
func (d *SQLite) TypeLong() string         { return "INTEGER" }
func (d *SQLite) TypeDouble() string       { return "REAL" }
func (d *SQLite) TypeVarchar(n int) string { return "TEXT" }
func (d *SQLite) TypeChar(n int) string    { return "TEXT" }
func (d *SQLite) TypeClob() string         { return "TEXT" }
func (d *SQLite) TypeTimestamp() string    { return "TEXT" }

func (d *SQLite) TypeDecimal(precision, scale int) string { return "NUMERIC" }

// LiteralTimestamp emits a bare quoted literal; SQLite compares timestamps
// as text.
func (d *SQLite) LiteralTimestamp(t time.Time) string {
	return quoting.SingleQuote(formatMillis(t))
}
