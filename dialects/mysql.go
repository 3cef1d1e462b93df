package dialects

import (
	"time"

	"github.com/corvid-labs/sqlbind/internal/quoting"
)

// MySQL generates MySQL/MariaDB-dialect SQL.
// Identifiers are quoted with backticks, placeholders are ?.
type MySQL struct {
	*base
}

// NewMySQL creates a MySQL dialect ready for use.
//
// MySQL has no sequence objects and no RETURNING clause; generated keys
// come from the pre-insert fallback. Large objects bind in-memory.
func NewMySQL() *MySQL {
	d := &MySQL{}
	d.base = newBase(d, "mysql")
	d.base.quoteIdent = quoting.Backtick
	d.base.supportsSequences = false
	return d
}

func (d *MySQL) TypeBool() string      { return "TINYINT(1)" }
func (d *MySQL) TypeInteger() string   { return "INT" }
func (d *MySQL) TypeFloat() string     { return "FLOAT" }
func (d *MySQL) TypeDouble() string    { return "DOUBLE" }
func (d *MySQL) TypeClob() string      { return "LONGTEXT" }
func (d *MySQL) TypeBlob() string      { return "LONGBLOB" }
func (d *MySQL) TypeTimestamp() string { return "DATETIME(3)" }

// LiteralTimestamp emits a bare quoted literal. MySQL rejects the standard
// TIMESTAMP '...' form in some statement positions.
func (d *MySQL) LiteralTimestamp(t time.Time) string {
	return quoting.SingleQuote(formatMillis(t))
}

// CurrentTimestamp asks for millisecond precision explicitly. The bare
// CURRENT_TIMESTAMP truncates to whole seconds.
func (d *MySQL) CurrentTimestamp() string { return "CURRENT_TIMESTAMP(3)" }
