package dialects

import (
	"fmt"

	"github.com/corvid-labs/sqlbind/internal/quoting"
)

// Postgres generates PostgreSQL-dialect SQL.
// Identifiers are quoted with double quotes, placeholders are $1, $2, ...
type Postgres struct {
	*base
}

// NewPostgres creates a Postgres dialect ready for use.
//
// Large objects bind in-memory (the database/sql drivers expose no LOB
// streaming), and typed LOB nulls go through the bytes channel because the
// driver rejects them on the generic null channel.
func NewPostgres() *Postgres {
	d := &Postgres{}
	d.base = newBase(d, "postgres")
	d.base.marker = func(i int) string { return fmt.Sprintf("$%d", i) }
	d.base.supportsInsertReturning = true
	d.base.bindLobNullViaBytes = true
	return d
}

func (d *Postgres) TypeClob() string { return "TEXT" }

func (d *Postgres) TypeBlob() string { return "BYTEA" }

// SequenceNextVal uses the nextval function with a regclass literal, the
// native form, rather than the standard NEXT VALUE FOR.
func (d *Postgres) SequenceNextVal(name string) string {
	return "nextval(" + quoting.SingleQuote(name) + ")"
}
