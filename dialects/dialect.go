// Package dialects provides per-vendor SQL generation rules and capability
// flags. Each dialect is stateless and immutable after construction; vendor
// dialects embed the shared base and override only their deltas.
package dialects

import (
	"strconv"
	"strings"
	"time"

	"github.com/corvid-labs/sqlbind/internal/quoting"
)

// SequenceOptions configures CREATE SEQUENCE generation. Zero-valued fields
// are omitted from the generated statement.
type SequenceOptions struct {
	Start     int64
	Increment int64
	Cache     int64
	Order     bool
	Cycle     bool
}

// Dialect fixes SQL text generation rules and capability flags for one
// database engine. Implementations are safe for concurrent use.
type Dialect interface {
	// Name returns the dialect identity used in errors and logs.
	Name() string

	// QuoteIdent quotes a SQL identifier (table name, column name).
	QuoteIdent(ident string) string

	// BindMarker returns the positional placeholder for 1-based parameter n.
	BindMarker(n int) string

	// Scalar type names for DDL generation.
	TypeBool() string
	TypeInteger() string
	TypeLong() string
	TypeFloat() string
	TypeDouble() string
	TypeDecimal(precision, scale int) string
	TypeVarchar(n int) string
	TypeChar(n int) string
	TypeClob() string
	TypeBlob() string
	TypeTimestamp() string

	// Sequence support. The text methods return "" when SupportsSequences
	// is false.
	SupportsSequences() bool
	SequenceNextVal(name string) string
	SequenceNextValQuery(name string) string
	CreateSequence(name string, opts SequenceOptions) string
	DropSequence(name string) string

	// SupportsInsertReturning reports whether INSERT can return generated
	// keys atomically. When false, callers fall back to reading a sequence
	// value before the insert.
	SupportsInsertReturning() bool

	// FromDummy returns the clause a tableless SELECT requires, including
	// its leading space, or "" when none is needed.
	FromDummy() string

	// LiteralTimestamp formats an instant as a vendor timestamp literal,
	// millisecond precision, normalized to UTC.
	LiteralTimestamp(t time.Time) string

	// CurrentTimestamp returns the SQL expression for the database clock.
	CurrentTimestamp() string

	// Large-object binding: in-memory value vs streaming channel.
	UseStringForClob() bool
	UseBytesForBlob() bool

	// Driver-quirk capabilities. The binder branches only on these, never
	// on vendor identity.
	BindLobNullViaBytes() bool
	BindFloatViaExact() bool
}

// base implements ANSI-flavored defaults shared by all dialects.
// Vendor dialects embed *base and set outer to themselves so that shared
// code paths reach their overrides.
type base struct {
	// outer is the concrete dialect. Composite generation methods go
	// through outer so vendor overrides are respected.
	outer Dialect

	// name identifies the dialect in errors and logs.
	name string

	// quoteIdent quotes a SQL identifier.
	quoteIdent func(string) string

	// marker returns the bind placeholder for a 1-based parameter index.
	marker func(int) string

	supportsSequences       bool
	supportsInsertReturning bool
	useStringForClob        bool
	useBytesForBlob         bool
	bindLobNullViaBytes     bool
	bindFloatViaExact       bool
}

// newBase returns the shared defaults: double-quoted identifiers, `?`
// markers, standard sequences, in-memory large objects.
func newBase(outer Dialect, name string) *base {
	return &base{
		outer:             outer,
		name:              name,
		quoteIdent:        quoting.DoubleQuote,
		marker:            func(int) string { return "?" },
		supportsSequences: true,
		useStringForClob:  true,
		useBytesForBlob:   true,
	}
}

func (b *base) Name() string { return b.name }

func (b *base) QuoteIdent(ident string) string { return b.quoteIdent(ident) }

func (b *base) BindMarker(n int) string { return b.marker(n) }

func (b *base) TypeBool() string         { return "BOOLEAN" }
func (b *base) TypeInteger() string      { return "INTEGER" }
func (b *base) TypeLong() string         { return "BIGINT" }
func (b *base) TypeFloat() string        { return "REAL" }
func (b *base) TypeDouble() string       { return "DOUBLE PRECISION" }
func (b *base) TypeVarchar(n int) string { return "VARCHAR(" + strconv.Itoa(n) + ")" }
func (b *base) TypeChar(n int) string    { return "CHAR(" + strconv.Itoa(n) + ")" }
func (b *base) TypeClob() string         { return "CLOB" }
func (b *base) TypeBlob() string         { return "BLOB" }
func (b *base) TypeTimestamp() string    { return "TIMESTAMP" }

func (b *base) TypeDecimal(precision, scale int) string {
	return "DECIMAL(" + strconv.Itoa(precision) + "," + strconv.Itoa(scale) + ")"
}

func (b *base) SupportsSequences() bool { return b.supportsSequences }

func (b *base) SequenceNextVal(name string) string {
	if !b.supportsSequences {
		return ""
	}
	return "NEXT VALUE FOR " + b.quoteIdent(name)
}

func (b *base) SequenceNextValQuery(name string) string {
	if !b.supportsSequences {
		return ""
	}
	return "SELECT " + b.outer.SequenceNextVal(name) + b.outer.FromDummy()
}

func (b *base) CreateSequence(name string, opts SequenceOptions) string {
	if !b.supportsSequences {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("CREATE SEQUENCE ")
	sb.WriteString(b.quoteIdent(name))
	if opts.Start != 0 {
		sb.WriteString(" START WITH ")
		sb.WriteString(strconv.FormatInt(opts.Start, 10))
	}
	if opts.Increment != 0 {
		sb.WriteString(" INCREMENT BY ")
		sb.WriteString(strconv.FormatInt(opts.Increment, 10))
	}
	if opts.Cache != 0 {
		sb.WriteString(" CACHE ")
		sb.WriteString(strconv.FormatInt(opts.Cache, 10))
	}
	if opts.Cycle {
		sb.WriteString(" CYCLE")
	}
	return sb.String()
}

func (b *base) DropSequence(name string) string {
	if !b.supportsSequences {
		return ""
	}
	return "DROP SEQUENCE " + b.quoteIdent(name)
}

func (b *base) SupportsInsertReturning() bool { return b.supportsInsertReturning }

func (b *base) FromDummy() string { return "" }

func (b *base) LiteralTimestamp(t time.Time) string {
	return "TIMESTAMP " + quoting.SingleQuote(formatMillis(t))
}

func (b *base) CurrentTimestamp() string { return "CURRENT_TIMESTAMP" }

func (b *base) UseStringForClob() bool    { return b.useStringForClob }
func (b *base) UseBytesForBlob() bool     { return b.useBytesForBlob }
func (b *base) BindLobNullViaBytes() bool { return b.bindLobNullViaBytes }
func (b *base) BindFloatViaExact() bool   { return b.bindFloatViaExact }

// formatMillis renders an instant at millisecond precision in UTC.
// Sub-millisecond digits are truncated, matching the binder's
// normalization.
func formatMillis(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05.000")
}
