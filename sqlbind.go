// Package sqlbind rewrites named-placeholder SQL and binds tagged argument
// values across database flavors.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/corvid-labs/sqlbind/rewrite (named-placeholder rewriting)
//   - github.com/corvid-labs/sqlbind/dialects (per-vendor SQL rules)
//   - github.com/corvid-labs/sqlbind/args (tagged argument values)
//   - github.com/corvid-labs/sqlbind/bind (positional binding with driver workarounds)
//   - github.com/corvid-labs/sqlbind/replay (argument buffers and replay)
//   - github.com/corvid-labs/sqlbind/cache (statement rewrite caching)
//   - github.com/corvid-labs/sqlbind/sqldb (execution over database/sql)
package sqlbind

import (
	"io"
	"time"

	"github.com/corvid-labs/sqlbind/args"
	"github.com/corvid-labs/sqlbind/bind"
	"github.com/corvid-labs/sqlbind/cache"
	"github.com/corvid-labs/sqlbind/dialects"
	"github.com/corvid-labs/sqlbind/replay"
	"github.com/corvid-labs/sqlbind/rewrite"
)

// --- Statement Rewriting ---

// Statement is the immutable result of rewriting one named-placeholder
// SQL string: the positional text plus the ordered parameter names.
type Statement = rewrite.Statement

// Parse rewrites named placeholders (:name) in sql to positional markers.
func Parse(sql string) *rewrite.Statement {
	return rewrite.Parse(sql)
}

// MissingParameterError reports a placeholder name absent from a value map.
type MissingParameterError = rewrite.MissingParameterError

// UnusedParameterError reports value-map keys the SQL never consumes.
type UnusedParameterError = rewrite.UnusedParameterError

// --- Dialects ---

// Dialect fixes SQL text generation rules and capability flags for one
// database engine.
type Dialect = dialects.Dialect

// SequenceOptions configures CREATE SEQUENCE generation.
type SequenceOptions = dialects.SequenceOptions

// ForURL resolves a connection URL to its dialect by prefix lookup.
func ForURL(url string) (dialects.Dialect, error) {
	return dialects.ForURL(url)
}

// ForName resolves a dialect by name. Common aliases are accepted.
func ForName(name string) (dialects.Dialect, error) {
	return dialects.ForName(name)
}

// NewANSI creates the ANSI reference dialect.
func NewANSI() *dialects.ANSI {
	return dialects.NewANSI()
}

// NewPostgres creates a PostgreSQL dialect.
func NewPostgres() *dialects.Postgres {
	return dialects.NewPostgres()
}

// NewMySQL creates a MySQL dialect.
func NewMySQL() *dialects.MySQL {
	return dialects.NewMySQL()
}

// NewSQLite creates a SQLite dialect.
func NewSQLite() *dialects.SQLite {
	return dialects.NewSQLite()
}

// NewOracle creates an Oracle dialect.
func NewOracle() *dialects.Oracle {
	return dialects.NewOracle()
}

// Rebind converts `?` markers in sql to the dialect's positional markers.
func Rebind(d dialects.Dialect, sql string) string {
	return dialects.Rebind(d, sql)
}

// --- Tagged Arguments ---

// Value is one tagged argument value.
type Value = args.Value

// Null is a SQL NULL declared with an argument kind.
type Null = args.Null

// Kind tags the declared type of an argument value.
type Kind = args.Kind

// Argument kinds, re-exported for Null declarations.
const (
	KindBool           = args.KindBool
	KindInteger        = args.KindInteger
	KindLong           = args.KindLong
	KindFloat          = args.KindFloat
	KindDouble         = args.KindDouble
	KindDecimal        = args.KindDecimal
	KindString         = args.KindString
	KindClobString     = args.KindClobString
	KindClobStream     = args.KindClobStream
	KindBlobBytes      = args.KindBlobBytes
	KindBlobStream     = args.KindBlobStream
	KindTimestamp      = args.KindTimestamp
	KindTimestampNow   = args.KindTimestampNow
	KindTimestampNowDB = args.KindTimestampNowDB
	KindDate           = args.KindDate
)

// Bool creates a boolean argument.
func Bool(b bool) args.Value {
	return args.Bool(b)
}

// Integer creates a 32-bit integer argument.
func Integer(i int32) args.Value {
	return args.Integer(i)
}

// Long creates a 64-bit integer argument.
func Long(i int64) args.Value {
	return args.Long(i)
}

// Float creates a 32-bit float argument.
func Float(f float32) args.Value {
	return args.Float(f)
}

// Double creates a 64-bit float argument.
func Double(f float64) args.Value {
	return args.Double(f)
}

// Decimal creates an exact decimal argument from its string form.
func Decimal(s string) args.Value {
	return args.Decimal(s)
}

// String creates a string argument.
func String(s string) args.Value {
	return args.String(s)
}

// ClobString creates an in-memory character large object argument.
func ClobString(s string) args.Value {
	return args.ClobString(s)
}

// ClobStream creates a streaming character large object argument.
func ClobStream(r io.Reader) args.Value {
	return args.ClobStream(r)
}

// BlobBytes creates an in-memory binary large object argument.
func BlobBytes(b []byte) args.Value {
	return args.BlobBytes(b)
}

// BlobStream creates a streaming binary large object argument.
func BlobStream(r io.Reader) args.Value {
	return args.BlobStream(r)
}

// Timestamp creates a timestamp argument.
func Timestamp(t time.Time) args.Value {
	return args.Timestamp(t)
}

// TimestampNow creates a timestamp argument resolved from the client clock
// at bind time.
func TimestampNow() args.Value {
	return args.TimestampNow()
}

// TimestampNowDB creates a database-clock marker that expands into SQL text
// instead of binding.
func TimestampNowDB() args.Value {
	return args.TimestampNowDB()
}

// Date creates a date argument; the time of day is zeroed at bind time.
func Date(t time.Time) args.Value {
	return args.Date(t)
}

// NullOf creates a SQL NULL declared as the given kind.
func NullOf(k args.Kind) args.Null {
	return args.NullOf(k)
}

// --- Argument Buffers ---

// Buffer records tagged argument values for later replay.
type Buffer = replay.Buffer

// NewBuffer creates an empty argument buffer.
func NewBuffer() *replay.Buffer {
	return replay.NewBuffer()
}

// ReplayInsert replays buf onto an insert operation context.
func ReplayInsert(buf *replay.Buffer, ctx replay.InsertContext) error {
	return replay.ReplayInsert(buf, ctx)
}

// ReplayUpdate replays buf onto an update operation context.
func ReplayUpdate(buf *replay.Buffer, ctx replay.UpdateContext) error {
	return replay.ReplayUpdate(buf, ctx)
}

// ReplaySelect replays buf onto a select operation context. Streaming
// arguments are rejected before any setter runs.
func ReplaySelect(buf *replay.Buffer, ctx replay.SelectContext) error {
	return replay.ReplaySelect(buf, ctx)
}

// --- Binding ---

// Sink is an open, positional statement handle.
type Sink = bind.Sink

// Bind binds vals into sink in order, applying the dialect's driver
// workarounds.
func Bind(sink bind.Sink, d dialects.Dialect, vals []any) error {
	return bind.Values(sink, d, vals)
}

// --- Rewrite Caching ---

// RewriteCache is a bounded LRU cache of statement rewrites.
type RewriteCache = cache.RewriteCache

// NewCache creates a rewrite cache holding up to size statements.
func NewCache(size int) *cache.RewriteCache {
	return cache.New(size)
}
