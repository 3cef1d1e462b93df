// Package replay records a typed argument-set call sequence once and
// replays it against insert, update, or select operation contexts
// interchangeably.
package replay

import (
	"io"
	"time"

	"github.com/corvid-labs/sqlbind/args"
)

// Invocation is one recorded argument-set call: kind, optional name,
// payload. It is owned by the Buffer that recorded it and never mutated
// afterwards.
type Invocation struct {
	val args.Value
}

// Kind returns the recorded argument kind.
func (inv Invocation) Kind() args.Kind { return inv.val.Kind }

// Name returns the parameter name, "" when recorded positionally.
func (inv Invocation) Name() string { return inv.val.Name }

// Value returns the recorded argument value.
func (inv Invocation) Value() args.Value { return inv.val }

// Buffer records an ordered sequence of typed argument-set calls. It
// performs no execution. The recording methods chain:
//
//	buf := replay.NewBuffer().String("name", "ada").Integer("age", 36)
//
// A Buffer has an append phase and a read phase with no locking between
// them: record from one goroutine, finish, then replay from any number of
// goroutines. Replay never mutates recorded state.
type Buffer struct {
	invocations []Invocation
}

// NewBuffer creates an empty argument buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) add(v args.Value) *Buffer {
	b.invocations = append(b.invocations, Invocation{val: v})
	return b
}

// Bool records a boolean argument.
func (b *Buffer) Bool(name string, v bool) *Buffer { return b.add(args.Bool(v).Named(name)) }

// Integer records a 32-bit integer argument.
func (b *Buffer) Integer(name string, v int32) *Buffer { return b.add(args.Integer(v).Named(name)) }

// Long records a 64-bit integer argument.
func (b *Buffer) Long(name string, v int64) *Buffer { return b.add(args.Long(v).Named(name)) }

// Float records a single-precision float argument.
func (b *Buffer) Float(name string, v float32) *Buffer { return b.add(args.Float(v).Named(name)) }

// Double records a double-precision float argument.
func (b *Buffer) Double(name string, v float64) *Buffer { return b.add(args.Double(v).Named(name)) }

// Decimal records a fixed-decimal argument from its exact string form.
func (b *Buffer) Decimal(name string, v string) *Buffer { return b.add(args.Decimal(v).Named(name)) }

// String records a string argument.
func (b *Buffer) String(name string, v string) *Buffer { return b.add(args.String(v).Named(name)) }

// ClobString records an in-memory character-large-object argument.
func (b *Buffer) ClobString(name string, v string) *Buffer {
	return b.add(args.ClobString(v).Named(name))
}

// ClobStream records a streaming character-large-object argument.
func (b *Buffer) ClobStream(name string, r io.Reader) *Buffer {
	return b.add(args.ClobStream(r).Named(name))
}

// BlobBytes records an in-memory binary-large-object argument.
func (b *Buffer) BlobBytes(name string, v []byte) *Buffer {
	return b.add(args.BlobBytes(v).Named(name))
}

// BlobStream records a streaming binary-large-object argument.
func (b *Buffer) BlobStream(name string, r io.Reader) *Buffer {
	return b.add(args.BlobStream(r).Named(name))
}

// Timestamp records a timestamp argument.
func (b *Buffer) Timestamp(name string, v time.Time) *Buffer {
	return b.add(args.Timestamp(v).Named(name))
}

// TimestampNow records an application-clock marker.
func (b *Buffer) TimestampNow(name string) *Buffer { return b.add(args.TimestampNow().Named(name)) }

// TimestampNowDB records a database-clock marker.
func (b *Buffer) TimestampNowDB(name string) *Buffer {
	return b.add(args.TimestampNowDB().Named(name))
}

// Date records a date-only argument.
func (b *Buffer) Date(name string, v time.Time) *Buffer { return b.add(args.Date(v).Named(name)) }

// Null records a typed null argument.
func (b *Buffer) Null(name string, kind args.Kind) *Buffer {
	return b.add(args.Value{Kind: kind, Name: name})
}

// Append records an already-built argument value.
func (b *Buffer) Append(v args.Value) *Buffer { return b.add(v) }

// Len returns the number of recorded invocations.
func (b *Buffer) Len() int { return len(b.invocations) }

// Invocations returns a copy of the recorded sequence in original order.
func (b *Buffer) Invocations() []Invocation {
	out := make([]Invocation, len(b.invocations))
	copy(out, b.invocations)
	return out
}
