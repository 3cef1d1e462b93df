// Package bind writes positional argument arrays into statement sinks,
// applying per-dialect driver workarounds: LOB nulls through the bytes
// channel, synchronous stream draining when a driver cannot stream, exact
// float binding where the generic numeric path narrows through decimal.
package bind

import (
	"io"
	"time"

	"github.com/corvid-labs/sqlbind/args"
)

// Sink is an open, positional statement handle. Positions are 1-based.
// A sink and its underlying connection belong to exactly one logical
// operation at a time; enforcing that is the caller's responsibility.
type Sink interface {
	SetBool(pos int, v bool) error
	SetInt32(pos int, v int32) error
	SetInt64(pos int, v int64) error
	SetFloat32(pos int, v float32) error
	SetFloat64(pos int, v float64) error
	SetDecimal(pos int, v string) error
	SetString(pos int, v string) error
	SetBytes(pos int, v []byte) error
	SetTime(pos int, v time.Time) error
	SetDate(pos int, v time.Time) error
	SetClobReader(pos int, r io.Reader) error
	SetBlobReader(pos int, r io.Reader) error

	// SetNull binds SQL NULL declared as the given kind.
	SetNull(pos int, kind args.Kind) error
}

// ParamTyper is an optional sink capability: reporting the declared kind of
// a parameter. The binder probes for it when asked to bind an untyped null.
type ParamTyper interface {
	ParamKind(pos int) (args.Kind, error)
}

// ExactFloatSink is an optional sink capability: a high-precision float
// channel. The binder probes for it on dialects whose generic numeric path
// narrows binary floats through decimal.
type ExactFloatSink interface {
	SetFloat32Exact(pos int, v float32) error
	SetFloat64Exact(pos int, v float64) error
}
