package args

import (
	"fmt"
	"io"
	"time"
)

// Value is a tagged argument: a Kind, an optional parameter name, and the
// payload. Values are constructed through the typed constructors below and
// read back through the typed accessors; an accessor called with the wrong
// kind panics, since that is a programming error, not input data.
type Value struct {
	Kind Kind
	Name string
	data any
}

// Named returns a copy of the value carrying the given parameter name.
func (v Value) Named(name string) Value {
	v.Name = name
	return v
}

// IsNull reports whether the payload is absent. Kinds without a payload
// (the clock markers) are never null.
func (v Value) IsNull() bool {
	if v.Kind.IsGenerated() {
		return false
	}
	return v.data == nil
}

// --- Constructors ---

// Bool creates a boolean argument.
func Bool(b bool) Value { return Value{Kind: KindBool, data: b} }

// Integer creates a 32-bit integer argument.
func Integer(i int32) Value { return Value{Kind: KindInteger, data: i} }

// Long creates a 64-bit integer argument.
func Long(i int64) Value { return Value{Kind: KindLong, data: i} }

// Float creates a single-precision float argument.
func Float(f float32) Value { return Value{Kind: KindFloat, data: f} }

// Double creates a double-precision float argument.
func Double(f float64) Value { return Value{Kind: KindDouble, data: f} }

// Decimal creates a fixed-decimal argument from its exact string form,
// e.g. "12345.6789". The string is passed through to the driver untouched
// so no binary float rounding is introduced.
func Decimal(s string) Value { return Value{Kind: KindDecimal, data: s} }

// String creates a varchar argument.
func String(s string) Value { return Value{Kind: KindString, data: s} }

// ClobString creates a character large object held fully in memory.
func ClobString(s string) Value { return Value{Kind: KindClobString, data: s} }

// ClobStream creates a character large object read from r at bind time.
func ClobStream(r io.Reader) Value {
	if r == nil {
		return Value{Kind: KindClobStream}
	}
	return Value{Kind: KindClobStream, data: r}
}

// BlobBytes creates a binary large object held fully in memory.
func BlobBytes(b []byte) Value {
	if b == nil {
		return Value{Kind: KindBlobBytes}
	}
	return Value{Kind: KindBlobBytes, data: b}
}

// BlobStream creates a binary large object read from r at bind time.
func BlobStream(r io.Reader) Value {
	if r == nil {
		return Value{Kind: KindBlobStream}
	}
	return Value{Kind: KindBlobStream, data: r}
}

// Timestamp creates a timestamp argument.
func Timestamp(t time.Time) Value { return Value{Kind: KindTimestamp, data: t} }

// TimestampNow creates a marker bound as the application clock's current
// time at bind time.
func TimestampNow() Value { return Value{Kind: KindTimestampNow} }

// TimestampNowDB creates a marker expanded to the database clock's current
// time. It is spliced into SQL text, never bound as a parameter.
func TimestampNowDB() Value { return Value{Kind: KindTimestampNowDB} }

// Date creates a date-only argument; the time-of-day portion is ignored
// when binding.
func Date(t time.Time) Value { return Value{Kind: KindDate, data: t} }

// --- Accessors ---

// BoolVal returns the boolean payload.
func (v Value) BoolVal() bool { return payload[bool](v, KindBool) }

// Int32Val returns the 32-bit integer payload.
func (v Value) Int32Val() int32 { return payload[int32](v, KindInteger) }

// Int64Val returns the 64-bit integer payload.
func (v Value) Int64Val() int64 { return payload[int64](v, KindLong) }

// Float32Val returns the single-precision payload.
func (v Value) Float32Val() float32 { return payload[float32](v, KindFloat) }

// Float64Val returns the double-precision payload.
func (v Value) Float64Val() float64 { return payload[float64](v, KindDouble) }

// StringVal returns the string payload of a decimal, string, or clob-string.
func (v Value) StringVal() string {
	switch v.Kind {
	case KindDecimal, KindString, KindClobString:
		if v.data == nil {
			return ""
		}
		return v.data.(string)
	}
	panic(fmt.Sprintf("sqlbind: StringVal called on %s argument", v.Kind))
}

// BytesVal returns the byte payload of a blob-bytes argument.
func (v Value) BytesVal() []byte {
	if v.Kind != KindBlobBytes {
		panic(fmt.Sprintf("sqlbind: BytesVal called on %s argument", v.Kind))
	}
	if v.data == nil {
		return nil
	}
	return v.data.([]byte)
}

// ReaderVal returns the stream payload of a clob-stream or blob-stream.
func (v Value) ReaderVal() io.Reader {
	if !v.Kind.IsStream() {
		panic(fmt.Sprintf("sqlbind: ReaderVal called on %s argument", v.Kind))
	}
	if v.data == nil {
		return nil
	}
	return v.data.(io.Reader)
}

// TimeVal returns the time payload of a timestamp or date argument.
func (v Value) TimeVal() time.Time {
	switch v.Kind {
	case KindTimestamp, KindDate:
		if v.data == nil {
			return time.Time{}
		}
		return v.data.(time.Time)
	}
	panic(fmt.Sprintf("sqlbind: TimeVal called on %s argument", v.Kind))
}

// payload extracts a typed payload, panicking when the kind does not match.
func payload[T any](v Value, want Kind) T {
	if v.Kind != want {
		panic(fmt.Sprintf("sqlbind: %s accessor called on %s argument", want, v.Kind))
	}
	var zero T
	if v.data == nil {
		return zero
	}
	return v.data.(T)
}
