// Package args defines the tagged argument model shared by the rewriter,
// binder, and replay buffer. Every bindable value is represented as a Value
// carrying an explicit Kind tag; dispatch is always by tag switch, never by
// reflection.
package args

// Kind identifies the SQL-level type of an argument.
type Kind uint8

const (
	// KindUnknown is the zero value; it never appears in a constructed Value.
	KindUnknown Kind = iota
	KindBool
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindDecimal
	KindString
	KindClobString
	KindClobStream
	KindBlobBytes
	KindBlobStream
	KindTimestamp
	KindTimestampNow
	KindTimestampNowDB
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindClobString:
		return "clob-string"
	case KindClobStream:
		return "clob-stream"
	case KindBlobBytes:
		return "blob-bytes"
	case KindBlobStream:
		return "blob-stream"
	case KindTimestamp:
		return "timestamp"
	case KindTimestampNow:
		return "timestamp-now"
	case KindTimestampNowDB:
		return "timestamp-now-db"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// IsStream reports whether the kind carries an io.Reader payload.
func (k Kind) IsStream() bool {
	return k == KindClobStream || k == KindBlobStream
}

// IsLob reports whether the kind is a large-object variant.
func (k Kind) IsLob() bool {
	switch k {
	case KindClobString, KindClobStream, KindBlobBytes, KindBlobStream:
		return true
	}
	return false
}

// IsClob reports whether the kind is a character large object.
func (k Kind) IsClob() bool {
	return k == KindClobString || k == KindClobStream
}

// IsBlob reports whether the kind is a binary large object.
func (k Kind) IsBlob() bool {
	return k == KindBlobBytes || k == KindBlobStream
}

// IsGenerated reports whether the kind is a clock marker whose value is
// produced at bind or SQL-generation time rather than supplied by the caller.
func (k Kind) IsGenerated() bool {
	return k == KindTimestampNow || k == KindTimestampNowDB
}
