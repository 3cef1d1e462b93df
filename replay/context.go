package replay

import (
	"io"
	"time"

	"github.com/corvid-labs/sqlbind/args"
)

// Setter is the typed-setter surface an operation context exposes for
// every non-stream argument kind. The name parameter is "" for positional
// recordings.
type Setter interface {
	SetBool(name string, v bool) error
	SetInteger(name string, v int32) error
	SetLong(name string, v int64) error
	SetFloat(name string, v float32) error
	SetDouble(name string, v float64) error
	SetDecimal(name string, v string) error
	SetString(name string, v string) error
	SetClobString(name string, v string) error
	SetBlobBytes(name string, v []byte) error
	SetTimestamp(name string, v time.Time) error
	SetDate(name string, v time.Time) error
	SetTimestampNow(name string) error
	SetTimestampNowDB(name string) error
	SetNull(name string, kind args.Kind) error
}

// StreamSetter is the large-object streaming surface. Select contexts do
// not implement it; selects never bind large objects.
type StreamSetter interface {
	SetClobStream(name string, r io.Reader) error
	SetBlobStream(name string, r io.Reader) error
}

// InsertContext receives replayed arguments for an insert operation.
type InsertContext interface {
	Setter
	StreamSetter
}

// UpdateContext receives replayed arguments for an update operation.
type UpdateContext interface {
	Setter
	StreamSetter
}

// SelectContext receives replayed arguments for a select operation.
type SelectContext interface {
	Setter
}
