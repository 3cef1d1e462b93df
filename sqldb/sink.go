package sqldb

import (
	"errors"
	"io"
	"time"

	"github.com/corvid-labs/sqlbind/args"
	"github.com/corvid-labs/sqlbind/bind"
)

// errStreamArg is returned when a streaming setter reaches the sink. The
// binder drains streams for every dialect wired in this package, so only a
// misconfigured dialect can trigger it.
var errStreamArg = errors.New("streaming lob arguments are not supported over database/sql")

// StmtSink collects bound arguments into the positional slice that
// database/sql executes with. Untyped nulls never reach it; buffer replay
// always carries a declared kind, so no ParamTyper capability is needed.
// The zero value is ready to use.
type StmtSink struct {
	vals []any
}

var _ bind.Sink = (*StmtSink)(nil)

func (s *StmtSink) SetBool(pos int, v bool) error       { return s.put(pos, v) }
func (s *StmtSink) SetInt32(pos int, v int32) error     { return s.put(pos, v) }
func (s *StmtSink) SetInt64(pos int, v int64) error     { return s.put(pos, v) }
func (s *StmtSink) SetFloat32(pos int, v float32) error { return s.put(pos, v) }
func (s *StmtSink) SetFloat64(pos int, v float64) error { return s.put(pos, v) }
func (s *StmtSink) SetDecimal(pos int, v string) error  { return s.put(pos, v) }
func (s *StmtSink) SetString(pos int, v string) error   { return s.put(pos, v) }
func (s *StmtSink) SetBytes(pos int, v []byte) error    { return s.put(pos, v) }
func (s *StmtSink) SetTime(pos int, v time.Time) error  { return s.put(pos, v) }
func (s *StmtSink) SetDate(pos int, v time.Time) error  { return s.put(pos, v) }

// SetNull binds a SQL NULL. The declared kind is dropped; the three wired
// drivers all accept an untyped nil argument.
func (s *StmtSink) SetNull(pos int, _ args.Kind) error { return s.put(pos, nil) }

func (s *StmtSink) SetClobReader(pos int, r io.Reader) error { return errStreamArg }
func (s *StmtSink) SetBlobReader(pos int, r io.Reader) error { return errStreamArg }

// put stores v at the 1-based position pos, growing the slice as needed.
func (s *StmtSink) put(pos int, v any) error {
	for len(s.vals) < pos {
		s.vals = append(s.vals, nil)
	}
	s.vals[pos-1] = v
	return nil
}

// Args returns the collected positional arguments.
func (s *StmtSink) Args() []any { return s.vals }

// Reset clears the sink for reuse.
func (s *StmtSink) Reset() { s.vals = s.vals[:0] }
