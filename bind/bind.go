package bind

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/corvid-labs/sqlbind/args"
	"github.com/corvid-labs/sqlbind/dialects"
	"github.com/corvid-labs/sqlbind/internal/debug"
)

// Values binds vals into sink in order. Elements may be args.Value,
// args.Null, raw nil (untyped null, resolved through the sink's ParamTyper
// capability), or plain Go values inferred with args.FromAny.
//
// Values mutates only the sink, never vals. The first failure aborts the
// whole bind; stream sources drained up to that point are not replayable.
func Values(sink Sink, d dialects.Dialect, vals []any) error {
	for i, raw := range vals {
		if err := bindOne(sink, d, i+1, raw); err != nil {
			return err
		}
	}
	return nil
}

func bindOne(sink Sink, d dialects.Dialect, pos int, raw any) error {
	switch v := raw.(type) {
	case args.Value:
		return bindValue(sink, d, pos, v)
	case args.Null:
		return bindNull(sink, d, pos, v.Kind)
	case nil:
		return bindUntypedNull(sink, d, pos)
	default:
		av, err := args.FromAny(raw)
		if err != nil {
			return &BindingError{Position: pos, Err: err}
		}
		return bindValue(sink, d, pos, av)
	}
}

func bindValue(sink Sink, d dialects.Dialect, pos int, v args.Value) error {
	if v.IsNull() {
		return bindNull(sink, d, pos, v.Kind)
	}
	var err error
	switch v.Kind {
	case args.KindBool:
		err = sink.SetBool(pos, v.BoolVal())
	case args.KindInteger:
		err = sink.SetInt32(pos, v.Int32Val())
	case args.KindLong:
		err = sink.SetInt64(pos, v.Int64Val())
	case args.KindFloat:
		err = bindFloat32(sink, d, pos, v.Float32Val())
	case args.KindDouble:
		err = bindFloat64(sink, d, pos, v.Float64Val())
	case args.KindDecimal:
		err = sink.SetDecimal(pos, v.StringVal())
	case args.KindString:
		err = sink.SetString(pos, v.StringVal())
	case args.KindClobString:
		err = bindClobString(sink, d, pos, v.StringVal())
	case args.KindClobStream:
		return bindClobStream(sink, d, pos, v.ReaderVal())
	case args.KindBlobBytes:
		err = bindBlobBytes(sink, d, pos, v.BytesVal())
	case args.KindBlobStream:
		return bindBlobStream(sink, d, pos, v.ReaderVal())
	case args.KindTimestamp:
		err = sink.SetTime(pos, NormalizeTimestamp(v.TimeVal()))
	case args.KindTimestampNow:
		err = sink.SetTime(pos, NormalizeTimestamp(time.Now()))
	case args.KindTimestampNowDB:
		return &BindingError{Position: pos, Err: errors.New("database clock markers expand into SQL text and cannot be bound")}
	case args.KindDate:
		err = sink.SetDate(pos, NormalizeDate(v.TimeVal()))
	default:
		return &BindingError{Position: pos, Err: fmt.Errorf("no binding for %s arguments", v.Kind)}
	}
	if err != nil {
		return &BindingError{Position: pos, Err: err}
	}
	return nil
}

// bindNull binds SQL NULL declared as kind. On dialects whose driver
// rejects typed LOB nulls on the generic null channel, LOB nulls go
// through the bytes channel with a nil payload instead.
func bindNull(sink Sink, d dialects.Dialect, pos int, kind args.Kind) error {
	var err error
	if kind.IsLob() && d.BindLobNullViaBytes() {
		debug.Debug("lob null via bytes channel", "pos", pos, "kind", kind.String())
		err = sink.SetBytes(pos, nil)
	} else {
		err = sink.SetNull(pos, kind)
	}
	if err != nil {
		return &BindingError{Position: pos, Err: err}
	}
	return nil
}

// bindUntypedNull resolves a raw nil by asking the sink for the parameter's
// declared kind. Sinks without that capability cannot bind untyped nulls.
func bindUntypedNull(sink Sink, d dialects.Dialect, pos int) error {
	pt, ok := sink.(ParamTyper)
	if !ok {
		return &BindingError{Position: pos, Err: errors.New("untyped null needs a sink that reports parameter types")}
	}
	kind, err := pt.ParamKind(pos)
	if err != nil {
		return &BindingError{Position: pos, Err: err}
	}
	return bindNull(sink, d, pos, kind)
}

func bindFloat32(sink Sink, d dialects.Dialect, pos int, v float32) error {
	if d.BindFloatViaExact() {
		if ex, ok := sink.(ExactFloatSink); ok {
			return ex.SetFloat32Exact(pos, v)
		}
	}
	return sink.SetFloat32(pos, v)
}

func bindFloat64(sink Sink, d dialects.Dialect, pos int, v float64) error {
	if d.BindFloatViaExact() {
		if ex, ok := sink.(ExactFloatSink); ok {
			return ex.SetFloat64Exact(pos, v)
		}
	}
	return sink.SetFloat64(pos, v)
}

func bindClobString(sink Sink, d dialects.Dialect, pos int, v string) error {
	if d.UseStringForClob() {
		return sink.SetString(pos, v)
	}
	return sink.SetClobReader(pos, strings.NewReader(v))
}

func bindBlobBytes(sink Sink, d dialects.Dialect, pos int, v []byte) error {
	if d.UseBytesForBlob() {
		return sink.SetBytes(pos, v)
	}
	return sink.SetBlobReader(pos, bytes.NewReader(v))
}

// bindClobStream binds a character stream. When the dialect wants CLOBs
// in-memory, the source is drained synchronously and completely before
// binding continues; a mid-drain failure aborts the bind with no partially
// bound statement visible to the caller.
func bindClobStream(sink Sink, d dialects.Dialect, pos int, r io.Reader) error {
	if !d.UseStringForClob() {
		if err := sink.SetClobReader(pos, r); err != nil {
			return &BindingError{Position: pos, Err: err}
		}
		return nil
	}
	debug.Debug("draining clob stream", "pos", pos)
	data, err := io.ReadAll(r)
	if err != nil {
		return &StreamDrainError{Position: pos, Err: err}
	}
	if err := sink.SetString(pos, string(data)); err != nil {
		return &BindingError{Position: pos, Err: err}
	}
	return nil
}

// bindBlobStream is the binary counterpart of bindClobStream.
func bindBlobStream(sink Sink, d dialects.Dialect, pos int, r io.Reader) error {
	if !d.UseBytesForBlob() {
		if err := sink.SetBlobReader(pos, r); err != nil {
			return &BindingError{Position: pos, Err: err}
		}
		return nil
	}
	debug.Debug("draining blob stream", "pos", pos)
	data, err := io.ReadAll(r)
	if err != nil {
		return &StreamDrainError{Position: pos, Err: err}
	}
	if err := sink.SetBytes(pos, data); err != nil {
		return &BindingError{Position: pos, Err: err}
	}
	return nil
}

// NormalizeTimestamp zeroes the sub-millisecond remainder of t so the bound
// sub-second field always equals the millisecond value exactly. The
// operation is idempotent; canonical values pass through unchanged. The
// monotonic clock reading, which drivers cannot transport, is dropped.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}

// NormalizeDate zeroes the time-of-day part of t in its own location,
// leaving a date-only instant.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
