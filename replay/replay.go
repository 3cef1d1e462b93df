package replay

import (
	"fmt"

	"github.com/corvid-labs/sqlbind/args"
)

// ReplayInsert re-issues the buffer's recorded invocations, in original
// order, against an insert context.
func ReplayInsert(buf *Buffer, ctx InsertContext) error {
	return replayAll(buf, ctx, ctx)
}

// ReplayUpdate re-issues the buffer's recorded invocations, in original
// order, against an update context.
func ReplayUpdate(buf *Buffer, ctx UpdateContext) error {
	return replayAll(buf, ctx, ctx)
}

// ReplaySelect re-issues the buffer's recorded invocations, in original
// order, against a select context. A recorded large-object stream fails
// the whole replay before any setter call, so the context sees either the
// full sequence or nothing.
func ReplaySelect(buf *Buffer, ctx SelectContext) error {
	for i, inv := range buf.invocations {
		if inv.Kind().IsStream() {
			return &UnsupportedArgumentError{Kind: inv.Kind(), Name: inv.Name(), Position: i + 1}
		}
	}
	return replayAll(buf, ctx, nil)
}

func replayAll(buf *Buffer, set Setter, streams StreamSetter) error {
	for i, inv := range buf.invocations {
		if inv.Kind().IsStream() && streams == nil {
			return &UnsupportedArgumentError{Kind: inv.Kind(), Name: inv.Name(), Position: i + 1}
		}
		if err := replayOne(inv, set, streams); err != nil {
			return fmt.Errorf("replay argument %d: %w", i+1, err)
		}
	}
	return nil
}

func replayOne(inv Invocation, set Setter, streams StreamSetter) error {
	v := inv.val
	if v.IsNull() {
		return set.SetNull(v.Name, v.Kind)
	}
	switch v.Kind {
	case args.KindBool:
		return set.SetBool(v.Name, v.BoolVal())
	case args.KindInteger:
		return set.SetInteger(v.Name, v.Int32Val())
	case args.KindLong:
		return set.SetLong(v.Name, v.Int64Val())
	case args.KindFloat:
		return set.SetFloat(v.Name, v.Float32Val())
	case args.KindDouble:
		return set.SetDouble(v.Name, v.Float64Val())
	case args.KindDecimal:
		return set.SetDecimal(v.Name, v.StringVal())
	case args.KindString:
		return set.SetString(v.Name, v.StringVal())
	case args.KindClobString:
		return set.SetClobString(v.Name, v.StringVal())
	case args.KindClobStream:
		return streams.SetClobStream(v.Name, v.ReaderVal())
	case args.KindBlobBytes:
		return set.SetBlobBytes(v.Name, v.BytesVal())
	case args.KindBlobStream:
		return streams.SetBlobStream(v.Name, v.ReaderVal())
	case args.KindTimestamp:
		return set.SetTimestamp(v.Name, v.TimeVal())
	case args.KindTimestampNow:
		return set.SetTimestampNow(v.Name)
	case args.KindTimestampNowDB:
		return set.SetTimestampNowDB(v.Name)
	case args.KindDate:
		return set.SetDate(v.Name, v.TimeVal())
	}
	return fmt.Errorf("no setter for %s arguments", v.Kind)
}
