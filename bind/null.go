package bind

import "github.com/corvid-labs/sqlbind/args"

// Typed null constructors. Callers express "a null of this logical type"
// without naming vendor type codes; the dialect decides the channel.

// NullBool is a null with boolean type.
func NullBool() args.Null { return args.NullOf(args.KindBool) }

// NullInteger is a null with 32-bit integer type.
func NullInteger() args.Null { return args.NullOf(args.KindInteger) }

// NullLong is a null with 64-bit integer type.
func NullLong() args.Null { return args.NullOf(args.KindLong) }

// NullFloat is a null with single-precision float type.
func NullFloat() args.Null { return args.NullOf(args.KindFloat) }

// NullDouble is a null with double-precision float type.
func NullDouble() args.Null { return args.NullOf(args.KindDouble) }

// NullDecimal is a null with fixed-decimal type.
func NullDecimal() args.Null { return args.NullOf(args.KindDecimal) }

// NullString is a null with string type.
func NullString() args.Null { return args.NullOf(args.KindString) }

// NullTimestamp is a null with timestamp type.
func NullTimestamp() args.Null { return args.NullOf(args.KindTimestamp) }

// NullDate is a null with date-only type.
func NullDate() args.Null { return args.NullOf(args.KindDate) }

// NullClob is a null with character-large-object type.
func NullClob() args.Null { return args.NullOf(args.KindClobString) }

// NullBlob is a null with binary-large-object type.
func NullBlob() args.Null { return args.NullOf(args.KindBlobBytes) }
