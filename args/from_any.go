package args

import (
	"fmt"
	"io"
	"math"
	"time"
)

// FromAny infers a typed Value from a raw Go value, for callers that supply
// plain name→value maps instead of constructing Values themselves. Already
// tagged Values pass through unchanged. A raw nil cannot be inferred; callers
// resolve untyped nulls against the statement's declared parameter types.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case nil:
		return Value{}, fmt.Errorf("cannot infer an argument kind for nil (use a typed null)")
	case bool:
		return Bool(x), nil
	case int8:
		return Integer(int32(x)), nil
	case int16:
		return Integer(int32(x)), nil
	case int32:
		return Integer(x), nil
	case int:
		return Long(int64(x)), nil
	case int64:
		return Long(x), nil
	case uint8:
		return Integer(int32(x)), nil
	case uint16:
		return Integer(int32(x)), nil
	case uint32:
		return Long(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Value{}, fmt.Errorf("unsigned value %d overflows a long argument", x)
		}
		return Long(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, fmt.Errorf("unsigned value %d overflows a long argument", x)
		}
		return Long(int64(x)), nil
	case float32:
		return Float(x), nil
	case float64:
		return Double(x), nil
	case string:
		return String(x), nil
	case []byte:
		return BlobBytes(x), nil
	case time.Time:
		return Timestamp(x), nil
	case io.Reader:
		return BlobStream(x), nil
	default:
		return Value{}, fmt.Errorf("unsupported argument type %T", v)
	}
}
