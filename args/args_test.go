package args

import (
	"strings"
	"testing"
	"time"
)

// --- Kind classification ---

func TestKindString(t *testing.T) {
	t.Parallel()
	cases := map[Kind]string{
		KindBool:           "bool",
		KindDecimal:        "decimal",
		KindClobStream:     "clob-stream",
		KindBlobBytes:      "blob-bytes",
		KindTimestampNowDB: "timestamp-now-db",
		KindUnknown:        "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindStreamAndLob(t *testing.T) {
	t.Parallel()
	if !KindClobStream.IsStream() || !KindBlobStream.IsStream() {
		t.Error("expected stream kinds to report IsStream")
	}
	if KindClobString.IsStream() || KindString.IsStream() {
		t.Error("expected non-stream kinds to not report IsStream")
	}
	for _, k := range []Kind{KindClobString, KindClobStream, KindBlobBytes, KindBlobStream} {
		if !k.IsLob() {
			t.Errorf("expected %s to be a LOB kind", k)
		}
	}
	if KindTimestamp.IsLob() {
		t.Error("expected timestamp to not be a LOB kind")
	}
}

func TestKindGenerated(t *testing.T) {
	t.Parallel()
	if !KindTimestampNow.IsGenerated() || !KindTimestampNowDB.IsGenerated() {
		t.Error("expected clock markers to report IsGenerated")
	}
	if KindTimestamp.IsGenerated() {
		t.Error("expected plain timestamp to not report IsGenerated")
	}
}

// --- Value construction and access ---

func TestValueRoundTrips(t *testing.T) {
	t.Parallel()
	if got := Integer(42).Int32Val(); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := Long(1 << 40).Int64Val(); got != 1<<40 {
		t.Errorf("expected %d, got %d", int64(1)<<40, got)
	}
	if got := Decimal("10.50").StringVal(); got != "10.50" {
		t.Errorf("expected %q, got %q", "10.50", got)
	}
	if got := Bool(true); !got.BoolVal() {
		t.Error("expected true")
	}
	when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := Timestamp(when).TimeVal(); !got.Equal(when) {
		t.Errorf("expected %v, got %v", when, got)
	}
}

func TestValueNamed(t *testing.T) {
	t.Parallel()
	v := String("hi").Named("greeting")
	if v.Name != "greeting" {
		t.Errorf("expected name %q, got %q", "greeting", v.Name)
	}
	if v.Kind != KindString {
		t.Errorf("expected kind %s, got %s", KindString, v.Kind)
	}
	// The original is unchanged; Named returns a copy.
	orig := String("hi")
	_ = orig.Named("x")
	if orig.Name != "" {
		t.Error("expected Named to not mutate the receiver")
	}
}

func TestValueNullness(t *testing.T) {
	t.Parallel()
	if String("").IsNull() {
		t.Error("expected empty string to be non-null")
	}
	if !BlobBytes(nil).IsNull() {
		t.Error("expected nil bytes to be null")
	}
	if !ClobStream(nil).IsNull() {
		t.Error("expected nil reader to be null")
	}
	if TimestampNow().IsNull() {
		t.Error("expected clock marker to never be null")
	}
}

func TestAccessorPanicsOnWrongKind(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic from a mismatched accessor")
		}
	}()
	_ = String("x").Int32Val()
}

func TestReaderVal(t *testing.T) {
	t.Parallel()
	r := strings.NewReader("payload")
	v := BlobStream(r)
	if v.ReaderVal() != r {
		t.Error("expected the same reader back")
	}
}

// --- Null sentinel ---

func TestNullOf(t *testing.T) {
	t.Parallel()
	n := NullOf(KindClobString)
	if n.Kind != KindClobString {
		t.Errorf("expected kind %s, got %s", KindClobString, n.Kind)
	}
	if n.String() != "null(clob-string)" {
		t.Errorf("unexpected String(): %s", n.String())
	}
}

// --- Kind inference ---

func TestFromAnyInference(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want Kind
	}{
		{true, KindBool},
		{int8(1), KindInteger},
		{int16(1), KindInteger},
		{int32(1), KindInteger},
		{1, KindLong},
		{int64(1), KindLong},
		{uint16(1), KindInteger},
		{uint32(1), KindLong},
		{float32(1.5), KindFloat},
		{1.5, KindDouble},
		{"s", KindString},
		{[]byte{1}, KindBlobBytes},
		{time.Now(), KindTimestamp},
		{strings.NewReader("x"), KindBlobStream},
	}
	for _, c := range cases {
		v, err := FromAny(c.in)
		if err != nil {
			t.Errorf("FromAny(%T): unexpected error: %v", c.in, err)
			continue
		}
		if v.Kind != c.want {
			t.Errorf("FromAny(%T) = %s, want %s", c.in, v.Kind, c.want)
		}
	}
}

func TestFromAnyPassesValuesThrough(t *testing.T) {
	t.Parallel()
	orig := Decimal("9.99").Named("price")
	v, err := FromAny(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != orig {
		t.Error("expected tagged values to pass through unchanged")
	}
}

func TestFromAnyRejectsNilAndUnknown(t *testing.T) {
	t.Parallel()
	if _, err := FromAny(nil); err == nil {
		t.Error("expected an error for nil")
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected an error for an unmappable type")
	}
	if _, err := FromAny(uint64(1) << 63); err == nil {
		t.Error("expected an overflow error for a huge unsigned value")
	}
}
