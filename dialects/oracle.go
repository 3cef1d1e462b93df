package dialects

import (
	"strconv"
	"time"
)

// Oracle generates Oracle-dialect SQL.
// Identifiers are quoted with double quotes, placeholders are :1, :2, ...
type Oracle struct {
	*base
}

// NewOracle creates an Oracle dialect ready for use.
//
// Generated keys come from the pre-insert sequence fallback since output
// binds are not reachable through the generic statement surface. Large
// objects bind through streaming channels. Float binding prefers the exact
// channel when the sink offers one; the legacy driver narrows binary floats
// through decimal and underflows small magnitudes.
func NewOracle() *Oracle {
	d := &Oracle{}
	d.base = newBase(d, "oracle")
	d.base.marker = func(i int) string { return ":" + strconv.Itoa(i) }
	d.base.useStringForClob = false
	d.base.useBytesForBlob = false
	d.base.bindFloatViaExact = true
	return d
}

func (d *Oracle) TypeBool() string         { return "NUMBER(1)" }
func (d *Oracle) TypeInteger() string      { return "NUMBER(10)" }
func (d *Oracle) TypeLong() string         { return "NUMBER(19)" }
func (d *Oracle) TypeFloat() string        { return "BINARY_FLOAT" }
func (d *Oracle) TypeDouble() string       { return "BINARY_DOUBLE" }
func (d *Oracle) TypeVarchar(n int) string { return "VARCHAR2(" + strconv.Itoa(n) + ")" }

func (d *Oracle) TypeDecimal(precision, scale int) string {
	return "NUMBER(" + strconv.Itoa(precision) + "," + strconv.Itoa(scale) + ")"
}

func (d *Oracle) SequenceNextVal(name string) string {
	return d.QuoteIdent(name) + ".NEXTVAL"
}

// CreateSequence appends the ORDER clause the shared form omits; ordered
// allocation is an Oracle-only notion tied to RAC instances.
func (d *Oracle) CreateSequence(name string, opts SequenceOptions) string {
	s := d.base.CreateSequence(name, opts)
	if opts.Order {
		s += " ORDER"
	}
	return s
}

// FromDummy supplies the one-row table every tableless SELECT needs.
func (d *Oracle) FromDummy() string { return " FROM DUAL" }

func (d *Oracle) LiteralTimestamp(t time.Time) string {
	return "TO_TIMESTAMP('" + formatMillis(t) + "', 'YYYY-MM-DD HH24:MI:SS.FF3')"
}

func (d *Oracle) CurrentTimestamp() string { return "SYSTIMESTAMP" }
