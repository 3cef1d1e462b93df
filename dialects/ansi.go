package dialects

// ANSI generates standard SQL with no vendor extensions. It is the default
// when no vendor is recognized and the reference the vendor dialects
// override.
type ANSI struct {
	*base
}

// NewANSI creates an ANSI dialect ready for use.
func NewANSI() *ANSI {
	d := &ANSI{}
	d.base = newBase(d, "ansi")
	return d
}
