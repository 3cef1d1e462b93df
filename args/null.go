package args

// Null is a typed null sentinel: it stands in for a SQL NULL while carrying
// the kind the driver should bind it as. Untyped nil cannot be bound on most
// drivers without a declared parameter type, so callers substitute a Null
// wherever a nullable argument is absent.
type Null struct {
	Kind Kind
}

// NullOf creates a null sentinel for the given kind.
func NullOf(k Kind) Null { return Null{Kind: k} }

func (n Null) String() string { return "null(" + n.Kind.String() + ")" }
