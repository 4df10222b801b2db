package microflag

// Value is the typed storage slot a flag writes through. It is a closed
// interface: the only implementations are the slot types wrapped by the
// Bool, Char, String, Int and Double constructors, so a flag's kind and its
// storage cannot disagree. The parser never reads a slot's prior contents;
// whatever the caller left there acts as the default.
type Value interface {
	kind() Type
}

type boolValue bool

func (*boolValue) kind() Type { return TypeBool }

type charValue byte

func (*charValue) kind() Type { return TypeChar }

type stringValue string

func (*stringValue) kind() Type { return TypeString }

type intValue int

func (*intValue) kind() Type { return TypeInt }

type doubleValue float64

func (*doubleValue) kind() Type { return TypeDouble }
