package microflag

// Type identifies the value kind a flag binds to. It selects both the
// coercion applied to the flag's value token and the placeholder shown in
// help output.
type Type int

const (
	TypeBool Type = iota
	TypeChar
	TypeString
	TypeInt
	TypeDouble
)

// TypeInvalid is reported by Flag.Type for declarations with no value slot.
const TypeInvalid Type = -1

// TypeStrings maps each Type to the placeholder text shown after the flag
// names in help output. It is initialized at startup and treated as
// read-only.
var TypeStrings = [...]string{
	TypeBool:   "",
	TypeChar:   "<char>",
	TypeString: "<str>",
	TypeInt:    "<int>",
	TypeDouble: "<double>",
}

func (t Type) placeholder() string {
	if t < 0 || int(t) >= len(TypeStrings) {
		return ""
	}
	return TypeStrings[t]
}

// Flag is one entry in a flag table. Short and Long are the spellings that
// match the flag on the command line; an empty name is treated as absent,
// and at least one must be present for the flag to ever match (caller
// responsibility, not validated). Description is free text used only by
// the help renderer.
//
// Tables are plain slices built by the caller, either literally with the
// typed constructors or derived from a tagged struct with Bind. The
// library never retains a table.
type Flag struct {
	Value       Value
	Short       string
	Long        string
	Description string
}

// Type reports the value kind of the flag's slot, or TypeInvalid if the
// flag has none.
func (f Flag) Type() Type {
	if f.Value == nil {
		return TypeInvalid
	}
	return f.Value.kind()
}

// names is the display spelling used in help output: Short and Long joined
// by a comma when both are present, otherwise whichever one is.
func (f Flag) names() string {
	if f.Short != "" && f.Long != "" {
		return f.Short + "," + f.Long
	}
	return f.Short + f.Long
}

// Bool declares a flag that writes true through p when matched. It
// consumes no value token.
func Bool(p *bool, short, long, description string) Flag {
	return Flag{Value: (*boolValue)(p), Short: short, Long: long, Description: description}
}

// Char declares a flag whose value token must be exactly one byte long.
func Char(p *byte, short, long, description string) Flag {
	return Flag{Value: (*charValue)(p), Short: short, Long: long, Description: description}
}

// String declares a flag that writes its value token through p verbatim.
func String(p *string, short, long, description string) Flag {
	return Flag{Value: (*stringValue)(p), Short: short, Long: long, Description: description}
}

// Int declares a flag whose value token is parsed as a base-10 signed
// integer. Tokens outside the 32-bit signed range are rejected even though
// the slot is a Go int.
func Int(p *int, short, long, description string) Flag {
	return Flag{Value: (*intValue)(p), Short: short, Long: long, Description: description}
}

// Double declares a flag whose value token is parsed as a floating-point
// number.
func Double(p *float64, short, long, description string) Flag {
	return Flag{Value: (*doubleValue)(p), Short: short, Long: long, Description: description}
}
