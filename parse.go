package microflag

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// output receives parse diagnostics and PrintHelp text. The observable
// contract is standard output; tests substitute a buffer.
var output io.Writer = os.Stdout

// usageStrings is the placeholder spelling used in diagnostic lines. It
// intentionally differs from TypeStrings: diagnostics spell out <string>
// and <integer> in full.
var usageStrings = [...]string{
	TypeBool:   "",
	TypeChar:   "<char>",
	TypeString: "<string>",
	TypeInt:    "<integer>",
	TypeDouble: "<double>",
}

// Parse consumes args against the flag table, writing each matched flag's
// value through its slot. args is the full argument vector as passed to
// the program; args[0] is skipped unconditionally.
//
// Tokens are matched against declaration names exactly, first match wins,
// and a value-bearing flag consumes the following token no matter what it
// looks like. The first failure aborts the parse and is returned as a
// *ParseError; values already written are not rolled back. Each failure
// except ErrorUnknownType also prints a single diagnostic line, which is
// part of the contract rather than optional logging.
func Parse(flags []Flag, args []string) error {
	for i := 1; i < len(args); i++ {
		tok := args[i]
		f, ok := match(flags, tok)
		if !ok {
			fmt.Fprintf(output, "Error parsing flags: unknown flag \"%s\"\n", tok)
			return &ParseError{Kind: ErrorUnknownFlag, Token: tok}
		}
		switch v := f.Value.(type) {
		case *boolValue:
			*v = true
		case *charValue:
			if i+1 >= len(args) {
				return usageError(f, tok, "", ErrorMissingChar)
			}
			i++
			if len(args[i]) != 1 {
				return usageError(f, tok, args[i], ErrorCharWrongArg)
			}
			*v = charValue(args[i][0])
		case *stringValue:
			if i+1 >= len(args) {
				return usageError(f, tok, "", ErrorMissingStr)
			}
			i++
			*v = stringValue(args[i])
		case *intValue:
			if i+1 >= len(args) {
				return usageError(f, tok, "", ErrorMissingInt)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 32)
			if err != nil {
				return usageError(f, tok, args[i], ErrorNotAnInt)
			}
			*v = intValue(n)
		case *doubleValue:
			if i+1 >= len(args) {
				return usageError(f, tok, "", ErrorMissingDouble)
			}
			i++
			d, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return usageError(f, tok, args[i], ErrorNotADouble)
			}
			*v = doubleValue(d)
		default:
			return &ParseError{Kind: ErrorUnknownType, Flag: tok}
		}
	}
	return nil
}

// match scans the table in declaration order and returns the first flag
// whose short or long name equals tok. Empty names never match.
func match(flags []Flag, tok string) (Flag, bool) {
	for _, f := range flags {
		if (f.Short != "" && f.Short == tok) || (f.Long != "" && f.Long == tok) {
			return f, true
		}
	}
	return Flag{}, false
}

// usageError prints the diagnostic usage line for f and returns the
// corresponding error. The comma between the names is printed even when
// one of them is absent.
func usageError(f Flag, flagTok, valueTok string, kind ErrorKind) error {
	fmt.Fprintf(output, "Usage: %s,%s %s\n", f.Short, f.Long, usageStrings[f.Type()])
	return &ParseError{Kind: kind, Flag: flagTok, Token: valueTok}
}
