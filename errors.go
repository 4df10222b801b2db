package microflag

import (
	"fmt"
)

// ErrorKind discriminates parse failures. Callers should branch on the
// Kind of a returned ParseError rather than on its message text.
type ErrorKind string

const (
	ErrorUnknownType   ErrorKind = "unknown_type"
	ErrorMissingChar   ErrorKind = "missing_char"
	ErrorMissingStr    ErrorKind = "missing_str"
	ErrorMissingInt    ErrorKind = "missing_int"
	ErrorMissingDouble ErrorKind = "missing_double"
	ErrorCharWrongArg  ErrorKind = "char_wrong_arg"
	ErrorUnknownFlag   ErrorKind = "unknown_flag"
	ErrorNotAnInt      ErrorKind = "not_an_int"
	ErrorNotADouble    ErrorKind = "not_a_double"
)

// ParseError is the error type returned by Parse.
//
// Flag is the token that selected the flag declaration, as it appeared on
// the command line. Token is the offending value token when the failure
// concerns one; for ErrorUnknownFlag it is the unrecognized token itself
// and Flag is empty.
type ParseError struct {
	Kind  ErrorKind
	Flag  string
	Token string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrorUnknownType:
		return fmt.Sprintf("flag %s has an unrecognized value type", e.Flag)
	case ErrorMissingChar, ErrorMissingStr, ErrorMissingInt, ErrorMissingDouble:
		return fmt.Sprintf("flag %s is missing its value", e.Flag)
	case ErrorCharWrongArg:
		return fmt.Sprintf("flag %s: value %q is not a single character", e.Flag, e.Token)
	case ErrorUnknownFlag:
		return fmt.Sprintf("unknown flag %q", e.Token)
	case ErrorNotAnInt:
		return fmt.Sprintf("flag %s: value %q is not an integer", e.Flag, e.Token)
	case ErrorNotADouble:
		return fmt.Sprintf("flag %s: value %q is not a double", e.Flag, e.Token)
	}
	return string(e.Kind)
}
