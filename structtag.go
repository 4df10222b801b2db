package microflag

import (
	"strings"
)

// parseTag parses the inner text of a "flag" struct tag into a key/value
// map. Entries are comma separated; a value is attached with '=' and may
// be wrapped in single quotes to protect commas, as in
// "name=output,short=o,help='one, two'". Spaces in keys are ignored, and
// an entry without '=' maps to the empty string.
func parseTag(inner string) map[string]string {
	tags := map[string]string{}

	var key, val strings.Builder
	inKey := true
	inQuote := false
	for _, r := range inner {
		switch {
		case inKey && r == ',':
			tags[key.String()] = ""
			key.Reset()
		case inKey && r == '=':
			inKey = false
		case inKey && r == ' ':
			// ignored
		case inKey:
			key.WriteRune(r)
		case inQuote && r == '\'':
			inQuote = false
		case inQuote:
			val.WriteRune(r)
		case r == ',':
			tags[key.String()] = val.String()
			key.Reset()
			val.Reset()
			inKey = true
		case r == '\'':
			inQuote = true
		default:
			val.WriteRune(r)
		}
	}
	if key.Len() > 0 {
		tags[key.String()] = val.String()
	}

	return tags
}
