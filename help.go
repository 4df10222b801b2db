package microflag

import (
	"io"
	"strings"
	"text/template"
)

var helpTemplateString = `{{.Name}}
{{.Description}}

Options:
{{range .Flags}}    {{names .}} {{placeholder .}}
        {{.Description}}
{{end}}`

var helpTemplate *template.Template

func init() {
	helpTemplate = template.Must(
		template.New("help").
			Funcs(template.FuncMap{
				"names":       Flag.names,
				"placeholder": func(f Flag) string { return f.Type().placeholder() },
			}).
			Parse(helpTemplateString),
	)
}

// WriteHelp renders the help listing for flags to w: the program name and
// description lines, a blank line, an "Options:" header, then one block
// per declaration in table order showing its names and type placeholder
// with the description indented beneath. A space always separates the
// names from the placeholder, so flags with no placeholder render with a
// trailing space.
func WriteHelp(w io.Writer, name, description string, flags []Flag) error {
	data := struct {
		Name        string
		Description string
		Flags       []Flag
	}{
		Name:        name,
		Description: description,
		Flags:       flags,
	}
	return helpTemplate.Execute(w, data)
}

// PrintHelp writes the help listing to standard output.
func PrintHelp(name, description string, flags []Flag) error {
	return WriteHelp(output, name, description, flags)
}

// HelpString renders the help listing to a string.
func HelpString(name, description string, flags []Flag) string {
	sb := strings.Builder{}
	WriteHelp(&sb, name, description, flags)
	return sb.String()
}
