/*
Package microflag parses command line arguments against a declarative
flag table.

Example

A table is a plain slice of declarations, each binding a short and/or
long spelling to a caller-owned variable. Whatever the variable holds
before parsing acts as the default:

	package main

	import (
		"fmt"
		"os"

		microflag "github.com/San7o/micro-flag"
	)

	func main() {
		showHelp := false
		outName := "out"

		flags := []microflag.Flag{
			microflag.Bool(&showHelp, "-h", "--help", "show help message"),
			microflag.String(&outName, "-o", "--output", "set output file"),
		}

		if err := microflag.Parse(flags, os.Args); err != nil {
			os.Exit(1)
		}
		if showHelp {
			microflag.PrintHelp("example", "A sample application", flags)
			os.Exit(0)
		}

		fmt.Printf("Output file: %s\n", outName)
	}

Parsing

Parse walks the argument vector once, left to right, skipping the program
name. A token must equal a declaration's short or long name exactly; there
is no combined short flag or --flag=value syntax, and the first
declaration that matches wins. Boolean flags take no value and are set to
true when seen. Every other kind consumes the following token as its
value, whatever it looks like. Values are written through as tokens
arrive, so a repeated flag keeps its last value, and values written before
a failure stay written.

Failures are returned as a *ParseError carrying a machine-checkable Kind
plus the tokens involved, after a one-line diagnostic is printed to
standard output:

	Usage: -n,--number <integer>
	Error parsing flags: unknown flag "--bogus"

Help

Help output has a fixed shape: the program name, the description, a blank
line, an "Options:" header, then one block per declaration showing its
names and type placeholder with the description indented beneath:

	example
	A sample application

	Options:
	    -h,--help
	        show help message
	    -o,--output <str>
	        set output file

Tables can also be derived from a tagged struct with Bind; see its
documentation for the supported field types and tag keys.
*/
package microflag
