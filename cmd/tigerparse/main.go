// Command tigerparse checks the syntax of Tiger source files.
//
// Usage:
//
//	tigerparse [-max-errors n] [-dump] file.tig...
//
// Diagnostics go to stderr as file:line:col: message. The exit status is 1 if
// any file had a syntax error, 2 on usage or I/O errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/metaphox/tiger-lang/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "tigerparse: ", 0)

	fs := flag.NewFlagSet("tigerparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	maxErrors := fs.Int("max-errors", 0, "stop after this many diagnostics per file (0 = no limit)")
	dump := fs.Bool("dump", false, "print the parsed program")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: tigerparse [-max-errors n] [-dump] file.tig...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	failed := false
	for _, path := range fs.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			logger.Printf("reading %s: %v", path, err)
			return 2
		}

		prog, errs := parser.ParseString(path, string(src), parser.WithMaxErrors(*maxErrors))
		for _, d := range errs {
			fmt.Fprintln(stderr, d.Error())
		}
		if len(errs) > 0 {
			failed = true
			continue
		}
		if *dump {
			fmt.Fprint(stdout, prog.String())
		}
	}

	if failed {
		return 1
	}
	return 0
}
