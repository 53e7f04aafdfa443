/*
File    : quill/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command quill is the Quill interpreter's entry point: run a one-off
// expression (-e), run a source file (-f), or fall into an interactive
// REPL when given neither.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akashmaji946/quill/eval"
	"github.com/akashmaji946/quill/lexer"
	"github.com/akashmaji946/quill/objects"
	"github.com/akashmaji946/quill/parser"
	"github.com/akashmaji946/quill/repl"
	"github.com/akashmaji946/quill/scope"
	"github.com/fatih/color"
)

const (
	version = "0.1.0"
	author  = "Akash Maji <akashmaji@iisc.ac.in>"
	license = "MIT"
	line    = "--------------------------------------------------------"
	banner  = `
   ___       _ _ _
  / _ \ _   _(_) | |
 / /_\/| | | | | | |
/ /_\\ | |_| | | | |
\____/  \__,_|_|_|_|
`
	prompt = "quill >>> "
)

func main() {
	expr := flag.String("e", "", "evaluate an expression")
	file := flag.String("f", "", "evaluate a source file")
	stopAtFirstError := flag.Bool("s", false, "stop at the first parse error instead of collecting them all")
	printResult := flag.Bool("p", false, "print the evaluated result of the last statement")
	flag.BoolVar(stopAtFirstError, "stop-on-error", false, "alias for -s")
	flag.BoolVar(printResult, "print", false, "alias for -p")
	flag.Parse()

	switch {
	case *expr != "":
		os.Exit(run(*expr, *stopAtFirstError, *printResult))
	case *file != "":
		src, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "quill: %v\n", err)
			os.Exit(1)
		}
		os.Exit(run(string(src), *stopAtFirstError, *printResult))
	default:
		r := repl.New(banner, version, author, line, license, prompt)
		if err := r.Start(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "quill: %v\n", err)
			os.Exit(1)
		}
	}
}

// run lexes, parses and evaluates src once, reporting parse errors and the
// final evaluation result to stdout. Evaluation errors are a normal part
// of the language's value model, not a process failure, so run always
// returns 0; the only non-zero exit status comes from main, when the
// source file cannot be read or the REPL cannot start (spec.md §6).
func run(src string, stopAtFirstError, printResult bool) int {
	l := lexer.New(src)
	p := parser.New(l)
	p.StopAtFirstError = stopAtFirstError
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		red := color.New(color.FgRed)
		for _, err := range p.Errors() {
			red.Fprintf(os.Stderr, "%s\n", err)
		}
		return 0
	}

	evaluator := eval.New()
	result := evaluator.Eval(program, scope.New())

	if result == nil {
		return 0
	}

	if result.GetType() == objects.ErrorType {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", result.ToString())
		return 0
	}

	if printResult {
		color.New(color.FgYellow).Fprintf(os.Stdout, "%s\n", result.ToObject())
	}
	return 0
}
