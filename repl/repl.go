/*
File    : quill/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements Quill's interactive Read-Eval-Print Loop: line
// editing and history via chzyer/readline, colored reporting via
// fatih/color, grounded on the teacher's repl/repl.go.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/quill/errs"
	"github.com/akashmaji946/quill/eval"
	"github.com/akashmaji946/quill/lexer"
	"github.com/akashmaji946/quill/objects"
	"github.com/akashmaji946/quill/parser"
	"github.com/akashmaji946/quill/scope"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, license line, and prompt string.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Quill!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user types `.exit` or
// sends EOF. A single Scope and Evaluator persist across lines, so bindings
// made in one line are visible to the next — the way a REPL is expected to
// behave even though spec.md's driver only evaluates one Program at a time.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: "history.txt",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	env := scope.New()
	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator, env)
	}
}

// executeWithRecovery lexes, parses, and evaluates a single line, catching
// any panic so a bug in the evaluator drops back to the prompt instead of
// killing the session, the way the teacher's REPL never lets one bad line
// end the process.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator, env *scope.Scope) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, parseErr := range p.Errors() {
			reportError(writer, line, parseErr)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.GetType() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.ToString())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.ToObject())
}

// reportError prints a parse/lex error, and — for the variants that carry
// a source position — a caret under the offending column so the
// offset is visible at a glance, per spec.md §7.
func reportError(writer io.Writer, src string, err error) {
	redColor.Fprintf(writer, "%s\n", err.Error())

	var column int
	switch e := err.(type) {
	case *errs.UnexpectedToken:
		column = e.Column
	case *errs.UnfinishedString:
		column = e.Column
	case *errs.IllegalInteger:
		column = e.Column
	case *errs.UnexpectedChar:
		column = e.Column
	default:
		return
	}

	if column < 1 || column > len(src)+1 {
		return
	}
	redColor.Fprintf(writer, "%s\n%s^\n", src, strings.Repeat(" ", column-1))
}
