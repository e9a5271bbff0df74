/*
File: rlox/repl/repl.go
*/

// Package repl implements the interactive read-eval-print loop: print a
// prompt, read one line, evaluate it against a globals environment that
// persists for the life of the session, and loop until the trimmed line
// is empty.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/rlox/interpreter"
	"github.com/akashmaji946/rlox/parser"
	"github.com/akashmaji946/rlox/scanner"
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

// Repl holds the presentation details of an interactive session. The
// evaluation contract itself - print "> ", exit 0 on a trimmed-empty
// line, otherwise evaluate and loop - does not depend on any of these
// fields.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given presentation fields.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and a short usage summary.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type an expression or statement and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "An empty line, '.exit', or end-of-input ends the session.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop: print the prompt, read one line, exit on a
// trimmed-empty line or an I/O error, otherwise evaluate the line against
// an evaluator whose globals environment persists across the whole
// session, report any error without exiting, and loop.
//
// reader/writer need not be a terminal - the same loop backs both the
// interactive CLI and the server sub-command's per-connection sessions.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	it := interpreter.New()
	it.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		trimmed := strings.Trim(line, " \t\r\n")
		if trimmed == "" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		if trimmed == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, trimmed, it)
	}
}

// evalLine scans, parses, and interprets one line, recovering from any
// interpreter panic so a single malformed line never ends the session.
func (r *Repl) evalLine(writer io.Writer, line string, it *interpreter.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	tokens, err := scanner.New(line).ScanTokens()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	p := parser.New(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, parseErr := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", parseErr)
		}
		return
	}

	if err := it.Interpret(statements); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
