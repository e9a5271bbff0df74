/*
File: rlox/main/main.go
*/

// Package main is the command-line entry point for rlox: it dispatches
// between interactive, file, and usage-error modes, plus the
// supplemental --help/--version/server conveniences.
package main

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/akashmaji946/rlox/interpreter"
	"github.com/akashmaji946/rlox/parser"
	"github.com/akashmaji946/rlox/repl"
	"github.com/akashmaji946/rlox/scanner"
	"github.com/fatih/color"
)

// usageExitCode is the platform's EX_USAGE value (64 on POSIX), used
// when the command line is malformed.
const usageExitCode = 64

var (
	VERSION = "v1.0.0"
	AUTHOR  = "rlox contributors"
	LICENCE = "MIT"
	PROMPT  = "> "
	BANNER  = `
 ██▀███   ██▓     ▒█████  ▒██   ██▒
▓██ ▒ ██▒▓██▒    ▒██▒  ██▒▒▒ █ █ ▒░
▓██ ░▄█ ▒▒██░    ▒██░  ██▒░░  █   ░
▒██▀▀█▄  ▒██░    ▒██   ██░ ░ █ █ ▒
░██▓ ▒██▒░██████▒░ ████▓▒░▒██▒ ▒██▒
`
	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		runRepl(os.Stdin, os.Stdout)
	case args[0] == "--help" || args[0] == "-h":
		showHelp()
	case args[0] == "--version" || args[0] == "-v":
		showVersion()
	case args[0] == "server":
		if len(args) != 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port. Usage: rlox server <port>\n")
			os.Exit(usageExitCode)
		}
		startServer(args[1])
	case len(args) == 1:
		runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: rlox [script]")
		os.Exit(usageExitCode)
	}
}

func showHelp() {
	cyanColor.Println("rlox - a tree-walking interpreter for a small Lox-family language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  rlox                      Start the interactive prompt")
	yellowColor.Println("  rlox <path>               Run a script file")
	yellowColor.Println("  rlox server <port>        Serve the prompt over TCP")
	yellowColor.Println("  rlox --help               Show this help message")
	yellowColor.Println("  rlox --version            Show version information")
}

func showVersion() {
	cyanColor.Printf("rlox %s (%s)\n", VERSION, LICENCE)
}

// runFile reads path as UTF-8 text and evaluates it as a single program.
// Any scanner, parser, or runtime error is reported to standard error and
// the process exits non-zero; a clean run exits 0 with no extra output.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read '%s': %v\n", path, err)
		os.Exit(1)
	}
	if !runSource(os.Stderr, string(source)) {
		os.Exit(1)
	}
}

// runSource scans, parses, and interprets source, writing print output to
// os.Stdout and any error to errWriter. It reports whether the run
// succeeded.
func runSource(errWriter io.Writer, source string) (ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			fmt.Fprintf(errWriter, "%v\n", recovered)
			ok = false
		}
	}()

	tokens, err := scanner.New(source).ScanTokens()
	if err != nil {
		fmt.Fprintln(errWriter, err)
		return false
	}

	p := parser.New(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, parseErr := range p.Errors() {
			fmt.Fprintln(errWriter, parseErr)
		}
		return false
	}

	if err := interpreter.New().Interpret(statements); err != nil {
		fmt.Fprintln(errWriter, err)
		return false
	}
	return true
}

func runRepl(stdin *os.File, stdout *os.File) {
	session := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	session.Start(stdin, stdout)
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("rlox prompt listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	session := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	session.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
