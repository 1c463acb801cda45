/*
File    : rox/main/main.go

Package main is the entry point for the rox Lox interpreter.
It provides two modes of operation:
1. REPL Mode (default): interactive Read-Eval-Print Loop for live coding
2. File Mode: execute a Lox script from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Lox code.
*/
package main

import (
	"fmt"
	"os"

	"github.com/collinvandyck/rox/eval"
	"github.com/collinvandyck/rox/lexer"
	"github.com/collinvandyck/rox/parser"
	"github.com/collinvandyck/rox/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the interpreter
var VERSION = "v1.0.0"

// LICENSE specifies the software license
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "lox >>> "

// BANNER is the logo displayed when starting the REPL
var BANNER = `
 _ __ ___  __  __
| '__/ _ \ \ \/ /
| | | (_) | >  <
|_|  \___/ /_/\_\
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output:
// - redColor: error messages and failures
// - cyanColor: informational messages
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main determines the operating mode based on command-line arguments:
//
//	rox              - start in REPL (interactive) mode
//	rox <script>     - execute the specified Lox script
//	rox --help       - display help information
//	rox --version    - display version information
//
// File mode exits 0 on success and 1 on any scan, parse or runtime
// error, with the error printed to stderr.
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	// REPL mode
	repler := repl.NewRepl(BANNER, VERSION, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdout)
}

// runFile reads a script as UTF-8 and executes it through the pipeline.
// All diagnostics go to stderr; the process exits non-zero on any error.
func runFile(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %s: %v\n", fileName, err)
		os.Exit(1)
	}

	lex := lexer.NewLexer(string(src))
	tokens, err := lex.ConsumeTokens()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	par := parser.NewParser(tokens)
	root, err := par.Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(root)
	if result.GetType() == "error" {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", result.ToString())
		os.Exit(1)
	}
	os.Exit(0)
}

// showHelp displays usage information.
func showHelp() {
	cyanColor.Fprintln(os.Stdout, "rox - a Lox interpreter")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rox              start the interactive REPL")
	fmt.Println("  rox <script>     execute a Lox script file")
	fmt.Println("  rox --help       show this help")
	fmt.Println("  rox --version    show version information")
}

// showVersion displays the interpreter version.
func showVersion() {
	fmt.Printf("rox %s\n", VERSION)
}
