/*
File    : rox/repl/repl.go

Package repl implements the Read-Eval-Print Loop for the Lox interpreter.
The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See immediate results of expression evaluation
- Navigate command history using arrow keys
- Receive colored feedback for different kinds of output

The REPL uses the readline library for line editing and integrates with
the lexer, parser and evaluator to execute user input. Each non-empty
line is first tried in the parser's single-expression mode: if it parses
as one expression, its value is printed; otherwise the line is parsed and
executed as a statement sequence. Errors print and the loop continues;
one evaluator (and so one global frame) persists across lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/collinvandyck/rox/eval"
	"github.com/collinvandyck/rox/lexer"
	"github.com/collinvandyck/rox/parser"
	"github.com/fatih/color"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: expression results and version info
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates the
// configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "lox >>> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
//  1. Displays the welcome banner
//  2. Sets up readline for line editing and history
//  3. Creates an evaluator instance that lives for the whole session
//  4. Reads, evaluates and prints until exit
//
// The loop ends when the user types '.exit' or readline reports EOF
// (Ctrl+D).
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or readline error (e.g. Ctrl+D)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.execute(writer, line, evaluator)
	}
}

// execute scans, parses and evaluates one line of input. Unlike file
// execution, the REPL continues running after every kind of error so the
// user can correct mistakes and try again.
func (r *Repl) execute(writer io.Writer, line string, evaluator *eval.Evaluator) {
	lex := lexer.NewLexer(line)
	tokens, err := lex.ConsumeTokens()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	// Expression mode first: a line that is a single expression prints
	// its value, which is what an interactive session wants from `1 + 2`.
	exprParser := parser.NewParser(tokens)
	if expr, err := exprParser.ParseExpression(); err == nil {
		result := eval.UnwrapReturnValue(evaluator.Eval(expr))
		if result.GetType() == "error" {
			redColor.Fprintf(writer, "%s\n", result.ToString())
		} else {
			yellowColor.Fprintf(writer, "%s\n", result.ToString())
		}
		return
	}

	// Otherwise parse the line as a statement sequence.
	par := parser.NewParser(tokens)
	root, err := par.Parse()
	if err != nil {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := evaluator.Eval(root)
	if result.GetType() == "error" {
		redColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
