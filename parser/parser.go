/*
File    : rox/parser/parser.go
*/

/*
Package parser implements a recursive-descent parser for the Lox language.

The parser converts the token stream produced by the lexer into an Abstract
Syntax Tree (AST). It handles:
- Declarations (classes, functions, variables)
- Statements (print, blocks, if, while, for, return)
- Expressions with Lox precedence and associativity
- Assignment-target analysis (bare variable vs property)

Key features:
- Panic-mode error recovery: on a per-declaration error the parser
  synchronizes at the next statement boundary and keeps going
- Error collection (doesn't stop on first error); the parse fails if any
  error was recorded, and partial statements after an error are discarded
- A single-expression mode used by the REPL, which accepts exactly one
  expression followed by EOF
- `for` loops are desugared at parse time into a block holding the
  initializer and an equivalent while loop
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/collinvandyck/rox/lexer"
)

// maxCallArgs is the argument count of a call (or parameter count of a
// declaration) at which the parser records a diagnostic. The cap is
// diagnostic only: parsing continues past it.
const maxCallArgs = 255

// Parser represents the parser state. It walks a token slice that the
// scanner produced; the slice always ends with an explicit EOF token.
type Parser struct {
	Tokens []lexer.Token // The scanned tokens, EOF-terminated
	Pos    int           // Index of the current (not yet consumed) token

	// Collect parsing errors instead of stopping at the first one.
	// This allows reporting multiple errors in a single parse.
	Errors []string
}

// ParseError aggregates the messages of a failed parse.
type ParseError struct {
	Messages []string
}

// Error joins the collected messages, one per line.
func (e *ParseError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// NewParser creates a Parser over a scanned token slice.
//
// The tokens must end with an EOF token; the scanner guarantees this.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		Tokens: tokens,
		Errors: make([]string, 0),
	}
}

// Parse is the main parsing entry point. It repeatedly parses declarations
// until EOF, building up a RootNode. Declarations that failed to parse are
// discarded after panic-mode recovery; if any error was recorded the whole
// parse fails with a ParseError aggregating every message.
func (par *Parser) Parse() (*RootNode, error) {
	root := &RootNode{Statements: make([]StatementNode, 0)}
	for !par.isAtEnd() {
		stmt := par.parseDeclaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}
	if par.HasErrors() {
		return nil, &ParseError{Messages: par.Errors}
	}
	return root, nil
}

// ParseExpression is the single-expression mode used by the REPL: it
// accepts exactly one expression followed by EOF. It is tried before
// statement parsing; any leftover tokens or recorded error fail it.
func (par *Parser) ParseExpression() (ExpressionNode, error) {
	expr := par.parseExpression()
	if expr == nil || par.HasErrors() || !par.check(lexer.EOF_TYPE) {
		if !par.HasErrors() {
			par.errorAtCurrent("expected end of expression")
		}
		return nil, &ParseError{Messages: par.Errors}
	}
	return expr, nil
}

// HasErrors reports whether any parse errors were recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parse errors collected so far.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// peek returns the current token without consuming it.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.Pos]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Pos-1]
}

// isAtEnd reports whether the cursor sits on the EOF sentinel.
func (par *Parser) isAtEnd() bool {
	return par.peek().Type == lexer.EOF_TYPE
}

// advance consumes the current token and returns it. The cursor never
// moves past the EOF sentinel.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.Pos++
	}
	return par.previous()
}

// check reports whether the current token has the given type.
func (par *Parser) check(expected lexer.TokenType) bool {
	return par.peek().Type == expected
}

// match consumes the current token if it has one of the given types.
func (par *Parser) match(types ...lexer.TokenType) bool {
	for _, typ := range types {
		if par.check(typ) {
			par.advance()
			return true
		}
	}
	return false
}

// consume expects the current token to have the given type and consumes
// it. On a mismatch it records an expected-token error naming both kinds
// and reports failure; the caller then abandons the current declaration.
func (par *Parser) consume(expected lexer.TokenType, context string) (lexer.Token, bool) {
	if par.check(expected) {
		return par.advance(), true
	}
	tok := par.peek()
	par.addError(tok, "expected %s %s, got %s", expected, context, tok.Type)
	return tok, false
}

// addError records a parse error message pointing at the given token.
func (par *Parser) addError(tok lexer.Token, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	par.Errors = append(par.Errors, fmt.Sprintf("[%d:%d] PARSER ERROR: %s", tok.Line, tok.Column, msg))
}

// errorAtCurrent records a parse error at the current token.
func (par *Parser) errorAtCurrent(format string, a ...interface{}) {
	par.addError(par.peek(), format, a...)
}

// synchronize implements panic-mode recovery: after an error, discard
// tokens until the previous token was a semicolon or the next token
// begins a statement. Parsing then resumes at a likely-clean boundary so
// one mistake doesn't cascade into a wall of spurious errors.
func (par *Parser) synchronize() {
	par.advance()
	for !par.isAtEnd() {
		if par.previous().Type == lexer.SEMICOLON_DELIM {
			return
		}
		switch par.peek().Type {
		case lexer.CLASS_KEY, lexer.FOR_KEY, lexer.FUN_KEY, lexer.IF_KEY,
			lexer.PRINT_KEY, lexer.RETURN_KEY, lexer.VAR_KEY, lexer.WHILE_KEY:
			return
		}
		par.advance()
	}
}
