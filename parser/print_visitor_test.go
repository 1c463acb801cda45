/*
File    : rox/parser/print_visitor_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collinvandyck/rox/lexer"
)

// reparse runs the pretty-printed form of a program back through the
// pipeline and returns the resulting AST.
func reparse(t *testing.T, printed string) *RootNode {
	t.Helper()
	lex := lexer.NewLexer(printed)
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err, "rescan of %q", printed)
	par := NewParser(tokens)
	root, err := par.Parse()
	require.NoError(t, err, "reparse of %q", printed)
	return root
}

// TestLiteral_RoundTrip checks that re-parsing the pretty-printed AST
// yields a structurally equivalent AST: the printed form is a fixpoint.
func TestLiteral_RoundTrip(t *testing.T) {
	programs := []string{
		`print "Hello, World!";`,
		`var x = 1 + 2 * (3 - 4);`,
		`var y;`,
		`x = y = 3;`,
		`if (a and b or c) print a; else print b;`,
		`while (n < 10) { n = n + 1; print n; }`,
		`fun fib(n) { if (n <= 1) return n; return fib(n - 2) + fib(n - 1); }`,
		`fun noop() { return; }`,
		`class Bagel { eat() { print "crunch"; } }`,
		`var b = Bagel(); b.x = 42; print b.x;`,
		`print !-1;`,
		`print f(1)(2).x;`,
	}

	for _, src := range programs {
		first := parseProgram(t, src)
		printed := first.Literal()
		second := reparse(t, printed)
		assert.Equal(t, printed, second.Literal(), "source: %s", src)
	}
}

// TestLiteral_ForDesugarSurvivesRoundTrip checks the desugared form of a
// for loop prints as its block+while equivalent and re-parses stably.
func TestLiteral_ForDesugarSurvivesRoundTrip(t *testing.T) {
	first := parseProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	printed := first.Literal()
	assert.Contains(t, printed, "while (i < 3)")

	second := reparse(t, printed)
	assert.Equal(t, printed, second.Literal())
}

// TestPrintingVisitor_RendersTree exercises the visitor contract over a
// program touching most node types.
func TestPrintingVisitor_RendersTree(t *testing.T) {
	root := parseProgram(t, `
		var x = 1;
		fun show(a) { print a or x; }
		class Box {}
		var b = Box();
		b.val = -x;
		if (x < 2) show(b.val); else show(nil);
		while (false) x = x + 1;
	`)

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	out := visitor.String()

	assert.Contains(t, out, "VarStatement [x]")
	assert.Contains(t, out, "FunctionStatement [show] (1 params)")
	assert.Contains(t, out, "Logical [or]")
	assert.Contains(t, out, "ClassStatement [Box] (0 methods)")
	assert.Contains(t, out, "Set [val]")
	assert.Contains(t, out, "Unary [-]")
	assert.Contains(t, out, "IfStatement")
	assert.Contains(t, out, "Call (1 args)")
	assert.Contains(t, out, "Get [val]")
	assert.Contains(t, out, "WhileStatement")
	assert.Contains(t, out, "Assign [x]")
}
