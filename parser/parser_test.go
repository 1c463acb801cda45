/*
File    : rox/parser/parser_test.go
*/
package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collinvandyck/rox/lexer"
	"github.com/collinvandyck/rox/objects"
)

// scanTokens runs the lexer over src and fails the test on scan errors.
func scanTokens(t *testing.T, src string) []lexer.Token {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err, "scan of %q", src)
	return tokens
}

// parseProgram parses src and fails the test on parse errors.
func parseProgram(t *testing.T, src string) *RootNode {
	t.Helper()
	par := NewParser(scanTokens(t, src))
	root, err := par.Parse()
	require.NoError(t, err, "parse of %q", src)
	return root
}

func TestParser_Parse_NumberExpression(t *testing.T) {
	root := parseProgram(t, `12;`)
	require.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatementNode)
	require.True(t, can)
	lit, can := stmt.Expr.(*LiteralExpressionNode)
	require.True(t, can)
	assert.Equal(t, "12", lit.Literal())

	num, ok := lit.Token.Value.(*objects.Number)
	require.True(t, ok)
	assert.Equal(t, float64(12), num.Value)
}

func TestParser_Parse_Precedence(t *testing.T) {
	root := parseProgram(t, `28 - 13 * 2;`)
	require.Equal(t, 1, len(root.Statements))

	stmt := root.Statements[0].(*ExpressionStatementNode)
	// The subtraction is the root; the multiplication binds tighter and
	// hangs off its right side.
	sub, can := stmt.Expr.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.MINUS_OP, sub.Operation.Type)

	_, can = sub.Left.(*LiteralExpressionNode)
	assert.True(t, can)

	mul, can := sub.Right.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.STAR_OP, mul.Operation.Type)
	assert.Equal(t, "28 - 13 * 2", sub.Literal())
}

func TestParser_Parse_Grouping(t *testing.T) {
	root := parseProgram(t, `(1 + 2) * 3;`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	mul, can := stmt.Expr.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.STAR_OP, mul.Operation.Type)

	group, can := mul.Left.(*GroupExpressionNode)
	require.True(t, can)
	_, can = group.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_UnaryChain(t *testing.T) {
	root := parseProgram(t, `!!true;`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	outer, can := stmt.Expr.(*UnaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.NOT_OP, outer.Operation.Type)

	inner, can := outer.Right.(*UnaryExpressionNode)
	require.True(t, can)
	_, can = inner.Right.(*LiteralExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_LogicalDistinctFromBinary(t *testing.T) {
	root := parseProgram(t, `a or b and c;`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	or, can := stmt.Expr.(*LogicalExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.OR_KEY, or.Operation.Type)

	and, can := or.Right.(*LogicalExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.AND_KEY, and.Operation.Type)
}

func TestParser_Parse_AssignVariable(t *testing.T) {
	root := parseProgram(t, `x = 1 + 2;`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	assign, can := stmt.Expr.(*AssignExpressionNode)
	require.True(t, can)
	assert.Equal(t, "x", assign.Name.Lexeme)
	_, can = assign.Value.(*BinaryExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_AssignIsRightAssociative(t *testing.T) {
	root := parseProgram(t, `a = b = 3;`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	outer, can := stmt.Expr.(*AssignExpressionNode)
	require.True(t, can)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, can := outer.Value.(*AssignExpressionNode)
	require.True(t, can)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

// The parser never emits a Set from the grammar directly: the assignment
// rule rewrites a trailing Get target into a Set node.
func TestParser_Parse_AssignPropertyRewritesToSet(t *testing.T) {
	root := parseProgram(t, `bagel.flavor = "plain";`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	set, can := stmt.Expr.(*SetExpressionNode)
	require.True(t, can)
	assert.Equal(t, "flavor", set.Name.Lexeme)

	obj, can := set.Object.(*VariableExpressionNode)
	require.True(t, can)
	assert.Equal(t, "bagel", obj.Name.Lexeme)
}

func TestParser_Parse_GetChain(t *testing.T) {
	root := parseProgram(t, `a.b.c;`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	outer, can := stmt.Expr.(*GetExpressionNode)
	require.True(t, can)
	assert.Equal(t, "c", outer.Name.Lexeme)

	inner, can := outer.Object.(*GetExpressionNode)
	require.True(t, can)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_Parse_InvalidAssignmentTarget(t *testing.T) {
	par := NewParser(scanTokens(t, `1 = 2;`))
	_, err := par.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid assignment target")
}

func TestParser_Parse_CallLeftFold(t *testing.T) {
	root := parseProgram(t, `f(1)(2).x;`)
	stmt := root.Statements[0].(*ExpressionStatementNode)

	get, can := stmt.Expr.(*GetExpressionNode)
	require.True(t, can)
	assert.Equal(t, "x", get.Name.Lexeme)

	call2, can := get.Object.(*CallExpressionNode)
	require.True(t, can)
	require.Equal(t, 1, len(call2.Arguments))

	call1, can := call2.Callee.(*CallExpressionNode)
	require.True(t, can)
	_, can = call1.Callee.(*VariableExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_VarDeclaration(t *testing.T) {
	root := parseProgram(t, `var x = 5; var y;`)
	require.Equal(t, 2, len(root.Statements))

	withInit := root.Statements[0].(*VarStatementNode)
	assert.Equal(t, "x", withInit.Name.Lexeme)
	assert.NotNil(t, withInit.Initializer)

	withoutInit := root.Statements[1].(*VarStatementNode)
	assert.Equal(t, "y", withoutInit.Name.Lexeme)
	assert.Nil(t, withoutInit.Initializer)
}

func TestParser_Parse_IfElse(t *testing.T) {
	root := parseProgram(t, `if (x > 0) print x; else print 0;`)
	stmt := root.Statements[0].(*IfStatementNode)
	assert.NotNil(t, stmt.Condition)
	_, can := stmt.ThenBranch.(*PrintStatementNode)
	assert.True(t, can)
	_, can = stmt.ElseBranch.(*PrintStatementNode)
	assert.True(t, can)

	// No else: the branch stays nil.
	root = parseProgram(t, `if (x) print x;`)
	stmt = root.Statements[0].(*IfStatementNode)
	assert.Nil(t, stmt.ElseBranch)
}

func TestParser_Parse_While(t *testing.T) {
	root := parseProgram(t, `while (n < 10) n = n + 1;`)
	stmt := root.Statements[0].(*WhileStatementNode)
	_, can := stmt.Condition.(*BinaryExpressionNode)
	assert.True(t, can)
	_, can = stmt.Body.(*ExpressionStatementNode)
	assert.True(t, can)
}

// `for` never reaches the evaluator: it parses into a block holding the
// initializer and a while whose body runs the original body then the
// increment.
func TestParser_Parse_ForDesugarsToWhile(t *testing.T) {
	root := parseProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Equal(t, 1, len(root.Statements))

	block, can := root.Statements[0].(*BlockStatementNode)
	require.True(t, can)
	require.Equal(t, 2, len(block.Statements))

	_, can = block.Statements[0].(*VarStatementNode)
	assert.True(t, can)

	loop, can := block.Statements[1].(*WhileStatementNode)
	require.True(t, can)

	body, can := loop.Body.(*BlockStatementNode)
	require.True(t, can)
	require.Equal(t, 2, len(body.Statements))
	_, can = body.Statements[0].(*PrintStatementNode)
	assert.True(t, can)
	incr, can := body.Statements[1].(*ExpressionStatementNode)
	require.True(t, can)
	_, can = incr.Expr.(*AssignExpressionNode)
	assert.True(t, can)
}

// An empty for header desugars with a literal true condition.
func TestParser_Parse_ForWithEmptyClauses(t *testing.T) {
	root := parseProgram(t, `for (;;) print 1;`)
	loop, can := root.Statements[0].(*WhileStatementNode)
	require.True(t, can)

	cond, can := loop.Condition.(*LiteralExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.TRUE_KEY, cond.Token.Type)
	_, can = loop.Body.(*PrintStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_FunctionDeclaration(t *testing.T) {
	root := parseProgram(t, `fun add(a, b) { return a + b; }`)
	fn := root.Statements[0].(*FunctionStatementNode)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Equal(t, 2, len(fn.Params))
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	require.Equal(t, 1, len(fn.Body))

	ret, can := fn.Body[0].(*ReturnStatementNode)
	require.True(t, can)
	_, can = ret.Value.(*BinaryExpressionNode)
	assert.True(t, can)
}

// A bare `return;` carries an explicit nil literal.
func TestParser_Parse_ReturnWithoutValue(t *testing.T) {
	root := parseProgram(t, `fun f() { return; }`)
	fn := root.Statements[0].(*FunctionStatementNode)
	ret := fn.Body[0].(*ReturnStatementNode)

	lit, can := ret.Value.(*LiteralExpressionNode)
	require.True(t, can)
	assert.Equal(t, lexer.NIL_KEY, lit.Token.Type)
	assert.Equal(t, ret.Keyword.Line, lit.Token.Line)
}

func TestParser_Parse_ClassDeclaration(t *testing.T) {
	root := parseProgram(t, `class Bagel { eat() { print "crunch"; } topping(t) { return t; } }`)
	class := root.Statements[0].(*ClassStatementNode)
	assert.Equal(t, "Bagel", class.Name.Lexeme)
	require.Equal(t, 2, len(class.Methods))
	assert.Equal(t, "eat", class.Methods[0].Name.Lexeme)
	assert.Equal(t, "topping", class.Methods[1].Name.Lexeme)
	assert.Equal(t, 1, len(class.Methods[1].Params))
}

func TestParser_Parse_EmptyClass(t *testing.T) {
	root := parseProgram(t, `class Bagel {}`)
	class := root.Statements[0].(*ClassStatementNode)
	assert.Equal(t, "Bagel", class.Name.Lexeme)
	assert.Empty(t, class.Methods)
}

// Panic-mode recovery: a broken declaration is discarded, the parser
// synchronizes at the next statement boundary, and later errors are
// still reported.
func TestParser_Parse_RecoveryCollectsMultipleErrors(t *testing.T) {
	par := NewParser(scanTokens(t, `var = 1; print 2; var = 3;`))
	root, err := par.Parse()
	assert.Nil(t, root)
	require.Error(t, err)
	require.Equal(t, 2, len(par.GetErrors()))
	for _, msg := range par.GetErrors() {
		assert.Contains(t, msg, "PARSER ERROR")
	}
}

func TestParser_Parse_ExpectedExpression(t *testing.T) {
	par := NewParser(scanTokens(t, `print ;`))
	_, err := par.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected expression")
}

// The argument cap records a diagnostic but keeps parsing.
func TestParser_Parse_TooManyArguments(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("1")
	}
	sb.WriteString(");")

	par := NewParser(scanTokens(t, sb.String()))
	_, err := par.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't have 255 or more arguments")
}

// Single-expression mode accepts exactly one expression followed by EOF.
func TestParser_ParseExpression_SingleMode(t *testing.T) {
	par := NewParser(scanTokens(t, `1 + 2 * 3`))
	expr, err := par.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "1 + 2 * 3", expr.Literal())

	// A trailing semicolon makes it a statement, not an expression.
	par = NewParser(scanTokens(t, `1 + 2;`))
	_, err = par.ParseExpression()
	assert.Error(t, err)

	// Statements are rejected outright.
	par = NewParser(scanTokens(t, `print 1;`))
	_, err = par.ParseExpression()
	assert.Error(t, err)
}
