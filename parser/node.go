/*
File    : rox/parser/node.go
*/
package parser

import (
	"strings"

	"github.com/collinvandyck/rox/lexer"
)

// NodeVisitor implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing or analysis without teaching the
// nodes themselves about every consumer. The evaluator does not use it
// (it dispatches with a type switch); the visitor is the extension point
// for tooling such as the PrintingVisitor.
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Expression visitors
	VisitLiteralExpressionNode(node LiteralExpressionNode)   // Literals: 42, "hi", true, nil
	VisitUnaryExpressionNode(node UnaryExpressionNode)       // Unary operations: -x, !x
	VisitBinaryExpressionNode(node BinaryExpressionNode)     // Binary operations: + - * / > >= < <= == !=
	VisitLogicalExpressionNode(node LogicalExpressionNode)   // Short-circuit operations: and, or
	VisitGroupExpressionNode(node GroupExpressionNode)       // Parenthesized expressions: (expr)
	VisitVariableExpressionNode(node VariableExpressionNode) // Variable reads: x
	VisitAssignExpressionNode(node AssignExpressionNode)     // Assignments: x = 10
	VisitCallExpressionNode(node CallExpressionNode)         // Calls: f(a, b)
	VisitGetExpressionNode(node GetExpressionNode)           // Property reads: obj.x
	VisitSetExpressionNode(node SetExpressionNode)           // Property writes: obj.x = v

	// Statement visitors
	VisitExpressionStatementNode(node ExpressionStatementNode) // Expression statements: expr;
	VisitPrintStatementNode(node PrintStatementNode)           // Print statements: print expr;
	VisitVarStatementNode(node VarStatementNode)               // Declarations: var x = 10;
	VisitBlockStatementNode(node BlockStatementNode)           // Blocks: { stmt1; stmt2; }
	VisitIfStatementNode(node IfStatementNode)                 // Conditionals: if (c) s else s
	VisitWhileStatementNode(node WhileStatementNode)           // Loops: while (c) s
	VisitFunctionStatementNode(node FunctionStatementNode)     // Declarations: fun f(a) { body }
	VisitReturnStatementNode(node ReturnStatementNode)         // Returns: return expr;
	VisitClassStatementNode(node ClassStatementNode)           // Declarations: class C { methods }
}

// Node: base interface for all nodes of the AST.
// Literal(): returns the source-shaped string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes.
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode represents the root of the AST (the program node).
// Every Lox program is a flat sequence of declarations.
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	parts := make([]string, 0, len(root.Statements))
	for _, stmt := range root.Statements {
		parts = append(parts, stmt.Literal())
	}
	return strings.Join(parts, " ")
}

// RootNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// LiteralExpressionNode represents a literal value in the source:
// a number, a string, true, false, or nil. The token carries the payload
// for number/string literals; keyword literals are identified by type.
type LiteralExpressionNode struct {
	Token lexer.Token // The literal token, payload included for numbers/strings
}

// LiteralExpressionNode.Literal(): the literal as written in the source
func (node *LiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

// LiteralExpressionNode.Accept(): accepts a visitor
func (node *LiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLiteralExpressionNode(*node)
}

func (node *LiteralExpressionNode) Expression() {}

// UnaryExpressionNode represents a unary operation with one operand.
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (- or !)
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Lexeme + node.Right.Literal()
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode represents a binary operation with two operands.
// The operator token is carried for diagnostics (kind + line).
// Example: 2 + 3, a < b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Lexeme + " " + node.Right.Literal()
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode represents an `and`/`or` expression. It is kept
// distinct from BinaryExpressionNode because evaluation short-circuits:
// the right operand may never be evaluated.
type LogicalExpressionNode struct {
	Operation lexer.Token    // The `and` or `or` keyword token
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Lexeme + " " + node.Right.Literal()
}

// LogicalExpressionNode.Accept(): accepts a visitor
func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(*node)
}

func (node *LogicalExpressionNode) Expression() {}

// GroupExpressionNode represents an expression wrapped in parentheses.
// Example: (2 + 3) * 4
type GroupExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

// GroupExpressionNode.Literal(): string representation of the node
func (node *GroupExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// GroupExpressionNode.Accept(): accepts a visitor
func (node *GroupExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGroupExpressionNode(*node)
}

func (node *GroupExpressionNode) Expression() {}

// VariableExpressionNode represents a variable read. The name token is
// kept whole so lookup errors can point at the source.
type VariableExpressionNode struct {
	Name lexer.Token // The identifier token
}

// VariableExpressionNode.Literal(): the variable name
func (node *VariableExpressionNode) Literal() string {
	return node.Name.Lexeme
}

// VariableExpressionNode.Accept(): accepts a visitor
func (node *VariableExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableExpressionNode(*node)
}

func (node *VariableExpressionNode) Expression() {}

// AssignExpressionNode represents assignment to a bare variable.
// Assignments to properties are SetExpressionNode instead; the parser
// rewrites a Get target into a Set at the `=` token.
type AssignExpressionNode struct {
	Name  lexer.Token    // The identifier token being assigned to
	Value ExpressionNode // The expression being assigned
}

// AssignExpressionNode.Literal(): string representation of the node
func (node *AssignExpressionNode) Literal() string {
	return node.Name.Lexeme + " = " + node.Value.Literal()
}

// AssignExpressionNode.Accept(): accepts a visitor
func (node *AssignExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignExpressionNode(*node)
}

func (node *AssignExpressionNode) Expression() {}

// CallExpressionNode represents a call expression. The closing paren token
// is retained for arity/callee error reporting.
// Example: f(a, b), Bagel()
type CallExpressionNode struct {
	Callee    ExpressionNode   // The expression being called
	Paren     lexer.Token      // The ')' token, for diagnostics
	Arguments []ExpressionNode // Argument expressions, evaluated left to right
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}

// CallExpressionNode.Accept(): accepts a visitor
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

func (node *CallExpressionNode) Expression() {}

// GetExpressionNode represents a property read on an object.
// Example: bagel.flavor
type GetExpressionNode struct {
	Object ExpressionNode // The receiver expression
	Name   lexer.Token    // The property name token
}

// GetExpressionNode.Literal(): string representation of the node
func (node *GetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Lexeme
}

// GetExpressionNode.Accept(): accepts a visitor
func (node *GetExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGetExpressionNode(*node)
}

func (node *GetExpressionNode) Expression() {}

// SetExpressionNode represents a property write on an object. The parser
// never produces one directly from the grammar; the assignment rule
// rewrites a trailing Get target into a Set.
// Example: bagel.flavor = "plain"
type SetExpressionNode struct {
	Object ExpressionNode // The receiver expression
	Name   lexer.Token    // The property name token
	Value  ExpressionNode // The expression being assigned
}

// SetExpressionNode.Literal(): string representation of the node
func (node *SetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Lexeme + " = " + node.Value.Literal()
}

// SetExpressionNode.Accept(): accepts a visitor
func (node *SetExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitSetExpressionNode(*node)
}

func (node *SetExpressionNode) Expression() {}

// ExpressionStatementNode represents an expression evaluated for its
// side effects, result discarded.
// Example: f(x);
type ExpressionStatementNode struct {
	Expr ExpressionNode
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

// ExpressionStatementNode.Accept(): accepts a visitor
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(*node)
}

func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode represents a print statement.
// Example: print "Hello";
type PrintStatementNode struct {
	Expr ExpressionNode
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

// PrintStatementNode.Accept(): accepts a visitor
func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(*node)
}

func (node *PrintStatementNode) Statement() {}

// VarStatementNode represents a variable declaration, with or without
// an initializer. A missing initializer binds the internal undefined
// sentinel at evaluation time.
// Example: var x = 10; var y;
type VarStatementNode struct {
	Name        lexer.Token    // The declared identifier token
	Initializer ExpressionNode // The initializer, or nil when absent
}

// VarStatementNode.Literal(): string representation of the node
func (node *VarStatementNode) Literal() string {
	if node.Initializer == nil {
		return "var " + node.Name.Lexeme + ";"
	}
	return "var " + node.Name.Lexeme + " = " + node.Initializer.Literal() + ";"
}

// VarStatementNode.Accept(): accepts a visitor
func (node *VarStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarStatementNode(*node)
}

func (node *VarStatementNode) Statement() {}

// BlockStatementNode represents a brace-delimited block. Each block gets
// its own environment frame at evaluation time.
type BlockStatementNode struct {
	Statements []StatementNode
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	parts := make([]string, 0, len(node.Statements)+2)
	parts = append(parts, "{")
	for _, stmt := range node.Statements {
		parts = append(parts, stmt.Literal())
	}
	parts = append(parts, "}")
	return strings.Join(parts, " ")
}

// BlockStatementNode.Accept(): accepts a visitor
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

func (node *BlockStatementNode) Statement() {}

// IfStatementNode represents an if-else conditional.
// Example: if (x > 0) print x; else print 0;
type IfStatementNode struct {
	Condition  ExpressionNode
	ThenBranch StatementNode
	ElseBranch StatementNode // nil when there is no else
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.ThenBranch.Literal()
	if node.ElseBranch != nil {
		res += " else " + node.ElseBranch.Literal()
	}
	return res
}

// IfStatementNode.Accept(): accepts a visitor
func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(*node)
}

func (node *IfStatementNode) Statement() {}

// WhileStatementNode represents a while loop. `for` loops never reach the
// evaluator: the parser desugars them into a block holding the initializer
// and a while whose body runs the original body then the increment.
type WhileStatementNode struct {
	Condition ExpressionNode
	Body      StatementNode
}

// WhileStatementNode.Literal(): string representation of the node
func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}

// WhileStatementNode.Accept(): accepts a visitor
func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(*node)
}

func (node *WhileStatementNode) Statement() {}

// FunctionStatementNode represents a function declaration. The same node
// doubles as a class method (the `fun` keyword is omitted there).
// Example: fun add(x, y) { return x + y; }
type FunctionStatementNode struct {
	Name   lexer.Token     // The function name token
	Params []lexer.Token   // Parameter name tokens
	Body   []StatementNode // The body statements
}

// FunctionStatementNode.Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	return "fun " + node.literalAsMethod()
}

// literalAsMethod renders the declaration without the `fun` keyword, the
// way it appears inside a class body.
func (node *FunctionStatementNode) literalAsMethod() string {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, param.Lexeme)
	}
	body := make([]string, 0, len(node.Body)+2)
	body = append(body, "{")
	for _, stmt := range node.Body {
		body = append(body, stmt.Literal())
	}
	body = append(body, "}")
	return node.Name.Lexeme + "(" + strings.Join(params, ", ") + ") " + strings.Join(body, " ")
}

// FunctionStatementNode.Accept(): accepts a visitor
func (node *FunctionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionStatementNode(*node)
}

func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode represents a return statement. The keyword token is
// retained so a top-level return can be reported at its source line. A
// bare `return;` carries an explicit nil literal as its value.
type ReturnStatementNode struct {
	Keyword lexer.Token    // The `return` keyword token
	Value   ExpressionNode // The returned expression (nil literal when absent)
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	return "return " + node.Value.Literal() + ";"
}

// ReturnStatementNode.Accept(): accepts a visitor
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

func (node *ReturnStatementNode) Statement() {}

// ClassStatementNode represents a class declaration with its methods.
// Example: class Bagel { eat() { print "crunch"; } }
type ClassStatementNode struct {
	Name    lexer.Token              // The class name token
	Methods []*FunctionStatementNode // Method declarations, in source order
}

// ClassStatementNode.Literal(): string representation of the node
func (node *ClassStatementNode) Literal() string {
	parts := make([]string, 0, len(node.Methods)+2)
	parts = append(parts, "class "+node.Name.Lexeme+" {")
	for _, method := range node.Methods {
		parts = append(parts, method.literalAsMethod())
	}
	parts = append(parts, "}")
	return strings.Join(parts, " ")
}

// ClassStatementNode.Accept(): accepts a visitor
func (node *ClassStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitClassStatementNode(*node)
}

func (node *ClassStatementNode) Statement() {}
