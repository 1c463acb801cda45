/*
File    : rox/eval/eval_expressions.go
*/
package eval

import (
	"github.com/collinvandyck/rox/function"
	"github.com/collinvandyck/rox/lexer"
	"github.com/collinvandyck/rox/objects"
	"github.com/collinvandyck/rox/parser"
	"github.com/collinvandyck/rox/std"
)

// Eval is the main evaluation dispatcher that converts AST nodes into
// runtime objects. It routes each node type to its handler with a type
// switch; the evaluation process is recursive, with complex expressions
// broken down into sub-expressions evaluated in turn.
//
// Errors and the Return signal come back as ordinary objects and are
// checked after every sub-evaluation; the first error aborts the current
// statement.
func (e *Evaluator) Eval(n parser.Node) objects.Object {
	switch n := n.(type) {
	case *parser.RootNode:
		return e.evalStatements(n.Statements)

	// Expressions
	case *parser.LiteralExpressionNode:
		return e.evalLiteralExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.GroupExpressionNode:
		return e.Eval(n.Expr)
	case *parser.VariableExpressionNode:
		return e.evalVariableExpression(n)
	case *parser.AssignExpressionNode:
		return e.evalAssignExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.GetExpressionNode:
		return e.evalGetExpression(n)
	case *parser.SetExpressionNode:
		return e.evalSetExpression(n)

	// Statements
	case *parser.ExpressionStatementNode:
		return e.evalExpressionStatement(n)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.VarStatementNode:
		return e.evalVarStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(n)
	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	case *parser.ClassStatementNode:
		return e.evalClassStatement(n)
	}
	return &objects.Nil{}
}

// evalLiteralExpression turns a literal token into its runtime value.
// Number and string tokens carry their payload from the scanner; the
// keyword literals are built here.
func (e *Evaluator) evalLiteralExpression(n *parser.LiteralExpressionNode) objects.Object {
	switch n.Token.Type {
	case lexer.NUMBER_LIT, lexer.STRING_LIT:
		return n.Token.Value
	case lexer.TRUE_KEY:
		return &objects.Boolean{Value: true}
	case lexer.FALSE_KEY:
		return &objects.Boolean{Value: false}
	default:
		return &objects.Nil{}
	}
}

// evalUnaryExpression handles the prefix operators: `-` requires a
// number; `!` returns the negated truthiness and never fails.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.Object {
	right := e.Eval(n.Right)
	if objects.IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.MINUS_OP:
		num, ok := right.(*objects.Number)
		if !ok {
			return e.errorAt(n.Operation, objects.NumbersRequired, "expected number for op '%s'", n.Operation.Lexeme)
		}
		return &objects.Number{Value: -num.Value}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !objects.Truthy(right)}
	}
	return e.errorAt(n.Operation, objects.InvalidBinaryOp, "invalid op '%s' for unary expr", n.Operation.Lexeme)
}

// evalBinaryExpression handles arithmetic, comparison and equality.
// Arithmetic and ordering require numbers; `+` is overloaded for two
// numbers (addition) and two strings (concatenation); equality never
// fails and is false across variants; a zero right operand to `/` is
// the divide-by-zero error carrying the source line.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.Object {
	left := e.Eval(n.Left)
	if objects.IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if objects.IsError(right) {
		return right
	}

	op := n.Operation
	switch op.Type {
	case lexer.MINUS_OP, lexer.SLASH_OP, lexer.STAR_OP,
		lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP:
		ln, lok := left.(*objects.Number)
		rn, rok := right.(*objects.Number)
		if !lok || !rok {
			return e.errorAt(op, objects.NumbersRequired, "expected numbers for op '%s'", op.Lexeme)
		}
		switch op.Type {
		case lexer.MINUS_OP:
			return &objects.Number{Value: ln.Value - rn.Value}
		case lexer.SLASH_OP:
			if rn.Value == 0 {
				return e.errorAt(op, objects.DivideByZero, "divide by zero detected at line %d", op.Line)
			}
			return &objects.Number{Value: ln.Value / rn.Value}
		case lexer.STAR_OP:
			return &objects.Number{Value: ln.Value * rn.Value}
		case lexer.GT_OP:
			return &objects.Boolean{Value: ln.Value > rn.Value}
		case lexer.GE_OP:
			return &objects.Boolean{Value: ln.Value >= rn.Value}
		case lexer.LT_OP:
			return &objects.Boolean{Value: ln.Value < rn.Value}
		case lexer.LE_OP:
			return &objects.Boolean{Value: ln.Value <= rn.Value}
		}

	case lexer.PLUS_OP:
		if ln, ok := left.(*objects.Number); ok {
			if rn, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: ln.Value + rn.Value}
			}
		}
		if ls, ok := left.(*objects.String); ok {
			if rs, ok := right.(*objects.String); ok {
				return &objects.String{Value: ls.Value + rs.Value}
			}
		}
		return e.errorAt(op, objects.TwoNumbersOrStringsRequired, "expected two numbers or two strings for op '+'")

	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.Equals(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.Equals(left, right)}
	}

	return e.errorAt(op, objects.InvalidBinaryOp, "invalid op '%s' for binary expr", op.Lexeme)
}

// evalLogicalExpression short-circuits: `or` returns the left operand
// when it is truthy, `and` when it is falsey; otherwise the right
// operand is evaluated and returned. The operands themselves come back,
// not coerced booleans.
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.Object {
	left := e.Eval(n.Left)
	if objects.IsError(left) {
		return left
	}

	if n.Operation.Type == lexer.OR_KEY {
		if objects.Truthy(left) {
			return left
		}
	} else {
		if !objects.Truthy(left) {
			return left
		}
	}
	return e.Eval(n.Right)
}

// evalVariableExpression looks a name up in the environment. A missing
// binding and a declared-but-uninitialized binding are distinct errors;
// the undefined sentinel never escapes as an expression result.
func (e *Evaluator) evalVariableExpression(n *parser.VariableExpressionNode) objects.Object {
	value, ok := e.Scp.Get(n.Name.Lexeme)
	if !ok {
		return e.errorAt(n.Name, objects.UndefinedVar, "undefined variable '%s'", n.Name.Lexeme)
	}
	if _, isUndef := value.(*objects.Undefined); isUndef {
		return e.errorAt(n.Name, objects.UndefinedVar, "cannot evaluate undefined variable '%s'", n.Name.Lexeme)
	}
	return value
}

// evalAssignExpression evaluates the right side, updates the nearest
// binding, and yields the assigned value (assignment is an expression).
func (e *Evaluator) evalAssignExpression(n *parser.AssignExpressionNode) objects.Object {
	value := e.Eval(n.Value)
	if objects.IsError(value) {
		return value
	}
	if err := e.Scp.Assign(n.Name.Lexeme, value); err != nil {
		return e.positionError(n.Name, err)
	}
	return value
}

// evalCallExpression evaluates the callee, then the arguments strictly
// left to right, checks arity, and invokes. The function depth is
// incremented around the invocation and decremented on both paths so a
// `return` inside the body is legal exactly while a call is active.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.Object {
	callee := e.Eval(n.Callee)
	if objects.IsError(callee) {
		return callee
	}

	args := make([]objects.Object, 0, len(n.Arguments))
	for _, argExpr := range n.Arguments {
		arg := e.Eval(argExpr)
		if objects.IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch callee := callee.(type) {
	case *function.Function:
		if len(args) != callee.Arity() {
			return e.arityError(n.Paren, callee.Arity(), len(args))
		}
		e.functionDepth++
		defer func() { e.functionDepth-- }()
		return e.callUserFunction(callee, args)
	case *std.Builtin:
		if len(args) != callee.Arity() {
			return e.arityError(n.Paren, callee.Arity(), len(args))
		}
		e.functionDepth++
		defer func() { e.functionDepth-- }()
		return callee.Callback(e, e.Writer, args...)
	case *function.Class:
		if len(args) != callee.Arity() {
			return e.arityError(n.Paren, callee.Arity(), len(args))
		}
		return function.NewInstance(callee)
	default:
		return e.errorAt(n.Paren, objects.NotAFunction, "can only call functions and classes")
	}
}

// evalGetExpression reads a property off an instance. Non-instance
// receivers have no properties; a missing property is an error on read.
func (e *Evaluator) evalGetExpression(n *parser.GetExpressionNode) objects.Object {
	obj := e.Eval(n.Object)
	if objects.IsError(obj) {
		return obj
	}
	instance, ok := obj.(*function.Instance)
	if !ok {
		return e.errorAt(n.Name, objects.NotAnInstance, "only instances have properties")
	}
	value, err := instance.Get(n.Name.Lexeme)
	if err != nil {
		return e.positionError(n.Name, err)
	}
	return value
}

// evalSetExpression writes a property on an instance: object first, then
// the value, then the insert. Sets auto-create missing properties; the
// assigned value is the expression's result.
func (e *Evaluator) evalSetExpression(n *parser.SetExpressionNode) objects.Object {
	obj := e.Eval(n.Object)
	if objects.IsError(obj) {
		return obj
	}
	instance, ok := obj.(*function.Instance)
	if !ok {
		return e.errorAt(n.Name, objects.NotAnInstance, "only instances have fields")
	}
	value := e.Eval(n.Value)
	if objects.IsError(value) {
		return value
	}
	instance.Set(n.Name.Lexeme, value)
	return value
}
