/*
File    : rox/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/collinvandyck/rox/function"
	"github.com/collinvandyck/rox/objects"
	"github.com/collinvandyck/rox/parser"
)

// evalStatements executes statements in order, stopping early when one
// produces an error or raises the Return signal. Both unwind to the
// caller untouched; everything else evaluates to nil.
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) objects.Object {
	var result objects.Object = &objects.Nil{}
	for _, stmt := range stmts {
		result = e.Eval(stmt)
		switch result.(type) {
		case *objects.Error, *objects.ReturnValue:
			return result
		}
	}
	return result
}

// evalExpressionStatement evaluates the expression and discards the
// result, unless it is an error, which propagates.
func (e *Evaluator) evalExpressionStatement(n *parser.ExpressionStatementNode) objects.Object {
	result := e.Eval(n.Expr)
	if objects.IsError(result) {
		return result
	}
	return &objects.Nil{}
}

// evalPrintStatement evaluates the operand and writes its user-facing
// representation followed by a newline to the output writer. An I/O
// failure is a runtime error like any other.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.Object {
	value := e.Eval(n.Expr)
	if objects.IsError(value) {
		return value
	}
	if _, err := fmt.Fprintf(e.Writer, "%s\n", value.ToString()); err != nil {
		return &objects.Error{
			Kind:    objects.PrintFailed,
			Message: fmt.Sprintf("print failed: %v", err),
		}
	}
	return &objects.Nil{}
}

// evalVarStatement handles a variable declaration. The initializer is
// evaluated if present; otherwise the binding holds the internal
// undefined sentinel until assigned. Redeclaring a name in the same
// non-global frame is an error.
func (e *Evaluator) evalVarStatement(n *parser.VarStatementNode) objects.Object {
	var value objects.Object = &objects.Undefined{}
	if n.Initializer != nil {
		value = e.Eval(n.Initializer)
		if objects.IsError(value) {
			return value
		}
	}
	if err := e.Scp.Define(n.Name.Lexeme, value); err != nil {
		return e.positionError(n.Name, err)
	}
	return &objects.Nil{}
}

// evalBlockStatement executes a block in a fresh child frame. The frame
// is popped on every exit path (normal completion, error, and early
// return alike) by deferring the restore.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.Object {
	prev := e.Scp
	e.Scp = e.Scp.Child()
	defer func() {
		e.Scp = prev
	}()
	return e.evalStatements(n.Statements)
}

// evalIfStatement evaluates the condition and executes the then branch
// or the else branch (when present) based on truthiness.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.Object {
	condition := e.Eval(n.Condition)
	if objects.IsError(condition) {
		return condition
	}
	if objects.Truthy(condition) {
		return e.Eval(n.ThenBranch)
	}
	if n.ElseBranch != nil {
		return e.Eval(n.ElseBranch)
	}
	return &objects.Nil{}
}

// evalWhileStatement loops while the condition is truthy, re-evaluating
// the condition each iteration. Errors and the Return signal break out
// of the loop and propagate.
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatementNode) objects.Object {
	for {
		condition := e.Eval(n.Condition)
		if objects.IsError(condition) {
			return condition
		}
		if !objects.Truthy(condition) {
			return &objects.Nil{}
		}
		result := e.Eval(n.Body)
		switch result.(type) {
		case *objects.Error, *objects.ReturnValue:
			return result
		}
	}
}

// evalFunctionStatement constructs a function object capturing the
// current frame and defines it under the declared name. The capture is
// by reference: later writes to captured variables are visible to the
// function, and vice versa.
//
// After the capture, evaluation of the enclosing local scope continues
// in a fresh child frame. Declarations that follow the function land in
// that child, so a later `var` shadowing a captured name resolves
// through the closure's original frame rather than rebinding under it.
// The global frame is exempt: top-level code keeps defining into the
// root frame, which allows redefinition.
func (e *Evaluator) evalFunctionStatement(n *parser.FunctionStatementNode) objects.Object {
	fn := &function.Function{
		Name:    n.Name,
		Params:  n.Params,
		Body:    n.Body,
		Closure: e.Scp,
	}
	if err := e.Scp.Define(n.Name.Lexeme, fn); err != nil {
		return e.positionError(n.Name, err)
	}
	if !e.Scp.IsGlobal() {
		e.Scp = e.Scp.Child()
	}
	return &objects.Nil{}
}

// evalReturnStatement raises the Return signal. Outside any function
// body that is the top-level-return error, caught here at the statement
// rather than letting the signal reach the driver.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.Object {
	if e.functionDepth == 0 {
		return e.errorAt(n.Keyword, objects.TopLevelReturn, "can't return from top-level code")
	}
	value := e.Eval(n.Value)
	if objects.IsError(value) {
		return value
	}
	return &objects.ReturnValue{Value: value}
}

// evalClassStatement defines a class. The name is bound to nil first and
// the constructed class assigned afterwards; the two-step dance keeps
// reference semantics stable for future self-referential methods.
func (e *Evaluator) evalClassStatement(n *parser.ClassStatementNode) objects.Object {
	if err := e.Scp.Define(n.Name.Lexeme, &objects.Nil{}); err != nil {
		return e.positionError(n.Name, err)
	}

	methods := make([]*function.Function, 0, len(n.Methods))
	for _, method := range n.Methods {
		methods = append(methods, &function.Function{
			Name:    method.Name,
			Params:  method.Params,
			Body:    method.Body,
			Closure: e.Scp,
		})
	}

	class := &function.Class{Name: n.Name.Lexeme, Methods: methods}
	if err := e.Scp.Assign(n.Name.Lexeme, class); err != nil {
		return e.positionError(n.Name, err)
	}
	return &objects.Nil{}
}
