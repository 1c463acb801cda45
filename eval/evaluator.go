/*
File    : rox/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator for Lox. It owns the
// active environment frame and the two output streams, and turns a parsed
// AST into observable behavior. Errors and the early-return signal flow
// through evaluation as value objects (objects.Error / objects.ReturnValue)
// and unwind statement execution until they are handled.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/collinvandyck/rox/function"
	"github.com/collinvandyck/rox/lexer"
	"github.com/collinvandyck/rox/objects"
	"github.com/collinvandyck/rox/scope"
	"github.com/collinvandyck/rox/std"
)

// Evaluator holds the state for evaluating Lox AST nodes: the global and
// current environment frames and the injected output writers. It is the
// single-threaded execution engine of the interpreter; there are no
// suspension points and every operation runs to completion.
type Evaluator struct {
	Globals *scope.Scope // The root frame, pre-populated with built-ins
	Scp     *scope.Scope // Current frame for variable bindings
	Writer  io.Writer    // Output writer for print (default: os.Stdout)
	ErrOut  io.Writer    // Error writer (default: os.Stderr)

	// functionDepth counts how many function calls are on the Go stack.
	// A `return` with depth 0 is the top-level-return error; anything
	// deeper raises the Return signal for the enclosing call to catch.
	functionDepth int
}

// NewEvaluator creates and initializes a new Evaluator with default
// configuration: a fresh global frame holding every registered native
// function, stdout for program output and stderr for diagnostics.
//
// Example usage:
//
//	ev := NewEvaluator()
//	result := ev.Eval(root)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	ev := &Evaluator{
		Globals: globals,
		Scp:     globals,
		Writer:  os.Stdout,
		ErrOut:  os.Stderr,
	}
	for _, builtin := range std.Builtins {
		// Global defines never fail.
		globals.Define(builtin.Name, builtin)
	}
	return ev
}

// SetWriter redirects program output (the print statement) to any
// io.Writer. Tests capture output by pointing this at a bytes.Buffer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetErrWriter redirects the diagnostic stream.
func (e *Evaluator) SetErrWriter(w io.Writer) {
	e.ErrOut = w
}

// CallFunction invokes a callable value with already-evaluated arguments.
// This implements the std.Runtime interface so natives can call back into
// Lox code. Arity is checked for every callable kind before invocation.
func (e *Evaluator) CallFunction(fn objects.Object, args ...objects.Object) objects.Object {
	switch fn := fn.(type) {
	case *function.Function:
		if len(args) != fn.Arity() {
			return e.arityError(fn.Name, fn.Arity(), len(args))
		}
		return e.callUserFunction(fn, args)
	case *std.Builtin:
		if len(args) != fn.Arity() {
			return e.arityError(lexer.NewToken(lexer.IDENTIFIER_ID, fn.Name), fn.Arity(), len(args))
		}
		return fn.Callback(e, e.Writer, args...)
	case *function.Class:
		if len(args) != fn.Arity() {
			return e.arityError(lexer.NewToken(lexer.IDENTIFIER_ID, fn.Name), fn.Arity(), len(args))
		}
		return function.NewInstance(fn)
	default:
		return &objects.Error{
			Kind:    objects.NotAFunction,
			Message: "can only call functions and classes",
		}
	}
}

// callUserFunction runs a user-defined function body. Steps:
//  1. make a child of the captured (closure) frame
//  2. bind each parameter name to its argument in that child
//  3. install the child as the active frame
//  4. execute the body statements
//  5. restore the previous frame unconditionally (deferred)
//  6. translate completion: normal yields nil, the Return signal yields
//     its value, and any error propagates with a "call:" prefix
func (e *Evaluator) callUserFunction(fn *function.Function, args []objects.Object) objects.Object {
	frame := fn.Closure.Child()
	for i, param := range fn.Params {
		if err := frame.Define(param.Lexeme, args[i]); err != nil {
			return e.wrapCallError(err)
		}
	}

	prev := e.Scp
	e.Scp = frame
	defer func() {
		e.Scp = prev
	}()

	result := e.evalStatements(fn.Body)
	switch result := result.(type) {
	case *objects.ReturnValue:
		return result.Value
	case *objects.Error:
		return e.wrapCallError(result)
	default:
		return &objects.Nil{}
	}
}

// wrapCallError prefixes an error that escaped a function body so the
// surfaced message shows it crossed a call boundary.
func (e *Evaluator) wrapCallError(err *objects.Error) *objects.Error {
	return &objects.Error{
		Kind:    err.Kind,
		Message: fmt.Sprintf("call: %s", err.Message),
		Line:    err.Line,
	}
}

// arityError reports an argument-count mismatch at the given token.
func (e *Evaluator) arityError(tok lexer.Token, want, got int) *objects.Error {
	return e.errorAt(tok, objects.FunctionArity, "expected %d arguments but got %d", want, got)
}

// errorAt creates a runtime error of the given kind pointing at a token.
func (e *Evaluator) errorAt(tok lexer.Token, kind objects.ErrorKind, format string, a ...interface{}) *objects.Error {
	msg := fmt.Sprintf(format, a...)
	return &objects.Error{
		Kind:    kind,
		Message: msg,
		Line:    tok.Line,
	}
}

// positionError attaches a token's position to an error produced by a
// layer (like scope) that has no source context of its own.
func (e *Evaluator) positionError(tok lexer.Token, err *objects.Error) *objects.Error {
	err.Line = tok.Line
	return err
}

// UnwrapReturnValue strips the Return signal wrapper if present. Used at
// boundaries (like the REPL) that evaluate raw expressions.
func UnwrapReturnValue(obj objects.Object) objects.Object {
	if ret, ok := obj.(*objects.ReturnValue); ok {
		return ret.Value
	}
	return obj
}
