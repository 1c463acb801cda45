/*
File    : rox/function/function.go
*/

// Package function defines the callable runtime values of Lox: user
// functions, classes (which are callable constructors), and the instances
// classes produce. The call protocol itself lives in the evaluator; the
// types here carry the data a call needs, most importantly the scope a
// function captured at its declaration site.
package function

import (
	"fmt"

	"github.com/collinvandyck/rox/lexer"
	"github.com/collinvandyck/rox/objects"
	"github.com/collinvandyck/rox/parser"
	"github.com/collinvandyck/rox/scope"
)

// Function represents a user-defined function object.
//
// Fields:
//   - Name: the declaration name token, used for display and diagnostics.
//   - Params: the parameter name tokens, bound to argument values when
//     the function is called.
//   - Body: the body statements, executed on invocation.
//   - Closure: the frame captured at the declaration site. This is what
//     makes closures work: the function reaches variables of its defining
//     scope even after that scope's block has finished executing, and the
//     frame is shared so writes remain visible both ways.
type Function struct {
	Name    lexer.Token            // Name of the function
	Params  []lexer.Token          // Parameter name tokens
	Body    []parser.StatementNode // Body statements to execute
	Closure *scope.Scope           // Captured frame for closures
}

// Arity returns the number of parameters the function declares.
func (f *Function) Arity() int {
	return len(f.Params)
}

// GetType returns the function type tag.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the user-facing representation: "<fn NAME>".
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Name.Lexeme)
}

// ToObject returns a detailed representation including the parameter
// names, e.g. "<fn add(a, b)>".
func (f *Function) ToObject() string {
	params := ""
	for i, param := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Lexeme
	}
	return fmt.Sprintf("<fn %s(%s)>", f.Name.Lexeme, params)
}
