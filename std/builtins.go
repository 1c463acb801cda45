/*
File    : rox/std/builtins.go
*/

// Package std defines the native (built-in) functions available in Lox.
// Natives are registered into the global Builtins slice during package
// initialization; the evaluator copies them into its global frame at
// construction, so they resolve like any other binding.
package std

import (
	"io"

	"github.com/collinvandyck/rox/objects"
)

// Runtime defines the interface the evaluator exposes to native
// functions, so a native can call back into Lox code if it needs to.
type Runtime interface {
	CallFunction(fn objects.Object, args ...objects.Object) objects.Object
}

// CallbackFunc is the function signature for native implementations.
// It receives the runtime, the interpreter's output writer, and the
// already-evaluated arguments, and returns a Lox value (or an Error
// object if something goes wrong).
type CallbackFunc func(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object

// Builtin represents a native function: its name, fixed arity, and the
// Go thunk that implements it. A Builtin is itself a Lox value (it
// implements objects.Object), so it can live in an environment frame
// and be called like a user function.
type Builtin struct {
	Name     string       // The name the function is bound under
	ArityN   int          // The exact number of arguments it accepts
	Callback CallbackFunc // The thunk implementing the native behavior
}

// Arity returns the number of arguments the native accepts.
func (b *Builtin) Arity() int {
	return b.ArityN
}

// GetType returns the native-function type tag.
func (b *Builtin) GetType() objects.LoxType {
	return objects.NativeType
}

// ToString returns the user-facing representation: "<native fn NAME>".
func (b *Builtin) ToString() string {
	return "<native fn " + b.Name + ">"
}

// ToObject returns the same representation; there is nothing more to
// inspect in a native.
func (b *Builtin) ToObject() string {
	return b.ToString()
}

// Builtins is the global registry of native functions. Files in this
// package append to it from their init functions.
var Builtins = make([]*Builtin, 0)
