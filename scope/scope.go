/*
File    : rox/scope/scope.go
*/
package scope

import (
	"fmt"

	"github.com/collinvandyck/rox/objects"
)

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical frame chain that enables lexical scoping
// and closures. Each frame maintains its own variable bindings and can
// reach bindings in its parents. Frames are shared by reference: multiple
// closures may hold the same frame and observe each other's writes. The
// chain is traversed upward (from child to parent) during lookup and
// assignment, implementing standard lexical scoping rules.
//
// The root (global) frame is the one with a nil Parent. It is created with
// the interpreter, persists for its lifetime, and is pre-populated with
// the built-in functions.
type Scope struct {
	// Variables maps names to their current values in this frame
	Variables map[string]objects.Object

	// Parent points to the enclosing frame, forming the scope chain.
	// nil indicates this is the global (root) frame.
	Parent *Scope
}

// NewScope creates and initializes a new frame with the given parent.
// parent == nil creates a global (root) frame; otherwise the new frame
// can reach every binding of its ancestors through the lookup chain.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Object),
		Parent:    parent,
	}
}

// IsGlobal reports whether this is the root frame.
func (s *Scope) IsGlobal() bool {
	return s.Parent == nil
}

// Child returns a new frame whose parent is the receiver. The parent is
// shared by reference, so mutating the parent is observable from the
// child via lookup, while defining in the child leaves the parent's
// entries untouched. This is how closures capture their declaration
// environment.
func (s *Scope) Child() *Scope {
	return NewScope(s)
}

// Define adds a binding in this frame. In any non-global frame, defining
// a name that already exists in that same frame is an error; the global
// frame allows redefinition (the REPL redeclares freely).
//
// Example:
//
//	scope.Define("x", &objects.Number{Value: 10})  // ok
//	scope.Define("x", &objects.Number{Value: 20})  // error in a local frame
func (s *Scope) Define(name string, obj objects.Object) *objects.Error {
	if _, has := s.Variables[name]; has && !s.IsGlobal() {
		return &objects.Error{
			Kind:    objects.AlreadyDefined,
			Message: fmt.Sprintf("a binding '%s' already exists in this scope", name),
		}
	}
	s.Variables[name] = obj
	return nil
}

// Assign updates the nearest existing binding of name, walking from this
// frame outward. Unlike Define it never creates a binding: assigning to
// a name with no binding anywhere in the chain is an error. This is what
// lets closures modify variables of their captured frame.
//
// Example:
//
//	var x = 10;
//	fun bump() { x = x + 1; }   // Assign finds and updates the outer x
func (s *Scope) Assign(name string, obj objects.Object) *objects.Error {
	for frame := s; frame != nil; frame = frame.Parent {
		if _, ok := frame.Variables[name]; ok {
			frame.Variables[name] = obj
			return nil
		}
	}
	return &objects.Error{
		Kind:    objects.UndefinedAssign,
		Message: fmt.Sprintf("undefined variable '%s' in assignment", name),
	}
}

// Get returns the first binding of name found walking from this frame
// outward. The boolean reports whether any binding exists; interpreting
// an Undefined sentinel is the evaluator's business, not the scope's.
func (s *Scope) Get(name string) (objects.Object, bool) {
	for frame := s; frame != nil; frame = frame.Parent {
		if obj, ok := frame.Variables[name]; ok {
			return obj, true
		}
	}
	return nil, false
}
