/*
File    : rox/function/class.go
*/
package function

import (
	"github.com/collinvandyck/rox/objects"
)

// Class is the runtime representation of a Lox class. A class is callable
// in the sense that the class itself is also a constructor: calling it
// produces a fresh Instance referencing the class.
//
// Two classes with the same name are distinct values; class identity is
// the pointer, not the name. Methods declared in the class body are
// retained in source order and can be looked up with FindMethod; they
// take no part in display, and property access does not bind them.
type Class struct {
	Name    string      // The declared class name
	Methods []*Function // Method declarations, in source order
}

// Arity returns 0: this core has no user-defined init, so construction
// never takes arguments.
func (c *Class) Arity() int {
	return 0
}

// GetType returns the class type tag.
func (c *Class) GetType() objects.LoxType {
	return objects.ClassType
}

// ToString returns the user-facing representation: the bare class name.
func (c *Class) ToString() string {
	return c.Name
}

// ToObject returns a detailed representation, e.g. "<class Bagel>".
func (c *Class) ToObject() string {
	return "<class " + c.Name + ">"
}

// FindMethod returns the method with the given name, if declared.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for _, method := range c.Methods {
		if method.Name.Lexeme == name {
			return method, true
		}
	}
	return nil, false
}
