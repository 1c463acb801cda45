/*
File    : rox/function/instance.go
*/
package function

import (
	"fmt"

	"github.com/collinvandyck/rox/objects"
)

// Instance is a runtime object produced by calling a class. It carries a
// mutable property bag and a reference to its class. Identity is by
// reference: two instances are equal iff they are the same object, which
// the pointer-based equality in objects.Equals already provides.
type Instance struct {
	Class  *Class                    // The class this instance was constructed from
	Fields map[string]objects.Object // Mutable property bag
}

// NewInstance constructs an instance of the given class with an empty
// property bag.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: make(map[string]objects.Object),
	}
}

// Get returns the named property. A miss is an UndefinedProperty error;
// methods are not bound on access in this core, so a method name that is
// not also a field misses too.
func (i *Instance) Get(name string) (objects.Object, *objects.Error) {
	if value, ok := i.Fields[name]; ok {
		return value, nil
	}
	return nil, &objects.Error{
		Kind:    objects.UndefinedProperty,
		Message: fmt.Sprintf("undefined property '%s'", name),
	}
}

// Set inserts or overwrites the named property. Property writes
// auto-create: there is no declaration step for fields.
func (i *Instance) Set(name string, value objects.Object) {
	i.Fields[name] = value
}

// GetType returns the instance type tag.
func (i *Instance) GetType() objects.LoxType {
	return objects.InstanceType
}

// ToString returns the user-facing representation: "Bagel instance".
func (i *Instance) ToString() string {
	return i.Class.Name + " instance"
}

// ToObject returns a detailed representation, e.g. "<instance Bagel(2 fields)>".
func (i *Instance) ToObject() string {
	return fmt.Sprintf("<instance %s(%d fields)>", i.Class.Name, len(i.Fields))
}
