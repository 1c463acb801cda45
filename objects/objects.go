/*
File    : rox/objects/objects.go
*/

// Package objects defines the runtime value model for the Lox language.
// It provides implementations for the primitive values (numbers, strings,
// booleans, nil), the internal Undefined sentinel, and the two control
// objects that flow through evaluation: Error and ReturnValue. All values
// implement the Object interface, which allows for type checking, the
// user-facing print representation, and object inspection.
package objects

import (
	"fmt"
	"strconv"
)

// LoxType represents the type of a Lox object as a string constant.
// These constants are used to identify the type of objects in the language,
// enabling type checking and polymorphic behavior across the value variants.
type LoxType string

const (
	// NumberType represents IEEE-754 double values
	NumberType LoxType = "number"
	// StringType represents string values
	StringType LoxType = "string"
	// BooleanType represents boolean (true/false) values
	BooleanType LoxType = "bool"
	// NilType represents the nil value
	NilType LoxType = "nil"
	// UndefinedType represents a declared-but-uninitialized binding.
	// It only ever lives inside environment frames and is never the
	// result of an expression that completed normally.
	UndefinedType LoxType = "undefined"

	// FunctionType represents user-defined function objects (defined in function/)
	FunctionType LoxType = "fn"
	// NativeType represents native (built-in) function objects
	NativeType LoxType = "native fn"
	// ClassType represents class objects (callable constructors)
	ClassType LoxType = "class"
	// InstanceType represents instances produced by calling a class
	InstanceType LoxType = "instance"

	// ErrorType represents runtime error objects
	ErrorType LoxType = "error"
	// ReturnType represents the early-return control signal
	ReturnType LoxType = "return"
)

// ErrorKind tags an Error object with the failure it represents.
// The evaluator creates errors with a kind so tests and the driver can
// distinguish them without string matching.
type ErrorKind string

const (
	NumbersRequired             ErrorKind = "NumbersRequired"
	TwoNumbersOrStringsRequired ErrorKind = "TwoNumbersOrStringsRequired"
	InvalidBinaryOp             ErrorKind = "InvalidBinaryOp"
	DivideByZero                ErrorKind = "DivideByZero"
	UndefinedVar                ErrorKind = "UndefinedVar"
	UndefinedAssign             ErrorKind = "UndefinedAssign"
	NotAFunction                ErrorKind = "NotAFunction"
	FunctionArity               ErrorKind = "FunctionArity"
	UndefinedProperty           ErrorKind = "UndefinedProperty"
	NotAnInstance               ErrorKind = "NotAnInstance"
	TopLevelReturn              ErrorKind = "TopLevelReturn"
	AlreadyDefined              ErrorKind = "AlreadyDefined"
	PrintFailed                 ErrorKind = "PrintFailed"
)

// Object is the core interface that all Lox runtime values implement.
// It provides methods for type identification, the user-facing string
// representation (what `print` writes), and object inspection for
// debugging purposes.
type Object interface {
	// GetType returns the LoxType of the object, used for type checking
	GetType() LoxType
	// ToString returns the user-facing representation of the value.
	// This is the `to_lox` format: strings print raw, without quotes.
	ToString() string
	// ToObject returns a detailed string representation including type
	// information; string values are quoted here.
	ToObject() string
}

// Truthy reports the truthiness of a value: false, nil, and the internal
// undefined sentinel are falsey; everything else is truthy, including 0
// and the empty string.
func Truthy(obj Object) bool {
	switch obj := obj.(type) {
	case *Boolean:
		return obj.Value
	case *Nil, *Undefined:
		return false
	default:
		return true
	}
}

// Equals compares two values per variant. Cross-variant comparisons are
// always false. Numbers follow the host's float rules (NaN != NaN),
// strings compare by content, and reference values (functions, classes,
// instances) compare by identity.
func Equals(a, b Object) bool {
	switch a := a.(type) {
	case *Number:
		if b, ok := b.(*Number); ok {
			return a.Value == b.Value
		}
	case *String:
		if b, ok := b.(*String); ok {
			return a.Value == b.Value
		}
	case *Boolean:
		if b, ok := b.(*Boolean); ok {
			return a.Value == b.Value
		}
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	default:
		// Functions, classes and instances compare by reference identity.
		return a == b
	}
	return false
}

// IsError reports whether the object is a runtime error. Control flow in
// the evaluator checks this after every sub-evaluation.
func IsError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == ErrorType
}

// Number represents an IEEE-754 double value in Lox. Every numeric literal
// and arithmetic result is a Number; there is no separate integer type.
type Number struct {
	Value float64 // The underlying float64 value
}

// GetType returns the type of the Number object
func (n *Number) GetType() LoxType {
	return NumberType
}

// ToString returns the host-default formatting of the double: integral
// values print without a fractional part (e.g. "42"), others like "3.14".
func (n *Number) ToString() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// ToObject returns a detailed representation including type info (e.g., "<number(42)>")
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%s)>", n.ToString())
}

// String represents a string value in Lox.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() LoxType {
	return StringType
}

// ToString returns the raw string contents, without surrounding quotes
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a quoted representation including type info (e.g., `<string("hi")>`)
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%q)>", s.Value)
}

// Boolean represents a boolean value in Lox.
type Boolean struct {
	Value bool // The underlying bool value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() LoxType {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<bool(true)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Nil represents the nil value in Lox.
type Nil struct{}

// GetType returns the type of the Nil object
func (n *Nil) GetType() LoxType {
	return NilType
}

// ToString returns the string "nil"
func (n *Nil) ToString() string {
	return "nil"
}

// ToObject returns "<nil()>"
func (n *Nil) ToObject() string {
	return "<nil()>"
}

// Undefined is the internal sentinel bound by `var x;` with no initializer.
// It is never user-observable except through the "cannot evaluate undefined
// variable" error raised when such a binding is read.
type Undefined struct{}

// GetType returns the type of the Undefined sentinel
func (u *Undefined) GetType() LoxType {
	return UndefinedType
}

// ToString returns "undefined"
func (u *Undefined) ToString() string {
	return "undefined"
}

// ToObject returns "<undefined()>"
func (u *Undefined) ToObject() string {
	return "<undefined()>"
}

// Error represents a runtime error flowing through evaluation. The first
// error produced by a statement aborts that statement, unwinds every open
// frame and surfaces to the driver.
type Error struct {
	Kind    ErrorKind // Which failure this is (see the ErrorKind constants)
	Message string    // Human-readable message with source context
	Line    int       // Source line the error was raised at (1-based)
}

// GetType returns the type of the Error object
func (e *Error) GetType() LoxType {
	return ErrorType
}

// ToString returns the error message
func (e *Error) ToString() string {
	return e.Message
}

// ToObject returns a detailed representation including the kind (e.g., "<error[DivideByZero](...)>")
func (e *Error) ToObject() string {
	return fmt.Sprintf("<error[%s](%s)>", e.Kind, e.Message)
}

// ReturnValue wraps a value raised by a `return` statement. It is a control
// signal, not an error: it unwinds through any number of nested blocks and
// loops until the enclosing function call catches and unwraps it.
type ReturnValue struct {
	Value Object // The wrapped value carried back to the call site
}

// GetType returns the ReturnType marker so evalStatements can stop early
func (r *ReturnValue) GetType() LoxType {
	return ReturnType
}

// ToString returns the string representation of the wrapped value
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns the object representation of the wrapped value
func (r *ReturnValue) ToObject() string {
	return r.Value.ToObject()
}
