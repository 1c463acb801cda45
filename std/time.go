/*
File    : rox/std/time.go
*/

// Package std - time.go
// This file defines the clock builtin, the sole native function of the
// core language.
package std

import (
	"io"
	"time"

	"github.com/collinvandyck/rox/objects"
)

var timeMethods = []*Builtin{
	{Name: "clock", ArityN: 0, Callback: clock}, // Seconds since the Unix epoch
}

// init registers the time natives into the global registry.
func init() {
	Builtins = append(Builtins, timeMethods...)
}

// clock returns the current wall time in seconds since the Unix epoch as
// a Lox Number. Arity 0; the evaluator enforces the argument count before
// the callback runs.
//
// Example:
//
//	var start = clock();
//	// ... work ...
//	print clock() - start;
func clock(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object {
	seconds := float64(time.Now().UnixNano()) / float64(time.Second)
	return &objects.Number{Value: seconds}
}
