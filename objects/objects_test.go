/*
File    : rox/objects/objects_test.go
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTruthy exercises the truthiness table: false, nil and undefined are
// falsey, everything else is truthy, including 0 and "".
func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(&Boolean{Value: false}))
	assert.False(t, Truthy(&Nil{}))
	assert.False(t, Truthy(&Undefined{}))

	assert.True(t, Truthy(&Boolean{Value: true}))
	assert.True(t, Truthy(&Number{Value: 0}))
	assert.True(t, Truthy(&Number{Value: -1}))
	assert.True(t, Truthy(&String{Value: ""}))
	assert.True(t, Truthy(&String{Value: "x"}))
}

// TestEquals_SameVariant checks reflexive equality within a variant
func TestEquals_SameVariant(t *testing.T) {
	assert.True(t, Equals(&Number{Value: 42}, &Number{Value: 42}))
	assert.False(t, Equals(&Number{Value: 42}, &Number{Value: 43}))

	assert.True(t, Equals(&String{Value: "hi"}, &String{Value: "hi"}))
	assert.False(t, Equals(&String{Value: "hi"}, &String{Value: "ho"}))

	assert.True(t, Equals(&Boolean{Value: true}, &Boolean{Value: true}))
	assert.False(t, Equals(&Boolean{Value: true}, &Boolean{Value: false}))

	assert.True(t, Equals(&Nil{}, &Nil{}))
}

// TestEquals_CrossVariant checks that mixed-variant comparisons are false
func TestEquals_CrossVariant(t *testing.T) {
	assert.False(t, Equals(&Number{Value: 0}, &Boolean{Value: false}))
	assert.False(t, Equals(&Number{Value: 1}, &String{Value: "1"}))
	assert.False(t, Equals(&Nil{}, &Boolean{Value: false}))
	assert.False(t, Equals(&String{Value: ""}, &Nil{}))
}

// TestNumber_ToString checks the host-default double formatting:
// integral doubles print without a fractional part.
func TestNumber_ToString(t *testing.T) {
	assert.Equal(t, "42", (&Number{Value: 42}).ToString())
	assert.Equal(t, "0", (&Number{Value: 0}).ToString())
	assert.Equal(t, "-7", (&Number{Value: -7}).ToString())
	assert.Equal(t, "3.14", (&Number{Value: 3.14}).ToString())
	assert.Equal(t, "0.5", (&Number{Value: 0.5}).ToString())
}

// TestToString_Formats checks the remaining user-facing formats
func TestToString_Formats(t *testing.T) {
	assert.Equal(t, "raw contents", (&String{Value: "raw contents"}).ToString())
	assert.Equal(t, "true", (&Boolean{Value: true}).ToString())
	assert.Equal(t, "false", (&Boolean{Value: false}).ToString())
	assert.Equal(t, "nil", (&Nil{}).ToString())
}

// TestToObject_QuotesStrings checks the debug representation quotes
// string contents while ToString does not
func TestToObject_QuotesStrings(t *testing.T) {
	s := &String{Value: "hi"}
	assert.Equal(t, "hi", s.ToString())
	assert.Equal(t, `<string("hi")>`, s.ToObject())
}

// TestReturnValue_Delegates checks the return signal delegates display to
// its wrapped value but keeps its own type tag
func TestReturnValue_Delegates(t *testing.T) {
	ret := &ReturnValue{Value: &Number{Value: 5}}
	assert.Equal(t, ReturnType, ret.GetType())
	assert.Equal(t, "5", ret.ToString())
}

// TestIsError recognizes only Error objects
func TestIsError(t *testing.T) {
	assert.True(t, IsError(&Error{Kind: DivideByZero, Message: "boom"}))
	assert.False(t, IsError(&Number{Value: 1}))
	assert.False(t, IsError(nil))
	assert.False(t, IsError(&ReturnValue{Value: &Nil{}}))
}
