/*
File    : rox/std/builtins_test.go
*/
package std

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collinvandyck/rox/objects"
)

// findBuiltin looks a native up in the registry by name.
func findBuiltin(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, builtin := range Builtins {
		if builtin.Name == name {
			return builtin
		}
	}
	t.Fatalf("builtin %q not registered", name)
	return nil
}

func TestRegistry_ClockRegistered(t *testing.T) {
	clock := findBuiltin(t, "clock")
	assert.Equal(t, 0, clock.Arity())
	assert.Equal(t, objects.NativeType, clock.GetType())
	assert.Equal(t, "<native fn clock>", clock.ToString())
}

func TestClock_ReturnsEpochSeconds(t *testing.T) {
	clock := findBuiltin(t, "clock")

	var out bytes.Buffer
	result := clock.Callback(nil, &out)

	num, ok := result.(*objects.Number)
	require.True(t, ok)

	// Wall time in seconds: close to the host clock, and in a sane
	// epoch range.
	now := float64(time.Now().UnixNano()) / float64(time.Second)
	assert.InDelta(t, now, num.Value, 5)
	assert.Greater(t, num.Value, float64(1e9))
}
