package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	for name, f := range easings {
		assert.InDelta(t, 0, f(0), 1e-6, name)
		assert.InDelta(t, 1, f(1), 1e-6, name)
	}
}

func TestEasingMonotonic(t *testing.T) {
	for name, f := range easings {
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float32(i) / 100)
			assert.GreaterOrEqual(t, v, prev, "%s at step %d", name, i)
			prev = v
		}
	}
}

func TestEaseInOutSymmetric(t *testing.T) {
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-6)
	assert.InDelta(t, 1-EaseInOut(0.2), EaseInOut(0.8), 1e-6)
}

func TestEasingByName(t *testing.T) {
	f, err := EasingByName("")
	require.NoError(t, err)
	assert.Equal(t, EaseInOut(0.3), f(0.3))

	f, err = EasingByName(" Linear ")
	require.NoError(t, err)
	assert.Equal(t, float32(0.3), f(0.3))

	_, err = EasingByName("bounce")
	assert.ErrorContains(t, err, "unknown easing")
}
